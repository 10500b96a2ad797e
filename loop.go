// Copyright 2026 The Termisu Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package termisu

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultLoopChannelSize = 128
	shutdownTimeout        = 100 * time.Millisecond
)

// Loop owns a bounded multi-producer channel, a set of Sources, and an
// atomic running flag. Its only required output is the Events channel;
// callers drain it in their own goroutine.
type Loop struct {
	Events chan Event

	mu      sync.Mutex
	sources []Source
	running int32
}

// NewLoop constructs a Loop with the default (128-entry) channel
// capacity.
func NewLoop() *Loop {
	return NewLoopWithCapacity(defaultLoopChannelSize)
}

// NewLoopWithCapacity constructs a Loop with an explicit channel
// capacity.
func NewLoopWithCapacity(capacity int) *Loop {
	return &Loop{Events: make(chan Event, capacity)}
}

// AddSource registers src; if the Loop is already running, src is
// started immediately.
func (l *Loop) AddSource(src Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources = append(l.sources, src)
	if l.Running() {
		src.Start(l.Events)
	}
}

// RemoveSource stops src (if running) and removes it from the set.
func (l *Loop) RemoveSource(src Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.sources {
		if s == src {
			s.Stop()
			l.sources = append(l.sources[:i], l.sources[i+1:]...)
			return
		}
	}
}

// Start flips the running flag and starts every registered source. A
// no-op if the loop is already running.
func (l *Loop) Start() {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sources {
		s.Start(l.Events)
	}
}

// Running reports whether the loop has been started and not yet
// stopped.
func (l *Loop) Running() bool {
	return atomic.LoadInt32(&l.running) == 1
}

// Stop flips the running flag, stops every source concurrently (waiting
// up to shutdownTimeout in total for slow stoppers), then closes the Events
// channel. Idempotent: a second call is a no-op.
func (l *Loop) Stop() {
	if !atomic.CompareAndSwapInt32(&l.running, 1, 0) {
		return
	}
	l.mu.Lock()
	sources := append([]Source(nil), l.sources...)
	l.mu.Unlock()

	var wg sync.WaitGroup
	for _, s := range sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			s.Stop()
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
	}

	close(l.Events)
}
