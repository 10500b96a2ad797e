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

import "sync/atomic"

// Source is one producer of Events into a Loop's channel. start/stop
// must be idempotent and safe to call from any goroutine; a started
// Source runs its own goroutine and must observe its running flag
// (or a closed sink) to exit cleanly.
type Source interface {
	Name() string
	Start(sink chan<- Event)
	Stop()
	Running() bool
}

// sourceBase centralizes the compare-and-set running flag every Source
// implementation needs for Start/Stop idempotence.
type sourceBase struct {
	running int32
}

// tryStart flips running false->true, reporting whether this call won
// the race (i.e. should actually spawn the goroutine).
func (b *sourceBase) tryStart() bool {
	return atomic.CompareAndSwapInt32(&b.running, 0, 1)
}

// tryStop flips running true->false, reporting whether this call
// should perform the stop side effects.
func (b *sourceBase) tryStop() bool {
	return atomic.CompareAndSwapInt32(&b.running, 1, 0)
}

func (b *sourceBase) Running() bool {
	return atomic.LoadInt32(&b.running) == 1
}

// trySend writes ev to sink without blocking; it silently drops the
// event if the channel is full or closed rather than panicking, since
// signal-adjacent producers must never block.
func trySend(sink chan<- Event, ev Event) (sent bool) {
	defer func() {
		if recover() != nil {
			sent = false
		}
	}()
	select {
	case sink <- ev:
		return true
	default:
		return false
	}
}
