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
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

const resizePollInterval = 30 * time.Millisecond

// ResizeSource watches SIGWINCH and emits Resize events. The signal
// handler itself performs only an atomic store (s.flag.Store),
// per the signal-safety requirement that a handler touch nothing more
// than an atomic or a short pipe write; a polling goroutine wakes every
// resizePollInterval, swaps the flag, and on a true read queries the
// current size via the given sizeFunc. This is the fix for the failure
// mode where a blocking channel send inside a signal handler can
// deadlock the whole process under a burst of signals.
type ResizeSource struct {
	sourceBase
	sizeFunc func() (cols, rows int, err error)
	flag     atomic.Bool
	done     chan struct{}

	mu                   sync.Mutex
	lastWidth, lastHeight int
	haveLast             bool
}

// NewResizeSource watches for terminal size changes, using sizeFunc to
// query the current dimensions (typically a Backend's Size; the tty
// backend answers it with TIOCGWINSZ).
func NewResizeSource(sizeFunc func() (cols, rows int, err error)) *ResizeSource {
	return &ResizeSource{sizeFunc: sizeFunc}
}

func (s *ResizeSource) Name() string { return "resize" }

func (s *ResizeSource) Start(sink chan<- Event) {
	if !s.tryStart() {
		return
	}
	s.done = make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)

	go func() {
		for range sigCh {
			s.flag.Store(true)
		}
	}()

	go s.pollLoop(sink, sigCh, s.done)
}

func (s *ResizeSource) pollLoop(sink chan<- Event, sigCh chan os.Signal, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(resizePollInterval)
	defer ticker.Stop()

	for s.Running() {
		<-ticker.C
		if !s.flag.Swap(false) {
			continue
		}
		cols, rows, err := s.sizeFunc()
		if err != nil {
			continue
		}
		ev := s.buildEvent(cols, rows)
		if !s.Running() {
			return
		}
		select {
		case sink <- ev:
		default:
			// non-blocking: signal-adjacent path never blocks on a full channel
		}
	}
	signal.Stop(sigCh)
}

func (s *ResizeSource) buildEvent(cols, rows int) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r Resize
	if s.haveLast {
		ow, oh := s.lastWidth, s.lastHeight
		r = Resize{Width: cols, Height: rows, OldWidth: &ow, OldHeight: &oh}
	} else {
		r = Resize{Width: cols, Height: rows}
	}
	s.lastWidth, s.lastHeight, s.haveLast = cols, rows, true
	return Event{Kind: EventResize, Resize: r}
}

func (s *ResizeSource) Stop() {
	if s.tryStop() && s.done != nil {
		<-s.done
	}
}
