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

import "time"

// TimerSource emits a Tick every interval via a plain sleep loop: no
// kernel timer precision, but zero platform dependency. Use
// SystemTimerSource when missed-tick accounting from the Poller is
// needed.
type TimerSource struct {
	sourceBase
	interval time.Duration
	done     chan struct{}
}

func NewTimerSource(interval time.Duration) *TimerSource {
	return &TimerSource{interval: interval}
}

func (s *TimerSource) Name() string { return "timer" }

func (s *TimerSource) Start(sink chan<- Event) {
	if !s.tryStart() {
		return
	}
	s.done = make(chan struct{})
	go s.run(sink, s.done)
}

func (s *TimerSource) run(sink chan<- Event, done chan struct{}) {
	defer close(done)
	start := time.Now()
	last := start
	var frame uint64

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for s.Running() {
		<-ticker.C
		now := time.Now()
		ev := Event{Kind: EventTick, Tick: Tick{
			Elapsed: now.Sub(start),
			Delta:   now.Sub(last),
			Frame:   frame,
		}}
		last = now
		frame++
		if !s.Running() {
			return
		}
		select {
		case sink <- ev:
		case <-done:
			return
		}
	}
}

func (s *TimerSource) Stop() {
	if s.tryStop() && s.done != nil {
		<-s.done
	}
}
