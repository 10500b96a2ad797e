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

// SystemTimerSource emits Ticks driven by the Poller's own timer
// registration, so missed ticks under scheduling pressure are reported
// via PollResult.Expirations rather than silently dropped.
type SystemTimerSource struct {
	sourceBase
	poller   Poller
	interval time.Duration
	handle   TimerHandle
	done     chan struct{}
}

func NewSystemTimerSource(poller Poller, interval time.Duration) *SystemTimerSource {
	return &SystemTimerSource{poller: poller, interval: interval}
}

func (s *SystemTimerSource) Name() string { return "system-timer" }

func (s *SystemTimerSource) Start(sink chan<- Event) {
	if !s.tryStart() {
		return
	}
	h, err := s.poller.AddTimer(s.interval, true)
	if err != nil {
		s.tryStop()
		return
	}
	s.handle = h
	s.done = make(chan struct{})
	go s.run(sink, s.done)
}

func (s *SystemTimerSource) run(sink chan<- Event, done chan struct{}) {
	defer close(done)
	start := time.Now()
	var frame uint64

	for s.Running() {
		// Bounded wait: once Stop cancels the timer nothing else wakes
		// the poller, so the running flag is re-checked every interval.
		result, ok, err := s.poller.Wait(s.interval)
		if err != nil || !ok {
			continue
		}
		if result.Kind != PollResultTimer || result.Handle != s.handle {
			continue
		}
		now := time.Now()
		ev := Event{Kind: EventTick, Tick: Tick{
			Elapsed: now.Sub(start),
			Delta:   time.Duration(result.Expirations) * s.interval,
			Frame:   frame,
		}}
		frame += result.Expirations
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

func (s *SystemTimerSource) Stop() {
	if s.tryStop() {
		s.poller.CancelTimer(s.handle)
		if s.done != nil {
			<-s.done
		}
	}
}
