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

// InputSource owns a Reader and InputParser and feeds Key/Mouse events
// into the Loop. It also exposes PollSync for legacy callers that want
// a synchronous read bypassing the channel.
type InputSource struct {
	sourceBase
	parser *InputParser
	done   chan struct{}
}

// NewInputSource wraps a Reader for event-loop consumption.
func NewInputSource(r *Reader) *InputSource {
	return &InputSource{parser: NewInputParser(r)}
}

func (s *InputSource) Name() string { return "input" }

func (s *InputSource) Start(sink chan<- Event) {
	if !s.tryStart() {
		return
	}
	s.done = make(chan struct{})
	go s.run(sink, s.done)
}

func (s *InputSource) run(sink chan<- Event, done chan struct{}) {
	defer close(done)
	for s.Running() {
		ev, ok, err := s.parser.Next()
		if err != nil || !ok {
			continue
		}
		out := toEvent(ev)
		if !s.Running() {
			return
		}
		select {
		case sink <- out:
		case <-done:
			return
		}
	}
}

func (s *InputSource) Stop() {
	if s.tryStop() && s.done != nil {
		<-s.done
	}
}

// PollSync reads and parses one event synchronously, waiting up to
// timeoutMS, bypassing the channel entirely.
func (s *InputSource) PollSync(timeoutMS int) (Event, bool, error) {
	avail, err := s.parser.r.WaitForData(timeoutMS)
	if err != nil || !avail {
		return Event{}, false, err
	}
	ev, ok, err := s.parser.Next()
	if err != nil || !ok {
		return Event{}, false, err
	}
	return toEvent(ev), true, nil
}

func toEvent(p ParsedEvent) Event {
	if p.IsMouse {
		return Event{Kind: EventMouse, Mouse: p.Mouse}
	}
	return Event{Kind: EventKey, Key: p.Key}
}
