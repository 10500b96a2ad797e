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

// ModeChangeSource is not a background-goroutine Source in the usual
// sense: Terminal.SetMode and Terminal.WithMode call Publish directly
// whenever they change the termios mode, and this type forwards the
// resulting ModeChange event into whatever sink the Loop supplied at
// Start.
type ModeChangeSource struct {
	sourceBase
	sink chan<- Event
}

func NewModeChangeSource() *ModeChangeSource { return &ModeChangeSource{} }

func (s *ModeChangeSource) Name() string { return "mode-change" }

func (s *ModeChangeSource) Start(sink chan<- Event) {
	if s.tryStart() {
		s.sink = sink
	}
}

func (s *ModeChangeSource) Stop() {
	s.tryStop()
	s.sink = nil
}

// Publish forwards a mode transition, dropping it silently if the
// source isn't running or the channel is saturated — mode changes are
// not I/O-critical and are never worth blocking on.
func (s *ModeChangeSource) Publish(mode TerminalMode, previous *TerminalMode) {
	if !s.Running() || s.sink == nil {
		return
	}
	ev := Event{Kind: EventModeChange, ModeChange: ModeChange{Mode: mode, PreviousMode: previous}}
	trySend(s.sink, ev)
}
