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

// EventKind tags which field of an Event is populated.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventResize
	EventTick
	EventModeChange
)

// Resize reports a terminal dimension change. OldWidth/OldHeight are
// nil for the very first size query (there is nothing to compare
// against yet).
type Resize struct {
	Width, Height       int
	OldWidth, OldHeight *int
}

// Changed reports whether this resize represents an actual dimension
// change: false when old == new; with no prior size, true unless the
// new size is 0x0.
func (r Resize) Changed() bool {
	if r.OldWidth == nil || r.OldHeight == nil {
		return r.Width != 0 || r.Height != 0
	}
	return *r.OldWidth != r.Width || *r.OldHeight != r.Height
}

// Tick is a heartbeat from a timer source.
type Tick struct {
	Elapsed time.Duration
	Delta   time.Duration
	Frame   uint64
}

// ModeChange reports a TerminalMode transition published by
// Terminal.SetMode / Terminal.WithMode.
type ModeChange struct {
	Mode         TerminalMode
	PreviousMode *TerminalMode
}

// Changed returns false if PreviousMode is nil (first assignment is
// not a change) or equals Mode; true otherwise.
func (m ModeChange) Changed() bool {
	return m.PreviousMode != nil && *m.PreviousMode != m.Mode
}

// ToRaw reports whether this change is a transition into ModeRaw.
func (m ModeChange) ToRaw() bool {
	return m.Changed() && m.Mode == ModeRaw
}

// FromRaw reports whether this change is a transition out of ModeRaw.
func (m ModeChange) FromRaw() bool {
	return m.Changed() && *m.PreviousMode == ModeRaw
}

// ToUserInteractive reports whether this change is a transition into a
// mode where a human at the keyboard sees normal line editing or
// character-at-a-time input (ModeCooked or ModeCbreak).
func (m ModeChange) ToUserInteractive() bool {
	return m.Changed() && (m.Mode == ModeCooked || m.Mode == ModeCbreak)
}

// FromUserInteractive reports whether this change is a transition out
// of ModeCooked or ModeCbreak.
func (m ModeChange) FromUserInteractive() bool {
	return m.Changed() && (*m.PreviousMode == ModeCooked || *m.PreviousMode == ModeCbreak)
}

// Event is a tagged union of everything a Source can publish into the
// Loop's channel.
type Event struct {
	Kind       EventKind
	Key        Key
	Mouse      Mouse
	Resize     Resize
	Tick       Tick
	ModeChange ModeChange
}
