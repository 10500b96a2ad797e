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

// TerminalMode selects a termios configuration: a point in the
// (canonical, echo, signals, extended) x (raw input flags) space.
type TerminalMode int

const (
	// ModeRaw: no canonical, no echo, no signals, no extended; raw
	// input flags cleared. Full control over every byte read.
	ModeRaw TerminalMode = iota
	// ModeCooked: canonical, echo, signals, extended; input flags
	// restored to their value at process start. The shell default.
	ModeCooked
	// ModeCbreak: no canonical, echo, signals, extended; input flags
	// raw. Byte-at-a-time input with terminal-generated echo.
	ModeCbreak
	// ModePassword: canonical, no echo, signals, extended; input
	// flags original. Line input without echo, for secret entry.
	ModePassword
	// ModeSemiRaw: no canonical, no echo, signals, extended; input
	// flags raw. Like Raw but Ctrl-C/Ctrl-Z still generate signals.
	ModeSemiRaw
)

func (m TerminalMode) String() string {
	switch m {
	case ModeRaw:
		return "Raw"
	case ModeCooked:
		return "Cooked"
	case ModeCbreak:
		return "Cbreak"
	case ModePassword:
		return "Password"
	case ModeSemiRaw:
		return "SemiRaw"
	default:
		return "Unknown"
	}
}

// localFlags reports the canonical/echo/signals/extended bits this
// mode wants in termios Lflag, and whether the input flags (Iflag)
// should be the raw variant (true) or the originally-saved variant
// (false).
func (m TerminalMode) localFlags() (canon, echo, isig, iexten, rawInput bool) {
	switch m {
	case ModeRaw:
		return false, false, false, false, true
	case ModeCooked:
		return true, true, true, true, false
	case ModeCbreak:
		return false, true, true, true, true
	case ModePassword:
		return true, false, true, true, false
	case ModeSemiRaw:
		return false, false, true, true, true
	default:
		return false, false, false, false, true
	}
}
