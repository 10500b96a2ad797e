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

// MouseButton names the button (or wheel direction) a Mouse event
// reports.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseRelease
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Mouse is a single mouse event decoded from SGR (1006) or X10 mouse
// reporting.
type Mouse struct {
	X, Y      int
	Button    MouseButton
	Modifiers Modifier
	Motion    bool
}

// decodeMouseButtonByte interprets the Cb byte of an SGR or X10 mouse
// report: bits 0-1 select the base button, bit 2 is Shift, bit 3 is
// Alt, bit 4 is Ctrl, bit 5 marks motion, bit 6 marks a wheel event
// (in which case bits 0-1 select the wheel direction instead).
func decodeMouseButtonByte(cb int) (btn MouseButton, mods Modifier, motion bool) {
	low := cb & 0x3
	motion = cb&0x20 != 0

	if cb&0x40 != 0 {
		switch low {
		case 0:
			btn = MouseWheelUp
		case 1:
			btn = MouseWheelDown
		case 2:
			btn = MouseWheelLeft
		case 3:
			btn = MouseWheelRight
		}
	} else {
		switch low {
		case 0:
			btn = MouseLeft
		case 1:
			btn = MouseMiddle
		case 2:
			btn = MouseRight
		case 3:
			btn = MouseRelease
		}
	}

	if cb&0x04 != 0 {
		mods |= ModShift
	}
	if cb&0x08 != 0 {
		mods |= ModAlt
	}
	if cb&0x10 != 0 {
		mods |= ModCtrl
	}
	return btn, mods, motion
}
