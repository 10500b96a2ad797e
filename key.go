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

// KeyCode names a key reported by the input parser. KeyChar carries its
// rune in the Key event's Char field rather than in the code itself;
// KeyUnknown carries no payload.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyChar            // printable rune; see Key.Char
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyFocusGained
	KeyFocusLost
)

// Modifier is a bitset of key modifiers: bit0=Ctrl, bit1=Shift,
// bit2=Alt, bit3=Meta. xterm's CSI modifier parameter uses a different
// bit order and is translated by modifierFromCSIParam.
type Modifier int

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

func (m Modifier) Has(bit Modifier) bool { return m&bit != 0 }

// modifierFromCSIParam decodes an xterm CSI modifier parameter (the
// second ';'-separated parameter in sequences like "\x1b[1;5A"), which
// is 1 + a bitset where bit0=Shift, bit1=Alt, bit2=Ctrl, bit3=Meta.
func modifierFromCSIParam(param int) Modifier {
	if param <= 0 {
		return ModNone
	}
	bits := param - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	if bits&8 != 0 {
		m |= ModMeta
	}
	return m
}

// Key is a single key press event produced by the input parser.
type Key struct {
	Key       KeyCode
	Modifiers Modifier
	Char      rune // the rune for KeyChar; the matching ASCII character for keys decoded from a C0 byte; 0 otherwise
}

// functionKeyByTilde maps a CSI "~"-terminated numeric parameter to its
// key code, per the ranges the VT parser recognizes.
var functionKeyByTilde = map[int]KeyCode{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd,
	5: KeyPgUp, 6: KeyPgDn,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4,
	15: KeyF5, 17: KeyF6, 18: KeyF7, 19: KeyF8,
	20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// ctrlKeyFromByte maps a C0 control byte (0x00-0x1F) to its Ctrl+letter
// KeyCode and the ASCII character reported in Key.Char, or KeyUnknown
// with a 0 rune if this engine has no named key for it.
func ctrlKeyFromByte(b byte) (KeyCode, rune) {
	switch b {
	case 0x09:
		return KeyTab, 'i'
	case 0x0D:
		return KeyEnter, 'm'
	case 0x1B:
		return KeyEscape, '['
	}
	if b >= 0x01 && b <= 0x1A {
		letter := rune('a' + b - 1)
		return KeyCtrlA + KeyCode(b-1), letter
	}
	return KeyUnknown, 0
}
