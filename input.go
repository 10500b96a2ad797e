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
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// escapeGraceMS is how long the parser waits for a follow-up byte
// after a lone ESC before reporting a standalone Escape key.
const escapeGraceMS = 50

// InputParser turns a raw byte stream from a Reader into Key and Mouse
// events. It is driven one "parse one event" step at a time by
// whatever owns the Reader (typically an input source's read loop).
type InputParser struct {
	r       *Reader
	decoder *encoding.Decoder // nil when the locale charset is UTF-8 (the common case)
}

// NewInputParser wraps r, decoding high bytes according to the
// process's locale charset (LC_ALL/LC_CTYPE/LANG). When that charset
// is UTF-8 or unrecognized, bytes above 0x7F are parsed as UTF-8
// directly; otherwise they're transcoded through the resolved legacy
// single-byte encoding before being reported as a Key's Char.
func NewInputParser(r *Reader) *InputParser { return r.newInputParser() }

func (r *Reader) newInputParser() *InputParser {
	p := &InputParser{r: r}
	if enc := getEncoding(characterSet()); enc != nil && enc != encoding.Nop {
		p.decoder = enc.NewDecoder()
	}
	return p
}

// ParsedEvent is the result of one Next call: exactly one of Key or
// Mouse is populated, selected by IsMouse.
type ParsedEvent struct {
	Key     Key
	Mouse   Mouse
	IsMouse bool
}

// Next blocks (via the underlying Reader) for the next byte and parses
// one complete key or mouse event from it, or returns ok=false on
// EOF/EAGAIN with nothing buffered.
func (p *InputParser) Next() (ev ParsedEvent, ok bool, err error) {
	b, got, err := p.r.ReadByte()
	if err != nil {
		return ev, false, err
	}
	if !got {
		return ev, false, nil
	}

	if b == 0x1B {
		return p.parseEscape()
	}
	return p.parseChar(b)
}

func (p *InputParser) parseChar(b byte) (ParsedEvent, bool, error) {
	switch {
	case b == 0x7F:
		return keyEvent(KeyBackspace, ModNone, 0), true, nil
	case b < 0x20:
		code, ch := ctrlKeyFromByte(b)
		mod := ModNone
		if code >= KeyCtrlA && code <= KeyCtrlZ {
			mod = ModCtrl
		}
		return keyEvent(code, mod, ch), true, nil
	case b < 0x80:
		return keyEvent(KeyChar, ModNone, rune(b)), true, nil
	default:
		r, err := p.readUTF8Rune(b)
		if err != nil {
			return ParsedEvent{}, false, err
		}
		return keyEvent(KeyChar, ModNone, r), true, nil
	}
}

// readUTF8Rune decodes the high byte b into a rune, either by
// collecting the continuation bytes of a multi-byte UTF-8 sequence, or
// by running b through the locale's legacy single-byte decoder when
// one was resolved at construction.
func (p *InputParser) readUTF8Rune(b byte) (rune, error) {
	if p.decoder != nil {
		return p.decodeLegacyByte(b)
	}
	var n int
	var r rune
	switch {
	case b&0xE0 == 0xC0:
		n, r = 1, rune(b&0x1F)
	case b&0xF0 == 0xE0:
		n, r = 2, rune(b&0x0F)
	case b&0xF8 == 0xF0:
		n, r = 3, rune(b&0x07)
	default:
		return rune(b), nil // invalid lead byte, pass through
	}
	for i := 0; i < n; i++ {
		cb, got, err := p.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !got || cb&0xC0 != 0x80 {
			break
		}
		r = r<<6 | rune(cb&0x3F)
	}
	return r, nil
}

// decodeLegacyByte transcodes a single byte from the locale's
// non-UTF-8 charset (ISO-8859-1, KOI8-R, and the other charsets
// getEncoding resolves through x/text's IANA index) into its Unicode rune.
func (p *InputParser) decodeLegacyByte(b byte) (rune, error) {
	out, err := p.decoder.Bytes([]byte{b})
	if err != nil || len(out) == 0 {
		return rune(b), nil
	}
	r, _ := utf8.DecodeRune(out)
	return r, nil
}

func (p *InputParser) parseEscape() (ParsedEvent, bool, error) {
	avail, err := p.r.WaitForData(escapeGraceMS)
	if err != nil {
		return ParsedEvent{}, false, err
	}
	if !avail {
		return keyEvent(KeyEscape, ModNone, 0), true, nil
	}

	b, got, err := p.r.ReadByte()
	if err != nil {
		return ParsedEvent{}, false, err
	}
	if !got {
		return keyEvent(KeyEscape, ModNone, 0), true, nil
	}

	switch b {
	case '[':
		return p.parseCSI()
	case 'O':
		return p.parseSS3()
	case 0x1B:
		inner, ok, ierr := p.parseEscape()
		if ierr != nil || !ok {
			return inner, ok, ierr
		}
		return applyAlt(inner), true, nil
	default:
		inner, ok, ierr := p.parseChar(b)
		if ierr != nil || !ok {
			return inner, ok, ierr
		}
		return applyAlt(inner), true, nil
	}
}

func applyAlt(ev ParsedEvent) ParsedEvent {
	if !ev.IsMouse {
		ev.Key.Modifiers |= ModAlt
	}
	return ev
}

func (p *InputParser) parseSS3() (ParsedEvent, bool, error) {
	b, got, err := p.r.ReadByte()
	if err != nil {
		return ParsedEvent{}, false, err
	}
	if !got {
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
	switch b {
	case 'P':
		return keyEvent(KeyF1, ModNone, 0), true, nil
	case 'Q':
		return keyEvent(KeyF2, ModNone, 0), true, nil
	case 'R':
		return keyEvent(KeyF3, ModNone, 0), true, nil
	case 'S':
		return keyEvent(KeyF4, ModNone, 0), true, nil
	case 'A':
		return keyEvent(KeyUp, ModNone, 0), true, nil
	case 'B':
		return keyEvent(KeyDown, ModNone, 0), true, nil
	case 'C':
		return keyEvent(KeyRight, ModNone, 0), true, nil
	case 'D':
		return keyEvent(KeyLeft, ModNone, 0), true, nil
	default:
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
}

// parseCSI collects parameter bytes (0x30-0x3F) and intermediate bytes
// (0x20-0x2F) until a final byte (0x40-0x7E), then dispatches.
func (p *InputParser) parseCSI() (ParsedEvent, bool, error) {
	var params []byte
	var interm []byte

	for {
		b, got, err := p.r.ReadByte()
		if err != nil {
			return ParsedEvent{}, false, err
		}
		if !got {
			return keyEvent(KeyUnknown, ModNone, 0), true, nil
		}
		switch {
		case b >= 0x30 && b <= 0x3F:
			params = append(params, b)
		case b >= 0x20 && b <= 0x2F:
			interm = append(interm, b)
		case b >= 0x40 && b <= 0x7E:
			return p.dispatchCSI(b, params)
		default:
			return keyEvent(KeyUnknown, ModNone, 0), true, nil
		}
	}
}

func (p *InputParser) dispatchCSI(final byte, params []byte) (ParsedEvent, bool, error) {
	if len(params) > 0 && params[0] == '<' {
		return p.dispatchSGRMouse(final, splitParams(params[1:]))
	}
	ps := splitParams(params)

	switch final {
	case 'A':
		return keyEvent(KeyUp, modFromParams(ps), 0), true, nil
	case 'B':
		return keyEvent(KeyDown, modFromParams(ps), 0), true, nil
	case 'C':
		return keyEvent(KeyRight, modFromParams(ps), 0), true, nil
	case 'D':
		return keyEvent(KeyLeft, modFromParams(ps), 0), true, nil
	case 'H':
		return keyEvent(KeyHome, modFromParams(ps), 0), true, nil
	case 'F':
		return keyEvent(KeyEnd, modFromParams(ps), 0), true, nil
	case 'I':
		return keyEvent(KeyFocusGained, ModNone, 0), true, nil
	case 'O':
		return keyEvent(KeyFocusLost, ModNone, 0), true, nil
	case '~':
		if len(ps) == 0 {
			return keyEvent(KeyUnknown, ModNone, 0), true, nil
		}
		switch ps[0] {
		case 1:
			return keyEvent(KeyHome, modFromParams(ps[1:]), 0), true, nil
		case 4:
			return keyEvent(KeyEnd, modFromParams(ps[1:]), 0), true, nil
		}
		if code, ok := functionKeyByTilde[ps[0]]; ok {
			return keyEvent(code, modFromParams(ps[1:]), 0), true, nil
		}
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	case 'u':
		return p.dispatchKittyKey(ps)
	case 'M':
		return p.dispatchX10Mouse()
	default:
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
}

// dispatchKittyKey handles the small subset of Kitty-protocol key
// reports this engine disambiguates: Tab vs Ctrl+I, Enter vs Ctrl+M,
// Escape vs Ctrl+[, identified by the reported Unicode codepoint.
func (p *InputParser) dispatchKittyKey(ps []int) (ParsedEvent, bool, error) {
	if len(ps) == 0 {
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
	cp := ps[0]
	mod := ModNone
	if len(ps) > 1 {
		mod = modifierFromCSIParam(ps[1])
	}
	switch cp {
	case 9:
		return keyEvent(KeyTab, mod, 0), true, nil
	case 13:
		return keyEvent(KeyEnter, mod, 0), true, nil
	case 27:
		return keyEvent(KeyEscape, mod, 0), true, nil
	default:
		return keyEvent(KeyChar, mod, rune(cp)), true, nil
	}
}

// dispatchSGRMouse decodes an SGR mouse report's already-split
// parameters: Cb, Cx, Cy. The '<' lead byte is collected as the first
// CSI parameter byte (0x3C falls in the 0x30-0x3F range) rather than as
// an intermediate, which is how real terminal emulators emit these
// ("\x1b[<0;10;5M").
func (p *InputParser) dispatchSGRMouse(final byte, ps []int) (ParsedEvent, bool, error) {
	if len(ps) < 3 {
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
	btn, mods, motion := decodeMouseButtonByte(ps[0])
	x, y := ps[1]-1, ps[2]-1
	if final == 'm' && btn != MouseWheelUp && btn != MouseWheelDown &&
		btn != MouseWheelLeft && btn != MouseWheelRight {
		btn = MouseRelease
	}
	return ParsedEvent{Mouse: Mouse{X: x, Y: y, Button: btn, Modifiers: mods, Motion: motion}, IsMouse: true}, true, nil
}

// dispatchX10Mouse reads the three raw bytes that follow "\x1b[M" in
// the legacy X10 mouse protocol: Cb, Cx, Cy, each offset by +32 (and
// capable of representing coordinates up to 223 before wraparound).
func (p *InputParser) dispatchX10Mouse() (ParsedEvent, bool, error) {
	raw, got, err := p.r.ReadBytes(3)
	if err != nil {
		return ParsedEvent{}, false, err
	}
	if !got {
		return keyEvent(KeyUnknown, ModNone, 0), true, nil
	}
	cb := int(raw[0]) - 32
	x := int(raw[1]) - 32
	y := int(raw[2]) - 32
	btn, mods, motion := decodeMouseButtonByte(cb)
	return ParsedEvent{Mouse: Mouse{X: x, Y: y, Button: btn, Modifiers: mods, Motion: motion}, IsMouse: true}, true, nil
}

func keyEvent(code KeyCode, mod Modifier, ch rune) ParsedEvent {
	return ParsedEvent{Key: Key{Key: code, Modifiers: mod, Char: ch}}
}

func modFromParams(ps []int) Modifier {
	if len(ps) < 2 {
		return ModNone
	}
	return modifierFromCSIParam(ps[1])
}

// splitParams parses a collected CSI parameter-byte run ("1;5", "<0;10;5")
// into integers, treating ';' as the separator and defaulting an empty
// field to 0.
func splitParams(params []byte) []int {
	if len(params) == 0 {
		return nil
	}
	var out []int
	start := 0
	flush := func(end int) {
		if end <= start {
			out = append(out, 0)
			return
		}
		n, err := strconv.Atoi(string(params[start:end]))
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	for i, b := range params {
		if b == ';' {
			flush(i)
			start = i + 1
		}
	}
	flush(len(params))
	return out
}
