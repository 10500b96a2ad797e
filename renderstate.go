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

// Renderer is the minimal surface Buffer's diff/sync renderers and
// RenderState need from a terminal backend: raw grapheme output, cursor
// positioning, and style-sequence emission. Terminal implements this by
// composing a Terminfo-resolved capability set.
type Renderer interface {
	// WriteGraphemes writes already-composed grapheme text at the
	// current physical cursor position (no movement).
	WriteGraphemes(s string)
	// MoveCursorSeq writes the raw escape sequence to move the
	// physical cursor to (x, y), 0-based.
	MoveCursorSeq(x, y int)
	// SetForegroundSeq / SetBackgroundSeq write the raw escape sequence
	// selecting fg/bg. A default color resets to the terminal default.
	SetForegroundSeq(c Color)
	SetBackgroundSeq(c Color)
	// ResetAttrsSeq writes sgr0 (reset all attributes).
	ResetAttrsSeq()
	// EnableAttrSeq writes the raw escape sequence turning on a single
	// attribute bit (Bold, Underline, Reverse, Blink, Dim, Italic,
	// Hidden, Strikethrough).
	EnableAttrSeq(bit Attribute)
	// SetCursorVisible writes cnorm/civis.
	SetCursorVisible(visible bool)
}

// attrBits lists the individually-addressable attribute bits in a fixed
// order, used when diffing which bits turned on.
var attrBits = [...]Attribute{
	AttrBold, AttrUnderline, AttrReverse, AttrBlink,
	AttrDim, AttrItalic, AttrHidden, AttrStrikethrough,
}

// RenderState caches the last-emitted fg/bg/attr/cursor so Buffer's
// renderers only emit the minimal style delta between consecutive
// writes. A nil-like "unknown" value (tracked via the known* flags)
// forces re-emission on first use or after Reset.
type RenderState struct {
	fg, bg         Color
	fgKnown, bgKnown bool
	attr           Attribute
	cursorX        int
	cursorY        int
	cursorKnown    bool
}

// NewRenderState returns a RenderState with everything unknown, forcing
// the first ApplyStyle/MoveCursor call to emit.
func NewRenderState() *RenderState {
	return &RenderState{}
}

// Reset clears all cached fields, including the cached cursor position.
// Callers must not assume anything about position after Reset.
func (rs *RenderState) Reset() {
	rs.fgKnown = false
	rs.bgKnown = false
	rs.attr = AttrNone
	rs.cursorKnown = false
}

// ApplyStyle emits the minimal sequence to transition from the cached
// style to (fg, bg, attr), per spec.md §4.3's algorithm, and returns
// whether anything was emitted.
func (rs *RenderState) ApplyStyle(r Renderer, fg, bg Color, attr Attribute) bool {
	emitted := false

	if attr != rs.attr {
		removed := rs.attr&^attr != 0
		if removed {
			r.ResetAttrsSeq()
			rs.fgKnown = false
			rs.bgKnown = false
			emitted = true
		}
		for _, bit := range attrBits {
			if attr.Has(bit) && !rs.attr.Has(bit) {
				r.EnableAttrSeq(bit)
				emitted = true
			}
		}
		rs.attr = attr
	}

	if !rs.fgKnown || !fg.Equal(rs.fg) {
		r.SetForegroundSeq(fg)
		rs.fg = fg
		rs.fgKnown = true
		emitted = true
	}

	if !rs.bgKnown || !bg.Equal(rs.bg) {
		r.SetBackgroundSeq(bg)
		rs.bg = bg
		rs.bgKnown = true
		emitted = true
	}

	return emitted
}

// MoveCursor emits a cursor-position sequence only if the cached
// position differs, then records the new position.
func (rs *RenderState) MoveCursor(r Renderer, x, y int) bool {
	if rs.cursorKnown && rs.cursorX == x && rs.cursorY == y {
		return false
	}
	r.MoveCursorSeq(x, y)
	rs.cursorX, rs.cursorY = x, y
	rs.cursorKnown = true
	return true
}

// AdvanceCursor adds n to the cached cursor column without emitting
// anything, keeping the cache consistent with the terminal's own cursor
// advance after writing n columns of text (n counts columns, not
// codepoints, so wide-character writes advance by their display width).
func (rs *RenderState) AdvanceCursor(n int) {
	if rs.cursorKnown {
		rs.cursorX += n
	}
}
