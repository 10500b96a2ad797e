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

	"github.com/omarluq/termisu/terminfo"
)

// Backend is the raw I/O + termios half of a Terminal: a real /dev/tty
// on POSIX systems, or any other byte sink that can report its size
// and accept mode changes.
type Backend interface {
	Write(p []byte) (int, error)
	Size() (cols, rows int, err error)
	SetMode(mode TerminalMode) error
	Mode() (TerminalMode, bool)
	Close() error
}

// CursorStyle selects the cursor shape emitted via DECSCUSR
// ("\x1b[%d q").
type CursorStyle int

const (
	CursorStyleDefault CursorStyle = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Terminal composes a Backend, a Terminfo, a Buffer, and a cached
// render-state, and is the engine's sole writer to the terminal
// device: every escape sequence this process emits goes through it.
type Terminal struct {
	backend Backend
	info    *terminfo.Terminfo
	buf     *Buffer
	state   *RenderState

	cols, rows int

	inAltScreen  bool
	syncUpdates  bool
	modeSource   *ModeChangeSource
	fallbacks    map[rune]string
	errorSink    func(error)
}

// TerminalOption configures a Terminal at construction time, applied
// after its Backend/Terminfo/Buffer/RenderState are wired up.
type TerminalOption func(*Terminal)

// WithErrorSink installs f as the Terminal's error sink, equivalent to
// calling SetErrorSink after construction.
func WithErrorSink(f func(error)) TerminalOption {
	return func(t *Terminal) { t.errorSink = f }
}

// WithSyncUpdates overrides the default (enabled) synchronized-update
// wrapping of RenderTo/SyncTo.
func WithSyncUpdates(enabled bool) TerminalOption {
	return func(t *Terminal) { t.syncUpdates = enabled }
}

// NewTerminal wraps an already-open backend and an already-resolved
// Terminfo, and allocates a Buffer sized to the backend's current
// dimensions.
func NewTerminal(backend Backend, info *terminfo.Terminfo, opts ...TerminalOption) (*Terminal, error) {
	cols, rows, err := backend.Size()
	if err != nil {
		return nil, err
	}
	t := &Terminal{
		backend:     backend,
		info:        info,
		buf:         NewBuffer(cols, rows),
		state:       NewRenderState(),
		cols:        cols,
		rows:        rows,
		syncUpdates: true,
		fallbacks:   make(map[rune]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SetErrorSink installs a callback invoked for errors that occur in
// contexts (cleanup paths, signal-adjacent code) that must not
// themselves raise.
func (t *Terminal) SetErrorSink(f func(error)) { t.errorSink = f }

func (t *Terminal) reportError(err error) {
	if err != nil && t.errorSink != nil {
		t.errorSink(err)
	}
}

// --- Renderer implementation (consumed by Buffer.RenderTo/SyncTo) ---

func (t *Terminal) WriteGraphemes(s string) {
	t.writeRaw(s)
}

func (t *Terminal) MoveCursorSeq(x, y int) {
	t.writeRaw(t.info.CursorPositionSeq(y, x))
}

func (t *Terminal) SetForegroundSeq(c Color) {
	t.writeRaw(t.colorSeq(c, true))
}

func (t *Terminal) SetBackgroundSeq(c Color) {
	t.writeRaw(t.colorSeq(c, false))
}

func (t *Terminal) colorSeq(c Color, fg bool) string {
	if c.IsDefault() {
		if fg {
			return "\x1b[39m" // SGR default foreground
		}
		return "\x1b[49m" // SGR default background
	}
	idx := c.ToAnsi256()
	if fg {
		return t.info.ForegroundColorSeq(idx)
	}
	return t.info.BackgroundColorSeq(idx)
}

func (t *Terminal) ResetAttrsSeq() {
	t.writeRaw(t.info.ResetAttrsSeq())
}

func (t *Terminal) EnableAttrSeq(bit Attribute) {
	switch bit {
	case AttrBold:
		t.writeRaw(t.info.BoldSeq())
	case AttrUnderline:
		t.writeRaw(t.info.UnderlineSeq())
	case AttrReverse:
		t.writeRaw(t.info.ReverseSeq())
	case AttrBlink:
		t.writeRaw(t.info.BlinkSeq())
	case AttrDim:
		t.writeRaw(t.info.DimSeq())
	case AttrItalic:
		t.writeRaw(t.info.ItalicSeq())
	case AttrHidden:
		t.writeRaw(t.info.HiddenSeq())
	case AttrStrikethrough:
		t.writeRaw(t.info.StrikethroughSeq())
	}
}

func (t *Terminal) SetCursorVisible(visible bool) {
	if visible {
		t.writeRaw(t.info.ShowCursorSeq())
	} else {
		t.writeRaw(t.info.HideCursorSeq())
	}
}

// Flush lets Buffer's batched write path satisfy the optional
// Flush() error assertion; Terminal writes synchronously so there is
// nothing to flush, but the hook is kept for a future buffered writer.
func (t *Terminal) Flush() error { return nil }

func (t *Terminal) writeRaw(s string) {
	if s == "" {
		return
	}
	if _, err := t.backend.Write([]byte(s)); err != nil {
		t.reportError(err)
	}
}

// --- Buffer delegation ---

func (t *Terminal) SetCell(x, y int, s string, fg, bg Color, attr Attribute) bool {
	return t.buf.SetCell(x, y, s, fg, bg, attr)
}

func (t *Terminal) GetCell(x, y int) (Cell, bool) { return t.buf.GetCell(x, y) }

func (t *Terminal) ClearCells() { t.buf.Clear() }

func (t *Terminal) SetCursor(x, y int) { t.buf.SetCursor(x, y) }
func (t *Terminal) ShowCursor()        { t.buf.ShowCursor() }
func (t *Terminal) HideCursor()        { t.buf.HideCursor() }

func (t *Terminal) ResizeBuffer(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.buf.Resize(cols, rows)
}

// Render performs an incremental, diff-based paint via the Buffer.
func (t *Terminal) Render() {
	t.withSyncBracket(func() {
		t.buf.RenderTo(t, t.state, !t.syncUpdates)
	})
}

// Sync forces a full repaint, ignoring the diff.
func (t *Terminal) Sync() {
	t.withSyncBracket(func() {
		t.buf.SyncTo(t, t.state, !t.syncUpdates)
	})
}

// withSyncBracket wraps paint with DEC mode 2026 (BSU/ESU) when
// synchronized updates are enabled, so a terminal that honors it never
// shows a partially-painted frame.
func (t *Terminal) withSyncBracket(paint func()) {
	if t.syncUpdates {
		t.writeRaw("\x1b[?2026h")
	}
	paint()
	if t.syncUpdates {
		t.writeRaw("\x1b[?2026l")
	}
}

// SetSyncUpdates toggles synchronized-update bracketing (DEC 2026).
func (t *Terminal) SetSyncUpdates(on bool) { t.syncUpdates = on }

// --- Direct style setters (skip emission when cache already matches) ---

func (t *Terminal) SetForeground(c Color) {
	if !t.state.fgKnown || !t.state.fg.Equal(c) {
		t.SetForegroundSeq(c)
		t.state.fg, t.state.fgKnown = c, true
	}
}

func (t *Terminal) SetBackground(c Color) {
	if !t.state.bgKnown || !t.state.bg.Equal(c) {
		t.SetBackgroundSeq(c)
		t.state.bg, t.state.bgKnown = c, true
	}
}

func (t *Terminal) EnableBold() { t.enableAttrCached(AttrBold) }

func (t *Terminal) EnableUnderline() { t.enableAttrCached(AttrUnderline) }

func (t *Terminal) EnableReverse() { t.enableAttrCached(AttrReverse) }

func (t *Terminal) EnableBlink() { t.enableAttrCached(AttrBlink) }

func (t *Terminal) EnableDim() { t.enableAttrCached(AttrDim) }

func (t *Terminal) EnableItalic() { t.enableAttrCached(AttrItalic) }

func (t *Terminal) EnableHidden() { t.enableAttrCached(AttrHidden) }

func (t *Terminal) EnableStrikethrough() { t.enableAttrCached(AttrStrikethrough) }

func (t *Terminal) enableAttrCached(bit Attribute) {
	if !t.state.attr.Has(bit) {
		t.EnableAttrSeq(bit)
		t.state.attr |= bit
	}
}

// ResetAttributes clears both the emitted sequence-level state and the
// render-state cache.
func (t *Terminal) ResetAttributes() {
	t.ResetAttrsSeq()
	t.state.attr = AttrNone
	t.state.fgKnown, t.state.bgKnown = false, false
}

// ResetRenderState clears the cache without emitting anything, for use
// after WithMode or whenever an external program may have mutated
// terminal state behind this process's back.
func (t *Terminal) ResetRenderState() { t.state.Reset() }

// --- Alternate screen ---

func (t *Terminal) EnterAlternateScreen() {
	t.writeRaw(t.info.EnterCASeq())
	t.writeRaw(t.info.ClearScreenSeq())
	t.writeRaw(t.info.EnterKeypadSeq())
	t.SetCursorVisible(t.buf.Cursor().Visible())
	t.inAltScreen = true
	t.state.Reset()
	t.Flush()
}

func (t *Terminal) ExitAlternateScreen() {
	t.writeRaw(t.info.ExitKeypadSeq())
	t.writeRaw(t.info.ExitCASeq())
	t.inAltScreen = false
	t.state.Reset()
	t.Flush()
}

// --- Mode control ---

// SetMode applies mode to the backend's termios and publishes a
// ModeChange if a ModeChangeSource has been attached via
// AttachModeChangeSource.
func (t *Terminal) SetMode(mode TerminalMode) error {
	prev, hadPrev := t.backend.Mode()
	if err := t.backend.SetMode(mode); err != nil {
		return err
	}
	if t.modeSource != nil {
		if hadPrev {
			p := prev
			t.modeSource.Publish(mode, &p)
		} else {
			t.modeSource.Publish(mode, nil)
		}
	}
	return nil
}

// AttachModeChangeSource wires a ModeChangeSource so future SetMode /
// WithMode calls publish ModeChange events into its Loop.
func (t *Terminal) AttachModeChangeSource(src *ModeChangeSource) { t.modeSource = src }

// WithMode saves the current mode, optionally exits the alternate
// screen for the duration of fn, applies newMode, runs fn, and then —
// unconditionally, even if fn panics — restores the previous mode
// (defaulting to Raw if none was recorded), invalidates the buffer to
// force a full redraw, resets the render-state cache, and re-raises.
func (t *Terminal) WithMode(newMode TerminalMode, preserveScreen bool, fn func()) (err error) {
	prevMode, hadPrev := t.backend.Mode()
	wasAlt := t.inAltScreen

	defer func() {
		restoreTo := ModeRaw
		if hadPrev {
			restoreTo = prevMode
		}
		if serr := t.SetMode(restoreTo); serr != nil && err == nil {
			err = serr
		}
		if !preserveScreen && wasAlt {
			t.EnterAlternateScreen()
		}
		t.buf.Invalidate()
		t.ResetRenderState()

		if r := recover(); r != nil {
			panic(r)
		}
	}()

	if !preserveScreen && wasAlt {
		t.ExitAlternateScreen()
	}
	if err = t.SetMode(newMode); err != nil {
		return err
	}
	fn()
	return nil
}

// --- Sizing ---

func (t *Terminal) Size() (cols, rows int) { return t.cols, t.rows }

// --- Supplemented features (beyond the original screen abstraction) ---

// CharacterSet reports the process locale's character encoding, e.g.
// "UTF-8" or "ISO-8859-1".
func (t *Terminal) CharacterSet() string { return characterSet() }

// RegisterRuneFallback registers a plain-ASCII substitute for r.
// Registered fallbacks are consulted only by CanDisplay; rendering
// writes graphemes unchanged and does not substitute them.
func (t *Terminal) RegisterRuneFallback(r rune, fallback string) {
	t.fallbacks[r] = fallback
}

// UnregisterRuneFallback removes a previously registered fallback.
func (t *Terminal) UnregisterRuneFallback(r rune) {
	delete(t.fallbacks, r)
}

// CanDisplay reports true for any ASCII rune and for any rune with a
// registered fallback; every other rune reports false, whatever the
// locale charset.
func (t *Terminal) CanDisplay(r rune) bool {
	if r < 0x80 {
		return true
	}
	_, hasFallback := t.fallbacks[r]
	return hasFallback
}

// HasKey reports whether the resolved terminfo entry defines a report
// sequence for the named key capability (e.g. "kcuu1" for Up).
func (t *Terminal) HasKey(short string) bool {
	return t.info.KeyCapability(short) != ""
}

// SetCursorStyle emits DECSCUSR to change the cursor shape. Terminals
// that don't support it simply ignore the sequence.
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.writeRaw("\x1b[" + strconv.Itoa(int(style)) + " q")
}

// --- Close ---

// Close restores termios, exits the alternate screen if active, and
// closes the Backend. Idempotent and never raises: failures are routed
// to the error sink rather than returned.
func (t *Terminal) Close() {
	if t.inAltScreen {
		t.ExitAlternateScreen()
	}
	if err := t.backend.Close(); err != nil {
		t.reportError(err)
	}
}
