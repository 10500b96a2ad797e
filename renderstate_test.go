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

import "testing"

// recordingRenderer is like fakeRenderer but also counts calls by kind,
// for assertions about how many sequences a style transition emits.
type recordingRenderer struct {
	fgCalls, bgCalls, resetCalls, moveCalls int
	enabledAttrs                            []Attribute
}

func (r *recordingRenderer) WriteGraphemes(s string)    {}
func (r *recordingRenderer) MoveCursorSeq(x, y int)      { r.moveCalls++ }
func (r *recordingRenderer) SetForegroundSeq(c Color)    { r.fgCalls++ }
func (r *recordingRenderer) SetBackgroundSeq(c Color)    { r.bgCalls++ }
func (r *recordingRenderer) ResetAttrsSeq()              { r.resetCalls++ }
func (r *recordingRenderer) EnableAttrSeq(bit Attribute) { r.enabledAttrs = append(r.enabledAttrs, bit) }
func (r *recordingRenderer) SetCursorVisible(visible bool) {}

func TestApplyStyleFirstCallAlwaysEmits(t *testing.T) {
	rs := NewRenderState()
	r := &recordingRenderer{}
	emitted := rs.ApplyStyle(r, DefaultColor, DefaultColor, AttrNone)
	if !emitted {
		t.Fatal("first ApplyStyle call should always emit (nothing cached yet)")
	}
	if r.fgCalls != 1 || r.bgCalls != 1 {
		t.Fatalf("fgCalls=%d bgCalls=%d, want 1,1", r.fgCalls, r.bgCalls)
	}
}

func TestApplyStyleSkipsUnchanged(t *testing.T) {
	rs := NewRenderState()
	r := &recordingRenderer{}
	rs.ApplyStyle(r, DefaultColor, DefaultColor, AttrBold)
	r2 := &recordingRenderer{}
	emitted := rs.ApplyStyle(r2, DefaultColor, DefaultColor, AttrBold)
	if emitted {
		t.Fatal("ApplyStyle with unchanged fg/bg/attr should not emit")
	}
	if r2.fgCalls != 0 || r2.bgCalls != 0 || r2.resetCalls != 0 || len(r2.enabledAttrs) != 0 {
		t.Fatalf("unchanged style should emit nothing, got %+v", r2)
	}
}

func TestApplyStyleRemovingAttrResetsAndReemitsColors(t *testing.T) {
	rs := NewRenderState()
	rs.ApplyStyle(&recordingRenderer{}, DefaultColor, DefaultColor, AttrBold)

	r := &recordingRenderer{}
	rs.ApplyStyle(r, DefaultColor, DefaultColor, AttrNone)
	if r.resetCalls != 1 {
		t.Fatalf("removing an attribute bit should emit sgr0, resetCalls=%d", r.resetCalls)
	}
	if r.fgCalls != 1 || r.bgCalls != 1 {
		t.Fatal("after sgr0, fg/bg must be re-asserted since sgr0 clears them too")
	}
}

func TestApplyStyleAddingAttrOnlyEnablesNewBit(t *testing.T) {
	rs := NewRenderState()
	rs.ApplyStyle(&recordingRenderer{}, DefaultColor, DefaultColor, AttrBold)

	r := &recordingRenderer{}
	rs.ApplyStyle(r, DefaultColor, DefaultColor, AttrBold|AttrUnderline)
	if r.resetCalls != 0 {
		t.Fatal("adding an attribute should not require sgr0")
	}
	if len(r.enabledAttrs) != 1 || r.enabledAttrs[0] != AttrUnderline {
		t.Fatalf("should enable exactly the new bit (Underline), got %v", r.enabledAttrs)
	}
	if r.fgCalls != 0 || r.bgCalls != 0 {
		t.Fatal("adding an attribute without removing any should not re-emit colors")
	}
}

func TestMoveCursorSkipsSamePosition(t *testing.T) {
	rs := NewRenderState()
	r := &recordingRenderer{}
	rs.MoveCursor(r, 5, 5)
	if r.moveCalls != 1 {
		t.Fatalf("first MoveCursor should emit, moveCalls=%d", r.moveCalls)
	}
	rs.MoveCursor(r, 5, 5)
	if r.moveCalls != 1 {
		t.Fatalf("MoveCursor to the same position should not re-emit, moveCalls=%d", r.moveCalls)
	}
	rs.MoveCursor(r, 6, 5)
	if r.moveCalls != 2 {
		t.Fatalf("MoveCursor to a new position should emit, moveCalls=%d", r.moveCalls)
	}
}

func TestResetClearsCache(t *testing.T) {
	rs := NewRenderState()
	rs.ApplyStyle(&recordingRenderer{}, DefaultColor, DefaultColor, AttrBold)
	rs.MoveCursor(&recordingRenderer{}, 3, 3)
	rs.Reset()

	r := &recordingRenderer{}
	rs.ApplyStyle(r, DefaultColor, DefaultColor, AttrBold)
	if r.fgCalls == 0 {
		t.Fatal("after Reset, ApplyStyle with the same style as before should re-emit")
	}
	r2 := &recordingRenderer{}
	rs.MoveCursor(r2, 3, 3)
	if r2.moveCalls == 0 {
		t.Fatal("after Reset, MoveCursor to the same position as before should re-emit")
	}
}

func TestAdvanceCursorOnlyWhenKnown(t *testing.T) {
	rs := NewRenderState()
	rs.AdvanceCursor(5) // no-op: cursor position unknown
	r := &recordingRenderer{}
	rs.MoveCursor(r, 10, 0)
	rs.AdvanceCursor(3)
	r2 := &recordingRenderer{}
	rs.MoveCursor(r2, 13, 0)
	if r2.moveCalls != 0 {
		t.Fatal("MoveCursor to the position AdvanceCursor already tracked should not re-emit")
	}
}
