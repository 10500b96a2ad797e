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

func TestNewCellTruncatesToFirstCluster(t *testing.T) {
	c := NewCell("ab", DefaultColor, DefaultColor, AttrNone)
	if c.Grapheme() != "a" {
		t.Fatalf("Grapheme() = %q, want %q", c.Grapheme(), "a")
	}
	if c.Width() != 1 {
		t.Fatalf("Width() = %d, want 1", c.Width())
	}
}

func TestNewCellWideGrapheme(t *testing.T) {
	c := NewCell("中", DefaultColor, DefaultColor, AttrNone)
	if c.Width() != 2 {
		t.Fatalf("Width() = %d, want 2", c.Width())
	}
}

func TestNewCellZeroWidth(t *testing.T) {
	// A bare combining mark with no base has width 0.
	c := NewCell("́", DefaultColor, DefaultColor, AttrNone)
	if c.Width() != 0 {
		t.Fatalf("Width() = %d, want 0", c.Width())
	}
}

func TestContinuationCell(t *testing.T) {
	fg, _ := Ansi8(1)
	c := continuationCell(fg, DefaultColor, AttrBold)
	if !c.Continuation() {
		t.Fatal("continuationCell() should report Continuation() == true")
	}
	if c.Grapheme() != "" {
		t.Fatalf("Grapheme() = %q, want empty", c.Grapheme())
	}
}

func TestCellEqual(t *testing.T) {
	a := NewCell("x", DefaultColor, DefaultColor, AttrBold)
	b := NewCell("x", DefaultColor, DefaultColor, AttrBold)
	c := NewCell("y", DefaultColor, DefaultColor, AttrBold)
	if !a.Equal(b) {
		t.Fatal("identical cells should be Equal")
	}
	if a.Equal(c) {
		t.Fatal("cells with different graphemes should not be Equal")
	}
}

func TestCellSameStyleIgnoresGrapheme(t *testing.T) {
	a := NewCell("x", DefaultColor, DefaultColor, AttrBold)
	b := NewCell("y", DefaultColor, DefaultColor, AttrBold)
	if !a.sameStyle(b) {
		t.Fatal("cells sharing fg/bg/attr should report sameStyle regardless of grapheme")
	}
}
