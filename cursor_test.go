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

func TestNewCursorStartsHidden(t *testing.T) {
	c := NewCursor()
	if c.Visible() {
		t.Fatal("a fresh Cursor should start hidden")
	}
	x, y := c.Position()
	if x != -1 || y != -1 {
		t.Fatalf("Position() = %d,%d want -1,-1", x, y)
	}
}

func TestCursorSetMakesVisible(t *testing.T) {
	c := NewCursor()
	c.Set(3, 4)
	if !c.Visible() {
		t.Fatal("Set should make the cursor visible")
	}
	x, y := c.Position()
	if x != 3 || y != 4 {
		t.Fatalf("Position() = %d,%d want 3,4", x, y)
	}
}

func TestCursorHideThenShowRestoresPosition(t *testing.T) {
	c := NewCursor()
	c.Set(5, 6)
	c.Hide()
	if c.Visible() {
		t.Fatal("Hide should make the cursor invisible")
	}
	c.Show()
	if !c.Visible() {
		t.Fatal("Show should make the cursor visible again")
	}
	x, y := c.Position()
	if x != 5 || y != 6 {
		t.Fatalf("Position() after Show = %d,%d, want the pre-Hide 5,6", x, y)
	}
}

func TestCursorHideTwiceKeepsOriginalLastPosition(t *testing.T) {
	c := NewCursor()
	c.Set(1, 1)
	c.Hide()
	c.Hide() // already hidden: must not clobber lastX/lastY with (-1,-1)
	c.Show()
	x, y := c.Position()
	if x != 1 || y != 1 {
		t.Fatalf("Position() after double Hide + Show = %d,%d, want 1,1", x, y)
	}
}

func TestCursorClampConstrainsCurrentPosition(t *testing.T) {
	c := NewCursor()
	c.Set(100, 100)
	c.Clamp(10, 10)
	x, y := c.Position()
	if x != 9 || y != 9 {
		t.Fatalf("Clamp() = %d,%d want 9,9", x, y)
	}
}

func TestCursorClampLeavesHiddenCursorHidden(t *testing.T) {
	c := NewCursor()
	c.Clamp(10, 10)
	if c.Visible() {
		t.Fatal("Clamp should not make a hidden cursor visible")
	}
}

func TestCursorClampAlsoConstrainsLastShownPosition(t *testing.T) {
	c := NewCursor()
	c.Set(100, 100)
	c.Hide()
	c.Clamp(10, 10)
	c.Show()
	x, y := c.Position()
	if x != 9 || y != 9 {
		t.Fatalf("Position() after Clamp+Show = %d,%d want 9,9 (lastX/lastY must be clamped too)", x, y)
	}
}
