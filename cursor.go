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

// Cursor tracks the buffer's logical cursor position. (-1, -1) means
// hidden; the last visible position is remembered so Show() after Hide()
// restores it.
type Cursor struct {
	x, y       int32
	lastX      int32
	lastY      int32
	wasVisible bool
}

// NewCursor returns a Cursor hidden at the origin.
func NewCursor() Cursor {
	return Cursor{x: -1, y: -1, lastX: 0, lastY: 0}
}

// Set moves the cursor to (x, y) and marks it visible.
func (c *Cursor) Set(x, y int32) {
	c.x, c.y = x, y
	c.lastX, c.lastY = x, y
	c.wasVisible = true
}

// Hide sentinels the cursor to (-1, -1), remembering the last shown
// position.
func (c *Cursor) Hide() {
	if c.x != -1 || c.y != -1 {
		c.lastX, c.lastY = c.x, c.y
		c.wasVisible = true
	}
	c.x, c.y = -1, -1
}

// Show restores the last-shown position.
func (c *Cursor) Show() {
	c.x, c.y = c.lastX, c.lastY
}

// Position returns the current (possibly hidden) position.
func (c Cursor) Position() (x, y int32) { return c.x, c.y }

// Visible reports whether the cursor is not hidden.
func (c Cursor) Visible() bool { return c.x != -1 && c.y != -1 }

// Clamp constrains both the current and last-shown position to
// [0,w-1]x[0,h-1].
func (c *Cursor) Clamp(w, h int32) {
	if c.x != -1 || c.y != -1 {
		c.x = clampInt32(c.x, 0, w-1)
		c.y = clampInt32(c.y, 0, h-1)
	}
	c.lastX = clampInt32(c.lastX, 0, w-1)
	c.lastY = clampInt32(c.lastY, 0, h-1)
}

func clampInt32(v, lo, hi int32) int32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
