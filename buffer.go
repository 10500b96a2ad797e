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
	"strings"

	"github.com/omarluq/termisu/width"
)

// Buffer is a double-buffered grid of Cells: a front buffer (what the
// terminal currently displays) and a back buffer (what the application
// has most recently written), plus a Cursor and a reusable
// character-batching scratch buffer for the diff/sync renderers.
type Buffer struct {
	w, h   int
	front  []Cell
	back   []Cell
	cursor Cursor
	batch  strings.Builder
}

// NewBuffer allocates a w*h Buffer, every cell default-styled.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{w: w, h: h, cursor: NewCursor()}
	b.front = make([]Cell, w*h)
	b.back = make([]Cell, w*h)
	b.fillDefault(b.front)
	b.fillDefault(b.back)
	return b
}

func (b *Buffer) fillDefault(cells []Cell) {
	for i := range cells {
		cells[i] = defaultCell
	}
}

// Size returns the buffer's (width, height).
func (b *Buffer) Size() (int, int) { return b.w, b.h }

func (b *Buffer) idx(x, y int) int { return y*b.w + x }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// GetCell returns the back-buffer cell at (x, y), or (Cell{}, false) if
// out of bounds.
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.back[b.idx(x, y)], true
}

// SetCell writes one grapheme of s at (x, y) with the given style.
// Rejects (returns false, without error) out-of-bounds writes, control
// characters, width-0 standalone graphemes, and width-2 writes at the
// last column. These are explicit non-errors per spec.md §7.
func (b *Buffer) SetCell(x, y int, s string, fg, bg Color, attr Attribute) bool {
	if !b.inBounds(x, y) {
		return false
	}
	cluster, _ := width.FirstGraphemeCluster(s)
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return false
		}
		break
	}
	w := width.GraphemeWidth(cluster)
	if w == 0 {
		return false
	}
	if w == 2 && x == b.w-1 {
		return false
	}
	b.writeGrapheme(x, y, cluster, w, fg, bg, attr)
	return true
}

// writeGrapheme is the internal write primitive of spec.md §4.2.
func (b *Buffer) writeGrapheme(x, y int, cluster string, w int, fg, bg Color, attr Attribute) {
	i := b.idx(x, y)
	prev := b.back[i]

	// 1. If target cell is continuation, clear its owner to default.
	if prev.continuation && x > 0 {
		b.back[b.idx(x-1, y)] = defaultCell
	}

	// 2. If w==2 and (x+1,y) was leading of another wide grapheme,
	//    clear the would-be orphan continuation at (x+2,y).
	if w == 2 && x+1 < b.w {
		next := b.back[b.idx(x+1, y)]
		if !next.continuation && next.width == 2 && x+2 < b.w {
			b.back[b.idx(x+2, y)] = defaultCell
		}
	}

	// 3. Pre-clear the target column(s).
	b.back[i] = emptyCell
	if w == 2 && x+1 < b.w {
		b.back[b.idx(x+1, y)] = emptyCell
	}

	// 4. Write leading + continuation.
	b.back[i] = Cell{grapheme: cluster, width: w, fg: fg, bg: bg, attr: attr}
	if w == 2 {
		b.back[b.idx(x+1, y)] = continuationCell(fg, bg, attr)
	}

	// 5. If w==1 and the cell previously at (x,y) was a width-2 leading
	//    cell, its continuation at (x+1,y) is now orphaned; clear it.
	if w == 1 && !prev.continuation && prev.width == 2 && x+1 < b.w {
		b.back[b.idx(x+1, y)] = defaultCell
	}
}

// Clear resets every back-buffer cell to default.
func (b *Buffer) Clear() {
	b.fillDefault(b.back)
}

// Invalidate fills the front buffer with the sentinel "impossible" cell
// so the next render re-emits every column. Terminal is responsible for
// also resetting its RenderState when it invalidates (see terminal.go).
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = sentinelCell
	}
}

// SetCursor moves the logical cursor.
func (b *Buffer) SetCursor(x, y int) { b.cursor.Set(int32(x), int32(y)) }

// HideCursor hides the logical cursor.
func (b *Buffer) HideCursor() { b.cursor.Hide() }

// ShowCursor restores the last-shown cursor position.
func (b *Buffer) ShowCursor() { b.cursor.Show() }

// Cursor returns a copy of the buffer's Cursor.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// Resize changes the buffer's dimensions, preserving overlapping
// content, then runs the occupancy fixup pass of spec.md §4.2.
func (b *Buffer) Resize(newW, newH int) {
	if newW == b.w && newH == b.h {
		return
	}
	newBack := make([]Cell, newW*newH)
	newFront := make([]Cell, newW*newH)
	for i := range newBack {
		newBack[i] = defaultCell
		newFront[i] = defaultCell
	}
	copyW := minInt(b.w, newW)
	copyH := minInt(b.h, newH)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			newBack[y*newW+x] = b.back[b.idx(x, y)]
			newFront[y*newW+x] = b.front[b.idx(x, y)]
		}
	}
	b.w, b.h = newW, newH
	b.back = newBack
	b.front = newFront
	b.fixupOccupancy(b.back)
	b.fixupOccupancy(b.front)
	b.cursor.Clamp(int32(newW), int32(newH))
}

// fixupOccupancy restores the occupancy invariants after a resize: any
// width==2 cell at the new last column becomes default; any orphan
// continuation becomes default.
func (b *Buffer) fixupOccupancy(cells []Cell) {
	for y := 0; y < b.h; y++ {
		last := y*b.w + (b.w - 1)
		if !cells[last].continuation && cells[last].width == 2 {
			cells[last] = defaultCell
		}
		for x := 0; x < b.w; x++ {
			i := y*b.w + x
			if !cells[i].continuation {
				continue
			}
			if x == 0 {
				cells[i] = defaultCell
				continue
			}
			owner := cells[y*b.w+(x-1)]
			if owner.continuation || owner.width != 2 {
				cells[i] = defaultCell
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RenderTo performs a diff-based, row-by-row render: unchanged cells are
// skipped, changed runs of matching style are batched into a single
// write, the cursor is placed last, and the backend is flushed if
// autoFlush.
func (b *Buffer) RenderTo(r Renderer, state *RenderState, autoFlush bool) {
	for y := 0; y < b.h; y++ {
		b.renderRow(r, state, y, false)
	}
	b.renderCursor(r, state)
	if autoFlush {
		flushIfPossible(r)
	}
}

// SyncTo performs a full redraw: every cell is re-emitted regardless of
// whether it changed, after resetting state so every style re-emits too.
func (b *Buffer) SyncTo(r Renderer, state *RenderState, autoFlush bool) {
	state.Reset()
	for y := 0; y < b.h; y++ {
		b.renderRow(r, state, y, true)
	}
	b.renderCursor(r, state)
	if autoFlush {
		flushIfPossible(r)
	}
}

func flushIfPossible(r Renderer) {
	if f, ok := r.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// renderRow scans one row left to right, batching runs of changed cells
// that share a style, and copies rendered back-cells into front.
func (b *Buffer) renderRow(r Renderer, state *RenderState, y int, full bool) {
	x := 0
	for x < b.w {
		i := b.idx(x, y)
		cur := b.back[i]
		prev := b.front[i]
		if !full && cur.Equal(prev) {
			x++
			continue
		}
		if cur.continuation {
			// An orphaned continuation shouldn't normally be scanned
			// standalone (its leading cell opens the batch), but guard
			// against it defensively by marking synced and moving on.
			b.front[i] = cur
			x++
			continue
		}

		startX := x
		fg, bg, attr := cur.fg, cur.bg, cur.attr
		b.batch.Reset()
		b.batch.WriteString(cur.grapheme)
		b.front[i] = cur
		if cur.width == 2 && x+1 < b.w {
			b.front[i+1] = b.back[i+1] // its continuation is drawn with it
		}
		columns := cur.width
		x += cur.width

		for x < b.w {
			ni := b.idx(x, y)
			next := b.back[ni]
			nprev := b.front[ni]
			changed := full || !next.Equal(nprev)
			if !changed {
				break
			}
			if next.continuation {
				// A continuation cell's column-advance is folded into
				// its owning leading cell's width, already counted
				// above; reaching one here without having just
				// consumed its owner means occupancy was violated, so
				// stop the batch rather than mis-count columns.
				break
			}
			if !next.sameStyle(cur) {
				break
			}
			b.batch.WriteString(next.grapheme)
			b.front[ni] = next
			if next.width == 2 && x+1 < b.w {
				b.front[ni+1] = b.back[ni+1]
			}
			columns += next.width
			x += next.width
		}

		b.renderBatch(r, state, startX, y, b.batch.String(), fg, bg, attr, columns)
	}
}

// renderBatch emits one styled run: cursor move if needed, style delta,
// the concatenated graphemes, then advances the cached cursor by
// columns (not codepoints).
func (b *Buffer) renderBatch(r Renderer, state *RenderState, x, y int, chars string, fg, bg Color, attr Attribute, columns int) {
	state.MoveCursor(r, x, y)
	state.ApplyStyle(r, fg, bg, attr)
	r.WriteGraphemes(chars)
	state.AdvanceCursor(columns)
}

func (b *Buffer) renderCursor(r Renderer, state *RenderState) {
	x, y := b.cursor.Position()
	if x < 0 || y < 0 {
		r.SetCursorVisible(false)
		return
	}
	state.MoveCursor(r, int(x), int(y))
	r.SetCursorVisible(true)
}
