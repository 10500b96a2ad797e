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

import "github.com/omarluq/termisu/width"

// Cell is one column-cell of a Buffer. A non-continuation cell holds
// exactly one grapheme cluster (or is empty/default); a continuation
// cell is the second column of a width-2 grapheme and is never rendered
// directly.
type Cell struct {
	grapheme     string
	width        int
	continuation bool
	fg           Color
	bg           Color
	attr         Attribute
}

// defaultCell is a blank, default-styled, non-continuation cell holding
// a single space — what Buffer.clear and resize fixups reset cells to.
var defaultCell = Cell{grapheme: " ", width: 1, fg: DefaultColor, bg: DefaultColor}

// sentinelCell is the "impossible" cell Buffer.invalidate writes into the
// front buffer so the next render re-emits every column: a NUL
// codepoint, width 0, non-continuation.
var sentinelCell = Cell{grapheme: "\x00", width: 0}

// emptyCell is a blank placeholder: no grapheme, width 0,
// non-continuation. Buffer writes use it to pre-clear cells before
// placing a grapheme; an orphaned owner becomes defaultCell instead.
var emptyCell = Cell{width: 0, fg: DefaultColor, bg: DefaultColor}

// NewCell constructs a leading cell from s, truncating to the first
// grapheme cluster if s contains more than one. An empty or zero-width
// cluster yields the width-0 empty cell (callers validate separately
// whether a zero-width standalone write should be rejected; see
// Buffer.SetCell).
func NewCell(s string, fg, bg Color, attr Attribute) Cell {
	cluster, _ := width.FirstGraphemeCluster(s)
	w := width.GraphemeWidth(cluster)
	if w == 0 {
		return Cell{grapheme: "", width: 0, fg: fg, bg: bg, attr: attr}
	}
	return Cell{grapheme: cluster, width: w, fg: fg, bg: bg, attr: attr}
}

// continuationCell builds the continuation half of a width-2 write,
// inheriting style so diffing treats the pair as one styled unit.
func continuationCell(fg, bg Color, attr Attribute) Cell {
	return Cell{continuation: true, fg: fg, bg: bg, attr: attr}
}

// Grapheme returns the cell's grapheme cluster ("" for continuation or
// empty cells).
func (c Cell) Grapheme() string { return c.grapheme }

// Width returns 0, 1, or 2.
func (c Cell) Width() int { return c.width }

// Continuation reports whether c is the second column of a wide grapheme.
func (c Cell) Continuation() bool { return c.continuation }

// Style returns the cell's foreground, background, and attribute bitset.
func (c Cell) Style() (fg, bg Color, attr Attribute) { return c.fg, c.bg, c.attr }

// Equal is field-wise equality over all six fields.
func (c Cell) Equal(o Cell) bool {
	return c.grapheme == o.grapheme &&
		c.width == o.width &&
		c.continuation == o.continuation &&
		c.fg.Equal(o.fg) &&
		c.bg.Equal(o.bg) &&
		c.attr == o.attr
}

// sameStyle reports whether two cells share fg/bg/attr, used by the diff
// renderer's batching pass.
func (c Cell) sameStyle(o Cell) bool {
	return c.fg.Equal(o.fg) && c.bg.Equal(o.bg) && c.attr == o.attr
}
