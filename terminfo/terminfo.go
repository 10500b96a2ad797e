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

// Package terminfo resolves terminal capability strings: it loads and
// parses the binary ncurses terminfo database (falling back to a
// builtin table when no database is found or the term is unknown), and
// evaluates ncurses-style parametrized capability strings via TParm.
package terminfo

import (
	"fmt"
	"os"
)

// Terminfo is an immutable-after-construction mapping from capability
// short name to its binary-safe string value, plus a pre-resolved cache
// for the hottest capabilities.
type Terminfo struct {
	name  string
	caps  map[string]string
	cache hotCache
}

// hotCache holds pre-resolved raw capability strings for the
// capabilities on the engine's hot path (every cursor move or color
// set), per spec.md §4.4: tparm is pure but re-parses its directive
// string on every call, so skipping the map lookup for these few
// capabilities is worth the fixed memory cost.
type hotCache struct {
	cup, setaf, setab     string
	cuf, cub, cuu, cud     string
	hpa, vpa, ech, il, dl string
}

// Load resolves a Terminfo for $TERM, trying the binary database first
// (via $TERMINFO, $HOME/.terminfo, then the standard directory list) and
// falling back to the builtin table on any load or parse failure. Load
// never itself returns a ParseError: database problems are caught and
// absorbed into the fallback, matching spec.md §7's "Terminfo
// construction catches these and falls back to the builtin map."
func Load() (*Terminfo, error) {
	term := os.Getenv("TERM")
	if term == "" {
		return nil, fmt.Errorf("termisu: TERM environment variable not set")
	}
	if caps, err := loadDatabase(term); err == nil {
		return newTerminfo(term, caps), nil
	}
	return newTerminfo(term, builtinCaps(term)), nil
}

// LoadNamed is Load, but resolves capabilities for an explicit name
// rather than $TERM (used by tests and by embedders who want to force a
// specific terminal profile).
func LoadNamed(term string) *Terminfo {
	if caps, err := loadDatabase(term); err == nil {
		return newTerminfo(term, caps)
	}
	return newTerminfo(term, builtinCaps(term))
}

func newTerminfo(name string, caps map[string]string) *Terminfo {
	ti := &Terminfo{name: name, caps: caps}
	ti.cache = hotCache{
		cup:   caps["cup"],
		setaf: caps["setaf"],
		setab: caps["setab"],
		cuf:   caps["cuf"],
		cub:   caps["cub"],
		cuu:   caps["cuu"],
		cud:   caps["cud"],
		hpa:   caps["hpa"],
		vpa:   caps["vpa"],
		ech:   caps["ech"],
		il:    caps["il1"],
		dl:    caps["dl1"],
	}
	return ti
}

// Name returns the terminal name this Terminfo was resolved for.
func (t *Terminfo) Name() string { return t.name }

// Get returns the raw capability string for name, or "" if absent.
// Capabilities not present are empty strings, never an error.
func (t *Terminfo) Get(name string) string { return t.caps[name] }

// Has reports whether a non-empty capability is defined.
func (t *Terminfo) Has(name string) bool { return t.caps[name] != "" }

// --- non-parametrized accessors ---

func (t *Terminfo) EnterCASeq() string        { return t.caps["smcup"] }
func (t *Terminfo) ExitCASeq() string         { return t.caps["rmcup"] }
func (t *Terminfo) ClearScreenSeq() string    { return t.caps["clear"] }
func (t *Terminfo) ShowCursorSeq() string     { return t.caps["cnorm"] }
func (t *Terminfo) HideCursorSeq() string     { return t.caps["civis"] }
func (t *Terminfo) ResetAttrsSeq() string     { return t.caps["sgr0"] }
func (t *Terminfo) BoldSeq() string           { return t.caps["bold"] }
func (t *Terminfo) UnderlineSeq() string      { return t.caps["smul"] }
func (t *Terminfo) BlinkSeq() string          { return t.caps["blink"] }
func (t *Terminfo) ReverseSeq() string        { return t.caps["rev"] }
func (t *Terminfo) DimSeq() string            { return t.caps["dim"] }
func (t *Terminfo) ItalicSeq() string         { return t.caps["sitm"] }
func (t *Terminfo) HiddenSeq() string         { return t.caps["invis"] }
func (t *Terminfo) StrikethroughSeq() string  { return t.caps["smxx"] }
func (t *Terminfo) EnterKeypadSeq() string    { return t.caps["smkx"] }
func (t *Terminfo) ExitKeypadSeq() string     { return t.caps["rmkx"] }

// --- parametrized accessors ---

func (t *Terminfo) CursorPositionSeq(row, col int) string {
	return t.TParm(t.cache.cup, row, col)
}
func (t *Terminfo) ForegroundColorSeq(i int) string {
	return t.TParm(t.cache.setaf, i)
}
func (t *Terminfo) BackgroundColorSeq(i int) string {
	return t.TParm(t.cache.setab, i)
}
func (t *Terminfo) CursorForwardSeq(n int) string { return t.TParm(t.cache.cuf, n) }
func (t *Terminfo) CursorBackwardSeq(n int) string { return t.TParm(t.cache.cub, n) }
func (t *Terminfo) CursorUpSeq(n int) string       { return t.TParm(t.cache.cuu, n) }
func (t *Terminfo) CursorDownSeq(n int) string     { return t.TParm(t.cache.cud, n) }
func (t *Terminfo) ColumnAddressSeq(col int) string { return t.TParm(t.cache.hpa, col) }
func (t *Terminfo) RowAddressSeq(row int) string    { return t.TParm(t.cache.vpa, row) }
func (t *Terminfo) EraseCharsSeq(n int) string      { return t.TParm(t.cache.ech, n) }
func (t *Terminfo) InsertLinesSeq(n int) string     { return t.TParm(t.cache.il, n) }
func (t *Terminfo) DeleteLinesSeq(n int) string     { return t.TParm(t.cache.dl, n) }

// KeyCapability returns the raw key-report capability string for a
// terminfo key short name (e.g. "kcuu1" for Up), used by HasKey.
func (t *Terminfo) KeyCapability(short string) string { return t.caps[short] }
