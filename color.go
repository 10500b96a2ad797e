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

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode identifies which of Color's three representations is active.
type ColorMode int

const (
	ColorModeAnsi8 ColorMode = iota
	ColorModeAnsi256
	ColorModeRGB
)

// Color is a tagged union over the three color representations a
// terminal can be driven with. The zero value is Ansi8(-1), i.e. the
// terminal's default foreground/background.
type Color struct {
	mode  ColorMode
	ansi8 int8  // -1..7
	ansi  int16 // -1..255
	r, g, b uint8
}

// DefaultColor is the terminal's default color (-1 in the ANSI-8 sense).
var DefaultColor = Color{mode: ColorModeAnsi8, ansi8: -1}

// Ansi8 constructs an ANSI-8 color. n must be in -1..7.
func Ansi8(n int) (Color, error) {
	if n < -1 || n > 7 {
		return Color{}, NewArgumentError("ansi8", n, "must be in -1..7")
	}
	return Color{mode: ColorModeAnsi8, ansi8: int8(n)}, nil
}

// Ansi256 constructs an ANSI-256 color. n must be in -1..255.
func Ansi256(n int) (Color, error) {
	if n < -1 || n > 255 {
		return Color{}, NewArgumentError("ansi256", n, "must be in -1..255")
	}
	return Color{mode: ColorModeAnsi256, ansi: int16(n)}, nil
}

// RGB constructs a true-color Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{mode: ColorModeRGB, r: r, g: g, b: b}
}

// FromHex parses a "#RRGGBB" or "RRGGBB" string into an RGB Color, using
// go-colorful's hex parser and converting its float64 [0,1] channels into
// the 8-bit channels this engine stores. Returns ArgumentError on a
// malformed string (the spec §7 "hex not 6 hex digits" case).
func FromHex(s string) (Color, error) {
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil || len(hex) != 7 {
		return Color{}, NewArgumentError("hex", s, "must be 6 hex digits, optionally prefixed with #")
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Mode reports which representation is active.
func (c Color) Mode() ColorMode { return c.mode }

// IsDefault reports whether c denotes the terminal's default color.
func (c Color) IsDefault() bool {
	switch c.mode {
	case ColorModeAnsi8:
		return c.ansi8 == -1
	case ColorModeAnsi256:
		return c.ansi == -1
	default:
		return false
	}
}

// Ansi8Value returns the raw ANSI-8 index (only meaningful when Mode() == ColorModeAnsi8).
func (c Color) Ansi8Value() int { return int(c.ansi8) }

// Ansi256Value returns the raw ANSI-256 index (only meaningful when Mode() == ColorModeAnsi256).
func (c Color) Ansi256Value() int { return int(c.ansi) }

// RGBValue returns the raw 8-bit channels (only meaningful when Mode() == ColorModeRGB).
func (c Color) RGBValue() (r, g, b uint8) { return c.r, c.g, c.b }

// ToAnsi256 converts c to an ANSI-256 index, applying the deterministic
// conversions of spec.md §3 when c isn't already in that mode.
func (c Color) ToAnsi256() int {
	switch c.mode {
	case ColorModeAnsi256:
		return int(c.ansi)
	case ColorModeAnsi8:
		if c.ansi8 < 0 {
			return -1
		}
		return int(c.ansi8)
	case ColorModeRGB:
		return rgbToAnsi256(c.r, c.g, c.b)
	}
	return -1
}

// ToAnsi8 converts c to an ANSI-8 index using a per-channel 128 threshold
// for RGB, or a lossy narrowing for ANSI-256.
func (c Color) ToAnsi8() int {
	switch c.mode {
	case ColorModeAnsi8:
		return int(c.ansi8)
	case ColorModeAnsi256:
		if c.ansi < 0 {
			return -1
		}
		r, g, b := ansi256ToRGB(int(c.ansi))
		return rgbToAnsi8(r, g, b)
	case ColorModeRGB:
		return rgbToAnsi8(c.r, c.g, c.b)
	}
	return -1
}

// ToRGB converts c to 8-bit RGB channels. ANSI-8's -1 (default) converts
// to black; callers that care about "default" should check IsDefault first.
func (c Color) ToRGB() (r, g, b uint8) {
	switch c.mode {
	case ColorModeRGB:
		return c.r, c.g, c.b
	case ColorModeAnsi256:
		if c.ansi < 0 {
			return 0, 0, 0
		}
		return ansi256ToRGB(int(c.ansi))
	case ColorModeAnsi8:
		if c.ansi8 < 0 {
			return 0, 0, 0
		}
		return ansi8ToRGB(int(c.ansi8))
	}
	return 0, 0, 0
}

var cubeThresholds = [5]int{48, 115, 155, 195, 235}
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v uint8) int {
	n := int(v)
	for i, t := range cubeThresholds {
		if n < t {
			return i
		}
	}
	return 5
}

func rgbToAnsi256(r, g, b uint8) int {
	if r == g && g == b {
		// pure gray: map into the 232..255 ramp
		n := int(r)
		if n < 8 {
			return 16 // black cube corner
		}
		if n > 247 {
			return 231 // white cube corner (handled by cube path below would also work)
		}
		idx := (n-8)/10 + 232
		if idx > 255 {
			idx = 255
		}
		return idx
	}
	ri, gi, bi := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	return 16 + 36*ri + 6*gi + bi
}

func rgbToAnsi8(r, g, b uint8) int {
	idx := 0
	if r >= 128 {
		idx |= 1
	}
	if g >= 128 {
		idx |= 2
	}
	if b >= 128 {
		idx |= 4
	}
	return idx
}

func ansi256ToRGB(n int) (uint8, uint8, uint8) {
	switch {
	case n < 0:
		return 0, 0, 0
	case n < 8:
		return ansi8ToRGB(n)
	case n < 16:
		r, g, b := ansi8ToRGB(n - 8)
		return boost(r), boost(g), boost(b)
	case n < 232:
		n -= 16
		ri := n / 36
		gi := (n % 36) / 6
		bi := n % 6
		return uint8(cubeLevels[ri]), uint8(cubeLevels[gi]), uint8(cubeLevels[bi])
	default:
		v := uint8(8 + (n-232)*10)
		return v, v, v
	}
}

func boost(v uint8) uint8 {
	n := int(v) + 85
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

func ansi8ToRGB(n int) (uint8, uint8, uint8) {
	r := uint8(0)
	g := uint8(0)
	b := uint8(0)
	if n&1 != 0 {
		r = 255
	}
	if n&2 != 0 {
		g = 255
	}
	if n&4 != 0 {
		b = 255
	}
	return r, g, b
}

// Equal reports field-wise equality over the active variant.
func (c Color) Equal(o Color) bool {
	if c.mode != o.mode {
		return false
	}
	switch c.mode {
	case ColorModeAnsi8:
		return c.ansi8 == o.ansi8
	case ColorModeAnsi256:
		return c.ansi == o.ansi
	default:
		return c.r == o.r && c.g == o.g && c.b == o.b
	}
}
