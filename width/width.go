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

// Package width computes terminal column widths for codepoints and
// grapheme clusters, East-Asian-Width aware, with the emoji/VS16/ZWJ/flag
// rules real terminal emulators implement.
package width

import (
	"github.com/rivo/uniseg"
	xwidth "golang.org/x/text/width"
)

// RuneWidth returns the terminal column width of a single codepoint: 0,
// 1, or 2. Ambiguous-width runes (East Asian Ambiguous) are always
// treated as 1, matching the spec's "ambiguous is 1" rule.
func RuneWidth(cp rune) int {
	if w, ok := explicitWidth(cp); ok {
		return w
	}
	switch xwidth.LookupRune(cp).Kind() {
	case xwidth.EastAsianWide, xwidth.EastAsianFullwidth:
		return 2
	case xwidth.EastAsianNarrow, xwidth.EastAsianHalfwidth, xwidth.EastAsianAmbiguous, xwidth.Neutral:
		return 1
	default:
		return 1
	}
}

// explicitWidth handles every range spec.md §4.1 calls out by name,
// taking precedence over the generic x/text/width classification. This
// is what keeps the documented regression points (0x1F780, 0x1F7D9,
// 0x1F900, …) bit-exact regardless of what the Unicode East-Asian-Width
// data files say for a given Unicode version.
func explicitWidth(cp rune) (int, bool) {
	switch {
	case cp < 0x20, cp >= 0x7F && cp <= 0x9F:
		return 0, true
	case isCombiningMark(cp):
		return 0, true
	case isVariationSelector(cp):
		return 0, true
	case isFormatControl(cp):
		return 0, true
	case isSkinToneModifier(cp):
		return 0, true
	case isWideRange(cp):
		return 2, true
	}
	return 0, false
}

func inRange(cp rune, lo, hi rune) bool { return cp >= lo && cp <= hi }

func isCombiningMark(cp rune) bool {
	switch {
	case inRange(cp, 0x0300, 0x036F):
	case inRange(cp, 0x1AB0, 0x1AFF):
	case inRange(cp, 0x1DC0, 0x1DFF):
	case inRange(cp, 0x20D0, 0x20FF):
	case inRange(cp, 0xFE20, 0xFE2F):
	case inRange(cp, 0x064B, 0x0652), cp == 0x0670: // Arabic
	case cp == 0x093C, cp == 0x094D, inRange(cp, 0x0951, 0x0954): // Devanagari
	case cp == 0x09BC, cp == 0x0A3C, cp == 0x0ABC: // Bengali/Gurmukhi/Gujarati nukta
	case cp == 0x0E31, inRange(cp, 0x0E34, 0x0E3A), inRange(cp, 0x0E47, 0x0E4E): // Thai
	case inRange(cp, 0x0F71, 0x0F84), cp == 0x0F35, cp == 0x0F37, cp == 0x0F39: // Tibetan
	case cp == 0x3099, cp == 0x309A: // Japanese dakuten/handakuten
	case inRange(cp, 0x302A, 0x302D): // CJK ideographic tone
	case inRange(cp, 0x0483, 0x0489): // Cyrillic
	case cp == 0x11038, cp == 0x1D167, cp == 0x1E944: // SMP combining
	default:
		return false
	}
	return true
}

func isVariationSelector(cp rune) bool {
	return inRange(cp, 0xFE00, 0xFE0F) || inRange(cp, 0xE0100, 0xE01EF)
}

func isFormatControl(cp rune) bool {
	switch {
	case inRange(cp, 0x200B, 0x200F):
	case cp == 0x2060:
	case cp == 0x061C:
	case inRange(cp, 0x202A, 0x202E):
	case inRange(cp, 0x2066, 0x2069):
	default:
		return false
	}
	return true
}

func isSkinToneModifier(cp rune) bool {
	return inRange(cp, 0x1F3FB, 0x1F3FF)
}

func isWideRange(cp rune) bool {
	switch {
	case inRange(cp, 0x1100, 0x115F): // Hangul Jamo
	case inRange(cp, 0x2E80, 0x303E): // CJK radicals, symbols, punctuation
	case cp == 0x2329, cp == 0x232A: // angle brackets
	case inRange(cp, 0x3040, 0x33BF): // Hiragana/Katakana/CJK
	case inRange(cp, 0x3400, 0x4DBF): // CJK Extension A
	case inRange(cp, 0x4E00, 0x9FFF): // CJK Unified
	case inRange(cp, 0xAC00, 0xD7AF): // Hangul Syllables
	case inRange(cp, 0xF900, 0xFAFF): // CJK Compatibility
	case inRange(cp, 0xFE10, 0xFE19): // Vertical Forms
	case inRange(cp, 0xFE30, 0xFE6F): // CJK Compatibility Forms
	case inRange(cp, 0xFF00, 0xFF60), inRange(cp, 0xFFE0, 0xFFE6): // Fullwidth Forms
	case inRange(cp, 0x1F300, 0x1F7FF) && !inRange(cp, 0x1F780, 0x1F7DF) && !inRange(cp, 0x1F800, 0x1F8FF): // Emoji core, minus non-emoji sub-blocks
	case inRange(cp, 0x1F7E0, 0x1F7EB), cp == 0x1F7F0: // colored shapes
	case inRange(cp, 0x1F90C, 0x1F9FF):
	case inRange(cp, 0x1FA70, 0x1FAFF):
	case inRange(cp, 0x20000, 0x2FFFD), inRange(cp, 0x30000, 0x3FFFD): // CJK Extensions B-F, Tertiary
	default:
		return false
	}
	return true
}

// isEmojiBase reports whether cp is a plausible base for a VS16 emoji
// presentation sequence: either already width-2 by the rules above, or a
// member of the (conservative) Unicode Emoji property set this engine
// ships per spec.md §9's open question.
func isEmojiBase(cp rune) bool {
	if isWideRange(cp) {
		return true
	}
	return emojiPresentationBase[cp]
}

// emojiPresentationBase lists codepoints, most of them narrow by
// default, that are valid emoji bases when followed by VS16 (U+FE0F), e.g. the
// warning sign U+26A0 used in spec.md §8's regression test.
var emojiPresentationBase = map[rune]bool{
	0x2600: true, 0x2601: true, 0x260E: true, 0x2611: true,
	0x2614: true, 0x2615: true, 0x261D: true, 0x2620: true,
	0x2622: true, 0x2623: true, 0x2626: true, 0x262A: true,
	0x262E: true, 0x262F: true, 0x2638: true, 0x2639: true,
	0x263A: true, 0x2640: true, 0x2642: true, 0x2648: true,
	0x2649: true, 0x264A: true, 0x264B: true, 0x264C: true,
	0x264D: true, 0x264E: true, 0x264F: true, 0x2650: true,
	0x2651: true, 0x2652: true, 0x2653: true, 0x265F: true,
	0x2660: true, 0x2663: true, 0x2665: true, 0x2666: true,
	0x2668: true, 0x267B: true, 0x267E: true, 0x267F: true,
	0x2692: true, 0x2693: true, 0x2694: true, 0x2695: true,
	0x2696: true, 0x2697: true, 0x2699: true, 0x269B: true,
	0x269C: true, 0x26A0: true, 0x26A1: true, 0x26A7: true,
	0x26AA: true, 0x26AB: true, 0x26B0: true, 0x26B1: true,
	0x26BD: true, 0x26BE: true, 0x26C4: true, 0x26C5: true,
	0x26C8: true, 0x26CE: true, 0x26CF: true, 0x26D1: true,
	0x26D3: true, 0x26D4: true, 0x26E9: true, 0x26EA: true,
	0x26F0: true, 0x26F1: true, 0x26F2: true, 0x26F3: true,
	0x26F4: true, 0x26F5: true, 0x26F7: true, 0x26F8: true,
	0x26F9: true, 0x26FA: true, 0x26FD: true, 0x2122: true,
	0x2139: true, 0x2194: true, 0x21A9: true, 0x21AA: true,
	0x231A: true, 0x231B: true, 0x2328: true, 0x23CF: true,
	0x23E9: true, 0x23F0: true, 0x23F3: true, 0x25AA: true,
	0x25AB: true, 0x25B6: true, 0x25C0: true, 0x25FB: true,
	0x2934: true, 0x2935: true, 0x3030: true, 0x303D: true,
	0x3297: true, 0x3299: true,
}

const (
	regionalIndicatorLo rune = 0x1F1E6
	regionalIndicatorHi rune = 0x1F1FF
	zeroWidthJoiner     rune = 0x200D
	variationSelector15 rune = 0xFE0E
	variationSelector16 rune = 0xFE0F
)

// GraphemeWidth returns the terminal column width of a grapheme cluster
// string per spec.md §4.1's algorithm.
func GraphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)

	if len(runes) == 2 && inRange(runes[0], regionalIndicatorLo, regionalIndicatorHi) && inRange(runes[1], regionalIndicatorLo, regionalIndicatorHi) {
		return 2
	}

	sum := 0
	hasVS15, hasVS16, hasZWJ := false, false, false
	var base rune = -1
	for _, r := range runes {
		sum += RuneWidth(r)
		switch r {
		case variationSelector15:
			hasVS15 = true
		case variationSelector16:
			hasVS16 = true
		case zeroWidthJoiner:
			hasZWJ = true
		default:
			if base < 0 {
				base = r
			}
		}
	}
	if sum == 0 {
		return 0
	}
	if hasVS15 {
		return 1
	}
	if hasVS16 {
		if base >= 0 && isEmojiBase(base) {
			return 2
		}
		return baseWidth(runes)
	}
	if hasZWJ && sum > 1 {
		return 2
	}
	if sum > 2 {
		return 2
	}
	return sum
}

// baseWidth computes the width of the cluster as if VS16 were absent,
// used when VS16 is attached to a non-emoji base (width stays at base
// width per spec.md §4.1 step 4).
func baseWidth(runes []rune) int {
	sum := 0
	for _, r := range runes {
		if r == variationSelector16 || r == variationSelector15 {
			continue
		}
		sum += RuneWidth(r)
	}
	if sum > 2 {
		return 2
	}
	return sum
}

// StringWidth iterates the grapheme clusters of s (via uniseg) and sums
// their widths.
func StringWidth(s string) int {
	total := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		total += GraphemeWidth(cluster)
	}
	return total
}

// FirstGraphemeCluster returns the first grapheme cluster of s and
// whether s contained more than one cluster (i.e. was truncated).
func FirstGraphemeCluster(s string) (cluster string, truncated bool) {
	if s == "" {
		return "", false
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return first, rest != ""
}
