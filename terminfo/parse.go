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

package terminfo

import (
	"bytes"
	"encoding/binary"
)

const (
	magicLegacy   = 0o432 // 282, short (2-byte number) format
	magicExtended = 542   // extended (32-bit number) format
	headerSize    = 12    // 6 little-endian 16-bit words
)

type header struct {
	magic           int
	namesSize       int
	boolCount       int
	numCount        int
	stringCount     int
	stringTableSize int
}

// parse decodes a binary ncurses terminfo entry into a capability map.
// It implements spec.md §4.4/§6's layout: a 12-byte header, a
// null-terminated names section, a bool section padded to even length,
// a number section of 2-byte words, a string offset section of 2-byte
// words (-1 meaning absent), and a string table.
func parse(data []byte) (map[string]string, error) {
	if len(data) < headerSize {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "file shorter than header"}
	}

	words := make([]int, 6)
	for i := 0; i < 6; i++ {
		words[i] = int(int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2])))
	}
	h := header{
		magic:           words[0],
		namesSize:       words[1],
		boolCount:       words[2],
		numCount:        words[3],
		stringCount:     words[4],
		stringTableSize: words[5],
	}

	if h.magic != magicLegacy && h.magic != magicExtended {
		return nil, &ParseError{Kind: ParseErrorInvalidMagic, Message: "unrecognized magic number", Detail: h.magic}
	}
	if h.boolCount < 0 {
		return nil, &ParseError{Kind: ParseErrorInvalidHeader, Message: "negative bool count", Detail: InvalidHeaderDetail{"boolCount", h.boolCount}}
	}
	if h.numCount < 0 {
		return nil, &ParseError{Kind: ParseErrorInvalidHeader, Message: "negative number count", Detail: InvalidHeaderDetail{"numCount", h.numCount}}
	}
	if h.stringCount < 0 {
		return nil, &ParseError{Kind: ParseErrorInvalidHeader, Message: "negative string count", Detail: InvalidHeaderDetail{"stringCount", h.stringCount}}
	}
	if h.stringTableSize < 0 {
		return nil, &ParseError{Kind: ParseErrorInvalidHeader, Message: "negative string table size", Detail: InvalidHeaderDetail{"stringTableSize", h.stringTableSize}}
	}

	off := headerSize

	if off+h.namesSize > len(data) {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "names section truncated"}
	}
	namesRaw := data[off : off+h.namesSize]
	names := bytes.Split(bytes.TrimRight(namesRaw, "\x00"), []byte("|"))
	off += h.namesSize

	// bool section: 1 byte each, padded to an even offset afterward.
	if off+h.boolCount > len(data) {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "bool section truncated"}
	}
	off += h.boolCount
	if off%2 != 0 {
		off++
	}

	numWidth := 2
	if h.magic == magicExtended {
		numWidth = 4
	}
	if off+h.numCount*numWidth > len(data) {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "number section truncated"}
	}
	off += h.numCount * numWidth

	if off+h.stringCount*2 > len(data) {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "string offset section truncated"}
	}
	offsets := make([]int, h.stringCount)
	for i := 0; i < h.stringCount; i++ {
		offsets[i] = int(int16(binary.LittleEndian.Uint16(data[off+i*2 : off+i*2+2])))
	}
	off += h.stringCount * 2

	if off+h.stringTableSize > len(data) {
		return nil, &ParseError{Kind: ParseErrorTruncatedData, Message: "string table truncated"}
	}
	strTable := data[off : off+h.stringTableSize]

	caps := make(map[string]string, h.stringCount)
	for i, o := range offsets {
		if i >= len(stringNames) {
			break // beyond the names we resolve; ignore extension caps
		}
		if o == -1 {
			continue
		}
		if o < 0 || o >= h.stringTableSize {
			return nil, &ParseError{Kind: ParseErrorInvalidOffset, Message: "string offset out of range", Detail: InvalidOffsetDetail{o, h.stringTableSize}}
		}
		end := bytes.IndexByte(strTable[o:], 0)
		if end < 0 {
			return nil, &ParseError{Kind: ParseErrorCorruptedString, Message: "unterminated string capability"}
		}
		caps[stringNames[i]] = string(strTable[o : o+end])
	}

	if len(names) > 0 {
		caps["@name"] = string(names[0])
	}
	return caps, nil
}
