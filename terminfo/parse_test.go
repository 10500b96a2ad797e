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
	"encoding/binary"
	"testing"
)

// buildEntry assembles a minimal legacy-format terminfo binary with no
// bool or number capabilities and the given string capabilities, keyed
// by index into stringNames.
func buildEntry(t *testing.T, name string, strings map[int]string) []byte {
	t.Helper()

	maxIdx := -1
	for i := range strings {
		if i > maxIdx {
			maxIdx = i
		}
	}
	stringCount := maxIdx + 1

	namesRaw := append([]byte(name), 0)

	var table []byte
	offsets := make([]int16, stringCount)
	for i := 0; i < stringCount; i++ {
		s, ok := strings[i]
		if !ok {
			offsets[i] = -1
			continue
		}
		offsets[i] = int16(len(table))
		table = append(table, []byte(s)...)
		table = append(table, 0)
	}

	buf := make([]byte, headerSize)
	putWord := func(off, v int) { binary.LittleEndian.PutUint16(buf[off:], uint16(int16(v))) }
	putWord(0, magicLegacy)
	putWord(2, len(namesRaw))
	putWord(4, 0) // boolCount
	putWord(6, 0) // numCount
	putWord(8, stringCount)
	putWord(10, len(table))

	buf = append(buf, namesRaw...)
	if len(buf)%2 != 0 {
		buf = append(buf, 0) // bool-section padding (boolCount is always 0 here)
	}
	for _, o := range offsets {
		tmp := make([]byte, 2)
		binary.LittleEndian.PutUint16(tmp, uint16(o))
		buf = append(buf, tmp...)
	}
	buf = append(buf, table...)
	return buf
}

func TestParseMinimalEntry(t *testing.T) {
	data := buildEntry(t, "xterm-test", map[int]string{
		5:  "\x1b[2J", // clear
		10: "\x1b[%i%p1%d;%p2%dH", // cup
	})
	caps, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if caps["clear"] != "\x1b[2J" {
		t.Fatalf("clear = %q", caps["clear"])
	}
	if caps["cup"] == "" {
		t.Fatal("cup capability missing")
	}
	if caps["@name"] != "xterm-test" {
		t.Fatalf("@name = %q, want xterm-test", caps["@name"])
	}
}

func TestParseAbsentCapabilityIsEmpty(t *testing.T) {
	data := buildEntry(t, "bare", map[int]string{10: "cup-seq"})
	caps, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if caps["clear"] != "" {
		t.Fatalf("unset capability should be absent, got %q", caps["clear"])
	}
}

func TestParseInvalidMagic(t *testing.T) {
	data := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(data[0:], 0xBEEF)
	_, err := parse(data)
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
	if perr, ok := err.(*ParseError); !ok || perr.Kind != ParseErrorInvalidMagic {
		t.Fatalf("got %v (%T), want ParseErrorInvalidMagic", err, err)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	_, err := parse([]byte{1, 2, 3})
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if perr.Kind != ParseErrorTruncatedData {
		t.Fatalf("Kind = %v, want TruncatedData", perr.Kind)
	}
}

func TestParseTruncatedNamesSection(t *testing.T) {
	data := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(data[0:], magicLegacy)
	binary.LittleEndian.PutUint16(data[2:], 100) // namesSize way beyond available data
	_, err := parse(data)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ParseErrorTruncatedData {
		t.Fatalf("got %v, want TruncatedData ParseError", err)
	}
}

func TestParseInvalidOffset(t *testing.T) {
	data := buildEntry(t, "bad", map[int]string{5: "x"})
	// Corrupt string offset 5, the only present one (the offset array
	// starts right after the name bytes), to point past the 2-byte
	// string table.
	off := headerSize + len("bad") + 1
	binary.LittleEndian.PutUint16(data[off+5*2:], uint16(int16(9999)))
	_, err := parse(data)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ParseErrorInvalidOffset {
		t.Fatalf("got %v, want InvalidOffset ParseError", err)
	}
}

func TestParseNegativeHeaderCount(t *testing.T) {
	data := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(data[0:], magicLegacy)
	binary.LittleEndian.PutUint16(data[4:], 0xFFFF) // boolCount = -1
	_, err := parse(data)
	perr, ok := err.(*ParseError)
	if !ok || perr.Kind != ParseErrorInvalidHeader {
		t.Fatalf("got %v, want InvalidHeader ParseError", err)
	}
}
