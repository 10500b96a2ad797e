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

import "fmt"

// ParseErrorKind enumerates the ways a terminfo binary database can fail
// to parse.
type ParseErrorKind int

const (
	ParseErrorInvalidMagic ParseErrorKind = iota
	ParseErrorTruncatedData
	ParseErrorInvalidHeader
	ParseErrorInvalidOffset
	ParseErrorCorruptedString
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorInvalidMagic:
		return "InvalidMagic"
	case ParseErrorTruncatedData:
		return "TruncatedData"
	case ParseErrorInvalidHeader:
		return "InvalidHeader"
	case ParseErrorInvalidOffset:
		return "InvalidOffset"
	case ParseErrorCorruptedString:
		return "CorruptedString"
	default:
		return "Unknown"
	}
}

// ParseError reports a terminfo database parse failure. Load/LoadNamed
// catch these internally and fall back to the builtin map; callers of
// the package-internal parse function still see them.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Detail  any
}

func (e *ParseError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("terminfo: parse error (%s): %s (%v)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("terminfo: parse error (%s): %s", e.Kind, e.Message)
}

// InvalidHeaderDetail is the Detail payload for a ParseErrorInvalidHeader.
type InvalidHeaderDetail struct {
	Field string
	Value int
}

// InvalidOffsetDetail is the Detail payload for a ParseErrorInvalidOffset.
type InvalidOffsetDetail struct {
	Offset int
	Max    int
}
