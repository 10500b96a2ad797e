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
	"errors"
	"fmt"

	"github.com/omarluq/termisu/terminfo"
)

// errNotATerminal is wrapped into an IOError when /dev/tty resolves to
// something that fails the isatty check.
var errNotATerminal = errors.New("not a terminal")

// IOError wraps a non-recoverable errno from a syscall performed by the
// reader, poller, or termios layer. EINTR is retried transparently and
// surfaces as an IOError only once the retry limit is exhausted; EAGAIN
// is reported to callers as "no data" rather than as an error.
type IOError struct {
	Op  string // "select", "poll", "read", "tcgetattr", "tcsetattr", "open", "ioctl"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("termisu: %s failed: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError builds an IOError for the given syscall operation.
func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

// ParseError, ParseErrorKind and its Detail payload types report a
// terminfo binary database parse failure; they live in package
// terminfo (terminfo.Load/LoadNamed catch these internally and fall back to
// the builtin map) and are aliased here for convenience since spec.md
// §7 documents them as part of the engine's overall error taxonomy.
type ParseError = terminfo.ParseError
type ParseErrorKind = terminfo.ParseErrorKind
type InvalidHeaderDetail = terminfo.InvalidHeaderDetail
type InvalidOffsetDetail = terminfo.InvalidOffsetDetail

const (
	ParseErrorInvalidMagic    = terminfo.ParseErrorInvalidMagic
	ParseErrorTruncatedData   = terminfo.ParseErrorTruncatedData
	ParseErrorInvalidHeader   = terminfo.ParseErrorInvalidHeader
	ParseErrorInvalidOffset   = terminfo.ParseErrorInvalidOffset
	ParseErrorCorruptedString = terminfo.ParseErrorCorruptedString
)

// ArgumentError reports an out-of-range argument: a color index outside
// its variant's legal range, a malformed hex string, or a negative timer
// interval. Buffer.SetCell rejections (out-of-bounds, control chars,
// width-0 standalone graphemes) are NOT ArgumentErrors — those are
// non-error rejections per spec §7 and are reported via a bool return.
type ArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("termisu: invalid argument %s=%v: %s", e.Field, e.Value, e.Reason)
}

// NewArgumentError builds an ArgumentError.
func NewArgumentError(field string, value any, reason string) *ArgumentError {
	return &ArgumentError{Field: field, Value: value, Reason: reason}
}
