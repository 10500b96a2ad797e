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

//go:build linux || darwin || freebsd || netbsd || openbsd

package termisu

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// tty is the Backend implementation for a real POSIX terminal device:
// an open /dev/tty plus termios mode control.
type tty struct {
	f        *os.File
	readOnly *os.File // second fd, non-BSD platforms only
	termios  *termiosController
}

// openTTY opens /dev/tty for the calling process. On BSD (including
// Darwin) a single fd opened O_RDWR suffices; elsewhere /dev/tty is
// opened write-only for output and a second read-only descriptor is
// opened for input, which is the traditional split used when the
// controlling terminal may be redirected away from stdio.
func openTTY() (*tty, error) {
	var f *os.File
	var ro *os.File
	var err error

	if runtime.GOOS == "darwin" || runtime.GOOS == "freebsd" ||
		runtime.GOOS == "netbsd" || runtime.GOOS == "openbsd" {
		f, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return nil, NewIOError("open", err)
		}
	} else {
		f, err = os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return nil, NewIOError("open", err)
		}
		ro, err = os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			f.Close()
			return nil, NewIOError("open", err)
		}
	}

	inFd := int(f.Fd())
	if ro != nil {
		inFd = int(ro.Fd())
	}
	if !term.IsTerminal(inFd) {
		f.Close()
		if ro != nil {
			ro.Close()
		}
		return nil, NewIOError("open", errNotATerminal)
	}

	// The Reader's ring buffer treats EAGAIN as "no data yet", which
	// only happens if reads on this fd are non-blocking.
	if err := unix.SetNonblock(inFd, true); err != nil {
		f.Close()
		if ro != nil {
			ro.Close()
		}
		return nil, NewIOError("open", err)
	}

	return &tty{f: f, readOnly: ro, termios: newTermiosController(inFd)}, nil
}

func (t *tty) readFd() int {
	if t.readOnly != nil {
		return int(t.readOnly.Fd())
	}
	return int(t.f.Fd())
}

func (t *tty) writeFd() int { return int(t.f.Fd()) }

func (t *tty) Write(p []byte) (int, error) {
	n, err := t.f.Write(p)
	if err != nil {
		return n, NewIOError("write", err)
	}
	return n, nil
}

func (t *tty) Size() (cols, rows int, err error) {
	return windowSize(t.writeFd())
}

func (t *tty) SetMode(mode TerminalMode) error {
	return t.termios.setMode(mode)
}

func (t *tty) Mode() (TerminalMode, bool) {
	return t.termios.mode()
}

func (t *tty) Close() error {
	_ = t.termios.restore()
	err := t.f.Close()
	if t.readOnly != nil {
		if roErr := t.readOnly.Close(); err == nil {
			err = roErr
		}
	}
	return err
}
