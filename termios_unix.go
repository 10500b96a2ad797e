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

import "golang.org/x/sys/unix"

// termiosController applies TerminalMode values to an open file
// descriptor via tcgetattr/tcsetattr, remembering the original settings
// so restore() can undo everything set_mode ever changed.
type termiosController struct {
	fd       int
	original *unix.Termios
	current  TerminalMode
	hasMode  bool
}

func newTermiosController(fd int) *termiosController {
	return &termiosController{fd: fd}
}

// setMode captures the original termios on first call, then diffs and
// reapplies the local/input flags for mode with TCSAFLUSH.
func (c *termiosController) setMode(mode TerminalMode) error {
	if c.original == nil {
		orig, err := unix.IoctlGetTermios(c.fd, ioctlGetTermios)
		if err != nil {
			return NewIOError("tcgetattr", err)
		}
		c.original = orig
	}

	t := *c.original
	canon, echo, isig, iexten, rawInput := mode.localFlags()

	setFlag(&t.Lflag, unix.ICANON, canon)
	setFlag(&t.Lflag, unix.ECHO, echo)
	setFlag(&t.Lflag, unix.ISIG, isig)
	setFlag(&t.Lflag, unix.IEXTEN, iexten)

	if rawInput {
		t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
			unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	} else {
		t.Iflag = c.original.Iflag
	}

	if !canon {
		t.Cc[unix.VMIN] = 1
		t.Cc[unix.VTIME] = 0
	}

	if err := unix.IoctlSetTermios(c.fd, ioctlSetTermios, &t); err != nil {
		return NewIOError("tcsetattr", err)
	}
	c.current = mode
	c.hasMode = true
	return nil
}

// restore writes back the saved snapshot and clears the recorded
// current mode. It is a no-op (and never errors) if nothing was ever
// saved, matching the idempotent-cleanup requirement on every
// close/stop/restore path.
func (c *termiosController) restore() error {
	if c.original == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(c.fd, ioctlSetTermios, c.original); err != nil {
		return NewIOError("tcsetattr", err)
	}
	c.hasMode = false
	return nil
}

func (c *termiosController) mode() (TerminalMode, bool) {
	return c.current, c.hasMode
}

func setFlag(flag *uint32, bit uint32, on bool) {
	if on {
		*flag |= bit
	} else {
		*flag &^= bit
	}
}

// windowSize queries the kernel for the current terminal dimensions via
// TIOCGWINSZ; COLUMNS/LINES environment variables are never consulted.
func windowSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, NewIOError("ioctl", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
