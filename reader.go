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
	"time"

	"golang.org/x/sys/unix"
)

const (
	readerBufSize    = 128
	fdSetSize        = 1024 // high-fd guard threshold
	maxEINTRRetries  = 100
)

// Reader is a non-blocking byte source backed by a small ring buffer,
// reading from a raw file descriptor. Readiness checks route through
// select when fd < fdSetSize and poll otherwise, since writing past the
// fd_set bitmask is undefined behavior.
type Reader struct {
	fd    int
	buf   [readerBufSize]byte
	pos   int // next unread byte
	fill  int // number of valid bytes in buf
}

// NewReader wraps fd for non-blocking reads.
func NewReader(fd int) *Reader {
	return &Reader{fd: fd}
}

func (r *Reader) hasBuffered() bool { return r.pos < r.fill }

// refill attempts one read(2) call into the ring buffer. It returns
// (true, nil) if at least one byte became available, (false, nil) on
// EOF or EAGAIN (no data, not an error), and (false, err) for any other
// errno.
func (r *Reader) refill() (bool, error) {
	if r.hasBuffered() {
		return true, nil
	}
	r.pos, r.fill = 0, 0

	n, err := retryEINTR(func() (int, error) {
		return unix.Read(r.fd, r.buf[:])
	})
	if err != nil {
		if err == unix.EAGAIN {
			return false, nil
		}
		return false, NewIOError("read", err)
	}
	if n == 0 {
		return false, nil // EOF
	}
	r.fill = n
	return true, nil
}

// ReadByte returns the next byte, refilling from the fd if the ring
// buffer is empty, or ok=false on EOF/EAGAIN.
func (r *Reader) ReadByte() (b byte, ok bool, err error) {
	if !r.hasBuffered() {
		got, ferr := r.refill()
		if ferr != nil {
			return 0, false, ferr
		}
		if !got {
			return 0, false, nil
		}
	}
	b = r.buf[r.pos]
	r.pos++
	return b, true, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (b byte, ok bool, err error) {
	if !r.hasBuffered() {
		got, ferr := r.refill()
		if ferr != nil {
			return 0, false, ferr
		}
		if !got {
			return 0, false, nil
		}
	}
	return r.buf[r.pos], true, nil
}

// ReadBytes reads exactly n bytes, or returns ok=false if any single
// byte could not be obtained (EOF/EAGAIN partway through).
func (r *Reader) ReadBytes(n int) (out []byte, ok bool, err error) {
	out = make([]byte, 0, n)
	for len(out) < n {
		b, got, rerr := r.ReadByte()
		if rerr != nil {
			return nil, false, rerr
		}
		if !got {
			return nil, false, nil
		}
		out = append(out, b)
	}
	return out, true, nil
}

// Available reports whether a subsequent read is likely to return data
// immediately, using a zero-timeout readiness check.
func (r *Reader) Available() (bool, error) {
	if r.hasBuffered() {
		return true, nil
	}
	return r.waitReadable(0)
}

// WaitForData blocks up to ms milliseconds for the fd to become
// readable.
func (r *Reader) WaitForData(ms int) (bool, error) {
	if r.hasBuffered() {
		return true, nil
	}
	return r.waitReadable(ms)
}

func (r *Reader) waitReadable(ms int) (bool, error) {
	if r.fd < fdSetSize {
		return r.selectReadable(ms)
	}
	return r.pollReadable(ms)
}

func (r *Reader) selectReadable(ms int) (bool, error) {
	var timeout *unix.Timeval
	if ms >= 0 {
		tv := unix.NsecToTimeval(time.Duration(ms) * time.Millisecond)
		timeout = &tv
	}

	var set unix.FdSet
	fdSet(&set, r.fd)

	n, err := retryEINTR(func() (int, error) {
		return unix.Select(r.fd+1, &set, nil, nil, timeout)
	})
	if err != nil {
		return false, NewIOError("select", err)
	}
	return n > 0, nil
}

func (r *Reader) pollReadable(ms int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
	n, err := retryEINTR(func() (int, error) {
		return unix.Poll(fds, ms)
	})
	if err != nil {
		return false, NewIOError("poll", err)
	}
	return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
}

// retryEINTR retries f up to maxEINTRRetries times while it reports
// EINTR, surfacing the final EINTR as an error once exhausted.
func retryEINTR(f func() (int, error)) (int, error) {
	for i := 0; i < maxEINTRRetries; i++ {
		n, err := f()
		if err != unix.EINTR {
			return n, err
		}
	}
	return 0, unix.EINTR
}

// fdSet sets fd's bit in an FdSet. unix.FdSet.Bits word width varies by
// platform (int64 words on Linux, int32 on Darwin/BSD); fdSetSize is the
// fixed 1024-bit total, so the word width is derived from the array
// length rather than hardcoded.
func fdSet(set *unix.FdSet, fd int) {
	wordBits := fdSetSize / len(set.Bits)
	set.Bits[fd/wordBits] |= 1 << (uint(fd) % uint(wordBits))
}
