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

//go:build darwin || freebsd || netbsd || openbsd

package termisu

import (
	"time"

	"golang.org/x/sys/unix"
)

func newPlatformPoller() (Poller, error) {
	return newKqueuePoller()
}

// kqueuePoller multiplexes fd readiness and timers through a single
// kqueue: timers use EVFILT_TIMER keyed by the TimerHandle as the
// kevent ident, fds use EVFILT_READ/WRITE keyed by fd.
type kqueuePoller struct {
	kq     int
	nextTH TimerHandle
	timers map[TimerHandle]bool // value: repeating
	fds    map[int]PollEvents
}

func newKqueuePoller() (*kqueuePoller, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, NewIOError("kqueue", err)
	}
	return &kqueuePoller{
		kq:     kq,
		timers: make(map[TimerHandle]bool),
		fds:    make(map[int]PollEvents),
	}, nil
}

func (p *kqueuePoller) AddTimer(interval time.Duration, repeating bool) (TimerHandle, error) {
	p.nextTH++
	h := p.nextTH

	flags := uint16(unix.EV_ADD | unix.EV_ENABLE)
	if !repeating {
		flags |= unix.EV_ONESHOT
	}
	kev := unix.Kevent_t{
		Ident:  uint64(h),
		Filter: unix.EVFILT_TIMER,
		Flags:  flags,
		Data:   int64(interval.Milliseconds()),
	}
	if _, err := unix.Kevent(p.kq, []unix.Kevent_t{kev}, nil, nil); err != nil {
		return 0, NewIOError("kevent", err)
	}
	p.timers[h] = repeating
	return h, nil
}

func (p *kqueuePoller) CancelTimer(h TimerHandle) error {
	if _, ok := p.timers[h]; !ok {
		return nil
	}
	kev := unix.Kevent_t{
		Ident:  uint64(h),
		Filter: unix.EVFILT_TIMER,
		Flags:  unix.EV_DELETE,
	}
	unix.Kevent(p.kq, []unix.Kevent_t{kev}, nil, nil)
	delete(p.timers, h)
	return nil
}

// RegisterFd is naturally idempotent: EV_ADD on an already-registered
// filter replaces it rather than erroring.
func (p *kqueuePoller) RegisterFd(fd int, events PollEvents) error {
	var kevs []unix.Kevent_t
	if events&PollRead != 0 {
		kevs = append(kevs, unix.Kevent_t{Ident: uint64(fd), Filter: unix.EVFILT_READ, Flags: unix.EV_ADD | unix.EV_ENABLE | unix.EV_CLEAR})
	}
	if events&PollWrite != 0 {
		kevs = append(kevs, unix.Kevent_t{Ident: uint64(fd), Filter: unix.EVFILT_WRITE, Flags: unix.EV_ADD | unix.EV_ENABLE | unix.EV_CLEAR})
	}
	if len(kevs) == 0 {
		return nil
	}
	if _, err := unix.Kevent(p.kq, kevs, nil, nil); err != nil {
		return NewIOError("kevent", err)
	}
	p.fds[fd] = events
	return nil
}

func (p *kqueuePoller) UnregisterFd(fd int) error {
	events, known := p.fds[fd]
	if !known {
		return nil
	}
	var kevs []unix.Kevent_t
	if events&PollRead != 0 {
		kevs = append(kevs, unix.Kevent_t{Ident: uint64(fd), Filter: unix.EVFILT_READ, Flags: unix.EV_DELETE})
	}
	if events&PollWrite != 0 {
		kevs = append(kevs, unix.Kevent_t{Ident: uint64(fd), Filter: unix.EVFILT_WRITE, Flags: unix.EV_DELETE})
	}
	unix.Kevent(p.kq, kevs, nil, nil)
	delete(p.fds, fd)
	return nil
}

func (p *kqueuePoller) Wait(userTimeout time.Duration) (PollResult, bool, error) {
	var ts *unix.Timespec
	if userTimeout >= 0 {
		t := unix.NsecToTimespec(userTimeout.Nanoseconds())
		ts = &t
	}

	out := make([]unix.Kevent_t, 16)
	n, err := retryEINTR(func() (int, error) {
		return unix.Kevent(p.kq, nil, out, ts)
	})
	if err != nil {
		return PollResult{}, false, NewIOError("kevent", err)
	}
	if n == 0 {
		return PollResult{}, false, nil
	}

	kev := out[0]
	switch kev.Filter {
	case unix.EVFILT_TIMER:
		return PollResult{Kind: PollResultTimer, Handle: TimerHandle(kev.Ident), Expirations: uint64(kev.Data)}, true, nil
	case unix.EVFILT_READ:
		if kev.Flags&unix.EV_ERROR != 0 {
			return PollResult{Kind: PollResultFdError, Fd: int(kev.Ident)}, true, nil
		}
		return PollResult{Kind: PollResultFdReadable, Fd: int(kev.Ident)}, true, nil
	case unix.EVFILT_WRITE:
		return PollResult{Kind: PollResultFdWritable, Fd: int(kev.Ident)}, true, nil
	default:
		return PollResult{}, false, nil
	}
}

func (p *kqueuePoller) Close() error {
	return unix.Close(p.kq)
}
