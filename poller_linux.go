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

//go:build linux

package termisu

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

func newPlatformPoller() (Poller, error) {
	return newEpollPoller()
}

type epollTimer struct {
	fd        int
	repeating bool
}

// epollPoller multiplexes registered fds and per-timer timerfds through
// a single epoll instance, per the Linux branch of the poller design:
// one epoll_wait call services both fd readiness and timer expiration.
type epollPoller struct {
	epfd   int
	timers map[TimerHandle]*epollTimer
	fdToTH map[int]TimerHandle
	nextTH TimerHandle
	fds    map[int]PollEvents
}

func newEpollPoller() (*epollPoller, error) {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, NewIOError("epoll_create1", err)
	}
	return &epollPoller{
		epfd:   fd,
		timers: make(map[TimerHandle]*epollTimer),
		fdToTH: make(map[int]TimerHandle),
		fds:    make(map[int]PollEvents),
	}, nil
}

func (p *epollPoller) AddTimer(interval time.Duration, repeating bool) (TimerHandle, error) {
	tfd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, 0)
	if err != nil {
		return 0, NewIOError("timerfd_create", err)
	}
	spec := unix.ItimerSpec{
		Value:    unix.NsecToTimespec(interval.Nanoseconds()),
		Interval: unix.Timespec{},
	}
	if repeating {
		spec.Interval = unix.NsecToTimespec(interval.Nanoseconds())
	}
	if err := unix.TimerfdSettime(tfd, 0, &spec, nil); err != nil {
		unix.Close(tfd)
		return 0, NewIOError("timerfd_settime", err)
	}

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(tfd)}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, tfd, &ev); err != nil {
		unix.Close(tfd)
		return 0, NewIOError("epoll_ctl", err)
	}

	p.nextTH++
	h := p.nextTH
	p.timers[h] = &epollTimer{fd: tfd, repeating: repeating}
	p.fdToTH[tfd] = h
	return h, nil
}

func (p *epollPoller) CancelTimer(h TimerHandle) error {
	t, ok := p.timers[h]
	if !ok {
		return nil
	}
	unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, t.fd, nil)
	unix.Close(t.fd)
	delete(p.fdToTH, t.fd)
	delete(p.timers, h)
	return nil
}

func epollEventsFor(events PollEvents) uint32 {
	var e uint32
	if events&PollRead != 0 {
		e |= unix.EPOLLIN
	}
	if events&PollWrite != 0 {
		e |= unix.EPOLLOUT
	}
	if events&PollError != 0 {
		e |= unix.EPOLLERR
	}
	return e
}

func (p *epollPoller) RegisterFd(fd int, events PollEvents) error {
	ev := unix.EpollEvent{Events: epollEventsFor(events), Fd: int32(fd)}
	op := unix.EPOLL_CTL_ADD
	if _, known := p.fds[fd]; known {
		op = unix.EPOLL_CTL_MOD
	}
	if err := unix.EpollCtl(p.epfd, op, fd, &ev); err != nil {
		return NewIOError("epoll_ctl", err)
	}
	p.fds[fd] = events
	return nil
}

func (p *epollPoller) UnregisterFd(fd int) error {
	if _, known := p.fds[fd]; !known {
		return nil
	}
	unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, nil)
	delete(p.fds, fd)
	return nil
}

func (p *epollPoller) Wait(userTimeout time.Duration) (PollResult, bool, error) {
	ms := -1
	if userTimeout >= 0 {
		ms = int(userTimeout.Milliseconds())
	}

	events := make([]unix.EpollEvent, 16)
	n, err := retryEINTR(func() (int, error) {
		return unix.EpollWait(p.epfd, events, ms)
	})
	if err != nil {
		return PollResult{}, false, NewIOError("epoll_wait", err)
	}
	if n == 0 {
		return PollResult{}, false, nil
	}

	ev := events[0]
	fd := int(ev.Fd)
	if h, isTimer := p.fdToTH[fd]; isTimer {
		var buf [8]byte
		n, _ := unix.Read(fd, buf[:])
		var expirations uint64
		if n == 8 {
			expirations = binary.LittleEndian.Uint64(buf[:])
		}
		return PollResult{Kind: PollResultTimer, Handle: h, Expirations: expirations}, true, nil
	}

	if ev.Events&unix.EPOLLERR != 0 {
		return PollResult{Kind: PollResultFdError, Fd: fd}, true, nil
	}
	if ev.Events&unix.EPOLLOUT != 0 {
		return PollResult{Kind: PollResultFdWritable, Fd: fd}, true, nil
	}
	return PollResult{Kind: PollResultFdReadable, Fd: fd}, true, nil
}

func (p *epollPoller) Close() error {
	for _, t := range p.timers {
		unix.Close(t.fd)
	}
	return unix.Close(p.epfd)
}
