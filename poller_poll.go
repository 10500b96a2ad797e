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

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package termisu

import (
	"time"

	"golang.org/x/sys/unix"
)

func newPlatformPoller() (Poller, error) {
	return newPollPoller(), nil
}

type softTimer struct {
	handle    TimerHandle
	interval  time.Duration
	nextFire  time.Time
	repeating bool
	canceled  bool
}

// pollPoller is the portable fallback multiplexer: a plain pollfd set
// plus software timers driven off wall-clock deadlines. Its Wait
// implements the BUG-011 fix: a deadline captured at entry is rechecked
// after every poll(2) cycle so a short user timeout is still honored
// when active timers have much longer intervals.
type pollPoller struct {
	fds     []unix.PollFd
	fdIndex map[int]int
	timers  map[TimerHandle]*softTimer
	nextTH  TimerHandle
	now     func() time.Time
}

func newPollPoller() *pollPoller {
	return &pollPoller{
		fdIndex: make(map[int]int),
		timers:  make(map[TimerHandle]*softTimer),
		now:     time.Now,
	}
}

func (p *pollPoller) AddTimer(interval time.Duration, repeating bool) (TimerHandle, error) {
	p.nextTH++
	h := p.nextTH
	p.timers[h] = &softTimer{
		handle:    h,
		interval:  interval,
		nextFire:  p.now().Add(interval),
		repeating: repeating,
	}
	return h, nil
}

func (p *pollPoller) CancelTimer(h TimerHandle) error {
	if t, ok := p.timers[h]; ok {
		t.canceled = true
		delete(p.timers, h)
	}
	return nil
}

func pollEventsFor(events PollEvents) int16 {
	var e int16
	if events&PollRead != 0 {
		e |= unix.POLLIN
	}
	if events&PollWrite != 0 {
		e |= unix.POLLOUT
	}
	return e
}

func (p *pollPoller) RegisterFd(fd int, events PollEvents) error {
	if idx, ok := p.fdIndex[fd]; ok {
		p.fds[idx].Events = pollEventsFor(events)
		return nil
	}
	p.fdIndex[fd] = len(p.fds)
	p.fds = append(p.fds, unix.PollFd{Fd: int32(fd), Events: pollEventsFor(events)})
	return nil
}

func (p *pollPoller) UnregisterFd(fd int) error {
	idx, ok := p.fdIndex[fd]
	if !ok {
		return nil
	}
	last := len(p.fds) - 1
	p.fds[idx] = p.fds[last]
	p.fds = p.fds[:last]
	delete(p.fdIndex, fd)
	if idx != last {
		p.fdIndex[int(p.fds[idx].Fd)] = idx
	}
	return nil
}

// nextTimerDeadline returns the soonest timer fire time and whether any
// timer is registered.
func (p *pollPoller) nextTimerDeadline() (time.Time, bool) {
	var best time.Time
	found := false
	for _, t := range p.timers {
		if !found || t.nextFire.Before(best) {
			best, found = t.nextFire, true
		}
	}
	return best, found
}

func (p *pollPoller) fireTimer() (PollResult, bool) {
	now := p.now()
	for _, t := range p.timers {
		if t.canceled || now.Before(t.nextFire) {
			continue
		}
		missedNs := now.Sub(t.nextFire).Nanoseconds()
		expirations := uint64(missedNs/t.interval.Nanoseconds()) + 1
		if t.repeating {
			t.nextFire = t.nextFire.Add(time.Duration(expirations) * t.interval)
		} else {
			delete(p.timers, t.handle)
		}
		return PollResult{Kind: PollResultTimer, Handle: t.handle, Expirations: expirations}, true
	}
	return PollResult{}, false
}

func (p *pollPoller) Wait(userTimeout time.Duration) (PollResult, bool, error) {
	var deadline time.Time
	hasDeadline := userTimeout >= 0
	if hasDeadline {
		deadline = p.now().Add(userTimeout)
	}

	for {
		if r, ok := p.fireTimer(); ok {
			return r, true, nil
		}

		effective := -1
		if hasDeadline {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return PollResult{}, false, nil
			}
			effective = int(remaining.Milliseconds())
		}
		if next, ok := p.nextTimerDeadline(); ok {
			untilTimer := int(time.Until(next).Milliseconds())
			if untilTimer < 0 {
				untilTimer = 0
			}
			if effective < 0 || untilTimer < effective {
				effective = untilTimer
			}
		}

		n, err := retryEINTR(func() (int, error) {
			return unix.Poll(p.fds, effective)
		})
		if err != nil {
			return PollResult{}, false, NewIOError("poll", err)
		}
		if n > 0 {
			for _, pfd := range p.fds {
				if pfd.Revents == 0 {
					continue
				}
				switch {
				case pfd.Revents&(unix.POLLERR|unix.POLLNVAL) != 0:
					return PollResult{Kind: PollResultFdError, Fd: int(pfd.Fd)}, true, nil
				case pfd.Revents&unix.POLLIN != 0:
					return PollResult{Kind: PollResultFdReadable, Fd: int(pfd.Fd)}, true, nil
				case pfd.Revents&unix.POLLOUT != 0:
					return PollResult{Kind: PollResultFdWritable, Fd: int(pfd.Fd)}, true, nil
				}
			}
		}

		// BUG-011: recheck the user deadline every cycle rather than
		// trusting a single poll() call with the combined timeout.
		if hasDeadline && !time.Now().Before(deadline) {
			return PollResult{}, false, nil
		}
	}
}

func (p *pollPoller) Close() error {
	return nil
}
