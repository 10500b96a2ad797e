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
	"testing"
	"time"
)

type fakeSource struct {
	sourceBase
	name       string
	startCalls int
	stopCalls  int
	sink       chan<- Event
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Start(sink chan<- Event) {
	if !f.tryStart() {
		return
	}
	f.startCalls++
	f.sink = sink
}

func (f *fakeSource) Stop() {
	if !f.tryStop() {
		return
	}
	f.stopCalls++
}

func TestLoopAddSourceBeforeStartDoesNotStartIt(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	if fs.startCalls != 0 {
		t.Fatal("AddSource before Start should not start the source yet")
	}
}

func TestLoopStartStartsRegisteredSources(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	l.Start()
	if fs.startCalls != 1 {
		t.Fatalf("startCalls = %d, want 1", fs.startCalls)
	}
	if !l.Running() {
		t.Fatal("Loop should report Running() after Start")
	}
	l.Stop()
}

func TestLoopAddSourceAfterStartStartsItImmediately(t *testing.T) {
	l := NewLoop()
	l.Start()
	fs := &fakeSource{name: "late"}
	l.AddSource(fs)
	if fs.startCalls != 1 {
		t.Fatal("a source added after Start should be started immediately")
	}
	l.Stop()
}

func TestLoopStartIsIdempotent(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	l.Start()
	l.Start()
	if fs.startCalls != 1 {
		t.Fatalf("a second Start() should not restart sources, startCalls=%d", fs.startCalls)
	}
	l.Stop()
}

func TestLoopStopStopsSourcesAndClosesEvents(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	l.Start()
	l.Stop()
	if fs.stopCalls != 1 {
		t.Fatalf("stopCalls = %d, want 1", fs.stopCalls)
	}
	if l.Running() {
		t.Fatal("Loop should not report Running() after Stop")
	}
	select {
	case _, open := <-l.Events:
		if open {
			t.Fatal("Events channel should be closed (and drained) after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("Events channel was not closed within 1s of Stop")
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	l.Start()
	l.Stop()
	l.Stop() // must not panic (e.g. double-close of Events)
	if fs.stopCalls != 1 {
		t.Fatalf("stopCalls = %d, want 1 (second Stop should be a no-op)", fs.stopCalls)
	}
}

func TestLoopRemoveSourceStopsAndForgetsIt(t *testing.T) {
	l := NewLoop()
	fs := &fakeSource{name: "fake"}
	l.AddSource(fs)
	l.Start()
	l.RemoveSource(fs)
	if fs.stopCalls != 1 {
		t.Fatal("RemoveSource should stop a running source")
	}
	// Stopping the loop afterward should not try to stop fs again.
	l.Stop()
	if fs.stopCalls != 1 {
		t.Fatalf("stopCalls = %d, want 1 (removed source must not be stopped twice)", fs.stopCalls)
	}
}

func TestLoopEventsChannelCapacityMatchesConstructor(t *testing.T) {
	l := NewLoopWithCapacity(4)
	if cap(l.Events) != 4 {
		t.Fatalf("cap(Events) = %d, want 4", cap(l.Events))
	}
}
