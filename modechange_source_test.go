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

import "testing"

func TestModeChangeSourcePublishDroppedWhenNotRunning(t *testing.T) {
	src := NewModeChangeSource()
	sink := make(chan Event, 1)
	// Not started: Publish must be a silent no-op, not a panic or send
	// on a sink the source was never given.
	src.Publish(ModeRaw, nil)
	select {
	case ev := <-sink:
		t.Fatalf("unexpected event %+v published while source was not running", ev)
	default:
	}
}

func TestModeChangeSourcePublishAfterStart(t *testing.T) {
	src := NewModeChangeSource()
	sink := make(chan Event, 1)
	src.Start(sink)
	defer src.Stop()

	prev := ModeCooked
	src.Publish(ModeRaw, &prev)

	select {
	case ev := <-sink:
		if ev.Kind != EventModeChange || ev.ModeChange.Mode != ModeRaw {
			t.Fatalf("got %+v, want a ModeChange to ModeRaw", ev)
		}
		if ev.ModeChange.PreviousMode == nil || *ev.ModeChange.PreviousMode != ModeCooked {
			t.Fatal("PreviousMode should be ModeCooked")
		}
	default:
		t.Fatal("expected an event to have been published")
	}
}

func TestModeChangeSourcePublishAfterStopIsDropped(t *testing.T) {
	src := NewModeChangeSource()
	sink := make(chan Event, 1)
	src.Start(sink)
	src.Stop()

	src.Publish(ModeRaw, nil)
	select {
	case ev := <-sink:
		t.Fatalf("unexpected event %+v published after Stop", ev)
	default:
	}
}
