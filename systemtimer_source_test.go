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

func TestSystemTimerSourceEmitsTicksWithExpirations(t *testing.T) {
	poller, err := NewPoller()
	if err != nil {
		t.Fatalf("NewPoller: %v", err)
	}
	defer poller.Close()

	src := NewSystemTimerSource(poller, 10*time.Millisecond)
	sink := make(chan Event, 8)
	src.Start(sink)
	defer src.Stop()

	select {
	case ev := <-sink:
		if ev.Kind != EventTick {
			t.Fatalf("Kind = %v, want EventTick", ev.Kind)
		}
		if ev.Tick.Delta <= 0 {
			t.Fatal("Tick.Delta should be positive")
		}
	case <-time.After(time.Second):
		t.Fatal("no tick received within 1s of a 10ms interval")
	}
}

func TestSystemTimerSourceStopCancelsTimer(t *testing.T) {
	poller, err := NewPoller()
	if err != nil {
		t.Fatalf("NewPoller: %v", err)
	}
	defer poller.Close()

	src := NewSystemTimerSource(poller, 5*time.Millisecond)
	sink := make(chan Event, 8)
	src.Start(sink)
	src.Stop()
	if src.Running() {
		t.Fatal("source should not be running after Stop")
	}
}
