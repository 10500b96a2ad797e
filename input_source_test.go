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
	"os"
	"testing"
	"time"
)

func TestInputSourceEmitsKeyEvent(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()

	src := NewInputSource(NewReader(int(r.Fd())))
	sink := make(chan Event, 8)
	src.Start(sink)

	if _, err := w.Write([]byte("a")); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case ev := <-sink:
		if ev.Kind != EventKey || ev.Key.Char != 'a' {
			t.Fatalf("got %+v, want a Key event for 'a'", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no key event received within 1s")
	}

	w.Close() // EOF unblocks the read loop so Stop returns promptly
	src.Stop()
	if src.Running() {
		t.Fatal("source should not be running after Stop")
	}
}

func TestInputSourcePollSyncBypassesChannel(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	src := NewInputSource(NewReader(int(r.Fd())))

	if _, err := w.Write([]byte("b")); err != nil {
		t.Fatalf("write: %v", err)
	}

	ev, ok, err := src.PollSync(1000)
	if err != nil || !ok {
		t.Fatalf("PollSync() = %v,%v,%v", ev, ok, err)
	}
	if ev.Kind != EventKey || ev.Key.Char != 'b' {
		t.Fatalf("got %+v, want a Key event for 'b'", ev)
	}
}
