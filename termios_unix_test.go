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

import "testing"

func TestSetFlagSetsAndClearsBits(t *testing.T) {
	var flag uint32 = 0x2 // some unrelated bit already set
	setFlag(&flag, 0x1, true)
	if flag&0x1 == 0 {
		t.Fatal("setFlag(true) should set the bit")
	}
	if flag&0x2 == 0 {
		t.Fatal("setFlag should not disturb unrelated bits")
	}
	setFlag(&flag, 0x1, false)
	if flag&0x1 != 0 {
		t.Fatal("setFlag(false) should clear the bit")
	}
	if flag&0x2 == 0 {
		t.Fatal("clearing one bit should not disturb unrelated bits")
	}
}

func TestTermiosControllerRestoreWithoutSetModeIsNoop(t *testing.T) {
	c := newTermiosController(-1) // fd never used: original is nil
	if err := c.restore(); err != nil {
		t.Fatalf("restore() on a controller that never called setMode should be a no-op, got %v", err)
	}
	if _, ok := c.mode(); ok {
		t.Fatal("mode() should report no mode recorded")
	}
}
