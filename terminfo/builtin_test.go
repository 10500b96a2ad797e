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

package terminfo

import "testing"

func TestBuiltinCapsXtermFamily(t *testing.T) {
	for _, term := range []string{"xterm", "xterm-256color", "tmux-256color", "alacritty", "kitty", "screen"} {
		caps := builtinCaps(term)
		if caps["smcup"] == "" {
			t.Errorf("%s: expected smcup (alternate screen) support", term)
		}
	}
}

func TestBuiltinCapsLinuxConsole(t *testing.T) {
	caps := builtinCaps("linux")
	if caps["smcup"] != "" {
		t.Fatal("linux console has no alternate-screen capability")
	}
	if caps["cup"] == "" {
		t.Fatal("linux console should still define cup")
	}
}

func TestBuiltinCapsUnknownTermFallsBackToAnsi(t *testing.T) {
	caps := builtinCaps("some-unknown-terminal-xyz")
	if caps["smcup"] != "" {
		t.Fatal("unknown $TERM should fall back to the ANSI-only table with no smcup")
	}
	if caps["setaf"] == "" {
		t.Fatal("even the ANSI fallback should define setaf")
	}
}

func TestBuiltinCapsReturnsIndependentCopies(t *testing.T) {
	a := builtinCaps("xterm")
	b := builtinCaps("xterm")
	a["cup"] = "mutated"
	if b["cup"] == "mutated" {
		t.Fatal("builtinCaps must return independent copies, not shared map references")
	}
}
