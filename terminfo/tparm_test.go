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

func TestTParmEmptyString(t *testing.T) {
	ti := &Terminfo{}
	if got := ti.TParm(""); got != "" {
		t.Fatalf("TParm(\"\") = %q, want empty", got)
	}
}

func TestTParmLiteralPassthrough(t *testing.T) {
	ti := &Terminfo{}
	if got := ti.TParm("abc"); got != "abc" {
		t.Fatalf("TParm(\"abc\") = %q", got)
	}
}

func TestTParmCursorAddress(t *testing.T) {
	ti := &Terminfo{}
	got := ti.TParm("\x1b[%i%p1%d;%p2%dH", 3, 5)
	want := "\x1b[4;6H" // %i increments both params by one (1-based terminals)
	if got != want {
		t.Fatalf("TParm(cup, 3, 5) = %q, want %q", got, want)
	}
}

func TestTParmSetaf(t *testing.T) {
	ti := &Terminfo{}
	got := ti.TParm("\x1b[3%p1%dm", 7)
	if got != "\x1b[37m" {
		t.Fatalf("TParm(setaf-like, 7) = %q", got)
	}
}

func TestTParmConditionalThenBranch(t *testing.T) {
	ti := &Terminfo{}
	// %p1 > 0, so "yes" is emitted and "no" skipped.
	got := ti.TParm("%p1%{0}%>%tyes%eno%;", 1)
	if got != "yes" {
		t.Fatalf("got %q, want yes", got)
	}
}

func TestTParmConditionalElseBranch(t *testing.T) {
	ti := &Terminfo{}
	got := ti.TParm("%p1%{0}%>%tyes%eno%;", 0)
	if got != "no" {
		t.Fatalf("got %q, want no", got)
	}
}

func TestTParmNestedConditional(t *testing.T) {
	ti := &Terminfo{}
	// Outer %?p1>0%t ... %e ... %; with an inner conditional inside the
	// then-branch; when the outer condition is false, the entire inner
	// conditional (including its own %e/%;) must be skipped as one unit.
	seq := "%?%p1%{0}%>%t%?%p2%{0}%>%tAB%eCD%;%eELSE%;"
	if got := ti.TParm(seq, 0, 1); got != "ELSE" {
		t.Fatalf("got %q, want ELSE", got)
	}
	if got := ti.TParm(seq, 1, 1); got != "AB" {
		t.Fatalf("got %q, want AB", got)
	}
	if got := ti.TParm(seq, 1, 0); got != "CD" {
		t.Fatalf("got %q, want CD", got)
	}
}

func TestTParmArithmeticAndDivModByZero(t *testing.T) {
	ti := &Terminfo{}
	if got := ti.TParm("%p1%p2%/%d", 10, 0); got != "0" {
		t.Fatalf("divide by zero should yield 0, got %q", got)
	}
	if got := ti.TParm("%p1%p2%m%d", 10, 0); got != "0" {
		t.Fatalf("mod by zero should yield 0, got %q", got)
	}
	if got := ti.TParm("%p1%p2%+%d", 3, 4); got != "7" {
		t.Fatalf("3+4 = %q, want 7", got)
	}
}

func TestTParmBitwiseAndComplement(t *testing.T) {
	ti := &Terminfo{}
	if got := ti.TParm("%p1%p2%&%d", 6, 3); got != "2" {
		t.Fatalf("6&3 = %q, want 2", got)
	}
	if got := ti.TParm("%p1%~%d", 0); got != "-1" {
		t.Fatalf("~0 = %q, want -1 (two's complement)", got)
	}
}

func TestTParmStaticVariablePersistsAcrossCalls(t *testing.T) {
	ti := &Terminfo{}
	ti.TParm("%p1%PA", 42)
	got := ti.TParm("%gA%d")
	if got != "42" {
		t.Fatalf("static var %%gA after %%PA on a prior call = %q, want 42", got)
	}
}

func TestTParmDynamicVariableDoesNotPersist(t *testing.T) {
	ti := &Terminfo{}
	ti.TParm("%p1%Pa", 99)
	got := ti.TParm("%ga%d")
	if got != "0" {
		t.Fatalf("dynamic var %%ga should reset each call, got %q", got)
	}
}

func TestTParmIntLiteralAsChar(t *testing.T) {
	ti := &Terminfo{}
	if got := ti.TParm("%{65}%c"); got != "A" {
		t.Fatalf("%%{65}%%c = %q, want A", got)
	}
}
