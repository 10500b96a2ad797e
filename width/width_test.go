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

package width

import "testing"

func TestRuneWidthRegressions(t *testing.T) {
	cases := []struct {
		cp   rune
		want int
	}{
		{0x1F780, 1},
		{0x1F7D9, 1},
		{0x1F900, 1},
		{'a', 1},
		{0x4E2D, 2}, // 中
		{0x0300, 0}, // combining grave
		{0x1B, 0},   // ESC control
	}
	for _, c := range cases {
		if got := RuneWidth(c.cp); got != c.want {
			t.Errorf("RuneWidth(%#x) = %d, want %d", c.cp, got, c.want)
		}
	}
}

func TestGraphemeWidth(t *testing.T) {
	cases := []struct {
		name    string
		cluster string
		want    int
	}{
		{"empty", "", 0},
		{"ascii", "a", 1},
		{"cjk", "中", 2},
		{"warning+vs16", "⚠️", 2},
		{"warning+vs15", "⚠︎", 1},
		{"us flag", "\U0001F1FA\U0001F1F8", 2},
		{"family zwj", "\U0001F468‍\U0001F469‍\U0001F467", 2},
	}
	for _, c := range cases {
		if got := GraphemeWidth(c.cluster); got != c.want {
			t.Errorf("%s: GraphemeWidth(%q) = %d, want %d", c.name, c.cluster, got, c.want)
		}
	}
}

func TestStringWidthMatchesGraphemeSum(t *testing.T) {
	s := "a中⚠️\U0001F1FA\U0001F1F8"
	want := GraphemeWidth("a") + GraphemeWidth("中") + GraphemeWidth("⚠️") + GraphemeWidth("\U0001F1FA\U0001F1F8")
	if got := StringWidth(s); got != want {
		t.Errorf("StringWidth = %d, want %d", got, want)
	}
}

func TestFirstGraphemeClusterTruncates(t *testing.T) {
	cluster, truncated := FirstGraphemeCluster("ab")
	if cluster != "a" || !truncated {
		t.Errorf("got (%q, %v), want (\"a\", true)", cluster, truncated)
	}
	cluster, truncated = FirstGraphemeCluster("中")
	if cluster != "中" || truncated {
		t.Errorf("got (%q, %v), want (\"中\", false)", cluster, truncated)
	}
}
