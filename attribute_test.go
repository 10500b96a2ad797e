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

func TestAttributeHasSingleBit(t *testing.T) {
	a := AttrBold | AttrUnderline
	if !a.Has(AttrBold) {
		t.Fatal("should report AttrBold present")
	}
	if a.Has(AttrReverse) {
		t.Fatal("should not report AttrReverse present")
	}
}

func TestAttributeHasCombination(t *testing.T) {
	a := AttrBold | AttrUnderline | AttrItalic
	if !a.Has(AttrBold | AttrItalic) {
		t.Fatal("should report both requested bits present")
	}
	if a.Has(AttrBold | AttrReverse) {
		t.Fatal("should report false when only part of the combination is present")
	}
}

func TestAttributeNoneHasNothing(t *testing.T) {
	if AttrNone.Has(AttrBold) {
		t.Fatal("AttrNone should not have any bit set")
	}
	if !AttrNone.Has(AttrNone) {
		t.Fatal("every Attribute should Has(AttrNone)")
	}
}
