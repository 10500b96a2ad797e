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

// Attribute is an SGR attribute bitset.
type Attribute uint16

const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << 0
	AttrUnderline     Attribute = 1 << 1
	AttrReverse       Attribute = 1 << 2
	AttrBlink         Attribute = 1 << 3
	AttrDim           Attribute = 1 << 4
	AttrItalic        Attribute = 1 << 5 // a.k.a. Cursive in some terminfo ports
	AttrHidden        Attribute = 1 << 6
	AttrStrikethrough Attribute = 1 << 7
)

// Has reports whether all bits of other are set in a.
func (a Attribute) Has(other Attribute) bool { return a&other == other }
