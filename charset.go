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
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	// Linked for its legacy charset tables. getEncoding below does not
	// consult this package: it resolves names through x/text's IANA
	// index only.
	_ "github.com/gdamore/encoding"
)

// characterSet reports the locale's character encoding as derived from
// LC_ALL/LC_CTYPE/LANG, the traditional POSIX precedence order,
// defaulting to "UTF-8" if none are set or none carry a dot-qualified
// charset.
func characterSet() string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			return v[i+1:]
		}
	}
	return "UTF-8"
}

// getEncoding resolves a charset name (as found in LANG/LC_CTYPE, e.g.
// "ISO-8859-1", "KOI8-R") to an x/text Encoding, returning nil if
// unrecognized. UTF-8 resolves to the identity no-op encoding since it
// needs no transcoding.
func getEncoding(charset string) encoding.Encoding {
	name := strings.ToLower(charset)
	if name == "utf-8" || name == "utf8" {
		return encoding.Nop
	}
	if enc, _ := ianaindex.IANA.Encoding(name); enc != nil {
		return enc
	}
	return nil
}
