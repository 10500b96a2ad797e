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

import (
	"os"
	"path/filepath"
)

// standardDirs lists the usual terminfo search path on POSIX systems.
var standardDirs = []string{
	"/usr/share/terminfo",
	"/usr/lib/terminfo",
	"/etc/terminfo",
	"/lib/terminfo",
}

// candidatePaths builds the ordered list of files to try for a given
// terminal name, per spec.md §4.4 / §6: $TERMINFO, then
// $HOME/.terminfo, then the standard directory list. Each directory is
// probed with the "first letter" subdirectory layout, and "xterm" gets
// an extra "x/" then legacy "78/" fallback per spec.md's explicit call
// out.
func candidatePaths(term string) []string {
	if term == "" {
		return nil
	}
	var dirs []string
	if ti := os.Getenv("TERMINFO"); ti != "" {
		dirs = append(dirs, ti)
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	dirs = append(dirs, standardDirs...)

	firstLetterDirs := []string{string(term[0])}
	if term == "xterm" {
		firstLetterDirs = []string{"x", "78"}
	}

	var paths []string
	for _, dir := range dirs {
		for _, fl := range firstLetterDirs {
			paths = append(paths, filepath.Join(dir, fl, term))
		}
		// ncurses also supports a hex-encoded single-directory layout
		// on some platforms; try it as a last resort per directory.
		paths = append(paths, filepath.Join(dir, hexByte(term[0]), term))
	}
	return paths
}

func hexByte(b byte) string {
	const hexDigits = "0123456789ABCDEF"
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

// loadDatabase locates and parses the binary terminfo entry for term,
// returning a capability map on success.
func loadDatabase(term string) (map[string]string, error) {
	var lastErr error
	for _, path := range candidatePaths(term) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		caps, err := parse(data)
		if err != nil {
			lastErr = err
			continue
		}
		return caps, nil
	}
	if lastErr == nil {
		lastErr = &ParseError{Kind: ParseErrorTruncatedData, Message: "no terminfo entry found for " + term}
	}
	return nil, lastErr
}
