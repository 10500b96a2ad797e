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

import "strings"

// xtermCaps is the capability set for xterm and its many workalikes
// (alacritty, kitty, ghostty, st, rio, the Linux "screen"/"tmux" family
// all present themselves this way). It assumes 256-color support, which
// every terminal that claims an "xterm"-prefixed $TERM in practice
// provides.
var xtermCaps = map[string]string{
	"clear":  "\x1b[H\x1b[2J",
	"smcup":  "\x1b[?1049h",
	"rmcup":  "\x1b[?1049l",
	"cnorm":  "\x1b[?12l\x1b[?25h",
	"civis":  "\x1b[?25l",
	"sgr0":   "\x1b(B\x1b[m",
	"smul":   "\x1b[4m",
	"bold":   "\x1b[1m",
	"dim":    "\x1b[2m",
	"sitm":   "\x1b[3m",
	"blink":  "\x1b[5m",
	"rev":    "\x1b[7m",
	"invis":  "\x1b[8m",
	"smxx":   "\x1b[9m",
	"smkx":   "\x1b[?1h\x1b=",
	"rmkx":   "\x1b[?1l\x1b>",
	"setaf":  "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m",
	"setab":  "\x1b[%?%p1%{8}%<%t4%p1%d%e%p1%{16}%<%t10%p1%{8}%-%d%e48;5;%p1%d%;m",
	"cup":    "\x1b[%i%p1%d;%p2%dH",
	"cuf":    "\x1b[%p1%dC",
	"cub":    "\x1b[%p1%dD",
	"cuu":    "\x1b[%p1%dA",
	"cud":    "\x1b[%p1%dB",
	"hpa":    "\x1b[%i%p1%dG",
	"vpa":    "\x1b[%i%p1%dd",
	"ech":    "\x1b[%p1%dX",
	"il1":    "\x1b[%p1%dL",
	"dl1":    "\x1b[%p1%dM",

	"kcuu1": "\x1bOA",
	"kcud1": "\x1bOB",
	"kcuf1": "\x1bOC",
	"kcub1": "\x1bOD",
	"khome": "\x1bOH",
	"kend":  "\x1bOF",
	"kich1": "\x1b[2~",
	"kdch1": "\x1b[3~",
	"kpp":   "\x1b[5~",
	"knp":   "\x1b[6~",
	"kf1":   "\x1bOP",
	"kf2":   "\x1bOQ",
	"kf3":   "\x1bOR",
	"kf4":   "\x1bOS",
	"kf5":   "\x1b[15~",
	"kf6":   "\x1b[17~",
	"kf7":   "\x1b[18~",
	"kf8":   "\x1b[19~",
	"kf9":   "\x1b[20~",
	"kf10":  "\x1b[21~",
	"kf11":  "\x1b[23~",
	"kf12":  "\x1b[24~",
}

// linuxCaps is the capability set for the Linux kernel virtual console
// ($TERM=linux): an 8-color ANSI terminal whose function-key and
// keypad-mode sequences differ from xterm's, and which has no
// alternate-screen or 256-color support at all.
var linuxCaps = map[string]string{
	"clear": "\x1b[H\x1b[J",
	"cnorm": "\x1b[?25h\x1b[?0c",
	"civis": "\x1b[?25l\x1b[?1c",
	"sgr0":  "\x1b[0;10m",
	"smul":  "\x1b[4m",
	"bold":  "\x1b[1m",
	"blink": "\x1b[5m",
	"rev":   "\x1b[7m",
	"invis": "\x1b[8m",
	"setaf": "\x1b[3%p1%dm",
	"setab": "\x1b[4%p1%dm",
	"cup":   "\x1b[%i%p1%d;%p2%dH",
	"cuf":   "\x1b[%p1%dC",
	"cub":   "\x1b[%p1%dD",
	"cuu":   "\x1b[%p1%dA",
	"cud":   "\x1b[%p1%dB",
	"hpa":   "\x1b[%i%p1%dG",
	"ech":   "\x1b[%p1%dX",
	"il1":   "\x1b[%p1%dL",
	"dl1":   "\x1b[%p1%dM",

	"kcuu1": "\x1b[A",
	"kcud1": "\x1b[B",
	"kcuf1": "\x1b[C",
	"kcub1": "\x1b[D",
	"khome": "\x1b[1~",
	"kend":  "\x1b[4~",
	"kich1": "\x1b[2~",
	"kdch1": "\x1b[3~",
	"kpp":   "\x1b[5~",
	"knp":   "\x1b[6~",
	"kf1":   "\x1b[[A",
	"kf2":   "\x1b[[B",
	"kf3":   "\x1b[[C",
	"kf4":   "\x1b[[D",
	"kf5":   "\x1b[[E",
	"kf6":   "\x1b[17~",
	"kf7":   "\x1b[18~",
	"kf8":   "\x1b[19~",
	"kf9":   "\x1b[20~",
	"kf10":  "\x1b[21~",
	"kf11":  "\x1b[23~",
	"kf12":  "\x1b[24~",
}

// ansiCaps is the conservative fallback for an unrecognized $TERM: basic
// ANSI cursor motion and SGR color, no alternate screen, no keypad
// mode. It is safe on essentially any ANSI-compatible serial terminal.
var ansiCaps = map[string]string{
	"clear": "\x1b[H\x1b[2J",
	"cnorm": "\x1b[?25h",
	"civis": "\x1b[?25l",
	"sgr0":  "\x1b[0m",
	"smul":  "\x1b[4m",
	"bold":  "\x1b[1m",
	"rev":   "\x1b[7m",
	"setaf": "\x1b[3%p1%dm",
	"setab": "\x1b[4%p1%dm",
	"cup":   "\x1b[%i%p1%d;%p2%dH",
	"cuf":   "\x1b[%p1%dC",
	"cub":   "\x1b[%p1%dD",
	"cuu":   "\x1b[%p1%dA",
	"cud":   "\x1b[%p1%dB",
}

// builtinCaps returns the hardcoded fallback capability set for term,
// used when no binary terminfo database entry can be found or parsed.
// The match is by $TERM prefix, mirroring the small set of terminal
// families that dominate real-world usage.
func builtinCaps(term string) map[string]string {
	switch {
	case strings.HasPrefix(term, "xterm"), strings.HasPrefix(term, "screen"),
		strings.HasPrefix(term, "tmux"), strings.HasPrefix(term, "rxvt"),
		strings.HasPrefix(term, "alacritty"), strings.HasPrefix(term, "kitty"),
		strings.HasPrefix(term, "ghostty"), strings.HasPrefix(term, "st-"),
		strings.HasPrefix(term, "vt100"), strings.HasPrefix(term, "vt220"):
		return copyCaps(xtermCaps)
	case strings.HasPrefix(term, "linux"):
		return copyCaps(linuxCaps)
	default:
		return copyCaps(ansiCaps)
	}
}

func copyCaps(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
