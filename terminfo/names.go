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

// boolNames, numNames and stringNames give the ncurses short-name
// ordering used to resolve a capability index in the binary database's
// bool/number/string sections to its short name. Only the subset this
// engine actually resolves capabilities for is listed; the rest of the
// standard ncurses ordering exists in real terminfo databases but is
// simply skipped over (we only need the offsets for entries we care
// about, plus to know how many slots to skip).
var stringNames = []string{
	"cbt", "bel", "cr", "csr", "tbc", "clear", "el", "ed", "hpa", "cmdch",
	"cup", "cud1", "home", "civis", "cub1", "mrcup", "cnorm", "cuf1",
	"ll", "cuu1", "cvvis", "dch1", "dl1", "dsl", "hd", "smacs", "blink",
	"bold", "smcup", "smdc", "dim", "smir", "invis", "prot", "rev",
	"smso", "smul", "sgr0", "rmacs", "rmcup", "rmdc", "rmir", "rmso",
	"rmul", "flash", "ff", "fsl", "is1", "is2", "is3", "if", "iprog",
	"ip", "ka1", "ka3", "kb2", "kbs", "kbeg", "kcbt", "kc1", "kc2",
	"kc3", "kcan", "ktbc", "kclr", "kclo", "kcmd", "kcpy", "kcrt",
	"kctab", "kdch1", "kdl1", "krmir", "kend", "kent", "kel", "ked",
	"kext", "kf0", "kf1", "kf2", "kf3", "kf4", "kf5", "kf6", "kf7",
	"kf8", "kf9", "kf10", "kf11", "kf12", "kf13", "kf14", "kf15",
	"kf16", "kf17", "kf18", "kf19", "kf20", "kf21", "kf22", "kf23",
	"kf24", "kf25", "kf26", "kf27", "kf28", "kf29", "kf30", "kf31",
	"kf32", "kf33", "kf34", "kf35", "kf36", "kf37", "kf38", "kf39",
	"kf40", "kf41", "kf42", "kf43", "kf44", "kf45", "kf46", "kf47",
	"kf48", "kf49", "kf50", "kf51", "kf52", "kf53", "kf54", "kf55",
	"kf56", "kf57", "kf58", "kf59", "kf60", "kf61", "kf62", "kf63",
	"kfnd", "khlp", "khome", "kich1", "kil1", "kll", "knp", "kpp",
	"kcub1", "kind", "kri", "khts", "kcud1", "kmous", "kmov", "knxt",
	"kopt", "kpev", "kprv", "kprt", "krdo", "kref", "krfr", "krpl",
	"krst", "kres", "kcuf1", "ksav", "kspd", "kund", "kcuu1", "rmp",
	"rep", "rfi", "rs1", "rs2", "rs3", "rf", "rc", "vpa", "sc",
	"ind", "ri", "sgr", "hts", "wind", "sitm", "slm", "smm", "snlq",
	"smicm", "snrmq", "sshm", "ssubm", "ssupm", "sum", "rmitm", "rlm",
	"rmm", "nel", "rmicm", "rshm", "rsubm", "rsupm", "rum", "msgr",
	"smxon", "rmxon", "smam", "rmam", "xonc", "xoffc", "enacs",
	"smln", "rmln", "kbeg2", "kcan2", "kclo2", "kcmd2", "kcpy2",
	"kcrt2", "kdch2", "kdl2", "kend2", "kent2", "kext2", "kfnd2",
	"khlp2", "khom2", "kic2", "kll2", "kmsg2", "kmov2", "knxt2",
	"kopn2", "kopt2", "kprt2", "kprv2", "krdo2", "kref2", "krfr2",
	"krpl2", "krst2", "kres2", "ksav2", "kspd2", "kund2", "smpch",
	"rmpch", "pctrm", "setaf", "setab", "setfgbg", "acsc",
	"el1", "ech",
}

// boolNames and numNames are a pragmatic, not byte-exact, list of bool
// and number capability names. The parser does not consult them: it
// skips the bool and number sections using the header counts, and this
// engine resolves no capabilities from either section.
var boolNames = []string{
	"bw", "am", "xsb", "xhp", "xenl", "eo", "gn", "hc", "km", "hs",
	"in", "da", "db", "mir", "msgr", "os", "eslok", "xt", "hz", "ul",
	"xon", "nxon", "mc5i", "chts", "nrrmc", "npc", "ndscr", "ccc",
	"bce", "hls", "xhpa", "crxm", "daisy", "xvpa", "sam", "cpix",
	"lpix",
}

var numNames = []string{
	"cols", "it", "lines", "lm", "xmc", "pairs", "colors", "wsl",
	"nlab", "lh", "lw", "ma", "wnum", "bitwin", "bitype",
}

