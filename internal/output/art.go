package output

import (
	"strings"

	"github.com/mrzor/rinfo/internal/hostinfo"
)

// Art returns the logo drawing for a.
func Art(a hostinfo.Art) string {
	switch a {
	case hostinfo.ArtArchLinux:
		return archArt
	case hostinfo.ArtAlpineLinux:
		return alpineArt
	case hostinfo.ArtDebian:
		return debianArt
	case hostinfo.ArtWindows:
		return windowsArt
	case hostinfo.ArtMacOS:
		return macOSArt
	default:
		return unknownArt
	}
}

var (
	archArt = strings.Join([]string{
		"                   -`",
		"                  .o+`",
		"                 `ooo/",
		"                `+oooo:",
		"               `+oooooo:",
		"               -+oooooo+:",
		"             `/:-:++oooo+:",
		"            `/++++/+++++++:",
		"           `/++++++++++++++:",
		"          `/+++ooooooooooooo/`",
		"         ./ooosssso++osssssso+`",
		"        .oossssso-````/ossssss+`",
		"       -osssssso.      :ssssssso.",
		"      :osssssss/        osssso+++.",
		"     /ossssssss/        +ssssooo/-",
		"   `/ossssso+/:-        -:/+osssso+-",
		"  `+sso+:-`                 `.-/+oso:",
		" `++:.                           `-/+\\",
		" .`                                 ` .",
	}, "\n")

	alpineArt = strings.Join([]string{
		"       .hddddddddddddddddddddddh.",
		"      :dddddddddddddddddddddddddd:",
		"     /dddddddddddddddddddddddddddd/",
		"    +dddddddddddddddddddddddddddddd+",
		"  `sdddddddddddddddddddddddddddddddds`",
		" `ydddddddddddd++hdddddddddddddddddddy`",
		".hddddddddddd+`  `+ddddh:-sdddddddddddh.",
		"hdddddddddd+`      `+y:    .sddddddddddh",
		"ddddddddh+`   `//`   `.`     -sddddddddd",
		"ddddddh+`   `/hddh/`   `:s-    -sddddddd",
		"ddddh+`   `/+/dddddh/`   `+s-    -sddddd",
		"ddd+`   `/o` :dddddddh/`   `oy-    .yddd",
		"hdddyo+ohddyosdddddddddho+oydddy++ohdddh",
		".hddddddddddddddddddddddddddddddddddddh.",
		" `yddddddddddddddddddddddddddddddddddy`",
		"  `sdddddddddddddddddddddddddddddddds`",
		"    +dddddddddddddddddddddddddddddd+",
		"     /dddddddddddddddddddddddddddd/",
		"      :dddddddddddddddddddddddddd:",
		"       .hddddddddddddddddddddddh.",
	}, "\n")

	debianArt = strings.Join([]string{
		"          _,met$$$$$gg.",
		"    ,g$$$$$$$$$$$$$$$P.",
		"  ,g$$P\"     \"\"\"Y$$.\".",
		" ,$$P'              `$$$.",
		"',$$P       ,ggs.     `$$b:",
		"`d$$'     ,$P\"'   .    $$$",
		" $$P      d$'     ,    $$P",
		" $$:      $$.   -    ,d$$'",
		" $$;      Y$b._   _,d$P'",
		" Y$$.    `.`\"Y$$$$P\"'",
		" `$$b      \"-.__",
		"  `Y$$",
		"   `Y$$.",
		"     `$$b.",
		"       `Y$$b.",
		"          `\"Y$b._",
		"              `\"\"\"",
	}, "\n")

	windowsArt = strings.Join([]string{
		"                    ....,,:;+ccllll",
		"      ...,,+:;  cllllllllllllllllll",
		",cclllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"                                   ",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"`'ccllllllllll  lllllllllllllllllll",
		"      `' \\\\\\\\*::  :ccllllllllllllllll",
		"                       ````''*::cll",
		"                                 ``",
	}, "\n")

	macOSArt = strings.Join([]string{
		"                    c.'",
		"                 ,xNMM.",
		"               .OMMMMo",
		"               lMM\"",
		"     .;loddo:.  .olloddol;.",
		"   cKMMMMMMMMMMNWMMMMMMMMMM0:",
		" .KMMMMMMMMMMMMMMMMMMMMMMMWd.",
		" XMMMMMMMMMMMMMMMMMMMMMMMX.",
		";MMMMMMMMMMMMMMMMMMMMMMMM:",
		":MMMMMMMMMMMMMMMMMMMMMMMM:",
		".MMMMMMMMMMMMMMMMMMMMMMMMX.",
		" kMMMMMMMMMMMMMMMMMMMMMMMMWd.",
		" 'XMMMMMMMMMMMMMMMMMMMMMMMMMMk",
		"  'XMMMMMMMMMMMMMMMMMMMMMMMMK.",
		"    kMMMMMMMMMMMMMMMMMMMMMMd",
		"     ;KMMMMMMMWXXWMMMMMMMk.",
		"       \"cooc*\"    \"*coo'\"",
	}, "\n")

	unknownArt = strings.Join([]string{
		"           @@@%%%%%%%%%@@",
		"        @@@%%%%%%%%%#######%@@",
		"      @@@@%%%%%%%######?######%@",
		"     @@@@%%%%%%%#######:########%@",
		"   @@@@@%%%%%%#########:??#######%",
		"   @@@%%%%%####???###?+:??####?###@",
		"  @@@%%%%%%#?+???###?:+?##??###?##@",
		"@??%@%%%##????????++:;+?+????????#@",
		"#  ;?%#?+; ..::+?+ ::;++++++?+???#",
		"%  :?%;;;:  ....:#+ :;+++????+???@",
		"#;;+??+++:   ...;##: ;;;++???++?%",
		"%#%+::++?#+;:::;?##+ ;;;;++??++#",
		"%?% : :???+?++???######?+;;+??#",
		"@%# ; ;??;;+ ;???+;;:..::.:+?%",
		" @???;;?+;;;+ ;:;;......;;;#@",
		" %##?++?+++;+ ??% @%%@@@@",
		" @_:?_:+_:_:#%",
	}, "\n")
)
