package main

import (
	"strings"

	"github.com/pterm/pterm"
)

// noLookupsNotice is shown with every plan, as otcli has no GSUB engine.
const noLookupsNotice = "no GSUB lookups are applied, so glyphs keep their cmap form and 'stch' does not stretch"

var planHelp = `
	Shape text with the font loaded by flag -font:

	    plan لا

	Shows glyphs, feature masks and advances. The plan lists the features
	the font carries, but ` + noLookupsNotice + `.
	`

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "text", "cps":
		pterm.Info.Println("text / cps")
		pterm.Println(`
	Run the joining analysis for a piece of text in the current script.
	'text' takes the characters literally, 'cps' takes hexadecimal code-points:

	    text لا
	    cps 0644 064E 0627

	The output lists the positional form chosen for every character:
	isol, init, medi, fina, and the Syriac forms fin2, fin3 and med2.
	Transparent characters (marks) get 'none'.
	`)
	case "reorder":
		pterm.Info.Println("reorder")
		pterm.Println(`
	Sort the marks of a sequence of hexadecimal code-points by combining class
	and apply the Arabic Mark Transient Reordering (UTR #53):

	    reorder 0628 0654 0670 064E

	Modifier marks of class 220 move in front with class 22,
	those of class 230 with class 26.
	`)
	case "plan":
		pterm.Info.Println("plan")
		pterm.Println(planHelp)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	text <string>        joining forms of a string
	cps <hex...>         joining forms of code-points
	script [<code>]      show or set the script (ISO 15924, e.g. Arab, Syrc, Mong)
	reorder <hex...>     Arabic mark reordering
	plan <string>        shape with the loaded font (no lookups applied)
	help [<command>]     help on a command
	quit                 leave
	`)
	}
}
