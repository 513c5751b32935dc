package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/arabshape"
	"github.com/npillmayer/arabshape/otshape/otarabic"
	"github.com/pterm/pterm"
)

// Op is a parsed command line: an op-code and its argument text.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	TEXT
	CPS
	SCRIPT
	REORDER
	PLAN
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"text":    TEXT,
	"cps":     CPS,
	"script":  SCRIPT,
	"reorder": REORDER,
	"plan":    PLAN,
}

var opNames = []string{
	"quit",
	"help",
	"text",
	"cps",
	"script",
	"reorder",
	"plan",
}

// parseCommand splits a line into the command word and the rest.
// Unknown commands are treated as a request for help.
func parseCommand(line string) Op {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		tracer().Infof("unknown command %q", word)
		return Op{code: HELP}
	}
	op := Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s %q", opNames[code], op.arg)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	TEXT:    textOp,
	CPS:     cpsOp,
	SCRIPT:  scriptOp,
	REORDER: reorderOp,
	PLAN:    planOp,
}

func (intp *Intp) execute(op Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, &op)
}

var errNoArg = errors.New("command needs an argument")

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func textOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errNoArg, false
	}
	return intp.joining([]rune(op.arg)), false
}

func cpsOp(intp *Intp, op *Op) (error, bool) {
	cps, err := parseCodepoints(op.arg)
	if err != nil {
		return err, false
	}
	return intp.joining(cps), false
}

func (intp *Intp) joining(text []rune) error {
	actions, err := arabshape.AnalyzeJoining(string(text), intp.script)
	if err != nil {
		return err
	}
	printJoining(text, actions)
	return nil
}

func scriptOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Printf("script is %s\n", intp.script)
		return nil, false
	}
	return intp.setScript(op.arg), false
}

func reorderOp(intp *Intp, op *Op) (error, bool) {
	cps, err := parseCodepoints(op.arg)
	if err != nil {
		return err, false
	}
	buf, err := arabshape.ReorderMarks(cps, intp.script)
	if err != nil {
		return err, false
	}
	printMarks(buf)
	return nil, false
}

func planOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errors.New("no font loaded, use flag -font"), false
	}
	text := op.arg
	if text == "" {
		return errNoArg, false
	}
	buf, err := arabshape.ShapeText(intp.font, text, intp.script, nil)
	if err != nil {
		return err, false
	}
	printGlyphs(buf)
	pterm.Warning.Println(noLookupsNotice)
	return nil, false
}

// parseCodepoints reads a list of hexadecimal code-points, optionally
// prefixed with "U+" or "0x".
func parseCodepoints(arg string) ([]rune, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return nil, errNoArg
	}
	cps := make([]rune, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(f), "U+"), "0X")
		n, err := strconv.ParseUint(f, 16, 32)
		if err != nil || n > 0x10FFFF {
			return nil, fmt.Errorf("not a code-point: %q", f)
		}
		cps = append(cps, rune(n))
	}
	return cps, nil
}

// actionStyle colors the joining forms in output tables.
func actionStyle(a otarabic.Action) *pterm.Style {
	switch a {
	case otarabic.None:
		return pterm.NewStyle(pterm.FgYellow)
	case otarabic.Isol:
		return pterm.NewStyle(pterm.FgWhite)
	case otarabic.StchFixed, otarabic.StchRepeating:
		return pterm.NewStyle(pterm.FgMagenta)
	}
	return pterm.NewStyle(pterm.FgCyan)
}
