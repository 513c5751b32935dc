package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arabshape"
	"github.com/npillmayer/arabshape/otquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'arabshape'
func tracer() tracing.Trace {
	return tracing.Select("arabshape")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.arabshape":        "Info",
		"trace.arabshape.arabic": "Info",
		"trace.arabshape.shaper": "Error",
		"trace.arabshape.font":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	script := flag.String("script", "Arab", "ISO 15924 script code")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Arabic shaping CLI")
	//
	// set up REPL
	repl, err := readline.New("arab > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	if err := intp.setScript(*script); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if *fontname != "" { // font name provided by flag
		if err := intp.loadFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	level, ok := traceLevels[*tlevel]
	if !ok {
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().SetTraceLevel(level)
	tracing.Select("arabshape.arabic").SetTraceLevel(level)
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

var traceLevels = map[string]tracing.TraceLevel{
	"Debug": tracing.LevelDebug,
	"Info":  tracing.LevelInfo,
	"Error": tracing.LevelError,
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	font   *otquery.SFNTFont
	script language.Script
}

func (intp *Intp) String() string {
	if intp.font == nil {
		return fmt.Sprintf("( script=%s )", intp.script)
	}
	return fmt.Sprintf("( script=%s font=%s )", intp.script, intp.font.Fontname)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	intp.font, err = arabshape.LoadFont(fontname)
	if err == nil {
		family, sub := intp.font.FamilyName()
		tracer().Infof("loaded font %s (%s %s)", intp.font.Fontname, family, sub)
		pterm.Printf("GSUB features: %v\n", intp.font.Features().GSub)
	}
	return
}

func (intp *Intp) setScript(code string) error {
	script, err := language.ParseScript(code)
	if err != nil {
		return fmt.Errorf("unknown script %q: %w", code, err)
	}
	intp.script = script
	return nil
}
