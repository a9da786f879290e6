package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/letterconnect"
	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/letterconnect/internal/termout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'letterconnect'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"trace.letterconnect":        "Info",
		"trace.letterconnect.glyphs": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "plain", "Output mode [plain|hex|explain]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Arabic letter connector")
	//
	// set up REPL
	repl, err := readline.New("lc > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := NewIntp(letterconnect.New(nil))
	intp.repl = repl
	if intp.mode, err = termout.ParseMode(*mode); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving input
	pterm.Info.Println("Enter text to connect, :help for commands, quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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
	tr   *letterconnect.Transformer
	repl *readline.Instance
	mode termout.Mode
	warn bool
}

// NewIntp creates an interpreter transforming input with tr.
func NewIntp(tr *letterconnect.Transformer) *Intp {
	return &Intp{tr: tr}
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( mode=%s warn=%v )", modeNames[intp.mode], intp.warn)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.connect(line)
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit := intp.execute(cmd); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// connect transforms a line of input and prints it in the current mode.
func (intp *Intp) connect(line string) {
	input := []rune(line)
	if intp.warn {
		for _, r := range glyphtab.Unshapeable(input, intp.tr.Table()) {
			pterm.Warning.Printf("%U has no presentation forms\n", r)
		}
	}
	shaped := intp.tr.TransformRunes(input)
	tracer().Debugf("%d codepoints in, %d out", len(input), len(shaped))
	switch intp.mode {
	case termout.Hex:
		pterm.Println(termout.Codepoints(shaped))
	case termout.Explain:
		pterm.Printf("direction %s\n", termout.DirectionName(termout.BaseDirection(shaped)))
		if err := pterm.DefaultTable.WithHasHeader().WithData(termout.ExplainRows(intp.tr.Table(), shaped)).Render(); err != nil {
			pterm.Error.Println(err)
		}
	default:
		pterm.Println(string(shaped))
	}
}
