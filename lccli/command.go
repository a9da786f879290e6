package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/letterconnect/internal/termout"
	"github.com/pterm/pterm"
)

// Op is a REPL command, e.g. ":mode hex" or ":describe U+FEFB".
type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	QUIT int = iota
	HELP
	MODE
	WARN
	TABLE
	DESCRIBE
	STATUS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"q":        QUIT,
	"help":     HELP,
	"mode":     MODE,
	"warn":     WARN,
	"table":    TABLE,
	"describe": DESCRIBE,
	"status":   STATUS,
}

var modeNames = map[termout.Mode]string{
	termout.Plain:   "plain",
	termout.Hex:     "hex",
	termout.Explain: "explain",
}

// parseCommand reads a line starting with ':'. The output modes are accepted
// as commands of their own, thus ":hex" is short for ":mode hex".
func parseCommand(line string) (Op, error) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return Op{code: NOOP}, fmt.Errorf("empty command")
	}
	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")
	code, ok := opMap[name]
	if !ok {
		if _, err := termout.ParseMode(name); err == nil {
			return Op{code: MODE, arg: name}, nil
		}
		return Op{code: NOOP}, fmt.Errorf("unknown command :%s, try :help", name)
	}
	tracer().Debugf("parsed command %s %q", name, arg)
	return Op{code: code, arg: arg}, nil
}

var commandFn = map[int]func(*Intp, Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	MODE:     modeOp,
	WARN:     warnOp,
	TABLE:    tableOp,
	DESCRIBE: describeOp,
	STATUS:   statusOp,
}

// execute runs op and reports if the REPL should stop.
func (intp *Intp) execute(op Op) bool {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return false
	}
	err, stop := f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return stop
}

func quitOp(intp *Intp, op Op) (error, bool) {
	return nil, true
}

func modeOp(intp *Intp, op Op) (error, bool) {
	m, err := termout.ParseMode(op.arg)
	if err != nil {
		return err, false
	}
	intp.mode = m
	tracer().Infof("output mode is %s", modeNames[m])
	return nil, false
}

func warnOp(intp *Intp, op Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "", "on", "true":
		intp.warn = true
	case "off", "false":
		intp.warn = false
	default:
		return fmt.Errorf("expected :warn on|off, have %q", op.arg), false
	}
	return nil, false
}

func statusOp(intp *Intp, op Op) (error, bool) {
	pterm.Println(intp.String())
	return nil, false
}

func tableOp(intp *Intp, op Op) (error, bool) {
	t := intp.tr.Table()
	data := [][]string{{"Letter", "Isolated", "Final", "Initial", "Medial"}}
	for _, e := range t.Entries() {
		row := []string{string(e.Common)}
		for f := glyphtab.Isolated; f < glyphtab.FormCount; f++ {
			row = append(row, string(e.Glyph(f)))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// describeOp explains codepoints given as U+XXXX list, or as text.
func describeOp(intp *Intp, op Op) (error, bool) {
	runes, err := termout.ParseCodepoints(op.arg)
	if err != nil {
		runes = []rune(op.arg)
	}
	if len(runes) == 0 {
		return fmt.Errorf("nothing to describe"), false
	}
	return pterm.DefaultTable.WithHasHeader().WithData(termout.ExplainRows(intp.tr.Table(), runes)).Render(), false
}
