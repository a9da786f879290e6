package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/letterconnect"
	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/letterconnect/internal/termout"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runShapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagString(flags["trace"], "trace"))
	mode, err := termout.ParseMode(mustFlagString(flags["output"], "output"))
	if err != nil {
		fatalf("%v", err)
	}
	transformer := letterconnect.New(nil)
	input, err := parseShapeInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["warn"], "warn") {
		for _, r := range glyphtab.Unshapeable(input, transformer.Table()) {
			pterm.Warning.Printf("%U has no presentation forms and will not be connected\n", r)
		}
	}
	shaped := transformer.TransformRunes(input)
	tracer().Infof("transformed %d codepoints into %d", len(input), len(shaped))
	printShaped(transformer.Table(), shaped, mode)
}

// parseShapeInput returns the runes to transform, taken from --codepoints if
// set, else from the text argument. Text "-" is read from stdin.
func parseShapeInput(textArg commando.ArgValue, cpFlag commando.FlagValue) ([]rune, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	if cp = strings.TrimSpace(cp); cp != "" && cp != "-" {
		return termout.ParseCodepoints(cp)
	}
	if textArg.Value == "-" {
		text, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []rune(strings.TrimRight(string(text), "\r\n")), nil
	}
	return []rune(textArg.Value), nil
}

func printShaped(t *glyphtab.Table, shaped []rune, mode termout.Mode) {
	switch mode {
	case termout.Hex:
		fmt.Println(termout.Codepoints(shaped))
	case termout.Explain:
		pterm.Info.Printf("base direction: %s\n", termout.DirectionName(termout.BaseDirection(shaped)))
		pterm.DefaultTable.WithHasHeader().WithData(termout.ExplainRows(t, shaped)).Render()
	default:
		fmt.Println(string(shaped))
	}
}
