package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/letterconnect/internal/fontload"
	"github.com/npillmayer/letterconnect/internal/termout"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runTableCommand(_ map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagString(flags["trace"], "trace"))
	data := tableRows(glyphtab.Default())
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fatalf("cannot render table: %v", err)
	}
	pterm.Info.Printf("%d entries\n", len(data)-1)
}

// tableRows lists every entry of t, the header row first.
func tableRows(t *glyphtab.Table) [][]string {
	rows := [][]string{{"Letter", "Isolated", "Final", "Initial", "Medial", "Connects"}}
	for _, e := range t.Entries() {
		row := []string{fmt.Sprintf("%U %s", e.Common, string(e.Common))}
		for f := glyphtab.Isolated; f < glyphtab.FormCount; f++ {
			g := e.Glyph(f)
			row = append(row, fmt.Sprintf("%U %s", g, string(g)))
		}
		row = append(row, fmt.Sprintf("%v", e.ConnectsForward))
		rows = append(rows, row)
	}
	return rows
}

func runVerifyCommand(_ map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagString(flags["trace"], "trace"))
	findings := glyphtab.Verify(glyphtab.Default())
	for _, err := range findings {
		pterm.Error.Println(err)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
	pterm.Success.Printf("%d entries agree with the Unicode character database\n", glyphtab.Default().Len())
}

func runCoverageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagString(flags["trace"], "trace"))
	path := args["font"].Value
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	missing, err := fontload.Coverage(f.SFNT, nil)
	if err != nil {
		fatalf("%v", err)
	}
	name := f.Fontname
	if name == "" {
		name = path
	}
	if len(missing) == 0 {
		pterm.Success.Printf("%s covers all presentation forms\n", name)
		return
	}
	pterm.Warning.Printf("%s lacks %d presentation forms\n", name, len(missing))
	fmt.Println(termout.Codepoints(missing))
	os.Exit(2)
}
