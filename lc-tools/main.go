package main

import (
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("lc-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for connecting Arabic letters and checking presentation forms.")

	commando.
		Register("shape").
		SetDescription("Transform Arabic text to presentation forms and print the result.").
		SetShortDescription("transform text").
		AddArgument("text", "text to transform (default: read from stdin)", "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0644,U+0627)", commando.String, "-").
		AddFlag("output,o", "output mode: plain|hex|explain", commando.String, "plain").
		AddFlag("warn,w", "report Arabic codepoints without presentation forms", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runShapeCommand)

	commando.
		Register("table").
		SetDescription("Print the shaping table: every letter with its four presentation forms.").
		SetShortDescription("print shaping table").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runTableCommand)

	commando.
		Register("verify").
		SetDescription("Cross-check the shaping table against the Unicode character database.").
		SetShortDescription("verify shaping table").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runVerifyCommand)

	commando.
		Register("coverage").
		SetDescription("List presentation forms of the shaping table which a font does not contain.").
		SetShortDescription("font coverage").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runCoverageCommand)

	commando.Parse(nil)
}
