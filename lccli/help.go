package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(strings.TrimPrefix(topic, ":")) {
	case "form", "forms":
		pterm.Info.Println("Presentation forms")
		pterm.Println(`
	Every Arabic letter is replaced by one of four presentation forms,
	depending on its neighbours:
	+----------------------+---------------------+---------+
	| previous connects    | next is a letter    | form    |
	+----------------------+---------------------+---------+
	| no                   | no                  | isolated|
	| no                   | yes                 | initial |
	| yes                  | no                  | final   |
	| yes                  | yes                 | medial  |
	+----------------------+---------------------+---------+
	Diacritics connect to both sides and do not break a word.
	Lam followed by an Alef is replaced by a single ligature.
	`)
	case "mode", "hex", "plain", "explain":
		pterm.Info.Println("Output modes")
		pterm.Println(`
	:plain     print connected text
	:hex       print connected text as U+XXXX codepoints
	:explain   print a table with form and Unicode name of every codepoint
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	<text>             connect the letters of text
	:plain :hex :explain
	                   switch output mode (see :help mode)
	:warn [on|off]     warn about Arabic letters without presentation forms
	:table             print the shaping table
	:describe <cp...>  explain codepoints, e.g. :describe U+FEFB
	:status            print interpreter settings
	:help [forms]      this help
	:quit              leave (or <ctrl>D)
	`)
	}
}
