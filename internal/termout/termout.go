/*
Package termout formats transformation results for the command line tools.
*/
package termout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/letterconnect/glyphtab"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

// Mode selects how a transformed text is printed: the text itself (Plain), as
// a list of U+XXXX (Hex), or as a table of codepoints with form and name
// (Explain).
type Mode uint8

const (
	Plain Mode = iota
	Hex
	Explain
)

// ParseMode interprets a mode name, as used for flags and REPL commands.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "text":
		return Plain, nil
	case "hex", "codepoints":
		return Hex, nil
	case "explain", "table":
		return Explain, nil
	}
	return Plain, fmt.Errorf("unsupported output mode %q (expected plain|hex|explain)", s)
}

// Codepoints formats text as space separated U+XXXX list.
func Codepoints(text []rune) string {
	parts := make([]string, len(text))
	for i, r := range text {
		parts[i] = fmt.Sprintf("%U", r)
	}
	return strings.Join(parts, " ")
}

// ExplainRows describes every codepoint of shaped text: index, codepoint,
// common letter and selected form (if it is a presentation form of t), and the
// Unicode name. The first row is a header.
func ExplainRows(t *glyphtab.Table, shaped []rune) [][]string {
	rows := make([][]string, 0, len(shaped)+1)
	rows = append(rows, []string{"Index", "Codepoint", "Letter", "Form", "Name"})
	for i, r := range shaped {
		letter, form := "-", "-"
		if e, f, ok := t.Describe(r); ok {
			letter, form = fmt.Sprintf("%U", e.Common), f.String()
		}
		name := runenames.Name(r)
		if name == "" {
			name = "<unnamed>"
		}
		rows = append(rows, []string{strconv.Itoa(i), fmt.Sprintf("%U", r), letter, form, name})
	}
	return rows
}

// BaseDirection is the direction of the first strong character of text
// (rule P2 of UAX #9), or bidi.Neutral if there is none.
func BaseDirection(text []rune) bidi.Direction {
	for _, r := range text {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.Neutral
}

// DirectionName is a short name for d.
func DirectionName(d bidi.Direction) string {
	switch d {
	case bidi.LeftToRight:
		return "ltr"
	case bidi.RightToLeft:
		return "rtl"
	case bidi.Mixed:
		return "mixed"
	}
	return "neutral"
}

// ParseCodepoints reads a list of codepoints separated by commas or spaces,
// e.g. "U+0644,U+0627" or "0x644 627".
func ParseCodepoints(list string) ([]rune, error) {
	parts := splitCSVSpace(list)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

var errEmptyToken = errors.New("empty codepoint token")

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errEmptyToken
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
