package glyphtab

import (
	"github.com/go-text/typesetting/language"
)

// Unshapeable lists the distinct codepoints of text which are in Arabic script
// but have no entry in t, in order of first occurrence. These will pass through
// shaping unchanged (e.g., Persian Peh or Arabic-Indic digits).
// Codepoints from the presentation form blocks are not reported, as they
// are already shaped.
func Unshapeable(text []rune, t *Table) []rune {
	var out []rune
	seen := make(map[rune]struct{})
	for _, r := range text {
		if t.Has(r) || isPresentationForm(r) {
			continue
		}
		if language.LookupScript(r) != language.Arabic {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func isPresentationForm(r rune) bool {
	return (r >= 0xFB50 && r <= 0xFDFF) || // Arabic Presentation Forms-A
		(r >= 0xFE70 && r <= 0xFEFF) // Arabic Presentation Forms-B
}
