/*
Package lamalef folds Lam-Alef pairs into ligatures.

Arabic requires the Lam-Alef ligature whenever Lam is directly followed by an
Alef (plain, or with Madda or Hamza). Folding the pair into the ligature's
common codepoint before shaping lets the shaping pass treat the ligature like
any other non-connecting letter, choosing its isolated or final form from its
neighbours.
*/
package lamalef

import (
	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'letterconnect'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect")
}

// Fold returns a copy of text with every Lam immediately followed by an Alef
// variant replaced by the corresponding Lam-Alef ligature. All other codepoints
// are copied verbatim and in order.
//
// A Lam is held back until the next codepoint is known. If that codepoint is
// not an Alef variant, the Lam is emitted unchanged and the codepoint is
// processed normally; a Lam followed by another Lam therefore emits the first
// one and holds back the second. A Lam at the end of text is emitted as is.
func Fold(text []rune) []rune {
	out := make([]rune, 0, len(text))
	folded := 0
	for i, cur := range text {
		if i > 0 && text[i-1] == glyphtab.Lam {
			if lig, ok := glyphtab.Ligature(cur); ok {
				out = append(out, lig)
				folded++
				continue
			}
			out = append(out, glyphtab.Lam)
		}
		if cur == glyphtab.Lam {
			continue // wait for the next codepoint
		}
		out = append(out, cur)
	}
	if n := len(text); n > 0 && text[n-1] == glyphtab.Lam {
		out = append(out, glyphtab.Lam)
	}
	if folded > 0 {
		tracer().Debugf("folded %d Lam-Alef pair(s)", folded)
	}
	return out
}

// FoldString is Fold for strings.
func FoldString(s string) string {
	return string(Fold([]rune(s)))
}
