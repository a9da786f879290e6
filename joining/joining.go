/*
Package joining implements the contextual shaping pass for Arabic letters.

Every codepoint found in the shaping table is replaced by one of its four
presentation forms, selected from its immediate neighbours. All Arabic letters
may connect to a preceding letter, but only some letters connect to a following
one. Therefore the form of a letter depends on whether its neighbours are
shapeable at all, and on whether the previous letter connects forward:

	previous   next     previous connects   form
	shapeable  shapeable       yes          medial
	shapeable  shapeable       no           initial
	shapeable  other           yes          final
	shapeable  other           no           isolated
	other      shapeable        -           initial
	other      other            -           isolated

The letter's own connectivity is irrelevant for its own form; letters lacking
a distinct initial or medial form carry their isolated or final glyph in that
slot.

After shaping, runs of ASCII digits are reversed (see [ReverseDigitRuns]).
*/
package joining

import (
	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'letterconnect'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect")
}

// None denotes a missing neighbour at the start or end of text.
const None rune = -1

// DetermineForm selects the form for a shapeable codepoint, given its previous
// and next neighbour. Use None for neighbours outside of the text.
func DetermineForm(t *glyphtab.Table, prev, next rune) glyphtab.Form {
	p, hasPrev := t.Lookup(prev)
	hasNext := t.Has(next)
	switch {
	case hasPrev && hasNext:
		if p.ConnectsForward {
			return glyphtab.Medial
		}
		return glyphtab.Initial
	case hasPrev:
		if p.ConnectsForward {
			return glyphtab.Final
		}
		return glyphtab.Isolated
	case hasNext:
		return glyphtab.Initial
	}
	return glyphtab.Isolated
}

// Shaper runs the shaping pass with a given shaping table.
type Shaper struct {
	table *glyphtab.Table
}

// NewShaper creates a shaper for table t. If t is nil, the default table is used.
func NewShaper(t *glyphtab.Table) Shaper {
	if t == nil {
		t = glyphtab.Default()
	}
	return Shaper{table: t}
}

// Table returns the shaping table in use.
func (s Shaper) Table() *glyphtab.Table {
	if s.table == nil {
		return glyphtab.Default()
	}
	return s.table
}

// Shape replaces every shapeable codepoint of text with its contextual
// presentation form and reverses ASCII digit runs afterwards. text is expected
// to have Lam-Alef pairs folded already. Codepoints without a table entry are
// copied unchanged. The input is not modified.
func (s Shaper) Shape(text []rune) []rune {
	t := s.Table()
	out := make([]rune, len(text))
	shaped := 0
	for i, cur := range text {
		e, ok := t.Lookup(cur)
		if !ok {
			out[i] = cur
			continue
		}
		prev, next := None, None
		if i > 0 {
			prev = text[i-1]
		}
		if i+1 < len(text) {
			next = text[i+1]
		}
		out[i] = e.Glyph(DetermineForm(t, prev, next))
		shaped++
	}
	tracer().Debugf("shaped %d of %d codepoints", shaped, len(text))
	return ReverseDigitRuns(out)
}
