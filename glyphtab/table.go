package glyphtab

import (
	"slices"
	"sync"
)

// Form is one of the four positional forms of an Arabic letter.
type Form uint8

const (
	Isolated Form = iota
	Final
	Initial
	Medial
	FormCount
)

func (f Form) String() string {
	switch f {
	case Isolated:
		return "isolated"
	case Final:
		return "final"
	case Initial:
		return "initial"
	case Medial:
		return "medial"
	}
	return "<unknown form>"
}

// GlyphEntry describes one shapeable codepoint.
//
// Forms is always fully populated. Letters without a distinct initial or medial
// presentation form reuse their isolated and final glyph, respectively.
// ConnectsForward tells whether the letter joins to a following letter; it
// influences the form of the next letter only, never the letter's own form.
type GlyphEntry struct {
	Common          rune
	Forms           [FormCount]rune
	ConnectsForward bool
}

// Glyph returns the presentation codepoint for form f.
func (e GlyphEntry) Glyph(f Form) rune {
	if f >= FormCount {
		return e.Forms[Isolated]
	}
	return e.Forms[f]
}

type formRef struct {
	common rune
	form   Form
}

// Table is an immutable mapping from common codepoints to glyph entries.
// A Table is safe for concurrent use.
type Table struct {
	entries map[rune]GlyphEntry
	reverse map[rune]formRef
}

// New builds a fresh shaping table.
func New() *Table {
	t := &Table{
		entries: make(map[rune]GlyphEntry, len(letters)+len(tashkil)+len(lamAlefLigatures)),
		reverse: make(map[rune]formRef, 4*len(letters)),
	}
	for _, l := range letters {
		t.add(l)
	}
	for _, d := range tashkil {
		t.add(letter{d, d, d, d, d, true})
	}
	for _, l := range lamAlefLigatures {
		t.add(l)
	}
	tracer().Debugf("built shaping table with %d entries", len(t.entries))
	return t
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// Default returns the shared shaping table, built at first use.
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

func (t *Table) add(l letter) {
	e := GlyphEntry{
		Common:          l.common,
		Forms:           [FormCount]rune{l.isolated, l.final, l.initial, l.medial},
		ConnectsForward: l.connects,
	}
	t.entries[e.Common] = e
	for f := Isolated; f < FormCount; f++ {
		if _, seen := t.reverse[e.Forms[f]]; !seen {
			t.reverse[e.Forms[f]] = formRef{common: e.Common, form: f}
		}
	}
}

// Lookup returns the entry for codepoint r. Codepoints without an entry are
// not an error; they are passed through unshaped by clients.
func (t *Table) Lookup(r rune) (GlyphEntry, bool) {
	e, ok := t.entries[r]
	return e, ok
}

// Has reports whether r is a key of the table.
func (t *Table) Has(r rune) bool {
	_, ok := t.entries[r]
	return ok
}

// Len is the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries, ordered by common codepoint.
func (t *Table) Entries() []GlyphEntry {
	out := make([]GlyphEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b GlyphEntry) int {
		return int(a.Common) - int(b.Common)
	})
	return out
}

// Describe maps a presentation codepoint back to its entry and form. For glyphs
// occupying more than one slot of an entry, the first slot in the order
// isolated, final, initial, medial is reported.
func (t *Table) Describe(r rune) (GlyphEntry, Form, bool) {
	ref, ok := t.reverse[r]
	if !ok {
		return GlyphEntry{}, Isolated, false
	}
	return t.entries[ref.common], ref.form, true
}

// --- Ligatures -------------------------------------------------------------

// Lam is ARABIC LETTER LAM, the first component of every Lam-Alef ligature.
const Lam rune = '\u0644'

// Ligature returns the common codepoint of the Lam-Alef ligature formed by Lam
// and the Alef variant alef.
func Ligature(alef rune) (rune, bool) {
	switch alef {
	case '\u0622': // Alef with Madda above
		return '\uFEF5', true
	case '\u0623': // Alef with Hamza above
		return '\uFEF7', true
	case '\u0625': // Alef with Hamza below
		return '\uFEF9', true
	case '\u0627': // Alef
		return '\uFEFB', true
	}
	return 0, false
}

// IsAlefVariant reports whether r forms a ligature with a preceding Lam.
func IsAlefVariant(r rune) bool {
	_, ok := Ligature(r)
	return ok
}
