package glyphtab

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Verify cross-checks a table against the Unicode character database.
//
// For every slot of every entry, the presentation codepoint must be an Arabic
// character named for the form it stands for and must decompose (NFKD) to the
// same sequence as the entry's common codepoint. Slots holding the common
// codepoint itself (diacritics, Tatweel, ligature isolated forms) are exempt.
// Non-connecting entries must reuse their isolated glyph as initial and their
// final glyph as medial form. Finally every Lam-Alef ligature must be present
// and decompose to Lam plus its Alef variant.
//
// Verify returns nil if no discrepancies are found.
func Verify(t *Table) []error {
	var errs []error
	for _, e := range t.Entries() {
		errs = append(errs, verifyEntry(e)...)
	}
	for _, alef := range []rune{'\u0622', '\u0623', '\u0625', '\u0627'} {
		if err := verifyLigature(t, alef); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		tracer().Infof("shaping table verification: %d finding(s)", len(errs))
	}
	return errs
}

func verifyEntry(e GlyphEntry) []error {
	var errs []error
	if !e.ConnectsForward {
		if e.Forms[Initial] != e.Forms[Isolated] {
			errs = append(errs, fmt.Errorf("%U: non-connecting letter has distinct initial form %U", e.Common, e.Forms[Initial]))
		}
		if e.Forms[Medial] != e.Forms[Final] {
			errs = append(errs, fmt.Errorf("%U: non-connecting letter has distinct medial form %U", e.Common, e.Forms[Medial]))
		}
	}
	base := norm.NFKD.String(string(e.Common))
	for f := Isolated; f < FormCount; f++ {
		g := e.Forms[f]
		if g == 0 {
			errs = append(errs, fmt.Errorf("%U: %s form missing", e.Common, f))
			continue
		}
		if g == e.Common {
			continue
		}
		name := runenames.Name(g)
		if !strings.Contains(name, "ARABIC") {
			errs = append(errs, fmt.Errorf("%U: %s form %U is not an Arabic character (%q)", e.Common, f, g, name))
			continue
		}
		if d := norm.NFKD.String(string(g)); d != base {
			errs = append(errs, fmt.Errorf("%U: %s form %U decomposes to %+q, expected %+q", e.Common, f, g, d, base))
		}
		named, ok := formFromName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%U: %s form %U is not a presentation form (%q)", e.Common, f, g, name))
			continue
		}
		if want := expectedNamedForm(e, f); named != want {
			errs = append(errs, fmt.Errorf("%U: %s slot holds %U, a %s form", e.Common, f, g, named))
		}
	}
	return errs
}

// expectedNamedForm is the form the Unicode name of slot f has to carry, taking
// the reuse rules for letters lacking distinct forms into account.
func expectedNamedForm(e GlyphEntry, f Form) Form {
	want := f
	if !e.ConnectsForward {
		switch f {
		case Initial:
			want = Isolated
		case Medial:
			want = Final
		}
	}
	if want == Final && e.Forms[Final] == e.Forms[Isolated] { // e.g. Hamza
		want = Isolated
	}
	return want
}

func formFromName(name string) (Form, bool) {
	switch {
	case strings.Contains(name, "ISOLATED FORM"):
		return Isolated, true
	case strings.Contains(name, "FINAL FORM"):
		return Final, true
	case strings.Contains(name, "INITIAL FORM"):
		return Initial, true
	case strings.Contains(name, "MEDIAL FORM"):
		return Medial, true
	}
	return Isolated, false
}

func verifyLigature(t *Table, alef rune) error {
	lig, ok := Ligature(alef)
	if !ok {
		return fmt.Errorf("%U: no Lam-Alef ligature", alef)
	}
	e, ok := t.Lookup(lig)
	if !ok {
		return fmt.Errorf("%U: ligature %U missing from table", alef, lig)
	}
	if e.ConnectsForward {
		return fmt.Errorf("%U: ligature must not connect forward", lig)
	}
	want := norm.NFKD.String(string([]rune{Lam, alef}))
	if d := norm.NFKD.String(string(lig)); d != want {
		return fmt.Errorf("%U: ligature decomposes to %+q, expected %+q", lig, d, want)
	}
	return nil
}
