/*
Package letterconnect connects Arabic letters for rendering.

Text in Arabic script is stored using the "common" codepoints of the Arabic
Unicode block. Renderers without an OpenType shaping engine need the text in
presentation forms instead: every letter in its isolated, initial, medial or
final glyph, depending on its neighbours, and Lam-Alef pairs as ligatures.
This package performs that conversion.

	shaped := letterconnect.Transform("السلام عليكم")

Transformation runs in three steps:

▪︎ Lam followed by an Alef variant is folded into a ligature (package lamalef).

▪︎ Every codepoint in the shaping table (package glyphtab) is replaced by the
presentation form selected from its neighbours (package joining). Codepoints
not in the table, e.g. Latin letters or punctuation, are left unchanged.

▪︎ Runs of ASCII digits are reversed, for renderers which mirror the whole line.

Transformation never fails. There is no bidi reordering apart from the digit
runs; see package golang.org/x/text/unicode/bidi for clients needing UAX #9.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package letterconnect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'letterconnect'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect")
}
