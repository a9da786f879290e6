/*
Package glyphtab holds the static shaping table for Arabic letters.

Every shapeable codepoint (the "common" form, as found in ordinary Arabic text)
maps to a [GlyphEntry] carrying its four presentation forms from the Unicode
blocks Arabic Presentation Forms-B, plus a flag telling whether the letter
joins towards a following letter.

The table is immutable. Clients usually use [Default], which is built once per
process; [New] builds a private copy for clients who want to inject a table
explicitly.

Besides the letters of the Arabic block the table contains the Tashkil
diacritics (mapped to themselves, and marked as connecting, so they never break
a joining run), and the four Lam-Alef ligatures. The ligatures never occur in
raw input; they are produced by package lamalef and shaped like any other
non-connecting letter afterwards.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphtab

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'letterconnect.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect.glyphs")
}
