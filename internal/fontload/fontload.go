/*
Package fontload loads OpenType fonts and checks them for Arabic presentation
forms.

Output of package letterconnect consists of presentation form codepoints, which
will only render if a font maps them in its cmap. Coverage reports the glyphs
of a shaping table a font is lacking.
*/
package fontload

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'letterconnect.font'
func tracer() tracing.Trace {
	return tracing.Select("letterconnect.font")
}

// ErrNoFont indicates a nil font argument.
var ErrNoFont = errors.New("fontload: no font")

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("fontload: cannot parse %s: %w", fontfile, err)
	}
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
		f.Fontname, err = "", nil
	}
	tracer().Debugf("loaded and parsed SFNT %q", f.Fontname)
	return f, nil
}

// GlyphIndexer maps runes to glyphs. *sfnt.Font implements it.
type GlyphIndexer interface {
	GlyphIndex(b *sfnt.Buffer, r rune) (sfnt.GlyphIndex, error)
}

// Coverage returns, in ascending order, every presentation glyph of table t
// which font does not map to a glyph. If t is nil, the default table is used.
func Coverage(font GlyphIndexer, t *glyphtab.Table) ([]rune, error) {
	if font == nil {
		return nil, ErrNoFont
	}
	if t == nil {
		t = glyphtab.Default()
	}
	var buf sfnt.Buffer
	var missing []rune
	seen := make(map[rune]struct{}, 4*t.Len())
	for _, e := range t.Entries() {
		for _, g := range e.Forms {
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
			gid, err := font.GlyphIndex(&buf, g)
			if err != nil {
				return nil, fmt.Errorf("fontload: looking up %U: %w", g, err)
			}
			if gid == 0 {
				missing = append(missing, g)
			}
		}
	}
	slices.Sort(missing)
	tracer().Debugf("font lacks %d of %d presentation glyphs", len(missing), len(seen))
	return missing, nil
}
