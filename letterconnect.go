package letterconnect

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/letterconnect/joining"
	"github.com/npillmayer/letterconnect/lamalef"
)

// ErrNilRuneSource indicates that the input source is nil.
var ErrNilRuneSource = errors.New("letterconnect: nil rune source")

// RuneSource is the input for [Transformer.TransformSource].
//
// ReadRune returns the next input rune, the rune's byte size in the original
// encoded stream, and an error. A source must return io.EOF to terminate input.
type RuneSource interface {
	ReadRune() (r rune, size int, err error)
}

// Transformer converts Arabic text to presentation forms using a fixed shaping
// table. A Transformer is immutable and safe for concurrent use.
type Transformer struct {
	shaper joining.Shaper
}

// New creates a transformer for a shaping table. If table is nil, the default
// table of package glyphtab is used.
func New(table *glyphtab.Table) *Transformer {
	return &Transformer{shaper: joining.NewShaper(table)}
}

// Table returns the shaping table of the transformer.
func (t *Transformer) Table() *glyphtab.Table {
	return t.shaper.Table()
}

// TransformRunes folds Lam-Alef ligatures, shapes all letters contained in the
// shaping table and reverses runs of ASCII digits. The input is not modified.
func (t *Transformer) TransformRunes(text []rune) []rune {
	if len(text) == 0 {
		return []rune{}
	}
	folded := lamalef.Fold(text)
	return t.shaper.Shape(folded)
}

// Transform is TransformRunes for strings. Invalid UTF-8 is replaced by
// U+FFFD, as with every conversion from string to []rune.
func (t *Transformer) Transform(text string) string {
	if text == "" {
		return ""
	}
	return string(t.TransformRunes([]rune(text)))
}

// TransformSource reads runes from src until io.EOF and transforms them.
//
// The only errors returned are ErrNilRuneSource and errors of src, which are
// wrapped. On a read error, nothing is transformed.
func (t *Transformer) TransformSource(src RuneSource) (string, error) {
	if src == nil {
		return "", ErrNilRuneSource
	}
	var text []rune
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Errorf("reading input after %d runes: %v", len(text), err)
			return "", fmt.Errorf("letterconnect: reading input: %w", err)
		}
		text = append(text, r)
	}
	tracer().Debugf("read %d runes from source", len(text))
	return string(t.TransformRunes(text)), nil
}

// --- Convenience API -------------------------------------------------------

var (
	defaultTransformerOnce sync.Once
	defaultTransformer     *Transformer
)

func std() *Transformer {
	defaultTransformerOnce.Do(func() {
		defaultTransformer = New(nil)
	})
	return defaultTransformer
}

// Transform converts text using the default shaping table.
//
// Example: Lam followed by Alef ("لا") becomes the single isolated Lam-Alef
// ligature U+FEFB.
func Transform(text string) string {
	return std().Transform(text)
}

// TransformRunes converts text using the default shaping table.
func TransformRunes(text []rune) []rune {
	return std().TransformRunes(text)
}
