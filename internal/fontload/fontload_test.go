package fontload

import (
	"errors"
	"testing"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

// cmapFont is a fake font mapping every rune except the ones in lacking.
type cmapFont struct {
	lacking map[rune]bool
	err     error
}

func (f cmapFont) GlyphIndex(_ *sfnt.Buffer, r rune) (sfnt.GlyphIndex, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.lacking[r] {
		return 0, nil
	}
	return sfnt.GlyphIndex(r & 0xffff), nil
}

func TestCoverageComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect.font")
	defer teardown()
	//
	missing, err := Coverage(cmapFont{}, nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCoverageMissingLigature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect.font")
	defer teardown()
	//
	font := cmapFont{lacking: map[rune]bool{
		'ﻼ': true,
		'ﻻ': true,
		'ـ': true,
	}}
	missing, err := Coverage(font, glyphtab.Default())
	require.NoError(t, err)
	assert.Equal(t, []rune{'ـ', 'ﻻ', 'ﻼ'}, missing)
}

func TestCoverageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect.font")
	defer teardown()
	//
	_, err := Coverage(nil, nil)
	assert.ErrorIs(t, err, ErrNoFont)
	broken := errors.New("broken cmap")
	_, err = Coverage(cmapFont{err: broken}, nil)
	assert.ErrorIs(t, err, broken)
}

func TestParseGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect.font")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("definitely not a font"))
	assert.Error(t, err)
	_, err = LoadOpenTypeFont("testdata/does-not-exist.ttf")
	assert.Error(t, err)
}
