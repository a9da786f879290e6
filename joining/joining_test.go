package joining

import (
	"testing"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	beh   = 'ب'
	alef  = 'ا'
	dal   = 'د'
	fatha = 'َ'
)

func TestDetermineForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	tab := glyphtab.Default()
	tests := []struct {
		prev, next rune
		form       glyphtab.Form
	}{
		{beh, beh, glyphtab.Medial},
		{alef, beh, glyphtab.Initial},
		{beh, 'x', glyphtab.Final},
		{beh, None, glyphtab.Final},
		{alef, 'x', glyphtab.Isolated},
		{dal, None, glyphtab.Isolated},
		{'x', beh, glyphtab.Initial},
		{None, beh, glyphtab.Initial},
		{' ', '.', glyphtab.Isolated},
		{None, None, glyphtab.Isolated},
		{fatha, beh, glyphtab.Medial},
		{fatha, None, glyphtab.Final},
	}
	for _, tc := range tests {
		if got := DetermineForm(tab, tc.prev, tc.next); got != tc.form {
			t.Errorf("DetermineForm(%U, %U) = %s, want %s", tc.prev, tc.next, got, tc.form)
		}
	}
}

func TestShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	s := NewShaper(nil)
	tests := []struct {
		name string
		in   []rune
		out  []rune
	}{
		{"empty", []rune{}, []rune{}},
		{"isolated beh", []rune{beh}, []rune{'ﺏ'}},
		{"beh among latin", []rune{'a', beh, 'b'}, []rune{'a', 'ﺏ', 'b'}},
		{"two behs", []rune{beh, beh}, []rune{'ﺑ', 'ﺐ'}},
		{"three behs", []rune{beh, beh, beh}, []rune{'ﺑ', 'ﺒ', 'ﺐ'}},
		{"beh alef", []rune{beh, alef}, []rune{'ﺑ', 'ﺎ'}},
		{"alef breaks run", []rune{beh, alef, beh}, []rune{'ﺑ', 'ﺎ', 'ﺏ'}},
		{"alef before run", []rune{alef, beh, beh}, []rune{'ﺍ', 'ﺑ', 'ﺐ'}},
		{"diacritic inside run", []rune{beh, fatha, beh}, []rune{'ﺑ', fatha, 'ﺐ'}},
		{"space splits words", []rune{beh, ' ', beh}, []rune{'ﺏ', ' ', 'ﺏ'}},
		{"lam-alef ligature", []rune{'ﻻ'}, []rune{'ﻻ'}},
		{"beh + lam-alef", []rune{beh, 'ﻻ'}, []rune{'ﺑ', 'ﻼ'}},
		{"lam-alef + beh", []rune{'ﻻ', beh}, []rune{'ﻻ', 'ﺏ'}},
		{"tatweel", []rune{beh, 'ـ', beh}, []rune{'ﺑ', 'ـ', 'ﺐ'}},
		{"digits", []rune{beh, ' ', '1', '2', '3'}, []rune{'ﺏ', ' ', '3', '2', '1'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Shape(tc.in)
			if string(got) != string(tc.out) {
				t.Errorf("Shape(%U) = %U, want %U", tc.in, got, tc.out)
			}
		})
	}
}

func TestShapeDoesNotModifyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	in := []rune{beh, beh, '4', '2'}
	_ = NewShaper(glyphtab.New()).Shape(in)
	if string(in) != string([]rune{beh, beh, '4', '2'}) {
		t.Errorf("input has been modified: %U", in)
	}
}

func TestShaperTable(t *testing.T) {
	tab := glyphtab.New()
	if NewShaper(tab).Table() != tab {
		t.Error("expected shaper to use injected table")
	}
	var zero Shaper
	if zero.Table() != glyphtab.Default() {
		t.Error("expected zero shaper to use default table")
	}
}

func TestReverseDigitRuns(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"123", "321"},
		{"a123b", "a321b"},
		{"12 345", "21 543"},
		{"1", "1"},
		{"x1y22z333", "x1y22z333"},
		{"2024-10-14", "4202-01-41"},
		{"abc", "abc"},
		{"١٢", "١٢"}, // Arabic-Indic digits are left alone
		{"1.5", "1.5"},
		{"10.25", "01.52"},
	}
	for _, tc := range tests {
		got := string(ReverseDigitRuns([]rune(tc.in)))
		if got != tc.out {
			t.Errorf("ReverseDigitRuns(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func FuzzShape(f *testing.F) {
	f.Add("")
	f.Add("بب")
	f.Add("بَب 12")
	f.Add("\xff")
	f.Add("abc ١٢٣ 456")
	s := NewShaper(nil)
	f.Fuzz(func(t *testing.T, in string) {
		text := []rune(in)
		out := s.Shape(text)
		if len(out) != len(text) {
			t.Fatalf("shaping changed length: %d -> %d", len(text), len(out))
		}
		for i, r := range text {
			if !s.Table().Has(r) && !isDigit(r) && out[i] != r {
				t.Errorf("codepoint %U at %d was not passed through, got %U", r, i, out[i])
			}
		}
	})
}
