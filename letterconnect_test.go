package letterconnect

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/letterconnect/glyphtab"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type TransformTestEnviron struct {
	suite.Suite
	tr *Transformer
}

// listen for 'go test' command --> run test methods
func TestTransformFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	suite.Run(t, new(TransformTestEnviron))
}

// run once, before test suite methods
func (env *TransformTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("letterconnect").SetTraceLevel(tracing.LevelError)
	env.tr = New(glyphtab.New())
	tracing.Select("letterconnect").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *TransformTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *TransformTestEnviron) TestEmptyInput() {
	env.Equal("", env.tr.Transform(""))
	env.Empty(env.tr.TransformRunes(nil))
	env.NotNil(env.tr.TransformRunes(nil), "expected empty, non-nil result")
}

func (env *TransformTestEnviron) TestPassThrough() {
	for _, s := range []string{"hello", "a.b, c!", "Ωμέγα", " \t\n"} {
		env.Equal(s, env.tr.Transform(s), "expected %q to pass through unchanged", s)
	}
}

func (env *TransformTestEnviron) TestIsolatedLetter() {
	env.Equal("ﺏ", env.tr.Transform("ب"))
	env.Equal("x ﺏ y", env.tr.Transform("x ب y"))
}

func (env *TransformTestEnviron) TestForwardJoin() {
	env.Equal("ﺑﺐ", env.tr.Transform("بب"), "expected initial+final")
	env.Equal("ﺑﺒﺒﺐ", env.tr.Transform("بببب"), "expected initial+medial+medial+final")
	// Alef does not connect forward: the Beh following it starts over
	env.Equal("ﺑﺎﺑﺐ", env.tr.Transform("بابب"))
}

func (env *TransformTestEnviron) TestDiacriticTransparency() {
	env.Equal("ﺑَﺐ", env.tr.Transform("بَب"))
	env.Equal("ﺑَّﺒﺐ", env.tr.Transform("بَّبب"))
}

func (env *TransformTestEnviron) TestLigature() {
	env.Equal("ﻻ", env.tr.Transform("لا"), "expected isolated Lam-Alef")
	env.Equal("ﺳﻼ", env.tr.Transform("سلا"), "expected final Lam-Alef after Seen")
	env.Equal("ﻻﺏ", env.tr.Transform("لاب"), "Lam-Alef must not connect forward")
	env.Equal("ﻛﻞ", env.tr.Transform("كل"), "expected trailing Lam in final form")
	env.Equal("ﻝ", env.tr.Transform("ل"), "expected lone Lam in isolated form")
	env.Equal("ﻟﻼ", env.tr.Transform("للا"))
}

func (env *TransformTestEnviron) TestDigitReversal() {
	env.Equal("ﻋﺎﻡ 4202", env.tr.Transform("عام 2024"))
	env.Equal("x01y052", env.tr.Transform("x10y250"), "runs must be reversed independently")
	env.Equal("ab321cd", env.tr.Transform("ab123cd"))
}

func (env *TransformTestEnviron) TestTransformRunesLeavesInput() {
	in := []rune("لا 12")
	orig := string(in)
	_ = env.tr.TransformRunes(in)
	env.Equal(orig, string(in), "input must not be modified")
}

func (env *TransformTestEnviron) TestTransformSource() {
	for _, s := range []string{"", "السلام عليكم 2024", "abc"} {
		got, err := env.tr.TransformSource(strings.NewReader(s))
		env.Require().NoError(err)
		env.Equal(env.tr.Transform(s), got)
	}
}

func (env *TransformTestEnviron) TestTransformSourceErrors() {
	_, err := env.tr.TransformSource(nil)
	env.ErrorIs(err, ErrNilRuneSource)
	_, err = env.tr.TransformSource(&failingSource{text: []rune("بب"), err: errBroken})
	env.ErrorIs(err, errBroken, "expected source error to be wrapped")
}

func (env *TransformTestEnviron) TestTable() {
	env.Same(glyphtab.Default(), New(nil).Table())
	tab := glyphtab.New()
	env.Same(tab, New(tab).Table())
}

// --- Helpers ---------------------------------------------------------------

var errBroken = errors.New("broken source")

type failingSource struct {
	text []rune
	err  error
}

func (s *failingSource) ReadRune() (rune, int, error) {
	if len(s.text) == 0 {
		return 0, 0, s.err
	}
	r := s.text[0]
	s.text = s.text[1:]
	return r, len(string(r)), nil
}

// --- Plain tests -----------------------------------------------------------

func TestPackageTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	if got := Transform("لا"); got != "ﻻ" {
		t.Errorf("expected Lam-Alef to become U+FEFB, got %+q", got)
	}
	if got := string(TransformRunes([]rune("بب"))); got != "ﺑﺐ" {
		t.Errorf("expected Beh-Beh to become U+FE91 U+FE90, got %+q", got)
	}
}

func FuzzTransform(f *testing.F) {
	f.Add("")
	f.Add("لا")
	f.Add("السلام عليكم")
	f.Add("كَتَبَ 123")
	f.Add("ل")
	f.Add("\xff\xfe")
	f.Add("abc 10.25 def")
	f.Fuzz(func(t *testing.T, s string) {
		in := []rune(s)
		out := TransformRunes(in)
		if len(out) > len(in) {
			t.Errorf("output must not be longer than input: %d > %d", len(out), len(in))
		}
	})
}
