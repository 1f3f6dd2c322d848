package sinhala

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type TransliteratorTestEnviron struct {
	suite.Suite
	tr *Transliterator
}

func TestTransliterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	suite.Run(t, new(TransliteratorTestEnviron))
}

func fixturePhonemes() []Rule {
	return []Rule{
		{Key: "k", Kind: Consonant, Text: "ක"},
		{Key: "kh", Kind: Consonant, Text: "ඛ"},
		{Key: "t", Kind: Consonant, Text: "ට"},
		{Key: "th", Kind: Consonant, Text: "ත"},
		{Key: "r", Kind: Consonant, Text: "ර", Medial: "්\u200dර"},
		{Key: "a", Kind: Vowel, Text: "අ", Sign: ""},
		{Key: "aa", Kind: Vowel, Text: "ආ", Sign: "ා"},
		{Key: "A", Kind: Vowel, Text: "ඇ", Sign: "ැ"},
		{Key: "i", Kind: Vowel, Text: "ඉ", Sign: "ි"},
		{Key: "o", Kind: Vowel, Text: "ඔ", Sign: "ො"},
		{Key: `\n`, Kind: Modifier, Text: "ං"},
		{Key: `\z`, Kind: Literal, Text: "\u200d"},
	}
}

func (env *TransliteratorTestEnviron) SetupSuite() {
	tracing.Select("sinhala").SetTraceLevel(tracing.LevelError)
	table, err := NewTable("fixture", fixturePhonemes())
	env.Require().NoError(err)
	env.Require().NoError(table.AddException("kat", "කැට"))
	env.tr = NewTransliterator(table)
	tracing.Select("sinhala").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *TransliteratorTestEnviron) TestLongestMatch() {
	env.Equal("තා", env.tr.Transliterate("thaa"))
	env.Equal("ටා", env.tr.Transliterate("taa"))
	env.Equal("ඛ", env.tr.Transliterate("kha"))
}

func (env *TransliteratorTestEnviron) TestComposition() {
	tests := []struct {
		latin string
		want  string
	}{
		{"ka", "ක"},
		{"k", "ක්"},
		{"ki", "කි"},
		{"ko", "කො"},
		{"kt", "ක්ට්"},
		{"kta", "ක්ට"},
		{"kra", "ක්\u200dර"},
		{"kraa", "ක්\u200dරා"},
		{`k\n`, "කං"},
		{`k\zta`, "ක්\u200dට"},
		{"k.", "ක්."},
		{"ra", "ර"},
		{"ia", "ඉඅ"},
	}
	for _, tt := range tests {
		env.Equal(tt.want, env.tr.Transliterate(tt.latin), "input %q", tt.latin)
	}
}

func (env *TransliteratorTestEnviron) TestCaseSensitivity() {
	env.Equal("අ", env.tr.Transliterate("a"))
	env.Equal("ඇ", env.tr.Transliterate("A"))
	env.Equal("කැ", env.tr.Transliterate("kA"))
	env.Equal("K", env.tr.Transliterate("K"))
}

func (env *TransliteratorTestEnviron) TestWhitespaceAndUnmapped() {
	env.Equal("", env.tr.Transliterate(""))
	env.Equal(" \t\n", env.tr.Transliterate(" \t\n"))
	env.Equal("ක  ක\n", env.tr.Transliterate("ka  ka\n"))
	env.Equal("x-1", env.tr.Transliterate("x-1"))
	env.Equal("ක්ö", env.tr.Transliterate("kö"))
}

func (env *TransliteratorTestEnviron) TestExceptions() {
	env.Equal("කැට කැට", env.tr.Transliterate("kat kat"))
	env.Equal("ක ට්", env.tr.Transliterate("ka t"))
	env.Equal("කට්ට්", env.tr.Transliterate("katt"))
}

func (env *TransliteratorTestEnviron) TestNeedsTable() {
	env.Panics(func() { NewTransliterator(nil) })
}

func (env *TransliteratorTestEnviron) TestOutputIsBounded() {
	for _, latin := range []string{"k", "kr", "krrr", "thththth", `\n\n`, "aaaaa", "kAkAkA", `\z\z`} {
		in := utf8.RuneCountInString(latin)
		out := utf8.RuneCountInString(env.tr.Transliterate(latin))
		env.LessOrEqual(out, 3*in, "input %q", latin)
	}
}
