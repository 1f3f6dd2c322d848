// Package tables holds the production mapping tables: the Singlish phonetic
// scheme and the DL-Manel glyph layout. Both are compiled from rule files
// embedded into the binary.
//
// The package-level conversion functions use a lazily built default Engine.
// Embedded tables are part of the build, so a table that fails to load is a
// programming error and panics.
package tables

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sinhala"
	"github.com/npillmayer/sinhala/rulefile"
)

//go:embed singlish.rules
var singlishRules []byte

//go:embed dlmanel.rules
var dlmanelRules []byte

// SinglishSource returns a copy of the embedded Singlish rule file.
func SinglishSource() []byte {
	return bytes.Clone(singlishRules)
}

// DLManelSource returns a copy of the embedded DL-Manel rule file.
func DLManelSource() []byte {
	return bytes.Clone(dlmanelRules)
}

// tracer writes to trace with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

// Engine bundles a transliterator and a legacy codec built from one set of
// tables. An Engine is immutable and safe for concurrent use.
type Engine struct {
	Singlish *sinhala.Transliterator
	Legacy   *sinhala.Codec
}

// NewEngine compiles the embedded tables with the given options.
func NewEngine(opts ...sinhala.TableOption) (*Engine, error) {
	phonemes, err := rulefile.Load("singlish", singlishRules, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading Singlish table: %w", err)
	}
	glyphs, err := rulefile.Load("dl-manel", dlmanelRules, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading DL-Manel table: %w", err)
	}
	codec, err := sinhala.NewCodec(glyphs, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Singlish: sinhala.NewTransliterator(phonemes),
		Legacy:   codec,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine for the embedded tables with the default lookup
// backend. It is built on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := NewEngine()
		if err != nil {
			panic(fmt.Sprintf("embedded tables: %v", err))
		}
		tracer().Debugf("default engine ready")
		defaultEngine = e
	})
	return defaultEngine
}

// SinglishToUnicode converts Singlish text to Unicode Sinhala.
func (e *Engine) SinglishToUnicode(latin string) string {
	return e.Singlish.Transliterate(latin)
}

// UnicodeToLegacy converts Unicode Sinhala to legacy text.
func (e *Engine) UnicodeToLegacy(text string) string {
	return e.Legacy.ToLegacy(text)
}

// LegacyToUnicode converts legacy text to Unicode Sinhala.
func (e *Engine) LegacyToUnicode(legacy string) string {
	return e.Legacy.ToUnicode(legacy)
}

// SinglishToUnicode converts Singlish text to Unicode Sinhala.
func SinglishToUnicode(latin string) string {
	return Default().Singlish.Transliterate(latin)
}

// UnicodeToLegacy converts Unicode Sinhala to DL-Manel legacy text.
func UnicodeToLegacy(text string) string {
	return Default().Legacy.ToLegacy(text)
}

// LegacyToUnicode converts DL-Manel legacy text to Unicode Sinhala.
func LegacyToUnicode(legacy string) string {
	return Default().Legacy.ToUnicode(legacy)
}
