/*
Package sinhala converts between phonetic Latin input ("Singlish"), Unicode
Sinhala and the legacy 8-bit DL-Manel font encoding.

All conversions are driven by static rule tables. A table is streamed in
through a RuleReader, validated and compiled into a frozen trie (a
double-array trie by default). Conversion functions walk the trie to find the
longest rule key at each input position. Tables are read-only after loading,
so a Transliterator or Codec may be shared between goroutines.

Unicode is the canonical intermediate form:

	Singlish --Transliterator--> Unicode --Codec.ToLegacy--> DL-Manel
	DL-Manel --Codec.ToUnicode--> Unicode

The legacy encoding lays out glyphs in visual order, e.g. the kombuva
(U+0DD9) is typed before the consonant it belongs to. The codec reorders
between the two conventions using a fixed classification of Sinhala
codepoints (see Class). Legacy text is lossy relative to Unicode; see Codec
for the known cases.

Package tables provides the production tables and the three plain conversion
functions most callers want.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sinhala

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
