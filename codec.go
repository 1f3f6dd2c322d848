package sinhala

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Codec converts between Unicode Sinhala and a legacy glyph encoding such as
// DL-Manel.
//
// The glyph table maps legacy character sequences to Unicode fragments in
// visual order, i.e. the order in which the font draws them. Encoding
// reorders Unicode text from logical to visual order and replaces fragments
// by legacy characters (longest match over the inverted glyph table).
// Decoding does the opposite. Where several legacy sequences share the same
// Unicode fragment, encoding uses the one declared first.
//
// The legacy encoding cannot express everything Unicode can, so a round
// trip is best-effort. Known lossy conversions:
//   - Fragments sharing a glyph decode to the form the table lists for that
//     glyph (in DL-Manel, රැ/රෑ are drawn like රු/රූ and decode as such).
//   - A ZWJ or ZWNJ is dropped unless it is part of a glyph (yansaya,
//     rakaransaya, repaya), so other "touching" conjuncts decode with a
//     plain al-lakuna.
//   - Codepoints without a glyph (e.g. ඏ, ඐ, ෳ) pass through as Unicode.
//   - Latin letters in Unicode input are copied as-is and will render as
//     Sinhala glyphs in a legacy font.
//
// Bytes that are not valid UTF-8 are copied unchanged in both directions and
// split the text around them into independently converted runs.
//
// A Codec holds no per-call state and is safe for concurrent use.
type Codec struct {
	decode *Table // legacy → visual Unicode
	encode *Table // visual Unicode → legacy
}

// NewCodec creates a codec for a glyph table of literal rules keyed by
// legacy character sequences.
func NewCodec(glyphs *Table, opts ...TableOption) (*Codec, error) {
	if glyphs == nil {
		return nil, fmt.Errorf("codec needs a glyph table")
	}
	inverse, err := glyphs.Invert(glyphs.Identifier+" (inverse)", opts...)
	if err != nil {
		return nil, err
	}
	return &Codec{decode: glyphs, encode: inverse}, nil
}

// Glyphs returns the glyph table (legacy → Unicode).
func (c *Codec) Glyphs() *Table {
	return c.decode
}

// ToLegacy converts Unicode Sinhala to legacy text. It never fails.
func (c *Codec) ToLegacy(text string) string {
	if text == "" {
		return ""
	}
	return eachValid(text, func(run string) string {
		visual := toVisual([]rune(norm.NFC.String(run)))
		return substitute(c.encode, string(visual), true)
	})
}

// ToUnicode converts legacy text to Unicode Sinhala. It never fails.
func (c *Codec) ToUnicode(legacy string) string {
	if legacy == "" {
		return ""
	}
	return eachValid(legacy, func(run string) string {
		visual := substitute(c.decode, run, false)
		return norm.NFC.String(string(toLogical([]rune(visual))))
	})
}

// eachValid applies convert to the runs of valid UTF-8 in s and copies
// invalid bytes in between unchanged.
func eachValid(s string, convert func(string) string) string {
	if utf8.ValidString(s) {
		return convert(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size != 1 {
			i += size
			continue
		}
		if start < i {
			b.WriteString(convert(s[start:i]))
		}
		b.WriteByte(s[i])
		i++
		start = i
	}
	if start < len(s) {
		b.WriteString(convert(s[start:]))
	}
	return b.String()
}

// substitute replaces longest matches of table keys by their text and copies
// everything else. With dropJoiners set, unmatched ZWJ/ZWNJ are skipped.
func substitute(table *Table, s string, dropJoiners bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if rule, n, ok := table.Match(s[i:]); ok {
			b.WriteString(rule.Text)
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropJoiners || ClassOf(r) != ClassJoiner {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// clusterLen returns the length of the consonant cluster at the start of
// rs: a consonant followed by any number of yansaya/rakaransaya medials.
func clusterLen(rs []rune) int {
	if len(rs) == 0 || ClassOf(rs[0]) != ClassConsonant {
		return 0
	}
	n := 1
	for n+2 < len(rs) && rs[n] == virama && rs[n+1] == zwj && (rs[n+2] == ya || rs[n+2] == ra) {
		n += 3
	}
	return n
}

// hasRepha reports whether rs starts with ර + al-lakuna + ZWJ.
func hasRepha(rs []rune) bool {
	return len(rs) >= 3 && rs[0] == ra && rs[1] == virama && rs[2] == zwj
}

var repha = []rune{ra, virama, zwj}

// toVisual reorders logical Unicode into the visual order of a legacy font:
// a pre-base sign moves before its consonant cluster, a two-part sign is
// split around it, and a repaya moves behind it.
func toVisual(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+4)
	for i := 0; i < len(rs); {
		rephaAhead := false
		j := i
		if hasRepha(rs[i:]) && clusterLen(rs[i+3:]) > 0 {
			rephaAhead = true
			j += 3
		}
		n := clusterLen(rs[j:])
		if n == 0 {
			out = append(out, rs[i])
			i++
			continue
		}
		cluster := rs[j : j+n]
		j += n
		var sign rune
		if j < len(rs) {
			switch ClassOf(rs[j]) {
			case ClassSignPre, ClassSignSplit:
				sign = rs[j]
				j++
			}
		}
		post, split := splitPost[sign]
		if split {
			out = append(out, kombu)
		} else if sign != 0 {
			out = append(out, sign)
		}
		out = append(out, cluster...)
		if rephaAhead {
			out = append(out, repha...)
		}
		if split {
			out = append(out, []rune(post)...)
		}
		i = j
	}
	return out
}

// toLogical reorders visual-order Unicode, as produced by glyph lookup, back
// into logical order. A pre-base sign without a following consonant is left
// where it is.
func toLogical(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		r := rs[i]
		j := i
		var sign rune
		if ClassOf(r) == ClassSignPre {
			sign = r
			j++
		}
		n := clusterLen(rs[j:])
		if n == 0 {
			out = append(out, r)
			i++
			continue
		}
		cluster := rs[j : j+n]
		j += n
		rephaBehind := hasRepha(rs[j:])
		if rephaBehind {
			j += 3
		}
		if sign == kombu {
			if s, m := composeSplit(rs[j:]); m > 0 {
				sign = s
				j += m
			}
		}
		if rephaBehind {
			out = append(out, repha...)
		}
		out = append(out, cluster...)
		if sign != 0 {
			out = append(out, sign)
		}
		i = j
	}
	return out
}

// EncodeLegacyBytes converts legacy text to the single-byte form used by
// legacy documents (Windows-1252 code page). It fails for characters outside
// the code page, e.g. Unicode Sinhala that had no glyph.
func EncodeLegacyBytes(legacy string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(legacy))
	if err != nil {
		return nil, fmt.Errorf("legacy text not representable in code page: %w", err)
	}
	return b, nil
}

// DecodeLegacyBytes converts single-byte legacy data to legacy text.
func DecodeLegacyBytes(data []byte) (string, error) {
	s, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding legacy bytes: %w", err)
	}
	return string(s), nil
}
