package sinhala

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transliterator converts Singlish, the informal Latin phonetic spelling of
// Sinhala, to Unicode Sinhala text.
//
// Input is scanned left to right. At each position the longest key of the
// phoneme table is matched; characters without a rule are copied unchanged.
// Matching is case-sensitive: "a"/"A" or "t"/"T" may denote different
// phonemes.
//
// Consonants are emitted bare and stay pending until the next token decides
// their vowel:
//
//	k + a   → ක      (inherent vowel, empty sign)
//	k + aa  → කා     (dependent vowel sign)
//	k + r   → ක්‍ර   (medial form of the following consonant)
//	k + \n  → කං     (modifier keeps the inherent vowel)
//	k + t   → ක්ට    (anything else closes with al-lakuna)
//
// Output is always in logical order; reordering for legacy fonts is the
// Codec's concern.
//
// A Transliterator holds no per-call state and is safe for concurrent use.
type Transliterator struct {
	phonemes *Table
}

// NewTransliterator creates a transliterator for a phoneme table.
func NewTransliterator(phonemes *Table) *Transliterator {
	invariant(phonemes != nil, "transliterator needs a phoneme table")
	return &Transliterator{phonemes: phonemes}
}

// Table returns the phoneme table in use.
func (tr *Transliterator) Table() *Table {
	return tr.phonemes
}

// Transliterate converts Singlish text to Unicode Sinhala. It never fails.
func (tr *Transliterator) Transliterate(latin string) string {
	if latin == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(latin) * 2)
	start := -1 // start of the current word, -1 while in whitespace
	for i, r := range latin {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tr.word(&b, latin[start:i])
				start = -1
			}
			b.WriteRune(r)
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tr.word(&b, latin[start:])
	}
	return b.String()
}

// word transliterates a whitespace-free run of input.
func (tr *Transliterator) word(b *strings.Builder, w string) {
	if repl, ok := tr.phonemes.Exception(w); ok {
		b.WriteString(repl)
		return
	}
	pending := false // a consonant waits for its vowel
	closePending := func() {
		if pending {
			b.WriteRune(virama)
			pending = false
		}
	}
	for i := 0; i < len(w); {
		rule, n, ok := tr.phonemes.Match(w[i:])
		if !ok {
			closePending()
			r, size := utf8.DecodeRuneInString(w[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteString(w[i : i+1])
			} else {
				b.WriteRune(r)
			}
			i += size
			continue
		}
		i += n
		switch rule.Kind {
		case Consonant:
			if pending && rule.Medial != "" {
				b.WriteString(rule.Medial)
				continue
			}
			closePending()
			b.WriteString(rule.Text)
			pending = true
		case Vowel:
			if pending {
				b.WriteString(rule.Sign)
				pending = false
			} else {
				b.WriteString(rule.Text)
			}
		case Modifier:
			pending = false
			b.WriteString(rule.Text)
		default:
			closePending()
			b.WriteString(rule.Text)
		}
	}
	closePending()
}
