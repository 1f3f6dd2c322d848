package sinhala

import (
	"sort"
	"unicode/utf8"
)

// Class is the shaping category of a codepoint, as far as the legacy codec
// is concerned. The classification is a fixed table over the Sinhala block;
// the codec never infers a category from codepoint arithmetic.
type Class uint8

const (
	ClassOther     Class = iota // not Sinhala, or not relevant for reordering
	ClassConsonant              // base consonant
	ClassVowel                  // independent vowel letter
	ClassVirama                 // al-lakuna, U+0DCA
	ClassJoiner                 // ZWJ / ZWNJ
	ClassModifier               // candrabindu, anusvara, visarga
	ClassSignPost               // dependent vowel sign drawn right of, above or below the base
	ClassSignPre                // dependent vowel sign drawn left of the base
	ClassSignSplit              // dependent vowel sign with a left and a right part
)

const (
	zwj    = '\u200D'
	zwnj   = '\u200C'
	virama = '\u0DCA'
	ra     = '\u0DBB'
	ya     = '\u0DBA'
	kombu  = '\u0DD9' // ෙ
)

var sinhalaClasses = map[rune]Class{
	'\u0D81': ClassModifier, '\u0D82': ClassModifier, '\u0D83': ClassModifier,
	'\u0DCA': ClassVirama,
	'\u0DCF': ClassSignPost, // ා
	'\u0DD0': ClassSignPost, // ැ
	'\u0DD1': ClassSignPost, // ෑ
	'\u0DD2': ClassSignPost, // ි
	'\u0DD3': ClassSignPost, // ී
	'\u0DD4': ClassSignPost, // ු
	'\u0DD6': ClassSignPost, // ූ
	'\u0DD8': ClassSignPost, // ෘ
	'\u0DDF': ClassSignPost, // ෟ
	'\u0DF2': ClassSignPost, // ෲ
	'\u0DF3': ClassSignPost, // ෳ
	'\u0DD9': ClassSignPre,   // ෙ
	'\u0DDB': ClassSignPre,   // ෛ
	'\u0DDA': ClassSignSplit, // ේ
	'\u0DDC': ClassSignSplit, // ො
	'\u0DDD': ClassSignSplit, // ෝ
	'\u0DDE': ClassSignSplit, // ෞ
	zwj:      ClassJoiner,
	zwnj:     ClassJoiner,
}

func init() {
	for r := rune(0x0D85); r <= 0x0D96; r++ {
		sinhalaClasses[r] = ClassVowel
	}
	for r := rune(0x0D9A); r <= 0x0DC6; r++ {
		switch r {
		case 0x0DB2, 0x0DBC, 0x0DBE, 0x0DBF: // unassigned
			continue
		}
		sinhalaClasses[r] = ClassConsonant
	}
}

// ClassOf returns the shaping class of r.
func ClassOf(r rune) Class {
	return sinhalaClasses[r] // zero value is ClassOther
}

// splitSign describes the visual parts of a two-part vowel sign. The left
// part is always the kombuva.
type splitSign struct {
	sign rune
	post string
}

var splitSigns = []splitSign{
	{'\u0DDA', "\u0DCA"},       // ේ = ෙ + ්
	{'\u0DDC', "\u0DCF"},       // ො = ෙ + ා
	{'\u0DDD', "\u0DCF\u0DCA"}, // ෝ = ෙ + ා + ්
	{'\u0DDE', "\u0DDF"},       // ෞ = ෙ + ෟ
}

var splitPost = make(map[rune]string, len(splitSigns))

// splitByPostLen holds the split signs ordered by decreasing length of the
// right part, so that recomposition tries ා් before ා.
var splitByPostLen []splitSign

func init() {
	for _, s := range splitSigns {
		splitPost[s.sign] = s.post
	}
	splitByPostLen = append(splitByPostLen, splitSigns...)
	sort.SliceStable(splitByPostLen, func(i, j int) bool {
		return utf8.RuneCountInString(splitByPostLen[i].post) > utf8.RuneCountInString(splitByPostLen[j].post)
	})
}

// composeSplit returns the two-part sign whose right part is a prefix of
// rest, together with the length of that right part in runes.
func composeSplit(rest []rune) (rune, int) {
	for _, s := range splitByPostLen {
		post := []rune(s.post)
		if len(post) > len(rest) {
			continue
		}
		match := true
		for i, r := range post {
			if rest[i] != r {
				match = false
				break
			}
		}
		if match {
			return s.sign, len(post)
		}
	}
	return 0, 0
}
