package sinhala

import (
	"errors"
	"fmt"
	"io"
)

// RuleKind tells the transliterator how the text of a rule composes with its
// neighbours. Glyph tables use Literal rules only.
type RuleKind uint8

const (
	Literal   RuleKind = iota // emit Text verbatim
	Consonant                 // base consonant, may take a vowel sign or a virama
	Vowel                     // independent vowel, or dependent sign after a consonant
	Modifier                  // anusvara/visarga, closes a pending consonant
)

func (k RuleKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	case Modifier:
		return "modifier"
	}
	return fmt.Sprintf("RuleKind(%d)", k)
}

// Rule is one immutable key → value association of a mapping table.
//
// Key is the surface form to match. Text is the replacement, or for vowels
// the independent vowel letter. Sign is the dependent vowel sign used after a
// consonant; an empty Sign denotes the inherent vowel. Medial is the conjunct
// form a consonant takes directly after another consonant (rakaransaya,
// yansaya); it is empty for ordinary consonants.
type Rule struct {
	Key    string
	Kind   RuleKind
	Text   string
	Sign   string
	Medial string
}

// sameValue is true if r and other map their key to identical output.
func (r Rule) sameValue(other Rule) bool {
	return r.Kind == other.Kind && r.Text == other.Text &&
		r.Sign == other.Sign && r.Medial == other.Medial
}

// Errors reported while loading a table. Conversion functions never fail.
var (
	ErrEmptyKey        = errors.New("rule with empty key")
	ErrConflictingRule = errors.New("conflicting rules for key")
	ErrInvalidRule     = errors.New("invalid rule")
)

func (r Rule) validate() error {
	if r.Key == "" {
		return ErrEmptyKey
	}
	switch r.Kind {
	case Literal, Modifier:
		if r.Sign != "" || r.Medial != "" {
			return fmt.Errorf("%w %q: %s rule carries a sign or medial", ErrInvalidRule, r.Key, r.Kind)
		}
	case Consonant:
		if r.Text == "" {
			return fmt.Errorf("%w %q: consonant without text", ErrInvalidRule, r.Key)
		}
		if r.Sign != "" {
			return fmt.Errorf("%w %q: consonant carries a vowel sign", ErrInvalidRule, r.Key)
		}
	case Vowel:
		if r.Text == "" {
			return fmt.Errorf("%w %q: vowel without independent form", ErrInvalidRule, r.Key)
		}
		if r.Medial != "" {
			return fmt.Errorf("%w %q: vowel carries a medial form", ErrInvalidRule, r.Key)
		}
	default:
		return fmt.Errorf("%w %q: unknown kind %d", ErrInvalidRule, r.Key, r.Kind)
	}
	return nil
}

// RuleReader yields rules one-by-one, in declaration order.
// It should return io.EOF when the stream is exhausted.
type RuleReader interface {
	Next() (Rule, error)
}

// ExceptionReader yields whole-word exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, replacement string, err error)
}

// RuleList is a RuleReader over an in-memory slice.
type RuleList struct {
	rules []Rule
	index int
}

// NewRuleList returns a reader yielding rules in slice order.
func NewRuleList(rules []Rule) *RuleList {
	return &RuleList{rules: rules}
}

func (l *RuleList) Next() (Rule, error) {
	if l.index >= len(l.rules) {
		return Rule{}, io.EOF
	}
	r := l.rules[l.index]
	l.index++
	return r, nil
}
