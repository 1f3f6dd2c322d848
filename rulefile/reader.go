// Package rulefile reads mapping tables from rule files.
//
// A rule file consists of blocks in a TeX-like notation:
//
//	\message{Singlish phonetic scheme}
//	% comment
//	\consonants{
//	k     ක
//	r     ර     "\u0dca\u200d\u0dbb"
//	}
//	\vowels{
//	a     අ     ""
//	aa    ආ     ා
//	}
//	\modifiers{
//	"\\n" ං
//	}
//	\literals{
//	'     .
//	}
//	\exceptions{
//	sri   "ශ්\u200dරී"
//	}
//
// Every line inside a block holds the key followed by the value fields:
// consonants take the letter and an optional medial (conjunct) form, vowels
// the independent letter and the dependent sign ("" for the inherent vowel),
// modifiers and literals a single replacement. Fields are separated by
// whitespace; a field may be written as a Go string literal to include
// whitespace, a leading '%', '"' or '}', or invisible characters. Lines starting
// with '%' are comments.
//
// Rule order within the file is the declaration order of the table.
package rulefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/sinhala"
)

type block int

const (
	noBlock block = iota
	ruleBlock
	exceptionBlock
	unknownBlock
)

var blockKinds = map[string]sinhala.RuleKind{
	"consonants": sinhala.Consonant,
	"vowels":     sinhala.Vowel,
	"modifiers":  sinhala.Modifier,
	"literals":   sinhala.Literal,
	"glyphs":     sinhala.Literal,
}

// scanner tracks the block structure of a rule file.
type scanner struct {
	lines      *bufio.Scanner
	lineno     int
	identifier string
	current    block
	kind       sinhala.RuleKind
}

func newScanner(reader io.Reader) *scanner {
	return &scanner{lines: bufio.NewScanner(reader)}
}

// next returns the fields of the next entry line inside a block of the
// wanted type, skipping everything else.
func (s *scanner) next(want block) ([]string, error) {
	for s.lines.Scan() {
		s.lineno++
		line := strings.TrimSpace(s.lines.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if s.current == noBlock {
			if err := s.open(line); err != nil {
				return nil, err
			}
			continue
		}
		if line == "}" {
			s.current = noBlock
			continue
		}
		if s.current != want {
			continue
		}
		fields, err := splitFields(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.lineno, err)
		}
		return fields, nil
	}
	if err := s.lines.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *scanner) open(line string) error {
	if strings.HasPrefix(line, `\message{`) && strings.HasSuffix(line, "}") {
		s.identifier = line[len(`\message{`) : len(line)-1]
		return nil
	}
	if !strings.HasPrefix(line, `\`) || !strings.HasSuffix(line, "{") {
		return fmt.Errorf("line %d: %w: expected block start, have %q", s.lineno, ErrSyntax, line)
	}
	name := line[1 : len(line)-1]
	if name == "exceptions" {
		s.current = exceptionBlock
		return nil
	}
	kind, ok := blockKinds[name]
	if !ok {
		tracer().Infof("rule file: skipping unknown block \\%s", name)
		s.current = unknownBlock
		return nil
	}
	s.current, s.kind = ruleBlock, kind
	return nil
}

// RuleReader streams rules from a rule file. It implements
// sinhala.RuleReader and skips \exceptions blocks.
type RuleReader struct {
	s *scanner
}

// NewRuleReader creates a rule reader on top of reader.
func NewRuleReader(reader io.Reader) *RuleReader {
	return &RuleReader{s: newScanner(reader)}
}

// Identifier returns the \message text of the file, once it has been read.
func (r *RuleReader) Identifier() string {
	return r.s.identifier
}

// Next returns the next rule. It returns io.EOF when exhausted.
func (r *RuleReader) Next() (sinhala.Rule, error) {
	fields, err := r.s.next(ruleBlock)
	if err != nil {
		return sinhala.Rule{}, err
	}
	rule := sinhala.Rule{Key: fields[0], Kind: r.s.kind}
	values := fields[1:]
	switch r.s.kind {
	case sinhala.Consonant:
		if len(values) < 1 || len(values) > 2 {
			return rule, r.arity(rule, "1 or 2")
		}
		rule.Text = values[0]
		if len(values) == 2 {
			rule.Medial = values[1]
		}
	case sinhala.Vowel:
		if len(values) != 2 {
			return rule, r.arity(rule, "2")
		}
		rule.Text, rule.Sign = values[0], values[1]
	default:
		if len(values) != 1 {
			return rule, r.arity(rule, "1")
		}
		rule.Text = values[0]
	}
	return rule, nil
}

func (r *RuleReader) arity(rule sinhala.Rule, want string) error {
	return fmt.Errorf("line %d: %w: %s rule %q needs %s value field(s)",
		r.s.lineno, ErrSyntax, rule.Kind, rule.Key, want)
}
