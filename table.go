package sinhala

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Table is a loaded, frozen mapping table.
//
// A table contains:
//   - rules, in declaration order, compiled into a trie index
//   - optional whole-word exceptions (used by the transliterator only).
//
// Lookups prefer the longest key. Keys are unique: a repeated key with the
// same value is ignored (the first declaration wins), a repeated key with a
// different value is rejected when the table is loaded.
type Table struct {
	rules      []Rule
	exceptions map[string]string
	index      ruleIndex
	maxKey     int    // longest key, in runes
	Identifier string // Identifies the table
}

// Token is one longest-match unit of an input string. Rule is the index of
// the matched rule, or -1 for a character no rule matches.
type Token struct {
	Surface string
	Rule    int
	Len     int
}

type tableConfig struct {
	backend string
}

// TableOption configures LoadTable.
type TableOption func(*tableConfig)

// WithBackend selects the lookup backend, BackendDAT (default) or BackendTrie.
func WithBackend(name string) TableOption {
	return func(c *tableConfig) {
		c.backend = name
	}
}

// LoadTable compiles rules from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside this package. Use package
// rulefile to parse rule files and feed this API.
func LoadTable(name string, reader RuleReader, opts ...TableOption) (*Table, error) {
	var conf tableConfig
	for _, opt := range opts {
		opt(&conf)
	}
	index, ok := newIndex(conf.backend)
	if !ok {
		return nil, fmt.Errorf("table %s: unknown lookup backend %q", name, conf.backend)
	}
	t := &Table{
		exceptions: make(map[string]string),
		index:      index,
		Identifier: fmt.Sprintf("rules: %s", name),
	}
	seen := make(map[string]int)
	for {
		rule, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if err = rule.validate(); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if prev, dup := seen[rule.Key]; dup {
			if !t.rules[prev].sameValue(rule) {
				return nil, fmt.Errorf("table %s: %w %q", name, ErrConflictingRule, rule.Key)
			}
			tracer().Debugf("table %s: ignoring repeated rule %q", name, rule.Key)
			continue
		}
		id := len(t.rules)
		if err = t.index.Insert(rule.Key, id); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		seen[rule.Key] = id
		t.rules = append(t.rules, rule)
		t.maxKey = max(t.maxKey, utf8.RuneCountInString(rule.Key))
	}
	t.index.Freeze()
	backend, used, total, maxStateID, fill := t.Stats()
	tracer().Infof("table %s: %d rules, backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		name, len(t.rules), backend, used, total, fill, maxStateID)
	return t, nil
}

// NewTable compiles an in-memory rule list.
func NewTable(name string, rules []Rule, opts ...TableOption) (*Table, error) {
	return LoadTable(name, NewRuleList(rules), opts...)
}

// LoadExceptions loads whole-word exceptions from a streaming source.
// Exceptions must be loaded before the table is shared between goroutines.
func (t *Table) LoadExceptions(reader ExceptionReader) error {
	for {
		word, replacement, err := reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: %w", t.Identifier, err)
		}
		if err = t.AddException(word, replacement); err != nil {
			return err
		}
	}
}

// AddException registers one whole-word exception.
func (t *Table) AddException(word, replacement string) error {
	if word == "" {
		return fmt.Errorf("%s: exception: %w", t.Identifier, ErrEmptyKey)
	}
	if prev, dup := t.exceptions[word]; dup && prev != replacement {
		return fmt.Errorf("%s: exception: %w %q", t.Identifier, ErrConflictingRule, word)
	}
	t.exceptions[word] = replacement
	return nil
}

// Exception returns the replacement registered for word.
func (t *Table) Exception(word string) (string, bool) {
	if t == nil {
		return "", false
	}
	r, ok := t.exceptions[word]
	return r, ok
}

// Match finds the longest rule key that is a prefix of s. It returns the
// rule, the number of bytes consumed, and false if no key matches.
func (t *Table) Match(s string) (Rule, int, bool) {
	id, n := t.match(s)
	if id == absentRule {
		return Rule{}, 0, false
	}
	return t.rules[id], n, true
}

func (t *Table) match(s string) (int, int) {
	if t == nil || t.index == nil || s == "" {
		return absentRule, 0
	}
	return t.index.Longest(s)
}

// Tokenize splits s into longest-match tokens. Characters without a rule
// become single-rune tokens with Rule == -1.
func (t *Table) Tokenize(s string) []Token {
	tokens := make([]Token, 0, len(s))
	for i := 0; i < len(s); {
		id, n := t.match(s[i:])
		if id == absentRule {
			_, n = utf8.DecodeRuneInString(s[i:])
		}
		tokens = append(tokens, Token{Surface: s[i : i+n], Rule: id, Len: n})
		i += n
	}
	return tokens
}

// Rule returns the rule with index id.
func (t *Table) Rule(id int) Rule {
	return t.rules[id]
}

// Rules returns a copy of all rules in declaration order.
func (t *Table) Rules() []Rule {
	rules := make([]Rule, len(t.rules))
	copy(rules, t.rules)
	return rules
}

// Len returns the number of distinct rules.
func (t *Table) Len() int { return len(t.rules) }

// MaxKeyLen returns the length of the longest key, in runes.
func (t *Table) MaxKeyLen() int { return t.maxKey }

// Invert builds the reverse table of a literal table: every rule's Text
// becomes a key mapping back to the rule's Key. Where several keys share
// the same Text, the first-declared key wins.
func (t *Table) Invert(name string, opts ...TableOption) (*Table, error) {
	for _, r := range t.rules {
		if r.Kind != Literal {
			return nil, fmt.Errorf("table %s: %w %q: cannot invert %s rule",
				name, ErrInvalidRule, r.Key, r.Kind)
		}
	}
	first := lo.UniqBy(t.rules, func(r Rule) string {
		return r.Text
	})
	inverse := lo.Map(first, func(r Rule, _ int) Rule {
		return Rule{Key: r.Text, Kind: Literal, Text: r.Key}
	})
	return NewTable(name, inverse, opts...)
}

// Completions lists all rule keys starting with prefix, sorted.
func (t *Table) Completions(prefix string) []string {
	if lister, ok := t.index.(prefixLister); ok {
		return lister.WithPrefix(prefix)
	}
	keys := lo.FilterMap(t.rules, func(r Rule, _ int) (string, bool) {
		return r.Key, strings.HasPrefix(r.Key, prefix)
	})
	sort.Strings(keys)
	return keys
}

// Stats reports density metrics for the underlying lookup index.
func (t *Table) Stats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if t == nil || t.index == nil {
		return "", 0, 0, 0, 0
	}
	stats := t.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}
