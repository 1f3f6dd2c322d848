package rulefile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is returned for malformed rule file lines.
var ErrSyntax = errors.New("rule file syntax error")

// splitFields splits a rule line into whitespace-separated fields. A field
// starting with a double quote is a Go string literal and may contain
// whitespace, '%', '}' or escapes such as \u200d.
func splitFields(line string) ([]string, error) {
	var fields []string
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for rest != "" {
		var field string
		if rest[0] == '"' {
			end := closingQuote(rest)
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated string %s", ErrSyntax, rest)
			}
			lit := rest[:end+1]
			s, err := strconv.Unquote(lit)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrSyntax, lit, err)
			}
			field, rest = s, rest[end+1:]
			if rest != "" && !unicode.IsSpace(rune(rest[0])) {
				return nil, fmt.Errorf("%w: missing space after %s", ErrSyntax, lit)
			}
		} else {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			field, rest = rest[:end], rest[end:]
		}
		fields = append(fields, field)
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	}
	return fields, nil
}

// closingQuote returns the index of the quote terminating the literal that
// starts at s[0], or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
