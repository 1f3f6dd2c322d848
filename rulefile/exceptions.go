package rulefile

import (
	"fmt"
	"io"
)

// ExceptionReader streams whole-word exceptions from \exceptions{...} blocks
// of a rule file. It implements sinhala.ExceptionReader.
type ExceptionReader struct {
	s *scanner
}

// NewExceptionReader creates an exception reader on top of reader.
func NewExceptionReader(reader io.Reader) *ExceptionReader {
	return &ExceptionReader{s: newScanner(reader)}
}

// Next returns the next exception as (word, replacement).
// It returns io.EOF when exhausted.
func (r *ExceptionReader) Next() (string, string, error) {
	fields, err := r.s.next(exceptionBlock)
	if err != nil {
		return "", "", err
	}
	if len(fields) != 2 {
		return "", "", fmt.Errorf("line %d: %w: exception needs a word and a replacement",
			r.s.lineno, ErrSyntax)
	}
	return fields[0], fields[1], nil
}
