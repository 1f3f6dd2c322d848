package rulefile

import (
	"bytes"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sinhala"
)

// tracer writes to trace with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

// Load compiles a table from rule file data, including its \exceptions.
//
// Example usage:
//
//	data, _ := os.ReadFile("path/to/singlish.rules")
//	table, err := rulefile.Load("singlish", data)
func Load(name string, data []byte, opts ...sinhala.TableOption) (*sinhala.Table, error) {
	table, err := sinhala.LoadTable(name, NewRuleReader(bytes.NewReader(data)), opts...)
	if err != nil {
		return nil, err
	}
	if err = table.LoadExceptions(NewExceptionReader(bytes.NewReader(data))); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadReader reads all of reader and calls Load.
func LoadReader(name string, reader io.Reader, opts ...sinhala.TableOption) (*sinhala.Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Load(name, data, opts...)
}
