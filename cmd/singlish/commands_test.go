package main

import (
	"errors"
	"testing"

	"github.com/npillmayer/sinhala/preview"
	"github.com/npillmayer/sinhala/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"shrii lankaawa", Command{code: CONVERT, arg: "shrii lankaawa"}},
		{"  amma ", Command{code: CONVERT, arg: "  amma "}},
		{":quit", Command{code: QUIT}},
		{":Q", Command{code: QUIT}},
		{":mode unicode", Command{code: MODE, arg: "unicode"}},
		{":decode fmroiqk fuys", Command{code: DECODE, arg: "fmroiqk fuys"}},
		{":keys  th ", Command{code: KEYS, arg: "th"}},
	}
	for _, tt := range tests {
		cmd, err := parseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, cmd, tt.line)
	}
	_, err := parseCommand(":frobnicate")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func TestExecute(t *testing.T) {
	intp := &Intp{engine: tables.Default(), mode: preview.ModeLegacy}
	err, quit := intp.execute(Command{code: MODE, arg: "unicode"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, preview.ModeUnicode, intp.mode)

	err, _ = intp.execute(Command{code: MODE, arg: "pdf"})
	assert.Error(t, err)
	assert.Equal(t, preview.ModeUnicode, intp.mode)

	err, _ = intp.execute(Command{code: DECODE, arg: "  "})
	assert.Error(t, err)

	err, quit = intp.execute(Command{code: QUIT})
	assert.NoError(t, err)
	assert.True(t, quit)
}
