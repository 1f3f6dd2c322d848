package preview

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sinhala/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeLegacy},
		{"dl_manel_legacy", ModeLegacy},
		{"legacy", ModeLegacy},
		{" unicode ", ModeUnicode},
	}
	for _, tt := range tests {
		m, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, m, tt.in)
	}
	_, err := ParseMode("utf8")
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	engine := tables.Default()
	out := Compute(engine, "  lankaawa ", "")
	assert.Equal(t, ModeLegacy, out.Mode)
	assert.Equal(t, "  ලන්කාව ", out.Unicode)
	assert.Equal(t, "  ,kaldj ", out.Legacy)
	assert.Equal(t, ",kaldj", out.Insert)
	assert.Equal(t, out.Legacy, out.Display)
	assert.True(t, out.CanInsert())
	//
	out = Compute(engine, "lankaawa\n", ModeUnicode)
	assert.Equal(t, "ලන්කාව", out.Insert)
	assert.Equal(t, ",kaldj\n", out.Legacy)
}

func TestComputeEmpty(t *testing.T) {
	for _, roman := range []string{"", "   ", "\n\t"} {
		out := Compute(tables.Default(), roman, ModeUnicode)
		assert.False(t, out.CanInsert(), "input %q", roman)
		assert.Equal(t, "", out.Insert)
	}
	out := Compute(tables.Default(), "", ModeLegacy)
	assert.Equal(t, Placeholder, out.Display)
	assert.Equal(t, "පෙරදසුන මෙහි දිස්වනු ඇත.", DecodePasted(tables.Default(), out.Display))
}

func TestDecodePasted(t *testing.T) {
	engine := tables.Default()
	assert.Equal(t, "", DecodePasted(engine, ""))
	assert.Equal(t, "", DecodePasted(engine, " \t\n"))
	assert.Equal(t, "ලන්කාව", DecodePasted(engine, ",kaldj"))
}
