package tables

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sinhala"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglishToUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	tests := []struct {
		latin string
		want  string
	}{
		{"", ""},
		{"   ", "   "},
		{"amma", "අම්ම"},
		{"rata", "රට"},
		{"gedhara", "ගෙදර"},
		{"mahaththayaa", "මහත්තයා"},
		{"kaema", "කැම"},
		{"kramaya", "ක්\u200dරමය"},
		{"si\\nhala", "සිංහල"},
		{"k\\zSha", "ක්\u200dෂ"},
		{"shrii lankaawa", "ශ්\u200dරී ලන්කාව"},
		{"sri", "ශ්\u200dරී"},
		{"ayubowan", "ආයුබෝවන්"},
		{"a A", "අ ඇ"},
		{"123 k", "123 ක්"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SinglishToUnicode(tt.latin), "input %q", tt.latin)
	}
}

func TestSinglishFollowsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	table := Default().Singlish.Table()
	rule := func(key string) sinhala.Rule {
		r, n, ok := table.Match(key)
		require.True(t, ok, "no rule for %q", key)
		require.Equal(t, len(key), n, "rule for %q", key)
		return r
	}
	const virama = "\u0dca"
	tests := []struct {
		latin string
		want  string
	}{
		{"lankaawa", rule("l").Text + rule("a").Sign + rule("n").Text + virama +
			rule("k").Text + rule("aa").Sign + rule("w").Text + rule("a").Sign},
		{"kra", rule("k").Text + rule("r").Medial + rule("a").Sign},
		{"si\\nhala", rule("s").Text + rule("i").Sign + rule(`\n`).Text +
			rule("h").Text + rule("a").Sign + rule("l").Text + rule("a").Sign},
		{"aa", rule("aa").Text},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SinglishToUnicode(tt.latin), "input %q", tt.latin)
	}
}

// The sample sentence shown by the preview panel before anything is typed.
const (
	sampleUnicode = "පෙරදසුන මෙහි දිස්වනු ඇත."
	sampleLegacy  = "fmroiqk fuys Èiajkq we;'"
)

func TestLegacyRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	tests := []struct {
		unicode string
		legacy  string
	}{
		{sampleUnicode, sampleLegacy},
		{"ශ්\u200dරී ලංකාව", "Y%S ,xldj"},
		{"ලන්කාව", ",kaldj"},
		{"කොළඹ", "fld<U"},
		{"ගෝල", "f.da,"},
		{"මෛත්\u200dරී", "ffu;%S"},
		{"ධර්\u200dම", "Ou¾"},
		{"ඓ", "ft"},
		{"කුරුල්ලා", "l=re,a,d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.legacy, UnicodeToLegacy(tt.unicode), "encoding %q", tt.unicode)
		assert.Equal(t, tt.unicode, LegacyToUnicode(tt.legacy), "decoding %q", tt.legacy)
	}
}

func TestLegacyLossy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	assert.Equal(t, "re", UnicodeToLegacy("රැ"))
	assert.Equal(t, "රු", LegacyToUnicode("re"))
	// only yansaya, rakaransaya and repaya keep their joiner
	assert.Equal(t, "laI", UnicodeToLegacy("ක්\u200dෂ"))
	assert.Equal(t, "ක්ෂ", LegacyToUnicode("laI"))
	// no glyph
	assert.Equal(t, "ඏ", UnicodeToLegacy("ඏ"))
	assert.Equal(t, "", UnicodeToLegacy(""))
	assert.Equal(t, "", LegacyToUnicode(""))
}

func TestLegacyBytes(t *testing.T) {
	b, err := sinhala.EncodeLegacyBytes(UnicodeToLegacy("ධර්\u200dම"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'O', 'u', 0xBE}, b)
	s, err := sinhala.DecodeLegacyBytes(b)
	require.NoError(t, err)
	assert.Equal(t, "ධර්\u200dම", LegacyToUnicode(s))
	_, err = sinhala.EncodeLegacyBytes(UnicodeToLegacy("ඏ"))
	assert.Error(t, err)
}

func TestBackendsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sinhala")
	defer teardown()
	//
	trie, err := NewEngine(sinhala.WithBackend(sinhala.BackendTrie))
	require.NoError(t, err)
	dat := Default()
	for _, latin := range []string{
		"lankaawa", "shrii lankaawa", "nndhunu", "KNaanaya", "GNaanaya",
		"Thaththa", "au", "oo", "RR", "e)", "kai", "si\\nhala",
	} {
		u := dat.Singlish.Transliterate(latin)
		assert.Equal(t, u, trie.Singlish.Transliterate(latin), "transliterating %q", latin)
		l := dat.Legacy.ToLegacy(u)
		assert.Equal(t, l, trie.Legacy.ToLegacy(u), "encoding %q", u)
		assert.Equal(t, dat.Legacy.ToUnicode(l), trie.Legacy.ToUnicode(l), "decoding %q", l)
	}
}

func TestEmbeddedTables(t *testing.T) {
	e := Default()
	assert.Equal(t, "rules: singlish", e.Singlish.Table().Identifier)
	assert.Equal(t, 4, e.Singlish.Table().MaxKeyLen()) // nndh
	assert.Equal(t, []string{"a", "a)", "aa", "ae", "ai", "au"},
		e.Singlish.Table().Completions("a"))
	r, n, ok := e.Legacy.Glyphs().Match("W!x")
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ඌ", r.Text)
}

func TestSourcesAreCopies(t *testing.T) {
	src := SinglishSource()
	require.NotEmpty(t, src)
	for i := range src {
		src[i] = '%'
	}
	assert.NotEqual(t, src, SinglishSource())
	glyphs := DLManelSource()
	require.NotEmpty(t, glyphs)
	glyphs[0] = 'x'
	assert.NotEqual(t, glyphs[0], DLManelSource()[0])
	_, err := NewEngine()
	assert.NoError(t, err)
}

func FuzzTransliterate(f *testing.F) {
	for _, seed := range []string{"", "lankaawa", "shrii lankaawa", "k\\zSha", "nndhunu", "\xff a"} {
		f.Add(seed)
	}
	e := Default()
	f.Fuzz(func(t *testing.T, latin string) {
		u := e.SinglishToUnicode(latin)
		l := e.UnicodeToLegacy(u)
		back := e.LegacyToUnicode(l)
		if utf8.ValidString(latin) {
			assert.True(t, utf8.ValidString(u), "transliterating %q", latin)
			assert.True(t, utf8.ValidString(l), "encoding %q", u)
			assert.True(t, utf8.ValidString(back), "decoding %q", l)
		}
	})
}

func FuzzCodec(f *testing.F) {
	for _, seed := range []string{"", sampleUnicode, sampleLegacy, "ධර්\u200dම", "ෙෙ", "\u200d\u200c", "\xbe"} {
		f.Add(seed)
	}
	e := Default()
	f.Fuzz(func(t *testing.T, text string) {
		l := e.UnicodeToLegacy(text)
		u := e.LegacyToUnicode(text)
		if utf8.ValidString(text) {
			assert.True(t, utf8.ValidString(l), "encoding %q", text)
			assert.True(t, utf8.ValidString(u), "decoding %q", text)
		}
	})
}
