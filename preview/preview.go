// Package preview derives everything a typing front-end shows from the
// current input: the Unicode text, its legacy rendition and the text to
// insert for the selected mode. All values are recomputed from scratch on
// every call; nothing is remembered between calls.
package preview

import (
	"fmt"
	"strings"
)

// Converter is the conversion core as seen by a front-end.
// *tables.Engine implements it.
type Converter interface {
	SinglishToUnicode(latin string) string
	UnicodeToLegacy(text string) string
	LegacyToUnicode(legacy string) string
}

// Mode selects which representation is inserted into a document.
type Mode string

const (
	ModeLegacy  Mode = "dl_manel_legacy" // DL-Manel legacy text (default)
	ModeUnicode Mode = "unicode"
)

// Placeholder is shown in place of the legacy output while there is no
// input yet. It reads "පෙරදසුන මෙහි දිස්වනු ඇත." in a DL-Manel font.
const Placeholder = "fmroiqk fuys Èiajkq we;'"

// ParseMode accepts the mode names used by clients. An empty name selects
// ModeLegacy.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.TrimSpace(s)) {
	case "", ModeLegacy, "legacy":
		return ModeLegacy, nil
	case ModeUnicode:
		return ModeUnicode, nil
	}
	return "", fmt.Errorf("unknown insert mode %q", s)
}

// Output holds the derived values for one input.
type Output struct {
	Mode    Mode   `json:"mode"`
	Unicode string `json:"unicode"`
	Legacy  string `json:"legacy"`
	Insert  string `json:"insert"`  // trimmed text for Mode, may be empty
	Display string `json:"display"` // Legacy, or Placeholder for empty output
}

// CanInsert is false if there is nothing to insert.
func (o Output) CanInsert() bool {
	return o.Insert != ""
}

// Compute converts roman (Singlish) input to Unicode and on to legacy text.
// Both outputs are always computed, regardless of mode.
func Compute(conv Converter, roman string, mode Mode) Output {
	if mode == "" {
		mode = ModeLegacy
	}
	out := Output{Mode: mode}
	out.Unicode = conv.SinglishToUnicode(roman)
	out.Legacy = conv.UnicodeToLegacy(out.Unicode)
	if mode == ModeUnicode {
		out.Insert = strings.TrimSpace(out.Unicode)
	} else {
		out.Insert = strings.TrimSpace(out.Legacy)
	}
	out.Display = out.Legacy
	if out.Display == "" {
		out.Display = Placeholder
	}
	return out
}

// DecodePasted converts pasted legacy text back to Unicode. Blank input
// yields "".
func DecodePasted(conv Converter, legacy string) string {
	if strings.TrimSpace(legacy) == "" {
		return ""
	}
	return conv.LegacyToUnicode(legacy)
}
