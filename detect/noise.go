// detect/noise.go
package detect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoiseFlags mark inputs that carry no usable language signal.
// They only suppress confidence; they never change the language or
// script decision.
type NoiseFlags struct {
	EmojiOnly   bool
	NumericOnly bool
	VeryShort   bool
}

// isEmoji covers the emoticon, symbol/pictograph, transport and
// regional-indicator (flag) ranges.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF:
		return true
	}
	return false
}

func isNumericNoise(r rune) bool {
	if unicode.IsDigit(r) || unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '+', '.', ',', '%':
		return true
	}
	return false
}

// checkNoise classifies the whitespace-trimmed input.
// VeryShort measures visible characters, not bytes.
func checkNoise(text string) NoiseFlags {
	trimmed := strings.TrimSpace(text)

	flags := NoiseFlags{
		VeryShort: utf8.RuneCountInString(trimmed) < 3,
	}
	if trimmed == "" {
		return flags
	}

	emoji, numeric := true, true
	for _, r := range trimmed {
		if !isEmoji(r) {
			emoji = false
		}
		if !isNumericNoise(r) {
			numeric = false
		}
		if !emoji && !numeric {
			break
		}
	}

	flags.EmojiOnly = emoji
	flags.NumericOnly = numeric
	return flags
}
