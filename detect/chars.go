// detect/chars.go
package detect

import "unicode"

// CharCounts holds per-script character counts for a text.
// Total counts every non-whitespace character, so digits, punctuation,
// emoji and other-script characters are included.
type CharCounts struct {
	Latin      int
	Devanagari int
	Total      int
}

// Ratios holds the per-script share of non-whitespace characters.
type Ratios struct {
	Latin      float64
	Devanagari float64
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isDevanagari reports whether r falls in the Devanagari Unicode block.
func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// countScripts counts Latin letters, Devanagari characters and
// non-whitespace characters. A character never counts toward both scripts.
func countScripts(text string) CharCounts {
	var c CharCounts
	for _, r := range text {
		switch {
		case isLatinLetter(r):
			c.Latin++
		case isDevanagari(r):
			c.Devanagari++
		}
		if !unicode.IsSpace(r) {
			c.Total++
		}
	}
	return c
}

// computeRatios derives per-script ratios.
// Both ratios are 0.0 when the text has no visible characters.
func computeRatios(c CharCounts) Ratios {
	if c.Total == 0 {
		return Ratios{}
	}
	return Ratios{
		Latin:      float64(c.Latin) / float64(c.Total),
		Devanagari: float64(c.Devanagari) / float64(c.Total),
	}
}
