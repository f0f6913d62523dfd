// detect/tokens.go
package detect

import (
	"strings"
	"unicode"
)

// TokenStats holds tokenization results and lexicon hit counts.
// AlnumTokens retains only plain ASCII alphanumeric tokens; Devanagari
// tokens and tokens with underscores count toward TotalTokens but are
// never matched against a lexicon.
type TokenStats struct {
	Tokens      []string
	TotalTokens int
	AlnumTokens int
	HindiHits   int
	EnglishHits int
}

// isWordChar matches the word-character class used for tokenization:
// letters and digits of any script, plus underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIIAlnum(tok string) bool {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return len(tok) > 0
}

// analyzeTokens splits the case-folded text into maximal word-character
// runs and counts lexicon hits among the ASCII alphanumeric tokens.
func analyzeTokens(text string) TokenStats {
	lower := strings.ToLower(text)

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordChar(r)
	})

	stats := TokenStats{
		Tokens:      tokens,
		TotalTokens: len(tokens),
	}

	for _, tok := range tokens {
		if !isASCIIAlnum(tok) {
			continue
		}
		stats.AlnumTokens++
		if hindiLexicon[tok] {
			stats.HindiHits++
		}
		if englishStopwords[tok] {
			stats.EnglishHits++
		}
	}

	return stats
}
