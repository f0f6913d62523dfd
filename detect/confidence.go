// detect/confidence.go
package detect

import "math"

// computeConfidence produces a bounded [0,1] score from all prior
// stages. The asymmetric caps (0.95 generic, 0.85 for mixed and for
// short hinglish) keep code-switched or sparse-evidence classifications
// from presenting as near-certain.
func computeConfidence(c CharCounts, r Ratios, t TokenStats, script Script, lang Language, noise NoiseFlags) float64 {
	if lang == LangUnknown {
		switch {
		case noise.EmojiOnly || noise.NumericOnly:
			return 0.0
		case noise.VeryShort:
			return 0.1
		default:
			return 0.2
		}
	}

	score := 0.3

	// Length bonus
	if c.Total >= 20 {
		score += 0.2
	} else if c.Total >= 10 {
		score += 0.1
	}

	// Script dominance bonus
	if math.Max(r.Latin, r.Devanagari) > 0.8 {
		score += 0.1
	}

	// Per-language lexicon bonus
	if t.AlnumTokens > 0 {
		hindiRatio := float64(t.HindiHits) / float64(t.AlnumTokens)
		englishRatio := float64(t.EnglishHits) / float64(t.AlnumTokens)

		switch lang {
		case LangHinglish:
			if hindiRatio > 0.4 {
				score += 0.3
			} else if hindiRatio > 0.2 {
				score += 0.15
			}
		case LangEnglish:
			if englishRatio > 0.3 {
				score += 0.2
			} else if englishRatio > 0.15 {
				score += 0.1
			}
		case LangHindi:
			if hindiRatio > 0.1 {
				score += 0.15
			}
		case LangMixed:
			if hindiRatio > 0.3 && englishRatio > 0.3 {
				score += 0.05
			}
		}
	}

	// Noise penalties stack with the bonuses above; the unknown path
	// already returned.
	if noise.VeryShort {
		score -= 0.3
	}
	if noise.EmojiOnly || noise.NumericOnly {
		score -= 0.4
	}

	if lang == LangHinglish && t.TotalTokens < 6 {
		score = math.Min(0.85, score)
	}

	// Clean single-script classification bonus
	if (script == ScriptLatin || script == ScriptDevanagari) &&
		(lang == LangEnglish || lang == LangHindi || lang == LangHinglish) {
		score += 0.1
	}

	// Sparse token penalty
	if t.TotalTokens < 4 {
		score -= 0.15
	} else if t.TotalTokens < 6 {
		score -= 0.05
	}

	if lang == LangMixed {
		score -= 0.1
		score = math.Min(0.85, score)
	} else {
		score = math.Min(0.95, score)
	}

	return math.Max(0.0, score)
}
