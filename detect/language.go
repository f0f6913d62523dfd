// detect/language.go
package detect

// latinEvidence carries the signals the Latin-script decision list reads.
type latinEvidence struct {
	totalChars   int
	alnumTokens  int
	hindiHits    int
	englishHits  int
	hindiRatio   float64
	englishRatio float64
}

// nonHindiShare is the fraction of alnum tokens that did not hit the
// Hindi lexicon.
func (e latinEvidence) nonHindiShare() float64 {
	div := e.alnumTokens
	if div < 1 {
		div = 1
	}
	return float64(e.alnumTokens-e.hindiHits) / float64(div)
}

// latinRules is the ordered decision list for Latin-script text.
// Rules are evaluated top to bottom and the first rule that fires wins;
// the order and the strictness of every comparison are load-bearing,
// boundary values (e.g. hindiRatio == 0.2 exactly) take different
// branches if either changes. The final rule always fires.
var latinRules = []struct {
	name  string
	apply func(e latinEvidence) (Language, bool)
}{
	{"strong_hindi_presence", func(e latinEvidence) (Language, bool) {
		if e.hindiHits > 3*e.englishHits && e.hindiRatio > 0.3 {
			return LangHinglish, true
		}
		return "", false
	}},
	{"dominant_english", func(e latinEvidence) (Language, bool) {
		if e.englishRatio > 3*e.hindiRatio && e.englishRatio > 0.3 {
			return LangEnglish, true
		}
		return "", false
	}},
	{"both_substantial", func(e latinEvidence) (Language, bool) {
		if e.hindiHits >= 1 && e.englishHits >= 1 &&
			e.englishRatio >= 0.15 && e.hindiRatio >= 0.15 {
			return LangMixed, true
		}
		return "", false
	}},
	{"balanced_code_switch", func(e latinEvidence) (Language, bool) {
		if 0.2 <= e.hindiRatio && e.hindiRatio <= 0.7 &&
			e.nonHindiShare() >= 0.2 && e.alnumTokens >= 4 &&
			e.englishRatio > 0.1 {
			return LangMixed, true
		}
		return "", false
	}},
	{"hindi_leaning", func(e latinEvidence) (Language, bool) {
		if e.hindiRatio > 0.2 {
			if e.englishRatio > 0.1 {
				return LangMixed, true
			}
			return LangHinglish, true
		}
		return "", false
	}},
	{"english_leaning", func(e latinEvidence) (Language, bool) {
		if e.englishRatio > 0.15 {
			if e.hindiRatio > 0.05 {
				return LangMixed, true
			}
			return LangEnglish, true
		}
		return "", false
	}},
	{"hindi_trace", func(e latinEvidence) (Language, bool) {
		if e.hindiRatio > 0.05 {
			if e.englishRatio > 0.05 {
				return LangMixed, true
			}
			return LangHinglish, true
		}
		return "", false
	}},
	{"fallback", func(e latinEvidence) (Language, bool) {
		if e.totalChars >= 10 {
			return LangEnglish, true
		}
		return LangUnknown, true
	}},
}

// decideLanguage infers the primary language from script, character
// counts and lexicon hit statistics.
func decideLanguage(c CharCounts, r Ratios, t TokenStats, script Script) Language {
	if c.Total < 3 || t.TotalTokens == 0 {
		return LangUnknown
	}

	div := t.AlnumTokens
	if div < 1 {
		div = 1
	}
	hindiRatio := float64(t.HindiHits) / float64(div)
	englishRatio := float64(t.EnglishHits) / float64(div)

	switch script {
	case ScriptDevanagari:
		// Devanagari script is decisive evidence of Hindi regardless
		// of lexicon hits.
		if c.Total >= 5 {
			return LangHindi
		}
		return LangUnknown

	case ScriptLatin:
		e := latinEvidence{
			totalChars:   c.Total,
			alnumTokens:  t.AlnumTokens,
			hindiHits:    t.HindiHits,
			englishHits:  t.EnglishHits,
			hindiRatio:   hindiRatio,
			englishRatio: englishRatio,
		}
		for _, rule := range latinRules {
			if lang, ok := rule.apply(e); ok {
				return lang
			}
		}
		return LangUnknown

	case ScriptMixed:
		return LangMixed

	default:
		return LangUnknown
	}
}
