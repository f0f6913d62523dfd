// detect/evidence.go
package detect

// Evidence is the auditable signal bundle returned with every result.
// All 8 fields are always present in the JSON encoding.
type Evidence struct {
	LatinRatio           float64 `json:"latin_ratio"`
	DevanagariRatio      float64 `json:"devanagari_ratio"`
	HindiLexiconHits     int     `json:"hi_lexicon_hits"`
	EnglishStopwordHits  int     `json:"en_stopword_hits"`
	TotalTokens          int     `json:"n_tokens"`
	AlnumTokens          int     `json:"n_alnum_tokens"`
	HindiLexiconRatio    float64 `json:"hi_lexicon_ratio"`
	EnglishStopwordRatio float64 `json:"en_stopword_ratio"`
}

// gatherEvidence packages ratios and hit statistics.
// Hit ratios are 0.0 when there are no alnum tokens to divide by.
func gatherEvidence(r Ratios, t TokenStats) Evidence {
	e := Evidence{
		LatinRatio:          r.Latin,
		DevanagariRatio:     r.Devanagari,
		HindiLexiconHits:    t.HindiHits,
		EnglishStopwordHits: t.EnglishHits,
		TotalTokens:         t.TotalTokens,
		AlnumTokens:         t.AlnumTokens,
	}

	if t.AlnumTokens > 0 {
		e.HindiLexiconRatio = float64(t.HindiHits) / float64(t.AlnumTokens)
		e.EnglishStopwordRatio = float64(t.EnglishHits) / float64(t.AlnumTokens)
	}

	return e
}
