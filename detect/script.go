// detect/script.go
package detect

// meaningfulShare is the ratio above which a script counts as a
// substantial presence rather than trace noise.
const meaningfulShare = 0.1

// decideScript picks the writing system from character counts and ratios.
//
// A single character of the opposing family tips a dominant script into
// mixed, while trace characters of the same family do not: the table is
// strict about cross-script contamination but tolerant of sparse
// same-family noise.
func decideScript(c CharCounts, r Ratios) Script {
	if c.Total == 0 {
		return ScriptOther
	}

	hasLatinMix := r.Latin > meaningfulShare
	hasDevMix := r.Devanagari > meaningfulShare

	switch {
	case hasLatinMix && hasDevMix:
		return ScriptMixed

	case hasLatinMix || c.Latin > 0:
		if c.Devanagari > 0 {
			return ScriptMixed
		}
		return ScriptLatin

	case hasDevMix || c.Devanagari > 0:
		if c.Latin > 0 {
			return ScriptMixed
		}
		return ScriptDevanagari

	default:
		// CJK, Arabic, pure symbols and anything else outside the
		// Latin/Devanagari families.
		return ScriptOther
	}
}
