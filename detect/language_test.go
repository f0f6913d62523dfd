package detect_test

import (
	"testing"

	"tangled.org/ashwam.app/langid/detect"
)

// ====================================================================================
// LATIN DECISION LIST - RULE ORDER AND BOUNDARIES
// ====================================================================================

func TestLatinRuleBoundaries(t *testing.T) {
	d := detect.NewDetector()

	t.Run("StrongHindiNeedsStrictMajority", func(t *testing.T) {
		// 3 Hindi hits vs 1 English hit: exactly 3x is not enough for
		// the strong-Hindi rule, so the text lands on mixed instead.
		res := d.Detect("t", "Today mausam bahut accha hai")
		if res.PrimaryLanguage != detect.LangMixed {
			t.Errorf("got %q, want mixed", res.PrimaryLanguage)
		}
	})

	t.Run("StrongHindiAboveMajority", func(t *testing.T) {
		// 4 Hindi hits vs 1 English hit clears the 3x bar.
		res := d.Detect("t", "Hello mujhe aaj khushi ho rahi hai")
		if res.PrimaryLanguage != detect.LangHinglish {
			t.Errorf("got %q, want hinglish", res.PrimaryLanguage)
		}
	})

	t.Run("BothSubstantialBeatsBalanced", func(t *testing.T) {
		// One hit on each side at ratio 0.2: the both-substantial rule
		// fires before the balanced code-switch rule gets a look.
		res := d.Detect("t", "mera house is so big")
		if res.PrimaryLanguage != detect.LangMixed {
			t.Errorf("got %q, want mixed", res.PrimaryLanguage)
		}
	})

	t.Run("HindiRatioExactlyPointTwo", func(t *testing.T) {
		// hindi_ratio == 0.2 with no English evidence: too low for the
		// hindi-leaning rule (strict >), caught by the trace rule.
		res := d.Detect("t", "mera blorp fleeb glorp snarf")
		if res.PrimaryLanguage != detect.LangHinglish {
			t.Errorf("got %q, want hinglish", res.PrimaryLanguage)
		}
		if ev := res.Evidence; ev.HindiLexiconRatio != 0.2 {
			t.Errorf("hi_lexicon_ratio: got %v, want 0.2", ev.HindiLexiconRatio)
		}
	})

	t.Run("HindiTraceAlone", func(t *testing.T) {
		// A single faint Hindi hit with no English evidence still reads
		// as hinglish via the trace rule.
		res := d.Detect("t", "kal brunch splendid vibes overall banter chatter")
		if ev := res.Evidence; ev.HindiLexiconHits != 1 {
			t.Fatalf("hi hits: got %d, want 1", ev.HindiLexiconHits)
		}
		if res.PrimaryLanguage != detect.LangHinglish {
			t.Errorf("got %q, want hinglish", res.PrimaryLanguage)
		}
	})

	t.Run("TracesOnBothSides", func(t *testing.T) {
		// Faint evidence on both sides resolves to mixed.
		res := d.Detect("t", "kal brunch splendid vibes overall banter chatter gossip the snacks")
		if res.PrimaryLanguage != detect.LangMixed {
			t.Errorf("got %q, want mixed", res.PrimaryLanguage)
		}
	})

	t.Run("FallbackLongText", func(t *testing.T) {
		// No lexicon evidence at all: ten or more characters default to
		// English, fewer stay unknown.
		long := d.Detect("t", "xylophone quartz")
		if long.PrimaryLanguage != detect.LangEnglish {
			t.Errorf("long: got %q, want en", long.PrimaryLanguage)
		}

		short := d.Detect("t", "xyzzy")
		if short.PrimaryLanguage != detect.LangUnknown {
			t.Errorf("short: got %q, want unknown", short.PrimaryLanguage)
		}
	})
}

// ====================================================================================
// SCRIPT-DRIVEN DECISIONS
// ====================================================================================

func TestScriptDrivenLanguage(t *testing.T) {
	d := detect.NewDetector()

	t.Run("DevanagariIsDecisive", func(t *testing.T) {
		// Lexicon hits are irrelevant once the script is Devanagari.
		res := d.Detect("t", "नमस्ते दुनिया")
		if res.PrimaryLanguage != detect.LangHindi {
			t.Errorf("got %q, want hi", res.PrimaryLanguage)
		}
	})

	t.Run("DevanagariTooShort", func(t *testing.T) {
		// Three Devanagari characters clear the unknown floor but not the
		// five-character bar for Hindi.
		res := d.Detect("t", "नमस")
		if res.PrimaryLanguage != detect.LangUnknown {
			t.Errorf("got %q, want unknown", res.PrimaryLanguage)
		}
		if res.Script != detect.ScriptDevanagari {
			t.Errorf("script: got %q, want devanagari", res.Script)
		}
	})

	t.Run("SingleLatinCharContaminates", func(t *testing.T) {
		// One Latin letter in Devanagari text flips the script to mixed.
		res := d.Detect("t", "नमस्ते a")
		if res.Script != detect.ScriptMixed {
			t.Errorf("script: got %q, want mixed", res.Script)
		}
		if res.PrimaryLanguage != detect.LangMixed {
			t.Errorf("language: got %q, want mixed", res.PrimaryLanguage)
		}
	})

	t.Run("MixedScriptAlwaysMixedLanguage", func(t *testing.T) {
		res := d.Detect("t", "Hello नमस्ते how are you")
		if res.PrimaryLanguage != detect.LangMixed {
			t.Errorf("got %q, want mixed", res.PrimaryLanguage)
		}
	})

	t.Run("OtherScriptIsUnknown", func(t *testing.T) {
		for _, text := range []string{"한국어 텍스트", "こんにちは世界です", "Привет мир"} {
			res := d.Detect("t", text)
			if res.Script != detect.ScriptOther {
				t.Errorf("%q: script got %q, want other", text, res.Script)
			}
			if res.PrimaryLanguage != detect.LangUnknown {
				t.Errorf("%q: language got %q, want unknown", text, res.PrimaryLanguage)
			}
		}
	})

	t.Run("DigitsDoNotCountAsScript", func(t *testing.T) {
		// Digits raise the character total without contributing to either
		// script family.
		res := d.Detect("t", "abc 123")
		if res.Script != detect.ScriptLatin {
			t.Errorf("script: got %q, want latin", res.Script)
		}
		if ev := res.Evidence; ev.LatinRatio != 0.5 {
			t.Errorf("latin_ratio: got %v, want 0.5", ev.LatinRatio)
		}
	})
}

// ====================================================================================
// NOISE HANDLING
// ====================================================================================

func TestNoiseDegradation(t *testing.T) {
	d := detect.NewDetector()

	t.Run("EmojiOnly", func(t *testing.T) {
		for _, text := range []string{"😀", "😀😁😂", "🚀🌍"} {
			res := d.Detect("t", text)
			if res.PrimaryLanguage != detect.LangUnknown || res.Confidence != 0.0 {
				t.Errorf("%q: got (%q, %v), want (unknown, 0.0)", text, res.PrimaryLanguage, res.Confidence)
			}
		}
	})

	t.Run("NumericOnly", func(t *testing.T) {
		for _, text := range []string{"123", "12 34 56", "+91-98765", "99.5%"} {
			res := d.Detect("t", text)
			if res.PrimaryLanguage != detect.LangUnknown || res.Confidence != 0.0 {
				t.Errorf("%q: got (%q, %v), want (unknown, 0.0)", text, res.PrimaryLanguage, res.Confidence)
			}
		}
	})

	t.Run("VeryShort", func(t *testing.T) {
		for _, text := range []string{"", "  ", "ab", " hi "} {
			res := d.Detect("t", text)
			if res.Confidence > 0.1+confTolerance {
				t.Errorf("%q: confidence %v, want <= 0.1", text, res.Confidence)
			}
		}
	})

	t.Run("EmojiBesideText", func(t *testing.T) {
		// Emoji mixed into real text is not emoji-only noise.
		res := d.Detect("t", "mujhe aaj bahut khushi ho rahi hai 😀")
		if res.PrimaryLanguage != detect.LangHinglish {
			t.Errorf("got %q, want hinglish", res.PrimaryLanguage)
		}
		if res.Confidence == 0.0 {
			t.Error("confidence must not collapse to 0 for emoji beside text")
		}
	})
}
