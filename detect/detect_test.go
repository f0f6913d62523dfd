package detect_test

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"tangled.org/ashwam.app/langid/detect"
)

const confTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < confTolerance
}

// ====================================================================================
// END-TO-END CLASSIFICATION
// ====================================================================================

func TestDetectClassification(t *testing.T) {
	d := detect.NewDetector()

	cases := []struct {
		name       string
		text       string
		lang       detect.Language
		script     detect.Script
		confidence float64
	}{
		// Clean single-script texts
		{"PureEnglishShort", "Hello world", detect.LangEnglish, detect.ScriptLatin, 0.65},
		{"PureEnglishLong", "Today I went to the market and bought some vegetables", detect.LangEnglish, detect.ScriptLatin, 0.9},
		{"PureHindiShort", "नमस्ते दुनिया", detect.LangHindi, detect.ScriptDevanagari, 0.55},
		{"PureHindiLong", "आज मौसम बहुत अच्छा है और मैं खुश हूं", detect.LangHindi, detect.ScriptDevanagari, 0.7},

		// Romanized Hindi
		{"HinglishDense", "mujhe aaj bahut khushi ho rahi hai", detect.LangHinglish, detect.ScriptLatin, 0.95},
		{"HinglishShort", "yaar aaj kya plan hai", detect.LangHinglish, detect.ScriptLatin, 0.85},
		{"HinglishWithGreeting", "Hello mujhe aaj khushi ho rahi hai", detect.LangHinglish, detect.ScriptLatin, 0.95},
		{"HinglishVerbChain", "kya kar rahe ho aaj kal", detect.LangHinglish, detect.ScriptLatin, 0.9},
		{"HinglishSparse", "zindagi ek safar hai suhana", detect.LangHinglish, detect.ScriptLatin, 0.65},

		// Code-switched texts
		{"MixedLatinOnly", "Today mausam bahut accha hai", detect.LangMixed, detect.ScriptLatin, 0.45},
		{"MixedBothLexicons", "I am feeling bahut accha today", detect.LangMixed, detect.ScriptLatin, 0.55},
		{"MixedScripts", "Hello नमस्ते how are you", detect.LangMixed, detect.ScriptMixed, 0.4},
		{"MixedScriptsTrace", "नमस्ते a", detect.LangMixed, detect.ScriptMixed, 0.15},

		// Noise
		{"SingleEmoji", "😀", detect.LangUnknown, detect.ScriptOther, 0.0},
		{"MultipleEmoji", "😀😁😂", detect.LangUnknown, detect.ScriptOther, 0.0},
		{"DigitsOnly", "123", detect.LangUnknown, detect.ScriptOther, 0.0},
		{"DigitsWithSpaces", "12 34 56", detect.LangUnknown, detect.ScriptOther, 0.0},
		{"PhoneNumber", "+91-98765", detect.LangUnknown, detect.ScriptOther, 0.0},
		{"Empty", "", detect.LangUnknown, detect.ScriptOther, 0.1},
		{"WhitespaceOnly", "   ", detect.LangUnknown, detect.ScriptOther, 0.1},
		{"VeryShort", "ab", detect.LangUnknown, detect.ScriptLatin, 0.1},
		{"ShortNoEvidence", "abc", detect.LangUnknown, detect.ScriptLatin, 0.2},
		{"LettersAndDigits", "abc 123", detect.LangUnknown, detect.ScriptLatin, 0.2},

		// Scripts outside both families
		{"Korean", "한국어 텍스트", detect.LangUnknown, detect.ScriptOther, 0.2},
		{"Japanese", "こんにちは世界です", detect.LangUnknown, detect.ScriptOther, 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := d.Detect("t", tc.text)

			if res.PrimaryLanguage != tc.lang {
				t.Errorf("language: got %q, want %q", res.PrimaryLanguage, tc.lang)
			}
			if res.Script != tc.script {
				t.Errorf("script: got %q, want %q", res.Script, tc.script)
			}
			if !almostEqual(res.Confidence, tc.confidence) {
				t.Errorf("confidence: got %v, want %v", res.Confidence, tc.confidence)
			}
			if res.ID != "t" {
				t.Errorf("id: got %q, want %q", res.ID, "t")
			}
		})
	}
}

// ====================================================================================
// EVIDENCE BUNDLE
// ====================================================================================

func TestDetectEvidence(t *testing.T) {
	d := detect.NewDetector()

	t.Run("PureEnglish", func(t *testing.T) {
		ev := d.Detect("t", "Hello world").Evidence

		if ev.LatinRatio != 1.0 || ev.DevanagariRatio != 0.0 {
			t.Errorf("ratios: got latin=%v dev=%v", ev.LatinRatio, ev.DevanagariRatio)
		}
		if ev.TotalTokens != 2 || ev.AlnumTokens != 2 {
			t.Errorf("tokens: got %d/%d, want 2/2", ev.TotalTokens, ev.AlnumTokens)
		}
		if ev.HindiLexiconHits != 0 || ev.EnglishStopwordHits != 1 {
			t.Errorf("hits: got hi=%d en=%d, want 0/1", ev.HindiLexiconHits, ev.EnglishStopwordHits)
		}
		if !almostEqual(ev.EnglishStopwordRatio, 0.5) {
			t.Errorf("en ratio: got %v, want 0.5", ev.EnglishStopwordRatio)
		}
	})

	t.Run("SharedShortForms", func(t *testing.T) {
		// "to" sits in both lexicons, so it raises both hit counts.
		ev := d.Detect("t", "Today I went to the market and bought some vegetables").Evidence

		if ev.HindiLexiconHits != 1 {
			t.Errorf("hi hits: got %d, want 1", ev.HindiLexiconHits)
		}
		if ev.EnglishStopwordHits != 5 {
			t.Errorf("en hits: got %d, want 5", ev.EnglishStopwordHits)
		}
	})

	t.Run("DevanagariTokens", func(t *testing.T) {
		// Combining vowel signs are not word characters, so conjunct forms
		// split into multiple tokens and none of them is ASCII-alphanumeric.
		ev := d.Detect("t", "नमस्ते दुनिया").Evidence

		if ev.TotalTokens != 5 {
			t.Errorf("n_tokens: got %d, want 5", ev.TotalTokens)
		}
		if ev.AlnumTokens != 0 {
			t.Errorf("n_alnum_tokens: got %d, want 0", ev.AlnumTokens)
		}
		if ev.HindiLexiconRatio != 0.0 || ev.EnglishStopwordRatio != 0.0 {
			t.Errorf("ratios with no alnum tokens must be 0.0, got %v/%v", ev.HindiLexiconRatio, ev.EnglishStopwordRatio)
		}
	})

	t.Run("MixedScriptCounts", func(t *testing.T) {
		ev := d.Detect("t", "Hello नमस्ते how are you").Evidence

		if !almostEqual(ev.LatinRatio, 0.7) || !almostEqual(ev.DevanagariRatio, 0.3) {
			t.Errorf("ratios: got latin=%v dev=%v, want 0.7/0.3", ev.LatinRatio, ev.DevanagariRatio)
		}
		if ev.TotalTokens != 6 || ev.AlnumTokens != 4 {
			t.Errorf("tokens: got %d/%d, want 6/4", ev.TotalTokens, ev.AlnumTokens)
		}
		if !almostEqual(ev.EnglishStopwordRatio, 1.0) {
			t.Errorf("en ratio: got %v, want 1.0", ev.EnglishStopwordRatio)
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ev := d.Detect("t", "").Evidence

		if ev != (detect.Evidence{}) {
			t.Errorf("empty text must produce zero evidence, got %+v", ev)
		}
	})
}

// ====================================================================================
// JSON SHAPE
// ====================================================================================

func TestResultJSONShape(t *testing.T) {
	d := detect.NewDetector()
	res := d.Detect("entry_42", "mujhe aaj bahut khushi ho rahi hai")

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"id", "primary_language", "script", "confidence", "evidence"} {
		if _, ok := top[key]; !ok {
			t.Errorf("result missing field %q", key)
		}
	}
	if len(top) != 5 {
		t.Errorf("result has %d fields, want 5", len(top))
	}

	var ev map[string]json.RawMessage
	if err := json.Unmarshal(top["evidence"], &ev); err != nil {
		t.Fatalf("evidence unmarshal failed: %v", err)
	}

	want := []string{
		"latin_ratio", "devanagari_ratio",
		"hi_lexicon_hits", "en_stopword_hits",
		"n_tokens", "n_alnum_tokens",
		"hi_lexicon_ratio", "en_stopword_ratio",
	}
	for _, key := range want {
		if _, ok := ev[key]; !ok {
			t.Errorf("evidence missing field %q", key)
		}
	}
	if len(ev) != len(want) {
		t.Errorf("evidence has %d fields, want %d", len(ev), len(want))
	}
}

// ====================================================================================
// INVARIANTS
// ====================================================================================

var invariantCorpus = []string{
	"Hello world",
	"Today I went to the market and bought some vegetables",
	"नमस्ते दुनिया",
	"आज मौसम बहुत अच्छा है और मैं खुश हूं",
	"mujhe aaj bahut khushi ho rahi hai",
	"yaar aaj kya plan hai",
	"Today mausam bahut accha hai",
	"Hello नमस्ते how are you",
	"I am feeling bahut accha today",
	"😀", "123", "", "   ", "ab",
	"한국어 텍스트",
	"kya kar rahe ho aaj kal",
	"Life is beautiful",
	"a b c d e f g h i j k l m n o p",
	"!!! ??? ...",
}

func TestConfidenceBounds(t *testing.T) {
	d := detect.NewDetector()

	for _, text := range invariantCorpus {
		res := d.Detect("t", text)

		if res.Confidence < 0.0 || res.Confidence > 1.0 {
			t.Errorf("%q: confidence %v outside [0,1]", text, res.Confidence)
		}
		if res.Confidence > 0.95+confTolerance {
			t.Errorf("%q: confidence %v exceeds 0.95 cap", text, res.Confidence)
		}
		if res.PrimaryLanguage == detect.LangMixed && res.Confidence > 0.85+confTolerance {
			t.Errorf("%q: mixed confidence %v exceeds 0.85 cap", text, res.Confidence)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	d := detect.NewDetector()

	for _, text := range invariantCorpus {
		first := d.Detect("t", text)
		second := d.Detect("t", text)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("%q: repeated detection differs:\n%+v\n%+v", text, first, second)
		}
	}
}

func TestDetectConcurrent(t *testing.T) {
	d := detect.NewDetector()

	reference := make([]detect.Result, len(invariantCorpus))
	for i, text := range invariantCorpus {
		reference[i] = d.Detect("t", text)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, text := range invariantCorpus {
				if res := d.Detect("t", text); !reflect.DeepEqual(res, reference[i]) {
					t.Errorf("%q: concurrent result differs", text)
				}
			}
		}()
	}
	wg.Wait()
}
