// detect/detect.go
package detect

// Language is the primary language label assigned to a text.
type Language string

const (
	LangEnglish  Language = "en"
	LangHindi    Language = "hi"
	LangHinglish Language = "hinglish"
	LangMixed    Language = "mixed"
	LangUnknown  Language = "unknown"
)

// Script is the writing system detected in a text.
type Script string

const (
	ScriptLatin      Script = "latin"
	ScriptDevanagari Script = "devanagari"
	ScriptMixed      Script = "mixed"
	ScriptOther      Script = "other"
)

// Result is the outcome of detecting one text.
// It is immutable once produced and owned by the caller.
type Result struct {
	ID              string   `json:"id"`
	PrimaryLanguage Language `json:"primary_language"`
	Script          Script   `json:"script"`
	Confidence      float64  `json:"confidence"`
	Evidence        Evidence `json:"evidence"`
}

// Detector classifies short journaling texts into a primary language,
// a script, and a calibrated confidence score.
//
// A Detector holds no mutable state; the two lexicons it reads are
// package-level constants. It is safe for concurrent use.
type Detector struct{}

// NewDetector creates a new detector
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes a single text and returns a complete result.
// It is a pure function of its input: identical input always yields
// an identical result, and it never fails — noisy or empty input
// degrades to "unknown"/"other" with low confidence.
func (d *Detector) Detect(id, text string) Result {
	counts := countScripts(text)
	ratios := computeRatios(counts)
	tokens := analyzeTokens(text)
	noise := checkNoise(text)

	script := decideScript(counts, ratios)
	lang := decideLanguage(counts, ratios, tokens, script)
	confidence := computeConfidence(counts, ratios, tokens, script, lang, noise)

	return Result{
		ID:              id,
		PrimaryLanguage: lang,
		Script:          script,
		Confidence:      confidence,
		Evidence:        gatherEvidence(ratios, tokens),
	}
}
