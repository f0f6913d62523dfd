package batch

import (
	"sort"

	"tangled.org/ashwam.app/langid/detect"
	"tangled.org/ashwam.app/langid/internal/jsonl"
	"tangled.org/ashwam.app/langid/internal/types"
)

// Stats aggregates detection results for a run.
type Stats struct {
	Processed        int
	SkippedBlank     int
	SkippedMalformed int

	ByLanguage   map[detect.Language]int
	ByScript     map[detect.Script]int
	ByConfidence map[string]int

	sumConfidence float64
}

// NewStats creates empty statistics.
func NewStats() *Stats {
	return &Stats{
		ByLanguage:   make(map[detect.Language]int),
		ByScript:     make(map[detect.Script]int),
		ByConfidence: make(map[string]int),
	}
}

// Add records one result.
func (s *Stats) Add(res detect.Result) {
	s.Processed++
	s.ByLanguage[res.PrimaryLanguage]++
	s.ByScript[res.Script]++
	s.sumConfidence += res.Confidence

	// Confidence buckets
	conf := res.Confidence
	switch {
	case conf >= 0.8:
		s.ByConfidence["0.80-1.00"]++
	case conf >= 0.6:
		s.ByConfidence["0.60-0.80"]++
	case conf >= 0.4:
		s.ByConfidence["0.40-0.60"]++
	case conf >= 0.2:
		s.ByConfidence["0.20-0.40"]++
	default:
		s.ByConfidence["0.00-0.20"]++
	}
}

// SetSkips copies skip counts from the reader.
func (s *Stats) SetSkips(sk jsonl.SkipCounts) {
	s.SkippedBlank = sk.Blank
	s.SkippedMalformed = sk.Malformed
}

// MeanConfidence returns the average confidence across processed records.
func (s *Stats) MeanConfidence() float64 {
	if s.Processed == 0 {
		return 0
	}
	return s.sumConfidence / float64(s.Processed)
}

// Print writes the distribution report through the logger.
func (s *Stats) Print(logger types.Logger) {
	logger.Println("=== Processing Statistics ===")
	logger.Printf("Total records processed: %d", s.Processed)
	if s.SkippedBlank > 0 || s.SkippedMalformed > 0 {
		logger.Printf("Skipped lines: %d blank, %d malformed", s.SkippedBlank, s.SkippedMalformed)
	}
	logger.Printf("Average confidence: %.3f", s.MeanConfidence())

	if s.Processed == 0 {
		return
	}

	logger.Println("Language distribution:")
	for _, lang := range sortedKeys(s.ByLanguage) {
		count := s.ByLanguage[detect.Language(lang)]
		logger.Printf("  %-10s %d (%.1f%%)", lang, count, float64(count)/float64(s.Processed)*100)
	}

	logger.Println("Script distribution:")
	for _, script := range sortedScriptKeys(s.ByScript) {
		count := s.ByScript[detect.Script(script)]
		logger.Printf("  %-10s %d (%.1f%%)", script, count, float64(count)/float64(s.Processed)*100)
	}
}

func sortedKeys(m map[detect.Language]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

func sortedScriptKeys(m map[detect.Script]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
