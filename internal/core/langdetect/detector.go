// Package langdetect wraps the lingua language classification engine behind a
// small adapter plus a pure confidence ranker
package langdetect

import (
	"github.com/pemistahl/lingua-go"
)

// Candidate is one language with the engine's confidence in it
// order within a candidate set is unspecified; ranking is Rank's job
type Candidate struct {
	Language   string
	Confidence float64
}

// Detector adapts a lingua.LanguageDetector to the classification ports
// construction preloads the models so per-request calls never block on I/O
type Detector struct {
	inner lingua.LanguageDetector
}

// New builds a Detector over the full Supported set
func New() *Detector { return NewWithLanguages(Supported) }

// NewWithLanguages builds a Detector over an explicit language set
func NewWithLanguages(langs []lingua.Language) *Detector {
	det := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithPreloadedLanguageModels().
		Build()
	return &Detector{inner: det}
}

// DetectPrimary returns the most likely language for text
// ok is false when the engine cannot confidently assign any language,
// which is a normal outcome for short or ambiguous input
func (d *Detector) DetectPrimary(text string) (string, bool) {
	l, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return Code(l), true
}

// ConfidenceValues returns one candidate per configured language
func (d *Detector) ConfidenceValues(text string) []Candidate {
	vals := d.inner.ComputeLanguageConfidenceValues(text)
	out := make([]Candidate, 0, len(vals))
	for _, v := range vals {
		out = append(out, Candidate{
			Language:   Code(v.Language()),
			Confidence: v.Value(),
		})
	}
	return out
}
