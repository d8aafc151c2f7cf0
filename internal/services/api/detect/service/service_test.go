package service

import (
	"context"
	"errors"
	"testing"

	"lingualog/internal/core/langdetect"
	perr "lingualog/internal/platform/errors"
	"lingualog/internal/services/api/detect/domain"
	historydom "lingualog/internal/services/api/history/domain"
)

type fakeClassifier struct {
	primary    string
	ok         bool
	candidates []langdetect.Candidate
}

func (f *fakeClassifier) DetectPrimary(string) (string, bool) { return f.primary, f.ok }

func (f *fakeClassifier) ConfidenceValues(string) []langdetect.Candidate { return f.candidates }

type fakeWriter struct {
	commits []historydom.CommitInput
	err     error
}

func (f *fakeWriter) Commit(_ context.Context, in historydom.CommitInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.commits = append(f.commits, in)
	return "id-1", nil
}

func frenchClassifier() *fakeClassifier {
	return &fakeClassifier{
		primary: "FRENCH",
		ok:      true,
		candidates: []langdetect.Candidate{
			{Language: "SPANISH", Confidence: 0.2},
			{Language: "FRENCH", Confidence: 0.7},
			{Language: "ITALIAN", Confidence: 0.1},
		},
	}
}

func TestDetect_ShortInputFailsWithoutWrite(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	s := New(frenchClassifier(), w, 5)

	// nine runes after whitespace collapse
	_, err := s.Detect(context.Background(), domain.DetectInput{Text: "  a b c  d  "})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(w.commits) != 0 {
		t.Fatalf("short input must not be persisted, got %d commits", len(w.commits))
	}
}

func TestDetect_NoLanguageIsClientError(t *testing.T) {
	t.Parallel()

	c := frenchClassifier()
	c.ok = false
	w := &fakeWriter{}
	s := New(c, w, 5)

	_, err := s.Detect(context.Background(), domain.DetectInput{Text: "zzzz qqqq xxxx"})
	if !perr.IsCode(err, perr.ErrorCodeNoLanguage) {
		t.Fatalf("expected no-language error, got %v", err)
	}
	if len(w.commits) != 0 {
		t.Fatalf("undetectable input must not be persisted")
	}
}

func TestDetect_RanksAndResolvesConfidence(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	s := New(frenchClassifier(), w, 2)

	resp, err := s.Detect(context.Background(), domain.DetectInput{Text: "le renard brun saute"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.DetectedLanguage != "FRENCH" {
		t.Errorf("detected = %q, want FRENCH", resp.DetectedLanguage)
	}
	if resp.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", resp.Confidence)
	}
	if len(resp.Confidences) != 2 {
		t.Fatalf("confidences len = %d, want 2 (topN)", len(resp.Confidences))
	}
	if resp.Confidences[0].Language != "FRENCH" || resp.Confidences[0].Rank != 1 {
		t.Errorf("top entry = %+v, want FRENCH rank 1", resp.Confidences[0])
	}
	if resp.Confidences[1].Language != "SPANISH" || resp.Confidences[1].Rank != 2 {
		t.Errorf("second entry = %+v, want SPANISH rank 2", resp.Confidences[1])
	}
	if resp.ProcessingTime < 0 {
		t.Errorf("processing_time = %v, want >= 0", resp.ProcessingTime)
	}
}

func TestDetect_ConfidenceZeroOutsideWindow(t *testing.T) {
	t.Parallel()

	c := frenchClassifier()
	c.primary = "ITALIAN" // lowest candidate, falls outside topN=2
	s := New(c, &fakeWriter{}, 2)

	resp, err := s.Detect(context.Background(), domain.DetectInput{Text: "il volpe bruno salta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Confidence != 0.0 {
		t.Errorf("confidence = %v, want 0.0 for language outside ranked window", resp.Confidence)
	}
}

func TestDetect_NormalizesBeforeMeasuring(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	s := New(frenchClassifier(), w, 5)

	resp, err := s.Detect(context.Background(), domain.DetectInput{Text: "le\n\n renard\tbrun "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "le renard brun" after collapse
	if resp.TextLength != 14 {
		t.Errorf("text_length = %d, want 14", resp.TextLength)
	}
	if len(w.commits) != 1 {
		t.Fatalf("expected one commit, got %d", len(w.commits))
	}
	if w.commits[0].FullText != "le renard brun" {
		t.Errorf("persisted text = %q, want normalized form", w.commits[0].FullText)
	}
}

func TestDetect_WriteFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{err: errors.New("connection refused")}
	s := New(frenchClassifier(), w, 5)

	resp, err := s.Detect(context.Background(), domain.DetectInput{Text: "le renard brun saute"})
	if err != nil {
		t.Fatalf("store failure must not abort detection: %v", err)
	}
	if resp.DetectedLanguage != "FRENCH" {
		t.Errorf("classification lost on write failure: %+v", resp)
	}
}

func TestDetect_NilWriterServesWithoutPersistence(t *testing.T) {
	t.Parallel()

	s := New(frenchClassifier(), nil, 5)
	if _, err := s.Detect(context.Background(), domain.DetectInput{Text: "le renard brun saute"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDetect_CarriesOriginMetadata(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	s := New(frenchClassifier(), w, 5)

	_, err := s.Detect(context.Background(), domain.DetectInput{
		Text:      "le renard brun saute",
		UserIP:    "203.0.113.7",
		UserAgent: "curl/8.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.commits[0].UserIP != "203.0.113.7" || w.commits[0].UserAgent != "curl/8.0" {
		t.Errorf("origin metadata not persisted: %+v", w.commits[0])
	}
}
