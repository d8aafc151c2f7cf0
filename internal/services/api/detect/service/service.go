// Package service contains the classification pipeline
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"lingualog/internal/core/langdetect"
	"lingualog/internal/core/normalize"
	perr "lingualog/internal/platform/errors"
	"lingualog/internal/platform/logger"
	str "lingualog/internal/platform/strings"
	"lingualog/internal/services/api/detect/domain"
	historydom "lingualog/internal/services/api/history/domain"
)

const (
	minTextRunes = 10
	previewRunes = 100

	// DefaultTopN is the ranked confidence window size when unconfigured
	DefaultTopN = 5
)

// Classifier is the engine surface the pipeline consumes
type Classifier interface {
	DetectPrimary(text string) (string, bool)
	ConfidenceValues(text string) []langdetect.Candidate
}

// Service defines the service contract for detect
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	classifier Classifier
	normalizer *normalize.Normalizer
	writer     historydom.WriterPort
	topN       int
}

// New creates a new detect service
// writer may be nil, in which case classifications are never persisted
func New(classifier Classifier, writer historydom.WriterPort, topN int) *Svc {
	if classifier == nil {
		panic("detect.Service requires a non nil Classifier")
	}
	if topN < 1 {
		topN = DefaultTopN
	}
	return &Svc{
		classifier: classifier,
		normalizer: normalize.New(),
		writer:     writer,
		topN:       topN,
	}
}

// Detect runs the full pipeline: normalize, classify, rank, persist
// persistence is advisory: a store failure is logged and swallowed, the
// classification is still returned to the caller
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectResponse, error) {
	started := time.Now()

	text := s.normalizer.Normalize(in.Text)
	length := utf8.RuneCountInString(text)
	if length < minTextRunes {
		return domain.DetectResponse{}, perr.Validationf("text must be at least %d characters", minTextRunes)
	}

	detected, ok := s.classifier.DetectPrimary(text)
	if !ok {
		return domain.DetectResponse{}, perr.NoLanguagef("could not detect language")
	}

	ranked := langdetect.Rank(s.classifier.ConfidenceValues(text), s.topN)
	confidence := langdetect.ConfidenceOf(ranked, detected)

	confidences := make([]domain.RankedConfidence, 0, len(ranked))
	for _, r := range ranked {
		confidences = append(confidences, domain.RankedConfidence{
			Language:   r.Language,
			Confidence: r.Confidence,
			Rank:       r.Rank,
		})
	}

	resp := domain.DetectResponse{
		DetectedLanguage: detected,
		Confidence:       confidence,
		Confidences:      confidences,
		TextLength:       length,
		ProcessingTime:   time.Since(started).Seconds(),
	}

	s.persist(ctx, text, resp, in)

	logger.C(ctx).Info().
		Str("language", detected).
		Float64("confidence", confidence).
		Int("text_length", length).
		Msg("language detected")

	return resp, nil
}

func (s *Svc) persist(ctx context.Context, text string, resp domain.DetectResponse, in domain.DetectInput) {
	if s.writer == nil {
		return
	}

	cs := make([]historydom.RankedConfidence, 0, len(resp.Confidences))
	for _, c := range resp.Confidences {
		cs = append(cs, historydom.RankedConfidence{
			Language:   c.Language,
			Confidence: c.Confidence,
			Rank:       c.Rank,
		})
	}

	_, err := s.writer.Commit(ctx, historydom.CommitInput{
		FullText:         text,
		TextPreview:      str.Truncate(text, previewRunes),
		DetectedLanguage: resp.DetectedLanguage,
		Confidence:       resp.Confidence,
		TextLength:       resp.TextLength,
		ProcessingTime:   resp.ProcessingTime,
		UserIP:           in.UserIP,
		UserAgent:        in.UserAgent,
		Confidences:      cs,
	})
	if err != nil {
		// advisory write, the response already carries the classification
		logger.C(ctx).Warn().Err(err).Msg("skipping history write")
	}
}
