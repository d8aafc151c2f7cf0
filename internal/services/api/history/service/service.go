// Package service contains the history workflows and owns the write mutex
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lingualog/internal/modkit/repokit"
	perr "lingualog/internal/platform/errors"
	"lingualog/internal/services/api/history/domain"
	"lingualog/internal/services/api/history/repo"
)

const (
	defaultPerPage = 20
)

// Service defines the service contract for history
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
//
// mu is the single mutual exclusion domain for the store: Commit and Purge
// take it for their whole transaction, so at most one write sequence runs at
// a time. Reads never take it
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	mu sync.Mutex
}

// New creates a new history service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Commit persists one classification as a three part record set
// the history insert, confidence batch, and stat upsert run inside a single
// transaction under the write mutex, so concurrent readers see the set
// either fully absent or fully present
func (s *Svc) Commit(ctx context.Context, in domain.CommitInput) (string, error) {
	if err := repokit.Probe(ctx, s.db); err != nil {
		return "", perr.DBf("database connection failed: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		var err error
		id, err = r.InsertDetection(ctx, repo.DetectionRow{
			TextPreview:      in.TextPreview,
			FullText:         in.FullText,
			DetectedLanguage: in.DetectedLanguage,
			Confidence:       in.Confidence,
			TextLength:       in.TextLength,
			ProcessingTime:   in.ProcessingTime,
			UserIP:           in.UserIP,
			UserAgent:        in.UserAgent,
		})
		if err != nil {
			return err
		}

		cs := make([]repo.ConfidenceRow, 0, len(in.Confidences))
		for _, c := range in.Confidences {
			cs = append(cs, repo.ConfidenceRow{Language: c.Language, Confidence: c.Confidence, Rank: c.Rank})
		}
		if err := r.InsertConfidences(ctx, id, cs); err != nil {
			return err
		}

		return r.BumpStat(ctx, in.DetectedLanguage, time.Now().UTC())
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeDB, "commit classification record")
	}
	return id, nil
}

// List returns one page of history items newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.HistoryPage, error) {
	if err := repokit.Probe(ctx, s.db); err != nil {
		return domain.HistoryPage{}, perr.DBf("database connection failed: %v", err)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	total, err := s.Repo.Count(ctx, in.Search)
	if err != nil {
		return domain.HistoryPage{}, perr.Wrapf(err, perr.ErrorCodeDB, "count history")
	}
	rows, err := s.Repo.List(ctx, in.Search, (page-1)*perPage, perPage)
	if err != nil {
		return domain.HistoryPage{}, perr.Wrapf(err, perr.ErrorCodeDB, "list history")
	}

	items := make([]domain.HistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.HistoryItem{
			Timestamp:        r.CreatedAt.UTC().Format(time.RFC3339Nano),
			TextPreview:      r.TextPreview,
			DetectedLanguage: r.DetectedLanguage,
			Confidence:       r.Confidence,
		})
	}

	return domain.HistoryPage{
		History: items,
		Total:   total,
		Page:    page,
		Pages:   (total + perPage - 1) / perPage,
	}, nil
}

// Detail returns one full record with its ranked confidence breakdown
// a malformed id is indistinguishable from an unknown one on the wire
func (s *Svc) Detail(ctx context.Context, id string) (domain.HistoryDetail, error) {
	if err := repokit.Probe(ctx, s.db); err != nil {
		return domain.HistoryDetail{}, perr.DBf("database connection failed: %v", err)
	}

	if _, err := uuid.Parse(id); err != nil {
		return domain.HistoryDetail{}, perr.NotFoundf("record not found")
	}

	d, err := s.Repo.FindDetection(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HistoryDetail{}, perr.NotFoundf("record not found")
		}
		return domain.HistoryDetail{}, perr.Wrapf(err, perr.ErrorCodeDB, "fetch history detail")
	}

	cs, err := s.Repo.ConfidencesFor(ctx, id)
	if err != nil {
		return domain.HistoryDetail{}, perr.Wrapf(err, perr.ErrorCodeDB, "fetch confidence breakdown")
	}
	confidences := make([]domain.RankedConfidence, 0, len(cs))
	for _, c := range cs {
		confidences = append(confidences, domain.RankedConfidence{
			Language:   c.Language,
			Confidence: c.Confidence,
			Rank:       c.Rank,
		})
	}

	return domain.HistoryDetail{
		History: domain.HistoryRecord{
			Timestamp:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
			FullText:         d.FullText,
			DetectedLanguage: d.DetectedLanguage,
			Confidence:       d.Confidence,
		},
		Confidences: confidences,
	}, nil
}

// Purge clears all three collections under the write mutex
// clearing an already empty store is not an error
func (s *Svc) Purge(ctx context.Context) error {
	if err := repokit.Probe(ctx, s.db); err != nil {
		return perr.DBf("database connection failed: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).PurgeAll(ctx)
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDB, "clear history")
	}
	return nil
}
