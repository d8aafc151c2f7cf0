// Package service contains stats workflows
package service

import (
	"context"
	"time"

	"lingualog/internal/modkit/repokit"
	perr "lingualog/internal/platform/errors"
	"lingualog/internal/services/api/stats/domain"
	"lingualog/internal/services/api/stats/repo"
)

// DefaultLimit is how many counters the endpoint serves when unconfigured
const DefaultLimit = 10

// Service defines the service contract for stats
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// TopLanguages returns the highest counters ordered by count descending
// tie order between equal counts is whatever the store yields
func (s *Svc) TopLanguages(ctx context.Context, limit int) ([]domain.LanguageStat, error) {
	if err := repokit.Probe(ctx, s.db); err != nil {
		return nil, perr.DBf("database connection failed: %v", err)
	}

	rows, err := s.Repo.TopLanguages(ctx, limit)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "fetch stats")
	}
	out := make([]domain.LanguageStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.LanguageStat{
			Language:     r.Language,
			Count:        r.Count,
			LastDetected: r.LastDetected.UTC().Format(time.RFC3339Nano),
		})
	}
	return out, nil
}
