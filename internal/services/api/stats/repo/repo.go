// Package repo provides postgres access for language statistics
package repo

import (
	"context"
	"time"

	"lingualog/internal/modkit/repokit"
)

// Repo defines the repository contract for stats
type Repo interface {
	TopLanguages(ctx context.Context, limit int) ([]RowStat, error)
}

// RowStat represents one counter row from the database
type RowStat struct {
	Language     string
	Count        int64
	LastDetected time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) TopLanguages(ctx context.Context, limit int) ([]RowStat, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	const sql = `
select language, count, last_detected
from detection_stats
order by count desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowStat
	for rows.Next() {
		var rr RowStat
		if err := rows.Scan(&rr.Language, &rr.Count, &rr.LastDetected); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
