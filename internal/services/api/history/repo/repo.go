// Package repo provides postgres access for history records
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lingualog/internal/modkit/repokit"
)

// Repo defines the repository contract for history
type Repo interface {
	InsertDetection(ctx context.Context, d DetectionRow) (string, error)
	InsertConfidences(ctx context.Context, detectionID string, cs []ConfidenceRow) error
	BumpStat(ctx context.Context, language string, at time.Time) error

	List(ctx context.Context, search string, offset, limit int) ([]ListRow, error)
	Count(ctx context.Context, search string) (int, error)
	FindDetection(ctx context.Context, id string) (DetailRow, error)
	ConfidencesFor(ctx context.Context, id string) ([]ConfidenceRow, error)

	PurgeAll(ctx context.Context) error
}

// DetectionRow is the insert payload for one detection record
type DetectionRow struct {
	TextPreview      string
	FullText         string
	DetectedLanguage string
	Confidence       float64
	TextLength       int
	ProcessingTime   float64
	UserIP           string
	UserAgent        string
}

// ConfidenceRow is one ranked confidence entry for a detection
type ConfidenceRow struct {
	Language   string
	Confidence float64
	Rank       int
}

// ListRow is the listing projection of a detection record
type ListRow struct {
	CreatedAt        time.Time
	TextPreview      string
	DetectedLanguage string
	Confidence       float64
}

// DetailRow is the detail projection of a detection record
type DetailRow struct {
	CreatedAt        time.Time
	FullText         string
	DetectedLanguage string
	Confidence       float64
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

func (r *queries) InsertDetection(ctx context.Context, d DetectionRow) (string, error) {
	id := uuid.New()
	const sql = `
insert into detection_history
(id, created_at, text_preview, full_text, detected_language, confidence, text_length, processing_time, user_ip, user_agent)
values ($1, now(), $2, $3, $4, $5, $6, $7, $8, $9)
`
	if _, err := r.q.Exec(ctx, sql,
		id,
		d.TextPreview,
		d.FullText,
		d.DetectedLanguage,
		d.Confidence,
		d.TextLength,
		d.ProcessingTime,
		d.UserIP,
		d.UserAgent,
	); err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *queries) InsertConfidences(ctx context.Context, detectionID string, cs []ConfidenceRow) error {
	const sql = `
insert into confidence_scores (detection_id, language, confidence, rank)
values ($1, $2, $3, $4)
`
	for _, c := range cs {
		if _, err := r.q.Exec(ctx, sql, detectionID, c.Language, c.Confidence, c.Rank); err != nil {
			return err
		}
	}
	return nil
}

func (r *queries) BumpStat(ctx context.Context, language string, at time.Time) error {
	const sql = `
insert into detection_stats (language, count, last_detected)
values ($1, 1, $2)
on conflict (language)
do update set count = detection_stats.count + 1, last_detected = excluded.last_detected
`
	_, err := r.q.Exec(ctx, sql, language, at)
	return err
}

func (r *queries) List(ctx context.Context, search string, offset, limit int) ([]ListRow, error) {
	const sql = `
select created_at, text_preview, detected_language, confidence
from detection_history
where ($1 = '' or text_preview ilike '%' || $1 || '%' or detected_language ilike '%' || $1 || '%')
order by created_at desc
offset $2 limit $3
`
	rows, err := r.q.Query(ctx, sql, search, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ListRow
	for rows.Next() {
		var rr ListRow
		if err := rows.Scan(&rr.CreatedAt, &rr.TextPreview, &rr.DetectedLanguage, &rr.Confidence); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Count(ctx context.Context, search string) (int, error) {
	const sql = `
select count(*)
from detection_history
where ($1 = '' or text_preview ilike '%' || $1 || '%' or detected_language ilike '%' || $1 || '%')
`
	var n int
	if err := r.q.QueryRow(ctx, sql, search).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) FindDetection(ctx context.Context, id string) (DetailRow, error) {
	const sql = `
select created_at, full_text, detected_language, confidence
from detection_history
where id = $1
`
	var d DetailRow
	err := r.q.QueryRow(ctx, sql, id).Scan(&d.CreatedAt, &d.FullText, &d.DetectedLanguage, &d.Confidence)
	return d, err
}

func (r *queries) ConfidencesFor(ctx context.Context, id string) ([]ConfidenceRow, error) {
	const sql = `
select language, confidence, rank
from confidence_scores
where detection_id = $1
order by rank asc
`
	rows, err := r.q.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ConfidenceRow
	for rows.Next() {
		var c ConfidenceRow
		if err := rows.Scan(&c.Language, &c.Confidence, &c.Rank); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *queries) PurgeAll(ctx context.Context) error {
	// confidence rows first so the history delete never strands children
	for _, sql := range []string{
		`delete from confidence_scores`,
		`delete from detection_history`,
		`delete from detection_stats`,
	} {
		if _, err := r.q.Exec(ctx, sql); err != nil {
			return err
		}
	}
	return nil
}
