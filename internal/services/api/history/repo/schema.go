package repo

import (
	"context"

	"lingualog/internal/modkit/repokit"
)

// EnsureSchema creates the three history tables when they do not exist yet
// called once at startup before the server accepts traffic
func EnsureSchema(ctx context.Context, db repokit.TxRunner) error {
	stmts := []string{
		`create table if not exists detection_history (
			id uuid primary key,
			created_at timestamptz not null default now(),
			text_preview text not null,
			full_text text not null,
			detected_language text not null,
			confidence double precision not null,
			text_length integer not null,
			processing_time double precision not null,
			user_ip text not null default '',
			user_agent text not null default ''
		)`,
		`create index if not exists detection_history_created_at_idx
			on detection_history (created_at desc)`,
		`create table if not exists confidence_scores (
			detection_id uuid not null references detection_history (id) on delete cascade,
			language text not null,
			confidence double precision not null,
			rank integer not null,
			primary key (detection_id, rank)
		)`,
		`create table if not exists detection_stats (
			language text primary key,
			count bigint not null,
			last_detected timestamptz not null
		)`,
	}
	return db.Tx(ctx, func(q repokit.Queryer) error {
		for _, sql := range stmts {
			if _, err := q.Exec(ctx, sql); err != nil {
				return err
			}
		}
		return nil
	})
}
