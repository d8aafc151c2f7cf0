package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lingualog/internal/modkit/repokit"
	perr "lingualog/internal/platform/errors"
	"lingualog/internal/services/api/stats/repo"
)

type fakeDB struct {
	pingErr error
}

func (f *fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("not used")
}

func (f *fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error) {
	panic("not used")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row {
	panic("not used")
}

func (f *fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(f)
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

type memRepo struct {
	rows []repo.RowStat
}

func (m *memRepo) TopLanguages(_ context.Context, limit int) ([]repo.RowStat, error) {
	if limit > len(m.rows) {
		limit = len(m.rows)
	}
	return m.rows[:limit], nil
}

func TestTopLanguages_MapsRows(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	mem := &memRepo{rows: []repo.RowStat{
		{Language: "ENGLISH", Count: 12, LastDetected: at},
		{Language: "FRENCH", Count: 3, LastDetected: at},
	}}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem })
	s := New(&fakeDB{}, binder)

	out, err := s.TopLanguages(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Language != "ENGLISH" || out[0].Count != 12 {
		t.Errorf("top = %+v, want ENGLISH/12", out[0])
	}
	if out[0].LastDetected != "2026-09-01T12:00:00Z" {
		t.Errorf("last_detected = %q, want RFC3339 UTC", out[0].LastDetected)
	}
}

func TestTopLanguages_ProbeFailure(t *testing.T) {
	t.Parallel()

	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &memRepo{} })
	s := New(&fakeDB{pingErr: errors.New("connection refused")}, binder)

	if _, err := s.TopLanguages(context.Background(), 10); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("expected store error, got %v", err)
	}
}
