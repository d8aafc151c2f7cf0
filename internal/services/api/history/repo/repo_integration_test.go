//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"lingualog/internal/platform/store"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestRepo_FullFlow_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "lingualog-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if err := EnsureSchema(ctx, st.PG); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	// second run must be a no-op
	if err := EnsureSchema(ctx, st.PG); err != nil {
		t.Fatalf("EnsureSchema rerun: %v", err)
	}

	r := NewPG().Bind(st.PG)

	id, err := r.InsertDetection(ctx, DetectionRow{
		TextPreview:      "bonjour tout le monde",
		FullText:         "bonjour tout le monde comment allez vous",
		DetectedLanguage: "FRENCH",
		Confidence:       0.92,
		TextLength:       40,
		ProcessingTime:   0.003,
		UserIP:           "203.0.113.7",
		UserAgent:        "integration-test",
	})
	if err != nil {
		t.Fatalf("InsertDetection: %v", err)
	}

	if err := r.InsertConfidences(ctx, id, []ConfidenceRow{
		{Language: "FRENCH", Confidence: 0.92, Rank: 1},
		{Language: "ITALIAN", Confidence: 0.05, Rank: 2},
	}); err != nil {
		t.Fatalf("InsertConfidences: %v", err)
	}

	now := time.Now().UTC()
	if err := r.BumpStat(ctx, "FRENCH", now); err != nil {
		t.Fatalf("BumpStat insert: %v", err)
	}
	if err := r.BumpStat(ctx, "FRENCH", now.Add(time.Second)); err != nil {
		t.Fatalf("BumpStat upsert: %v", err)
	}

	var count int64
	if err := st.PG.QueryRow(ctx, `select count from detection_stats where language = $1`, "FRENCH").Scan(&count); err != nil {
		t.Fatalf("read stat: %v", err)
	}
	if count != 2 {
		t.Fatalf("stat count = %d, want 2", count)
	}

	total, err := r.Count(ctx, "")
	if err != nil || total != 1 {
		t.Fatalf("Count = %d (%v), want 1", total, err)
	}
	if n, err := r.Count(ctx, "french"); err != nil || n != 1 {
		t.Fatalf("Count(search=french) = %d (%v), want case-insensitive hit", n, err)
	}
	if n, err := r.Count(ctx, "swahili"); err != nil || n != 0 {
		t.Fatalf("Count(search=swahili) = %d (%v), want 0", n, err)
	}

	items, err := r.List(ctx, "", 0, 20)
	if err != nil || len(items) != 1 {
		t.Fatalf("List = %d items (%v), want 1", len(items), err)
	}
	if items[0].DetectedLanguage != "FRENCH" {
		t.Fatalf("listed language = %q", items[0].DetectedLanguage)
	}

	d, err := r.FindDetection(ctx, id)
	if err != nil {
		t.Fatalf("FindDetection: %v", err)
	}
	if d.FullText != "bonjour tout le monde comment allez vous" {
		t.Fatalf("detail text = %q", d.FullText)
	}

	cs, err := r.ConfidencesFor(ctx, id)
	if err != nil || len(cs) != 2 {
		t.Fatalf("ConfidencesFor = %d rows (%v), want 2", len(cs), err)
	}
	if cs[0].Rank != 1 || cs[1].Rank != 2 {
		t.Fatalf("confidences out of rank order: %+v", cs)
	}

	if err := r.PurgeAll(ctx); err != nil {
		t.Fatalf("PurgeAll: %v", err)
	}
	if total, err := r.Count(ctx, ""); err != nil || total != 0 {
		t.Fatalf("post-purge Count = %d (%v), want 0", total, err)
	}
}
