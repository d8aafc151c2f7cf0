// @title         Lingualog API
// @version       0.1.0
// @description   Language detection with a persisted classification history

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"lingualog/internal/platform/config"
	"lingualog/internal/platform/logger"
	phttp "lingualog/internal/platform/net/http"
	pmw "lingualog/internal/platform/net/middleware"
	"lingualog/internal/platform/store"

	"github.com/go-chi/chi/v5"

	"lingualog/internal/services/api"
	historyrepo "lingualog/internal/services/api/history/repo"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres adapter)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "lingualog",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// tables must exist before the first request hits the writer
	if err := historyrepo.EnsureSchema(ctx, st.PG); err != nil {
		l.Panic().Err(err).Msg("schema setup failed")
	}

	// http server (reads CORE_API_PORT) with a bare LB heartbeat at /health
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(pmw.Heartbeat("/health"))
	})

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run until signalled, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	select {
	case err := <-errCh:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-errCh
	}
}
