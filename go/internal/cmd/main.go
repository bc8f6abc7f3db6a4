package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/config"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/health"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/store"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := setupBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up storage")
	}
	defer backend.Close()

	snapshots := store.New(backend.Source)
	refresher := store.NewRefresher(snapshots, cfg.Refresh.Interval, nil)

	feed, err := setupFeed(ctx, cfg, backend, refresher)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up change feed")
	}
	defer feed.Close()

	services := setupServices(backend, feed.Notifier, snapshots, cfg.Dashboard)
	checker := setupHealth(backend, feed, snapshots)
	server := setupServer(cfg.Server, services, feed.Hub, checker)

	go refresher.Run(ctx)
	feed.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("backend", backend.Name).
			Msg("league server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	log.Info().Msg("league server stopped")
}

func setupHealth(backend *Backend, feed *Feed, snapshots *store.Store) *health.Checker {
	checker := health.NewChecker(5 * time.Second)
	checker.AddProbe("storage", backend.Ping)

	if feed.Publisher != nil {
		pub := feed.Publisher
		checker.AddProbe("nats", func(context.Context) error {
			if !pub.Connected() {
				return errors.New("nats disconnected")
			}
			return nil
		})
	}
	if backend.DB != nil {
		queries := leaguedb.New(backend.DB)
		checker.AddDetail("pending_outbox", func(ctx context.Context) interface{} {
			n, err := queries.CountUnsentOutbox(ctx)
			if err != nil {
				return fmt.Sprintf("unavailable: %v", err)
			}
			return n
		})
	}

	checker.AddDetail("backend", func(context.Context) interface{} { return backend.Name })
	checker.AddDetail("websocket_clients", func(context.Context) interface{} { return feed.Hub.ClientCount() })
	checker.AddDetail("snapshot_loaded_at", func(context.Context) interface{} { return snapshots.Snapshot().LoadedAt })
	return checker
}
