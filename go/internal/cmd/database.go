package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/config"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/dbconfig"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/localrepo"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/matches"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/mockdata"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/player"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/seasons"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/store"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/teams"
	"github.com/rs/zerolog/log"
)

// Backend bundles the repositories of one storage mode.
type Backend struct {
	Name    string
	Teams   teams.TeamsRepository
	Players player.PlayerRepository
	Seasons seasons.SeasonsRepository
	Matches matches.MatchesRepository
	Source  store.Source

	// DB is set in Postgres mode only.
	DB *sql.DB
	// Ping checks the storage connection.
	Ping  func(ctx context.Context) error
	Close func() error
}

func setupBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch name := cfg.ResolveBackend(); name {
	case config.BackendPostgres:
		return setupPostgres(ctx, cfg.Database)
	case config.BackendRedis:
		kv := kvstore.NewRedisKV(cfg.Redis)
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis storage")
		return setupLocal(ctx, name, kv, kv.Ping, kv.Close, cfg.Mock)
	default:
		kv, err := kvstore.NewFileKV(cfg.Local.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data dir: %w", err)
		}
		log.Info().Str("data_dir", cfg.Local.DataDir).Msg("using local file storage")
		ping := func(context.Context) error { return nil }
		return setupLocal(ctx, config.BackendLocal, kv, ping, func() error { return nil }, cfg.Mock)
	}
}

func setupPostgres(ctx context.Context, dbCfg dbconfig.Config) (*Backend, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	db.SetMaxOpenConns(dbCfg.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := leaguedb.ApplySchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().
		Str("user", dbCfg.User).
		Str("host", dbCfg.Host).
		Int("port", dbCfg.Port).
		Str("database", dbCfg.Database).
		Msg("connected to database")

	queries := leaguedb.New(db)
	teamsRepo := teams.NewRepository(db, queries)
	playerRepo := player.NewRepository(db, queries)
	seasonsRepo := seasons.NewRepository(db, queries)
	matchesRepo := matches.NewRepository(db, queries)

	return &Backend{
		Name:    config.BackendPostgres,
		Teams:   teamsRepo,
		Players: playerRepo,
		Seasons: seasonsRepo,
		Matches: matchesRepo,
		Source: store.Composite{
			Teams:   teamsRepo,
			Players: playerRepo,
			Seasons: seasonsRepo,
			Matches: matchesRepo,
		},
		DB:    db,
		Ping:  db.PingContext,
		Close: db.Close,
	}, nil
}

func setupLocal(ctx context.Context, name string, kv kvstore.KV, ping func(context.Context) error, closeFn func() error, mock config.MockConfig) (*Backend, error) {
	repo := localrepo.New(kv)
	if mock.Enabled {
		if err := seedMockData(ctx, repo, mock.Options); err != nil {
			_ = closeFn()
			return nil, err
		}
	}

	return &Backend{
		Name:    name,
		Teams:   repo,
		Players: repo,
		Seasons: repo,
		Matches: repo,
		Source:  repo,
		Ping:    ping,
		Close:   closeFn,
	}, nil
}

// seedMockData fills an empty store with a generated league.
func seedMockData(ctx context.Context, repo *localrepo.Repository, opts mockdata.Options) error {
	empty, err := repo.Empty(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect storage: %w", err)
	}
	if !empty {
		log.Info().Msg("storage already has data, skipping mock seed")
		return nil
	}

	ds, err := mockdata.Generate(opts)
	if err != nil {
		return fmt.Errorf("failed to generate mock data: %w", err)
	}
	if err := repo.Import(ctx, ds.Teams, ds.Players, ds.Seasons, ds.Matches); err != nil {
		return fmt.Errorf("failed to import mock data: %w", err)
	}

	log.Info().
		Int("teams", len(ds.Teams)).
		Int("players", len(ds.Players)).
		Int("seasons", len(ds.Seasons)).
		Int("matches", len(ds.Matches)).
		Msg("seeded mock league")
	return nil
}
