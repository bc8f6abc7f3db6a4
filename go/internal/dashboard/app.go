// Package dashboard serves the read side of the league: tables, leaders and
// chart series derived from the in-memory store.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/store"
	"github.com/rs/zerolog/log"
)

// Config holds dashboard defaults.
type Config struct {
	History       stats.HistoryOptions `yaml:"history"`
	RecentMatches int                  `yaml:"recent_matches"`
}

// DefaultConfig charts every season with every team in team colors.
func DefaultConfig() Config {
	return Config{
		History: stats.HistoryOptions{
			SeasonScope: stats.SeasonScopeAll,
			TeamScope:   stats.TeamScopeAll,
			ColorMode:   stats.ColorModeTeam,
		},
		RecentMatches: 5,
	}
}

// SnapshotSource supplies the snapshot every query reads.
type SnapshotSource interface {
	Snapshot() *store.Snapshot
}

// App computes dashboard views. It never writes.
type App struct {
	store SnapshotSource
	cfg   Config
}

// NewApp creates a new dashboard App
func NewApp(source SnapshotSource, cfg Config) *App {
	return &App{store: source, cfg: cfg}
}

// resolveSeason picks the requested season, or the current one when id is
// nil. A nil result with no error means there is no current season.
func resolveSeason(snap *store.Snapshot, id *uuid.UUID) (*models.Season, error) {
	if id == nil {
		return snap.CurrentSeason(), nil
	}
	season, ok := snap.Season(*id)
	if !ok {
		return nil, fmt.Errorf("season %w", models.ErrNotFound)
	}
	return season, nil
}

// Standings returns the season table.
func (a *App) Standings(ctx context.Context, seasonID *uuid.UUID) (*StandingsResponse, error) {
	snap := a.store.Snapshot()
	season, err := resolveSeason(snap, seasonID)
	if err != nil {
		return nil, err
	}
	return &StandingsResponse{Season: season, Table: standings(snap, season)}, nil
}

// Leaders returns the season's top scorer and top assister.
func (a *App) Leaders(ctx context.Context, seasonID *uuid.UUID) (*LeadersResponse, error) {
	snap := a.store.Snapshot()
	season, err := resolveSeason(snap, seasonID)
	if err != nil {
		return nil, err
	}
	return &LeadersResponse{Season: season, Leaders: leaders(snap, season)}, nil
}

// PlayerStats returns event-derived counters for every player. With sortBy
// set, only players with a non-zero value are listed, highest first.
func (a *App) PlayerStats(ctx context.Context, seasonID *uuid.UUID, sortBy stats.Stat) (*PlayerStatsResponse, error) {
	switch sortBy {
	case "", stats.StatGoals, stats.StatAssists, stats.StatYellowCards, stats.StatRedCards:
	default:
		return nil, fmt.Errorf("%w: unknown statistic %q", models.ErrValidation, sortBy)
	}

	snap := a.store.Snapshot()
	season, err := resolveSeason(snap, seasonID)
	if err != nil {
		return nil, err
	}

	res := &PlayerStatsResponse{Season: season, Players: []stats.PlayerStat{}}
	if season == nil {
		return res, nil
	}
	rows := stats.SeasonPlayerStats(season.ID, snap.Players, snap.Matches)
	if sortBy != "" {
		rows = stats.RankPlayers(rows, sortBy)
	}
	res.Players = rows
	return res, nil
}

// History returns the chart series. Zero-valued options fall back to the
// configured defaults.
func (a *App) History(ctx context.Context, opts stats.HistoryOptions) (*HistoryResponse, error) {
	opts = a.withDefaults(opts)
	if err := validateHistoryOptions(opts); err != nil {
		return nil, err
	}

	snap := a.store.Snapshot()
	records := stats.HistoricalSeries(snap.Teams, snap.Matches, snap.Seasons, snap.CurrentSeason(), opts)
	if records == nil {
		records = []stats.ChartRecord{}
	}

	log.Debug().
		Str("season_scope", string(opts.SeasonScope)).
		Str("team_scope", string(opts.TeamScope)).
		Int("records", len(records)).
		Msg("built history series")
	return &HistoryResponse{Options: opts, Records: records}, nil
}

// Overview bundles the current season's table and leaders with the latest
// finished matches.
func (a *App) Overview(ctx context.Context) (*OverviewResponse, error) {
	snap := a.store.Snapshot()
	season := snap.CurrentSeason()

	return &OverviewResponse{
		Season:        season,
		Table:         standings(snap, season),
		Leaders:       leaders(snap, season),
		RecentMatches: recentMatches(snap, season, a.cfg.RecentMatches),
		Totals: Totals{
			Teams:   len(snap.Teams),
			Players: len(snap.Players),
			Seasons: len(snap.Seasons),
			Matches: len(snap.Matches),
		},
		LoadedAt: snap.LoadedAt,
	}, nil
}

func standings(snap *store.Snapshot, season *models.Season) []models.LeagueTableEntry {
	if season == nil {
		return []models.LeagueTableEntry{}
	}
	return stats.SeasonStandings(season.ID, snap.SeasonTeams(season.ID), snap.Matches)
}

func leaders(snap *store.Snapshot, season *models.Season) stats.Leaders {
	if season == nil {
		return stats.Leaders{}
	}
	return stats.ComputeLeaders(season.ID, snap.Players, snap.Matches)
}

// recentMatches returns up to limit finished matches of the season, latest
// first.
func recentMatches(snap *store.Snapshot, season *models.Season, limit int) []models.Match {
	out := []models.Match{}
	if season == nil || limit <= 0 {
		return out
	}
	for _, m := range snap.SeasonMatches(season.ID) {
		if m.IsFinished {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayedAt.After(out[j].PlayedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (a *App) withDefaults(opts stats.HistoryOptions) stats.HistoryOptions {
	def := a.cfg.History
	if opts.SeasonScope == "" {
		opts.SeasonScope = def.SeasonScope
	}
	if opts.TeamScope == "" {
		opts.TeamScope = def.TeamScope
	}
	if opts.ColorMode == "" {
		opts.ColorMode = def.ColorMode
	}
	if len(opts.Palette) == 0 {
		opts.Palette = def.Palette
	}
	return opts
}

func validateHistoryOptions(opts stats.HistoryOptions) error {
	switch opts.SeasonScope {
	case stats.SeasonScopeAll, stats.SeasonScopeSameYear:
	default:
		return fmt.Errorf("%w: unknown season scope %q", models.ErrValidation, opts.SeasonScope)
	}
	switch opts.TeamScope {
	case stats.TeamScopeAll, stats.TeamScopeRegistered:
	default:
		return fmt.Errorf("%w: unknown team scope %q", models.ErrValidation, opts.TeamScope)
	}
	switch opts.ColorMode {
	case stats.ColorModeTeam, stats.ColorModePalette:
	default:
		return fmt.Errorf("%w: unknown color mode %q", models.ErrValidation, opts.ColorMode)
	}
	return nil
}
