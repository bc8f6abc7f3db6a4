package main

import (
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/dashboard"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/matches"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/player"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/seasons"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/store"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/teams"
)

type Services struct {
	Teams     *teams.Service
	Players   *player.Service
	Seasons   *seasons.Service
	Matches   *matches.Service
	Dashboard *dashboard.Service
}

func setupServices(backend *Backend, notifier realtime.Notifier, snapshots *store.Store, dashCfg dashboard.Config) *Services {
	// Wire up dependency injection chain
	// Repository layer → App layer → Service layer

	// Seasons
	seasonsApp := seasons.NewApp(backend.Seasons, notifier)
	seasonsService := seasons.NewService(seasonsApp)

	// Teams
	teamsApp := teams.NewApp(backend.Teams, backend.Seasons, notifier)
	teamsService := teams.NewService(teamsApp)

	// Players
	playerApp := player.NewApp(backend.Players, backend.Teams, backend.Matches, notifier)
	playerService := player.NewService(playerApp)

	// Matches
	matchesApp := matches.NewApp(backend.Matches, backend.Seasons, backend.Teams, backend.Players, notifier)
	matchesService := matches.NewService(matchesApp)

	// Dashboard reads the snapshot, never the repositories
	dashboardApp := dashboard.NewApp(snapshots, dashCfg)
	dashboardService := dashboard.NewService(dashboardApp)

	return &Services{
		Teams:     teamsService,
		Players:   playerService,
		Seasons:   seasonsService,
		Matches:   matchesService,
		Dashboard: dashboardService,
	}
}
