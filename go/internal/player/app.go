package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/rs/zerolog/log"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, p models.Player) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, p models.Player) (*models.Player, error)
	UpdatePlayerCounters(ctx context.Context, players []models.Player) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// TeamLookup checks team references
type TeamLookup interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// MatchLister supplies the events counters are derived from
type MatchLister interface {
	ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Match, error)
}

// App handles player business logic
type App struct {
	repo     PlayerRepository
	teams    TeamLookup
	matches  MatchLister
	notifier realtime.Notifier
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, teams TeamLookup, matches MatchLister, notifier realtime.Notifier) *App {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &App{
		repo:     repo,
		teams:    teams,
		matches:  matches,
		notifier: notifier,
	}
}

// CreatePlayer creates a new player with zeroed counters
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	p := models.Player{
		ID:        uuid.New(),
		TeamID:    req.TeamID,
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}
	if err := a.validatePlayer(ctx, p); err != nil {
		return nil, err
	}

	created, err := a.repo.CreatePlayer(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().
		Str("player_id", created.ID.String()).
		Str("team_id", created.TeamID.String()).
		Str("name", created.Name).
		Msg("created player")
	realtime.Emit(ctx, a.notifier, realtime.EntityPlayer, realtime.ActionCreated, created.ID, created)
	return created, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// ListPlayers returns every player, or one team's squad when teamID is set
func (a *App) ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error) {
	var (
		players []models.Player
		err     error
	)
	if teamID != nil {
		players, err = a.repo.ListPlayersByTeam(ctx, *teamID)
	} else {
		players, err = a.repo.ListPlayers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// UpdatePlayer applies the non-nil fields of req
func (a *App) UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error) {
	existing, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	p := *existing
	if req.TeamID != nil {
		p.TeamID = *req.TeamID
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	for _, c := range []struct {
		dst *int
		src *int
	}{{&p.Goals, req.Goals}, {&p.Assists, req.Assists}, {&p.YellowCards, req.YellowCards}, {&p.RedCards, req.RedCards}} {
		if c.src != nil {
			*c.dst = *c.src
		}
	}

	if err := a.validatePlayer(ctx, p); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdatePlayer(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info().Str("player_id", updated.ID.String()).Msg("updated player")
	realtime.Emit(ctx, a.notifier, realtime.EntityPlayer, realtime.ActionUpdated, updated.ID, updated)
	return updated, nil
}

// DeletePlayer deletes a player together with the events they are credited in
func (a *App) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get player: %w", err)
	}

	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	log.Info().Str("player_id", id.String()).Str("name", p.Name).Msg("deleted player")
	realtime.Emit(ctx, a.notifier, realtime.EntityPlayer, realtime.ActionDeleted, id, nil)
	return nil
}

// RecalculateCounters rewrites every player's stored counters from the
// season's match events and returns how many players changed.
func (a *App) RecalculateCounters(ctx context.Context, seasonID uuid.UUID) (int, error) {
	players, err := a.repo.ListPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list players: %w", err)
	}
	matches, err := a.matches.ListMatchesBySeason(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to list matches: %w", err)
	}

	var changed []models.Player
	for _, ps := range stats.SeasonPlayerStats(seasonID, players, matches) {
		p := ps.Player
		if p.Goals == ps.Goals && p.Assists == ps.Assists && p.YellowCards == ps.YellowCards && p.RedCards == ps.RedCards {
			continue
		}
		p.Goals, p.Assists, p.YellowCards, p.RedCards = ps.Goals, ps.Assists, ps.YellowCards, ps.RedCards
		changed = append(changed, p)
	}
	if len(changed) == 0 {
		return 0, nil
	}

	if err := a.repo.UpdatePlayerCounters(ctx, changed); err != nil {
		return 0, fmt.Errorf("failed to update counters: %w", err)
	}

	log.Info().
		Str("season_id", seasonID.String()).
		Int("players", len(changed)).
		Msg("recalculated player counters")
	for _, p := range changed {
		realtime.Emit(ctx, a.notifier, realtime.EntityPlayer, realtime.ActionUpdated, p.ID, p)
	}
	return len(changed), nil
}

func (a *App) validatePlayer(ctx context.Context, p models.Player) error {
	if p.Name == "" {
		return fmt.Errorf("%w: player name is required", models.ErrValidation)
	}
	if p.TeamID == uuid.Nil {
		return fmt.Errorf("%w: player team is required", models.ErrValidation)
	}
	if p.Goals < 0 || p.Assists < 0 || p.YellowCards < 0 || p.RedCards < 0 {
		return fmt.Errorf("%w: player counters cannot be negative", models.ErrValidation)
	}
	if _, err := a.teams.GetTeam(ctx, p.TeamID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, p.TeamID)
		}
		return fmt.Errorf("failed to check team: %w", err)
	}
	return nil
}
