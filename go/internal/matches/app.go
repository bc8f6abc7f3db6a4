package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/rs/zerolog/log"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, m models.Match) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, m models.Match) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// SeasonLookup checks season references
type SeasonLookup interface {
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// TeamLookup checks team references
type TeamLookup interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// PlayerLookup resolves the players named by events
type PlayerLookup interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// App handles match business logic
type App struct {
	repo     MatchesRepository
	seasons  SeasonLookup
	teams    TeamLookup
	players  PlayerLookup
	notifier realtime.Notifier
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, seasons SeasonLookup, teams TeamLookup, players PlayerLookup, notifier realtime.Notifier) *App {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &App{
		repo:     repo,
		seasons:  seasons,
		teams:    teams,
		players:  players,
		notifier: notifier,
	}
}

// CreateMatch validates and stores a match with its events
func (a *App) CreateMatch(ctx context.Context, req MatchRequest) (*models.Match, error) {
	m, err := a.buildMatch(ctx, uuid.New(), req)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = time.Now().UTC()

	created, err := a.repo.CreateMatch(ctx, *m)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", created.ID.String()).
		Str("season_id", created.SeasonID.String()).
		Int("home_score", created.HomeScore).
		Int("away_score", created.AwayScore).
		Int("events", len(created.Events)).
		Msg("created match")
	realtime.Emit(ctx, a.notifier, realtime.EntityMatch, realtime.ActionCreated, created.ID, created)
	return created, nil
}

// GetMatch retrieves a match with its events
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	m, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// ListMatches returns every match, or one season's when seasonID is set
func (a *App) ListMatches(ctx context.Context, seasonID *uuid.UUID) ([]models.Match, error) {
	var (
		matches []models.Match
		err     error
	)
	if seasonID != nil {
		matches, err = a.repo.ListMatchesBySeason(ctx, *seasonID)
	} else {
		matches, err = a.repo.ListMatches(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// UpdateMatch replaces the match fields and its event list
func (a *App) UpdateMatch(ctx context.Context, id uuid.UUID, req MatchRequest) (*models.Match, error) {
	existing, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	m, err := a.buildMatch(ctx, id, req)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = existing.CreatedAt

	updated, err := a.repo.UpdateMatch(ctx, *m)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info().
		Str("match_id", updated.ID.String()).
		Bool("finished", updated.IsFinished).
		Int("events", len(updated.Events)).
		Msg("updated match")
	realtime.Emit(ctx, a.notifier, realtime.EntityMatch, realtime.ActionUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteMatch deletes a match and its events
func (a *App) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if _, err := a.repo.GetMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to get match: %w", err)
	}
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info().Str("match_id", id.String()).Msg("deleted match")
	realtime.Emit(ctx, a.notifier, realtime.EntityMatch, realtime.ActionDeleted, id, nil)
	return nil
}

// buildMatch turns a request into a validated match. Nothing is written when
// it fails.
func (a *App) buildMatch(ctx context.Context, id uuid.UUID, req MatchRequest) (*models.Match, error) {
	m := models.Match{
		ID:         id,
		SeasonID:   req.SeasonID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		IsFinished: req.IsFinished,
		PlayedAt:   req.PlayedAt.UTC(),
	}
	if err := stats.ValidateMatch(m); err != nil {
		log.Debug().Err(err).Str("match_id", id.String()).Msg("rejected match")
		return nil, err
	}
	if m.PlayedAt.IsZero() {
		return nil, fmt.Errorf("%w: match date is required", models.ErrValidation)
	}

	if _, err := a.seasons.GetSeason(ctx, m.SeasonID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, m.SeasonID)
		}
		return nil, fmt.Errorf("failed to check season: %w", err)
	}
	for _, teamID := range []uuid.UUID{m.HomeTeamID, m.AwayTeamID} {
		if _, err := a.teams.GetTeam(ctx, teamID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
			}
			return nil, fmt.Errorf("failed to check team: %w", err)
		}
	}

	m.Events = make([]models.MatchEvent, len(req.Events))
	for i, in := range req.Events {
		ev, err := a.buildEvent(ctx, m, in)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		m.Events[i] = ev
	}
	return &m, nil
}

func (a *App) buildEvent(ctx context.Context, m models.Match, in EventInput) (models.MatchEvent, error) {
	if !in.Type.Valid() {
		return models.MatchEvent{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, in.Type)
	}
	if in.Minute != nil && *in.Minute < 0 {
		return models.MatchEvent{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidEvent)
	}
	if in.AssistantID != nil && !in.Type.AllowsAssistant() {
		return models.MatchEvent{}, fmt.Errorf("%w: %s cannot have an assistant", ErrInvalidEvent, in.Type)
	}

	teamID, err := a.playerSide(ctx, m, in.PlayerID)
	if err != nil {
		return models.MatchEvent{}, err
	}
	if in.AssistantID != nil {
		if *in.AssistantID == in.PlayerID {
			return models.MatchEvent{}, fmt.Errorf("%w: player cannot assist themselves", ErrInvalidEvent)
		}
		if _, err := a.playerSide(ctx, m, *in.AssistantID); err != nil {
			return models.MatchEvent{}, err
		}
	}

	return models.MatchEvent{
		ID:          uuid.New(),
		MatchID:     m.ID,
		Type:        in.Type,
		PlayerID:    in.PlayerID,
		TeamID:      teamID,
		AssistantID: in.AssistantID,
		Minute:      in.Minute,
	}, nil
}

// playerSide returns the team the player represents in the match.
func (a *App) playerSide(ctx context.Context, m models.Match, playerID uuid.UUID) (uuid.UUID, error) {
	p, err := a.players.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("%w: player %s does not exist", ErrInvalidEvent, playerID)
		}
		return uuid.Nil, fmt.Errorf("failed to check player: %w", err)
	}
	if !m.Involves(p.TeamID) {
		return uuid.Nil, fmt.Errorf("%w: player %s does not play for either team", ErrInvalidEvent, playerID)
	}
	return p.TeamID, nil
}
