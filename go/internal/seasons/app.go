package seasons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/rs/zerolog/log"
)

const (
	minYear = 1900
	maxYear = 2200
)

// SeasonsRepository defines what the app layer needs from the repository
type SeasonsRepository interface {
	CreateSeason(ctx context.Context, s models.Season) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetCurrentSeason(ctx context.Context) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	UpdateSeason(ctx context.Context, s models.Season) (*models.Season, error)
	DeleteSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// App handles season business logic
type App struct {
	repo     SeasonsRepository
	notifier realtime.Notifier
}

// NewApp creates a new seasons App
func NewApp(repo SeasonsRepository, notifier realtime.Notifier) *App {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &App{repo: repo, notifier: notifier}
}

// CreateSeason opens a season. The first season of the league is always
// made current so that a current season exists whenever any season does.
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	s := models.Season{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Year:      req.Year,
		Sequence:  req.Sequence,
		IsCurrent: req.IsCurrent,
		CreatedAt: time.Now().UTC(),
	}
	if err := validateSeason(s); err != nil {
		return nil, err
	}

	if !s.IsCurrent {
		_, err := a.repo.GetCurrentSeason(ctx)
		switch {
		case errors.Is(err, models.ErrNotFound):
			s.IsCurrent = true
		case err != nil:
			return nil, fmt.Errorf("failed to get current season: %w", err)
		}
	}

	created, err := a.repo.CreateSeason(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Info().
		Str("season_id", created.ID.String()).
		Int("year", created.Year).
		Int("sequence", created.Sequence).
		Bool("current", created.IsCurrent).
		Msg("created season")
	realtime.Emit(ctx, a.notifier, realtime.EntitySeason, realtime.ActionCreated, created.ID, created)
	return created, nil
}

// GetSeason retrieves a season by ID
func (a *App) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	s, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return s, nil
}

// CurrentSeason returns the current season
func (a *App) CurrentSeason(ctx context.Context) (*models.Season, error) {
	s, err := a.repo.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current season: %w", err)
	}
	return s, nil
}

// ListSeasons returns every season, most recent first
func (a *App) ListSeasons(ctx context.Context) ([]models.Season, error) {
	seasons, err := a.repo.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return seasons, nil
}

// SetCurrentSeason marks id current and demotes every other season
func (a *App) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	s, err := a.repo.SetCurrentSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to set current season: %w", err)
	}

	log.Info().Str("season_id", s.ID.String()).Msg("changed current season")
	realtime.Emit(ctx, a.notifier, realtime.EntitySeason, realtime.ActionUpdated, s.ID, s)
	return s, nil
}

// UpdateSeason applies the non-nil fields of req
func (a *App) UpdateSeason(ctx context.Context, id uuid.UUID, req UpdateSeasonRequest) (*models.Season, error) {
	existing, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	s := *existing
	if req.Name != nil {
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Year != nil {
		s.Year = *req.Year
	}
	if req.Sequence != nil {
		s.Sequence = *req.Sequence
	}
	if err := validateSeason(s); err != nil {
		return nil, err
	}
	if s.Sequence == 0 {
		return nil, fmt.Errorf("%w: season sequence must be positive", models.ErrValidation)
	}

	updated, err := a.repo.UpdateSeason(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}

	log.Info().Str("season_id", updated.ID.String()).Msg("updated season")
	realtime.Emit(ctx, a.notifier, realtime.EntitySeason, realtime.ActionUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteSeason deletes a season and its matches. When the current season is
// deleted the most recent remaining season is promoted and returned.
func (a *App) DeleteSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	promoted, err := a.repo.DeleteSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete season: %w", err)
	}

	ev := log.Info().Str("season_id", id.String())
	if promoted != nil {
		ev = ev.Str("promoted_id", promoted.ID.String())
	}
	ev.Msg("deleted season")

	realtime.Emit(ctx, a.notifier, realtime.EntitySeason, realtime.ActionDeleted, id, nil)
	if promoted != nil {
		realtime.Emit(ctx, a.notifier, realtime.EntitySeason, realtime.ActionUpdated, promoted.ID, promoted)
	}
	return promoted, nil
}

func validateSeason(s models.Season) error {
	if s.Name == "" {
		return fmt.Errorf("%w: season name is required", models.ErrValidation)
	}
	if s.Year < minYear || s.Year > maxYear {
		return fmt.Errorf("%w: season year %d out of range", models.ErrValidation, s.Year)
	}
	if s.Sequence < 0 {
		return fmt.Errorf("%w: season sequence cannot be negative", models.ErrValidation)
	}
	return nil
}
