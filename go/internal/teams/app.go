package teams

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/rs/zerolog/log"
)

// MaxInitialsLength bounds the short code shown on chart bars.
const MaxInitialsLength = 4

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// SeasonLookup resolves season references on team registration.
type SeasonLookup interface {
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// App handles teams business logic
type App struct {
	repo     TeamsRepository
	seasons  SeasonLookup
	notifier realtime.Notifier
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, seasons SeasonLookup, notifier realtime.Notifier) *App {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &App{
		repo:     repo,
		seasons:  seasons,
		notifier: notifier,
	}
}

// CreateTeam validates and stores a new team
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	team := models.Team{
		ID:        uuid.New(),
		SeasonID:  req.SeasonID,
		Name:      strings.TrimSpace(req.Name),
		Initials:  normalizeInitials(req.Initials),
		Color:     normalizeColor(req.Color),
		LogoURL:   req.LogoURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.validateTeam(ctx, team); err != nil {
		return nil, err
	}

	created, err := a.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().Str("team_id", created.ID.String()).Str("name", created.Name).Msg("created team")
	realtime.Emit(ctx, a.notifier, realtime.EntityTeam, realtime.ActionCreated, created.ID, created)
	return created, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams returns every team, or the teams registered to seasonID when set.
func (a *App) ListTeams(ctx context.Context, seasonID *uuid.UUID) ([]models.Team, error) {
	var (
		teams []models.Team
		err   error
	)
	if seasonID != nil {
		teams, err = a.repo.ListTeamsBySeason(ctx, *seasonID)
	} else {
		teams, err = a.repo.ListTeams(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam applies the non-nil fields of req to an existing team
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	existing, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team := *existing
	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Initials != nil {
		team.Initials = normalizeInitials(*req.Initials)
	}
	if req.Color != nil {
		team.Color = normalizeColor(*req.Color)
	}
	if req.LogoURL != nil {
		team.LogoURL = req.LogoURL
		if *req.LogoURL == "" {
			team.LogoURL = nil
		}
	}
	switch {
	case req.ClearSeason:
		team.SeasonID = nil
	case req.SeasonID != nil:
		team.SeasonID = req.SeasonID
	}

	if err := a.validateTeam(ctx, team); err != nil {
		return nil, err
	}

	updated, err := a.repo.UpdateTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().Str("team_id", updated.ID.String()).Str("name", updated.Name).Msg("updated team")
	realtime.Emit(ctx, a.notifier, realtime.EntityTeam, realtime.ActionUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteTeam deletes a team and everything that references it
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team_id", id.String()).Str("name", team.Name).Msg("deleted team")
	realtime.Emit(ctx, a.notifier, realtime.EntityTeam, realtime.ActionDeleted, id, nil)
	return nil
}

func (a *App) validateTeam(ctx context.Context, team models.Team) error {
	if team.Name == "" {
		return fmt.Errorf("%w: team name is required", models.ErrValidation)
	}
	if team.Initials == "" {
		return fmt.Errorf("%w: team initials are required", models.ErrValidation)
	}
	if len([]rune(team.Initials)) > MaxInitialsLength {
		return fmt.Errorf("%w: team initials must be at most %d characters", models.ErrValidation, MaxInitialsLength)
	}
	if !colorPattern.MatchString(team.Color) {
		return fmt.Errorf("%w: team color %q must be #RRGGBB", models.ErrValidation, team.Color)
	}
	if team.SeasonID != nil && a.seasons != nil {
		if _, err := a.seasons.GetSeason(ctx, *team.SeasonID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("%w: season %s does not exist", models.ErrValidation, *team.SeasonID)
			}
			return fmt.Errorf("failed to check season: %w", err)
		}
	}
	return nil
}

func normalizeInitials(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func normalizeColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DefaultTeamColor
	}
	return strings.ToUpper(s)
}
