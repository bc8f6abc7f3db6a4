package teams

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg leaguedb.CreateTeamParams) (leaguedb.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (leaguedb.Team, error)
	ListTeams(ctx context.Context) ([]leaguedb.Team, error)
	ListTeamsBySeason(ctx context.Context, seasonID uuid.UUID) ([]leaguedb.Team, error)
	UpdateTeam(ctx context.Context, arg leaguedb.UpdateTeamParams) (leaguedb.Team, error)
	DeleteTeamEvents(ctx context.Context, teamID uuid.UUID) error
	DeleteTeamMatches(ctx context.Context, teamID uuid.UUID) error
	DeleteTeamPlayers(ctx context.Context, teamID uuid.UUID) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Repository implements team data access operations on Postgres
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(db sqlutil.TxBeginner, querier Querier) *Repository {
	return &Repository{
		db:      db,
		queries: querier,
	}
}

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, leaguedb.CreateTeamParams{
		ID:       team.ID,
		SeasonID: sqlutil.ToNullUUID(team.SeasonID),
		Name:     team.Name,
		Initials: team.Initials,
		Color:    team.Color,
		LogoUrl:  sqlutil.ToSqlString(team.LogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", sqlutil.MapError(err, "team"))
	}
	return dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", sqlutil.MapError(err, "team"))
	}
	return dbTeamToModel(dbTeam), nil
}

// ListTeams retrieves every team ordered by name
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return dbTeamsToModels(dbTeams), nil
}

// ListTeamsBySeason retrieves the teams registered to a season
func (r *Repository) ListTeamsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by season: %w", err)
	}
	return dbTeamsToModels(dbTeams), nil
}

// UpdateTeam persists every mutable field of team
func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.UpdateTeam(ctx, leaguedb.UpdateTeamParams{
		ID:       team.ID,
		SeasonID: sqlutil.ToNullUUID(team.SeasonID),
		Name:     team.Name,
		Initials: team.Initials,
		Color:    team.Color,
		LogoUrl:  sqlutil.ToSqlString(team.LogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", sqlutil.MapError(err, "team"))
	}
	return dbTeamToModel(dbTeam), nil
}

// DeleteTeam removes the team with its players, its matches and every event
// touching them, in one transaction.
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	err := sqlutil.Run(ctx, r.db, func(tx *sql.Tx) Querier { return leaguedb.New(tx) }, func(q Querier) error {
		if err := q.DeleteTeamEvents(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team events: %w", err)
		}
		if err := q.DeleteTeamMatches(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team matches: %w", err)
		}
		if err := q.DeleteTeamPlayers(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team players: %w", err)
		}
		if err := q.DeleteTeam(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
	return err
}

func dbTeamToModel(t leaguedb.Team) *models.Team {
	return &models.Team{
		ID:        t.ID,
		SeasonID:  sqlutil.FromNullUUID(t.SeasonID),
		Name:      t.Name,
		Initials:  t.Initials,
		Color:     t.Color,
		LogoURL:   sqlutil.FromSqlStringPtr(t.LogoUrl),
		CreatedAt: t.CreatedAt,
	}
}

func dbTeamsToModels(rows []leaguedb.Team) []models.Team {
	teams := make([]models.Team, len(rows))
	for i, row := range rows {
		teams[i] = *dbTeamToModel(row)
	}
	return teams
}
