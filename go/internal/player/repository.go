package player

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
	CreatePlayer(ctx context.Context, arg leaguedb.CreatePlayerParams) (leaguedb.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (leaguedb.Player, error)
	ListPlayers(ctx context.Context) ([]leaguedb.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]leaguedb.Player, error)
	UpdatePlayer(ctx context.Context, arg leaguedb.UpdatePlayerParams) (leaguedb.Player, error)
	DeletePlayerEvents(ctx context.Context, playerID uuid.UUID) error
	ClearAssistant(ctx context.Context, playerID uuid.UUID) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// Repository implements player data access operations on Postgres
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(db sqlutil.TxBeginner, querier Querier) *Repository {
	return &Repository{db: db, queries: querier}
}

func txQueries(tx *sql.Tx) Querier { return leaguedb.New(tx) }

// CreatePlayer creates a new player
func (r *Repository) CreatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	row, err := r.queries.CreatePlayer(ctx, leaguedb.CreatePlayerParams{
		ID:          p.ID,
		TeamID:      p.TeamID,
		Name:        p.Name,
		Goals:       int32(p.Goals),
		Assists:     int32(p.Assists),
		YellowCards: int32(p.YellowCards),
		RedCards:    int32(p.RedCards),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", sqlutil.MapError(err, "player"))
	}
	return dbPlayerToModel(row), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", sqlutil.MapError(err, "player"))
	}
	return dbPlayerToModel(row), nil
}

// ListPlayers retrieves every player ordered by name
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return dbPlayersToModels(rows), nil
}

// ListPlayersByTeam retrieves one team's squad
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	rows, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	return dbPlayersToModels(rows), nil
}

// UpdatePlayer persists every mutable field of p
func (r *Repository) UpdatePlayer(ctx context.Context, p models.Player) (*models.Player, error) {
	row, err := r.queries.UpdatePlayer(ctx, updateParams(p))
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", sqlutil.MapError(err, "player"))
	}
	return dbPlayerToModel(row), nil
}

// UpdatePlayerCounters rewrites the stored counters of every player in one transaction
func (r *Repository) UpdatePlayerCounters(ctx context.Context, players []models.Player) error {
	return sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		for _, p := range players {
			if _, err := q.UpdatePlayer(ctx, updateParams(p)); err != nil {
				return fmt.Errorf("failed to update counters for player %s: %w", p.ID, sqlutil.MapError(err, "player"))
			}
		}
		return nil
	})
}

// DeletePlayer removes the player's events, clears their assists and deletes the row
func (r *Repository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	return sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		if err := q.DeletePlayerEvents(ctx, id); err != nil {
			return fmt.Errorf("failed to delete player events: %w", err)
		}
		if err := q.ClearAssistant(ctx, id); err != nil {
			return fmt.Errorf("failed to clear player assists: %w", err)
		}
		if err := q.DeletePlayer(ctx, id); err != nil {
			return fmt.Errorf("failed to delete player: %w", err)
		}
		return nil
	})
}

func updateParams(p models.Player) leaguedb.UpdatePlayerParams {
	return leaguedb.UpdatePlayerParams{
		ID:          p.ID,
		TeamID:      p.TeamID,
		Name:        p.Name,
		Goals:       int32(p.Goals),
		Assists:     int32(p.Assists),
		YellowCards: int32(p.YellowCards),
		RedCards:    int32(p.RedCards),
	}
}

func dbPlayerToModel(p leaguedb.Player) *models.Player {
	return &models.Player{
		ID:          p.ID,
		TeamID:      p.TeamID,
		Name:        p.Name,
		Goals:       int(p.Goals),
		Assists:     int(p.Assists),
		YellowCards: int(p.YellowCards),
		RedCards:    int(p.RedCards),
		CreatedAt:   p.CreatedAt,
	}
}

func dbPlayersToModels(rows []leaguedb.Player) []models.Player {
	players := make([]models.Player, len(rows))
	for i, row := range rows {
		players[i] = *dbPlayerToModel(row)
	}
	return players
}
