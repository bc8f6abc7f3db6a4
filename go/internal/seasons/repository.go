package seasons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateSeason(ctx context.Context, arg leaguedb.CreateSeasonParams) (leaguedb.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (leaguedb.Season, error)
	GetCurrentSeason(ctx context.Context) (leaguedb.Season, error)
	GetLatestSeason(ctx context.Context) (leaguedb.Season, error)
	ListSeasons(ctx context.Context) ([]leaguedb.Season, error)
	NextSeasonSequence(ctx context.Context, year int32) (int32, error)
	DemoteSeasons(ctx context.Context, keep uuid.UUID) error
	SetSeasonCurrent(ctx context.Context, id uuid.UUID) (leaguedb.Season, error)
	UpdateSeason(ctx context.Context, arg leaguedb.UpdateSeasonParams) (leaguedb.Season, error)
	DeleteSeason(ctx context.Context, id uuid.UUID) error
}

// Repository implements season data access operations on Postgres
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new seasons repository
func NewRepository(db sqlutil.TxBeginner, querier Querier) *Repository {
	return &Repository{db: db, queries: querier}
}

func txQueries(tx *sql.Tx) Querier { return leaguedb.New(tx) }

// CreateSeason inserts the season, filling in its sequence when unset and
// demoting every other season when it is current.
func (r *Repository) CreateSeason(ctx context.Context, s models.Season) (*models.Season, error) {
	var created leaguedb.Season
	err := sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		seq := int32(s.Sequence)
		if seq == 0 {
			next, err := q.NextSeasonSequence(ctx, int32(s.Year))
			if err != nil {
				return fmt.Errorf("failed to compute sequence: %w", err)
			}
			seq = next
		}
		if s.IsCurrent {
			// demote first so the single-current index is never violated
			if err := q.DemoteSeasons(ctx, s.ID); err != nil {
				return fmt.Errorf("failed to demote seasons: %w", err)
			}
		}

		var err error
		created, err = q.CreateSeason(ctx, leaguedb.CreateSeasonParams{
			ID:        s.ID,
			Name:      s.Name,
			Year:      int32(s.Year),
			Sequence:  seq,
			IsCurrent: s.IsCurrent,
		})
		if err != nil {
			return fmt.Errorf("failed to create season: %w", sqlutil.MapError(err, "season"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dbSeasonToModel(created), nil
}

// GetSeason retrieves a season by ID
func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	row, err := r.queries.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", sqlutil.MapError(err, "season"))
	}
	return dbSeasonToModel(row), nil
}

// GetCurrentSeason returns the season flagged current
func (r *Repository) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	row, err := r.queries.GetCurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current season: %w", sqlutil.MapError(err, "current season"))
	}
	return dbSeasonToModel(row), nil
}

// ListSeasons returns every season, most recent first
func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	rows, err := r.queries.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	seasons := make([]models.Season, len(rows))
	for i, row := range rows {
		seasons[i] = *dbSeasonToModel(row)
	}
	return seasons, nil
}

// SetCurrentSeason makes id the only current season
func (r *Repository) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var row leaguedb.Season
	err := sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		if err := q.DemoteSeasons(ctx, id); err != nil {
			return fmt.Errorf("failed to demote seasons: %w", err)
		}
		var err error
		row, err = q.SetSeasonCurrent(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to set current season: %w", sqlutil.MapError(err, "season"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dbSeasonToModel(row), nil
}

// UpdateSeason changes name, year and sequence
func (r *Repository) UpdateSeason(ctx context.Context, s models.Season) (*models.Season, error) {
	row, err := r.queries.UpdateSeason(ctx, leaguedb.UpdateSeasonParams{
		ID:       s.ID,
		Name:     s.Name,
		Year:     int32(s.Year),
		Sequence: int32(s.Sequence),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update season: %w", sqlutil.MapError(err, "season"))
	}
	return dbSeasonToModel(row), nil
}

// DeleteSeason deletes the season; its matches cascade and its teams are
// unregistered. If it was current, the latest remaining season is promoted
// and returned.
func (r *Repository) DeleteSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var promoted *models.Season
	err := sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		existing, err := q.GetSeason(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get season: %w", sqlutil.MapError(err, "season"))
		}
		if err := q.DeleteSeason(ctx, id); err != nil {
			return fmt.Errorf("failed to delete season: %w", sqlutil.MapError(err, "season"))
		}
		if !existing.IsCurrent {
			return nil
		}

		latest, err := q.GetLatestSeason(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find latest season: %w", err)
		}
		row, err := q.SetSeasonCurrent(ctx, latest.ID)
		if err != nil {
			return fmt.Errorf("failed to promote season: %w", err)
		}
		promoted = dbSeasonToModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

func dbSeasonToModel(s leaguedb.Season) *models.Season {
	return &models.Season{
		ID:        s.ID,
		Name:      s.Name,
		Year:      int(s.Year),
		Sequence:  int(s.Sequence),
		IsCurrent: s.IsCurrent,
		CreatedAt: s.CreatedAt,
	}
}
