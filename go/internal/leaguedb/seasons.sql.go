package leaguedb

import (
	"context"

	"github.com/google/uuid"
)

const seasonColumns = `id, name, year, sequence, is_current, created_at`

func scanSeason(row interface{ Scan(...interface{}) error }) (Season, error) {
	var i Season
	err := row.Scan(&i.ID, &i.Name, &i.Year, &i.Sequence, &i.IsCurrent, &i.CreatedAt)
	return i, err
}

const createSeason = `INSERT INTO seasons (id, name, year, sequence, is_current)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + seasonColumns

type CreateSeasonParams struct {
	ID        uuid.UUID
	Name      string
	Year      int32
	Sequence  int32
	IsCurrent bool
}

func (q *Queries) CreateSeason(ctx context.Context, arg CreateSeasonParams) (Season, error) {
	row := q.db.QueryRowContext(ctx, createSeason, arg.ID, arg.Name, arg.Year, arg.Sequence, arg.IsCurrent)
	return scanSeason(row)
}

const getSeason = `SELECT ` + seasonColumns + ` FROM seasons WHERE id = $1`

func (q *Queries) GetSeason(ctx context.Context, id uuid.UUID) (Season, error) {
	return scanSeason(q.db.QueryRowContext(ctx, getSeason, id))
}

const getCurrentSeason = `SELECT ` + seasonColumns + ` FROM seasons WHERE is_current LIMIT 1`

func (q *Queries) GetCurrentSeason(ctx context.Context) (Season, error) {
	return scanSeason(q.db.QueryRowContext(ctx, getCurrentSeason))
}

const getLatestSeason = `SELECT ` + seasonColumns + ` FROM seasons ORDER BY year DESC, sequence DESC LIMIT 1`

func (q *Queries) GetLatestSeason(ctx context.Context) (Season, error) {
	return scanSeason(q.db.QueryRowContext(ctx, getLatestSeason))
}

const listSeasons = `SELECT ` + seasonColumns + ` FROM seasons ORDER BY year DESC, sequence DESC`

func (q *Queries) ListSeasons(ctx context.Context) ([]Season, error) {
	rows, err := q.db.QueryContext(ctx, listSeasons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Season
	for rows.Next() {
		i, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const nextSeasonSequence = `SELECT COALESCE(MAX(sequence), 0) + 1 FROM seasons WHERE year = $1`

func (q *Queries) NextSeasonSequence(ctx context.Context, year int32) (int32, error) {
	var next int32
	err := q.db.QueryRowContext(ctx, nextSeasonSequence, year).Scan(&next)
	return next, err
}

const demoteSeasons = `UPDATE seasons SET is_current = FALSE WHERE is_current AND id <> $1`

// DemoteSeasons clears the current flag on every season except keep.
func (q *Queries) DemoteSeasons(ctx context.Context, keep uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, demoteSeasons, keep)
	return err
}

const setSeasonCurrent = `UPDATE seasons SET is_current = TRUE WHERE id = $1 RETURNING ` + seasonColumns

func (q *Queries) SetSeasonCurrent(ctx context.Context, id uuid.UUID) (Season, error) {
	return scanSeason(q.db.QueryRowContext(ctx, setSeasonCurrent, id))
}

const updateSeason = `UPDATE seasons SET name = $2, year = $3, sequence = $4
WHERE id = $1
RETURNING ` + seasonColumns

type UpdateSeasonParams struct {
	ID       uuid.UUID
	Name     string
	Year     int32
	Sequence int32
}

func (q *Queries) UpdateSeason(ctx context.Context, arg UpdateSeasonParams) (Season, error) {
	return scanSeason(q.db.QueryRowContext(ctx, updateSeason, arg.ID, arg.Name, arg.Year, arg.Sequence))
}

const deleteSeason = `DELETE FROM seasons WHERE id = $1`

func (q *Queries) DeleteSeason(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteSeason, id)
	return err
}
