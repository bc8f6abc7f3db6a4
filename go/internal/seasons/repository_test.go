package seasons

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowQuerier serves reads from a fixed row set; the write paths are not used here.
type rowQuerier struct {
	Querier
	rows []leaguedb.Season
}

func (q rowQuerier) GetSeason(_ context.Context, id uuid.UUID) (leaguedb.Season, error) {
	for _, r := range q.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return leaguedb.Season{}, sql.ErrNoRows
}

func (q rowQuerier) GetCurrentSeason(_ context.Context) (leaguedb.Season, error) {
	for _, r := range q.rows {
		if r.IsCurrent {
			return r, nil
		}
	}
	return leaguedb.Season{}, sql.ErrNoRows
}

func (q rowQuerier) ListSeasons(_ context.Context) ([]leaguedb.Season, error) {
	return q.rows, nil
}

func TestRepositoryReads(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	row := leaguedb.Season{ID: uuid.New(), Name: "2024", Year: 2024, Sequence: 1, CreatedAt: created}
	repo := NewRepository(nil, rowQuerier{rows: []leaguedb.Season{row}})
	ctx := context.Background()

	got, err := repo.GetSeason(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Season{ID: row.ID, Name: "2024", Year: 2024, Sequence: 1, CreatedAt: created}, *got)

	_, err = repo.GetSeason(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetCurrentSeason(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := repo.ListSeasons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
