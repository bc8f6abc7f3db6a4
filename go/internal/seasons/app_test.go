package seasons

import (
	"context"
	"testing"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/localrepo"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
)

func newTestApp(t *testing.T) (*App, *[]realtime.ChangeEvent) {
	t.Helper()
	var events []realtime.ChangeEvent
	app := NewApp(localrepo.New(kvstore.NewMemoryKV()), realtime.NotifierFunc(func(_ context.Context, ev realtime.ChangeEvent) error {
		events = append(events, ev)
		return nil
	}))
	return app, &events
}

func countCurrent(t *testing.T, app *App) int {
	t.Helper()
	seasons, err := app.ListSeasons(context.Background())
	require.NoError(t, err)
	n := 0
	for _, s := range seasons {
		if s.IsCurrent {
			n++
		}
	}
	return n
}

func TestFirstSeasonBecomesCurrent(t *testing.T) {
	app, events := newTestApp(t)
	ctx := context.Background()

	first, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "2024 Opening", Year: 2024})
	require.NoError(t, err)
	assert.True(t, first.IsCurrent)
	assert.Equal(t, 1, first.Sequence)

	second, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "2024 Closing", Year: 2024})
	require.NoError(t, err)
	assert.False(t, second.IsCurrent)
	assert.Equal(t, 2, second.Sequence)

	current, err := app.CurrentSeason(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
	assert.Len(t, *events, 2)
}

func TestAtMostOneCurrentSeason(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	a, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "A", Year: 2023})
	require.NoError(t, err)
	b, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "B", Year: 2024, IsCurrent: true})
	require.NoError(t, err)
	assert.Equal(t, 1, countCurrent(t, app))

	_, err = app.SetCurrentSeason(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countCurrent(t, app))

	current, err := app.CurrentSeason(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, current.ID)

	got, err := app.GetSeason(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.IsCurrent)
}

func TestDeleteCurrentSeasonPromotesMostRecent(t *testing.T) {
	app, events := newTestApp(t)
	ctx := context.Background()

	_, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "2022", Year: 2022})
	require.NoError(t, err)
	latest, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "2023 B", Year: 2023, Sequence: 2})
	require.NoError(t, err)
	_, err = app.CreateSeason(ctx, CreateSeasonRequest{Name: "2023 A", Year: 2023, Sequence: 1})
	require.NoError(t, err)
	doomed, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "2024", Year: 2024, IsCurrent: true})
	require.NoError(t, err)

	promoted, err := app.DeleteSeason(ctx, doomed.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, latest.ID, promoted.ID, "max year, then max sequence")
	assert.Equal(t, 1, countCurrent(t, app))

	last := (*events)[len(*events)-1]
	assert.Equal(t, realtime.ActionUpdated, last.Action)
	assert.Equal(t, promoted.ID, last.EntityID)
}

func TestUpdateSeason(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	s, err := app.CreateSeason(ctx, CreateSeasonRequest{Name: "Spring", Year: 2024})
	require.NoError(t, err)
	_, err = app.CreateSeason(ctx, CreateSeasonRequest{Name: "Autumn", Year: 2024})
	require.NoError(t, err)

	updated, err := app.UpdateSeason(ctx, s.ID, UpdateSeasonRequest{Name: pointer.String("Spring Cup")})
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup", updated.Name)
	assert.True(t, updated.IsCurrent, "update keeps the current flag")

	_, err = app.UpdateSeason(ctx, s.ID, UpdateSeasonRequest{Sequence: pointer.Int(2)})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = app.UpdateSeason(ctx, s.ID, UpdateSeasonRequest{Year: pointer.Int(12)})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateSeasonValidation(t *testing.T) {
	app, events := newTestApp(t)
	ctx := context.Background()

	_, err := app.CreateSeason(ctx, CreateSeasonRequest{Year: 2024})
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = app.CreateSeason(ctx, CreateSeasonRequest{Name: "x", Year: 2024, Sequence: -1})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, *events)
}
