package player

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/localrepo"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
)

type harness struct {
	app    *App
	repo   *localrepo.Repository
	events []realtime.ChangeEvent
	team   *models.Team
	season *models.Season
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	h := &harness{repo: localrepo.New(kvstore.NewMemoryKV())}
	h.app = NewApp(h.repo, h.repo, h.repo, realtime.NotifierFunc(func(_ context.Context, ev realtime.ChangeEvent) error {
		h.events = append(h.events, ev)
		return nil
	}))

	var err error
	h.season, err = h.repo.CreateSeason(ctx, models.Season{ID: uuid.New(), Name: "2024", Year: 2024, IsCurrent: true})
	require.NoError(t, err)
	h.team, err = h.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Lions", Initials: "LIO", Color: "#FF0000"})
	require.NoError(t, err)
	return h
}

func TestCreatePlayer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID, Name: " Ama "})
	require.NoError(t, err)
	assert.Equal(t, "Ama", p.Name)
	assert.Zero(t, p.Goals)
	require.Len(t, h.events, 1)
	assert.Equal(t, realtime.EntityPlayer, h.events[0].Entity)

	_, err = h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: uuid.New(), Name: "Kojo"})
	assert.ErrorIs(t, err, ErrUnknownTeam)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdatePlayer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID, Name: "Ama"})
	require.NoError(t, err)

	other, err := h.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Eagles", Initials: "EAG", Color: "#0000FF"})
	require.NoError(t, err)

	updated, err := h.app.UpdatePlayer(ctx, p.ID, UpdatePlayerRequest{TeamID: &other.ID, Goals: pointer.Int(3)})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.TeamID)
	assert.Equal(t, 3, updated.Goals)
	assert.Equal(t, "Ama", updated.Name)

	_, err = h.app.UpdatePlayer(ctx, p.ID, UpdatePlayerRequest{RedCards: pointer.Int(-1)})
	assert.ErrorIs(t, err, models.ErrValidation)

	squad, err := h.app.ListPlayers(ctx, &other.ID)
	require.NoError(t, err)
	assert.Len(t, squad, 1)
}

func TestRecalculateCounters(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	away, err := h.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Eagles", Initials: "EAG", Color: "#0000FF"})
	require.NoError(t, err)

	scorer, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID, Name: "Ama"})
	require.NoError(t, err)
	helper, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID, Name: "Kojo"})
	require.NoError(t, err)
	idle, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: away.ID, Name: "Yaw"})
	require.NoError(t, err)

	_, err = h.repo.CreateMatch(ctx, models.Match{
		ID: uuid.New(), SeasonID: h.season.ID, HomeTeamID: h.team.ID, AwayTeamID: away.ID,
		HomeScore: 2, IsFinished: true,
		Events: []models.MatchEvent{
			{Type: models.EventTypeGoal, PlayerID: scorer.ID, TeamID: h.team.ID, AssistantID: &helper.ID},
			{Type: models.EventTypeGoal, PlayerID: scorer.ID, TeamID: h.team.ID},
			{Type: models.EventTypeYellowCard, PlayerID: helper.ID, TeamID: h.team.ID},
		},
	})
	require.NoError(t, err)

	n, err := h.app.RecalculateCounters(ctx, h.season.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := h.app.GetPlayer(ctx, scorer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Goals)

	got, err = h.app.GetPlayer(ctx, helper.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Assists)
	assert.Equal(t, 1, got.YellowCards)

	got, err = h.app.GetPlayer(ctx, idle.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Goals)

	n, err = h.app.RecalculateCounters(ctx, h.season.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "second run is a no-op")
}

func TestDeletePlayer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p, err := h.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: h.team.ID, Name: "Ama"})
	require.NoError(t, err)

	require.NoError(t, h.app.DeletePlayer(ctx, p.ID))
	_, err = h.app.GetPlayer(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, h.app.DeletePlayer(ctx, p.ID), models.ErrNotFound)
	assert.Equal(t, realtime.ActionDeleted, h.events[len(h.events)-1].Action)
}
