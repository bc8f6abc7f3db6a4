package localrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo   *Repository
	season models.Season
	home   models.Team
	away   models.Team
	scorer models.Player
	helper models.Player
	keeper models.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, kvstore.NewMemoryKV())
}

func newFixtureOn(t *testing.T, kv kvstore.KV) *fixture {
	t.Helper()
	ctx := context.Background()
	repo := New(kv)

	season, err := repo.CreateSeason(ctx, models.Season{ID: uuid.New(), Name: "2024 A", Year: 2024, IsCurrent: true})
	require.NoError(t, err)

	home, err := repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Lions", Initials: "LIO", Color: "#FF0000", SeasonID: &season.ID})
	require.NoError(t, err)
	away, err := repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Eagles", Initials: "EAG", Color: "#0000FF"})
	require.NoError(t, err)

	scorer, err := repo.CreatePlayer(ctx, models.Player{ID: uuid.New(), TeamID: home.ID, Name: "Ama"})
	require.NoError(t, err)
	helper, err := repo.CreatePlayer(ctx, models.Player{ID: uuid.New(), TeamID: home.ID, Name: "Kojo"})
	require.NoError(t, err)
	keeper, err := repo.CreatePlayer(ctx, models.Player{ID: uuid.New(), TeamID: away.ID, Name: "Yaw"})
	require.NoError(t, err)

	return &fixture{repo: repo, season: *season, home: *home, away: *away, scorer: *scorer, helper: *helper, keeper: *keeper}
}

func (f *fixture) match(t *testing.T, events ...models.MatchEvent) models.Match {
	t.Helper()
	m, err := f.repo.CreateMatch(context.Background(), models.Match{
		ID:         uuid.New(),
		SeasonID:   f.season.ID,
		HomeTeamID: f.home.ID,
		AwayTeamID: f.away.ID,
		HomeScore:  1,
		IsFinished: true,
		PlayedAt:   time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		Events:     events,
	})
	require.NoError(t, err)
	return *m
}

func TestSeasonSequenceAndSingleCurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	assert.Equal(t, 1, f.season.Sequence)

	second, err := f.repo.CreateSeason(ctx, models.Season{ID: uuid.New(), Name: "2024 B", Year: 2024, IsCurrent: true})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Sequence)

	current, err := f.repo.GetCurrentSeason(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	first, err := f.repo.GetSeason(ctx, f.season.ID)
	require.NoError(t, err)
	assert.False(t, first.IsCurrent, "creating a current season demotes the old one")

	_, err = f.repo.CreateSeason(ctx, models.Season{ID: uuid.New(), Name: "dup", Year: 2024, Sequence: 2})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = f.repo.SetCurrentSeason(ctx, f.season.ID)
	require.NoError(t, err)
	seasons, err := f.repo.ListSeasons(ctx)
	require.NoError(t, err)
	currents := 0
	for _, s := range seasons {
		if s.IsCurrent {
			currents++
		}
	}
	assert.Equal(t, 1, currents)
	assert.Equal(t, second.ID, seasons[0].ID, "most recent first")
}

func TestDeleteCurrentSeasonPromotesLatest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	older, err := f.repo.CreateSeason(ctx, models.Season{ID: uuid.New(), Name: "2023", Year: 2023})
	require.NoError(t, err)
	_ = f.match(t)

	promoted, err := f.repo.DeleteSeason(ctx, f.season.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, older.ID, promoted.ID)
	assert.True(t, promoted.IsCurrent)

	matches, err := f.repo.ListMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches, "matches of the deleted season are removed")

	home, err := f.repo.GetTeam(ctx, f.home.ID)
	require.NoError(t, err)
	assert.Nil(t, home.SeasonID, "teams are unregistered, not deleted")

	promoted, err = f.repo.DeleteSeason(ctx, older.ID)
	require.NoError(t, err)
	assert.Nil(t, promoted)
	_, err = f.repo.GetCurrentSeason(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeletePlayerCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.match(t,
		models.MatchEvent{Type: models.EventTypeGoal, PlayerID: f.helper.ID, TeamID: f.home.ID, AssistantID: &f.scorer.ID},
		models.MatchEvent{Type: models.EventTypeGoal, PlayerID: f.scorer.ID, TeamID: f.home.ID},
		models.MatchEvent{Type: models.EventTypeYellowCard, PlayerID: f.keeper.ID, TeamID: f.away.ID},
	)

	require.NoError(t, f.repo.DeletePlayer(ctx, f.scorer.ID))

	got, err := f.repo.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, got.Events, 2)
	assert.Equal(t, f.helper.ID, got.Events[0].PlayerID)
	assert.Nil(t, got.Events[0].AssistantID, "assist credit is cleared")
	assert.Equal(t, f.keeper.ID, got.Events[1].PlayerID)

	_, err = f.repo.GetPlayer(ctx, f.scorer.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteTeamCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.match(t, models.MatchEvent{Type: models.EventTypeGoal, PlayerID: f.scorer.ID, TeamID: f.home.ID})

	third, err := f.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Bees", Initials: "BEE", Color: "#FFFF00"})
	require.NoError(t, err)
	other, err := f.repo.CreateMatch(ctx, models.Match{
		ID: uuid.New(), SeasonID: f.season.ID, HomeTeamID: third.ID, AwayTeamID: f.away.ID, IsFinished: true,
		Events: []models.MatchEvent{{Type: models.EventTypeFoul, PlayerID: f.keeper.ID, TeamID: f.away.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, f.repo.DeleteTeam(ctx, f.home.ID))

	matches, err := f.repo.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, other.ID, matches[0].ID)
	assert.Len(t, matches[0].Events, 1)

	players, err := f.repo.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, f.keeper.ID, players[0].ID)

	assert.ErrorIs(t, f.repo.DeleteTeam(ctx, f.home.ID), models.ErrNotFound)
}

func TestReferenceChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.repo.CreatePlayer(ctx, models.Player{ID: uuid.New(), TeamID: uuid.New(), Name: "ghost"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = f.repo.CreateMatch(ctx, models.Match{ID: uuid.New(), SeasonID: uuid.New(), HomeTeamID: f.home.ID, AwayTeamID: f.away.ID})
	assert.ErrorIs(t, err, models.ErrConflict)

	missing := uuid.New()
	_, err = f.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "X", Initials: "X", Color: "#000000", SeasonID: &missing})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateMatchReplacesEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.match(t, models.MatchEvent{Type: models.EventTypeGoal, PlayerID: f.scorer.ID, TeamID: f.home.ID})
	require.NotEqual(t, uuid.Nil, m.Events[0].ID)
	assert.Equal(t, m.ID, m.Events[0].MatchID)

	m.HomeScore, m.AwayScore = 0, 1
	m.Events = []models.MatchEvent{{Type: models.EventTypeGoal, PlayerID: f.keeper.ID, TeamID: f.away.ID}}
	_, err := f.repo.UpdateMatch(ctx, m)
	require.NoError(t, err)

	bySeason, err := f.repo.ListMatchesBySeason(ctx, f.season.ID)
	require.NoError(t, err)
	require.Len(t, bySeason, 1)
	assert.Equal(t, 1, bySeason[0].AwayScore)
	require.Len(t, bySeason[0].Events, 1)
	assert.Equal(t, f.keeper.ID, bySeason[0].Events[0].PlayerID)

	require.NoError(t, f.repo.DeleteMatch(ctx, m.ID))
	_, err = f.repo.GetMatch(ctx, m.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListingsAndCounters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	teams, err := f.repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Eagles", teams[0].Name)

	registered, err := f.repo.ListTeamsBySeason(ctx, f.season.ID)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, f.home.ID, registered[0].ID)

	squad, err := f.repo.ListPlayersByTeam(ctx, f.home.ID)
	require.NoError(t, err)
	assert.Len(t, squad, 2)

	scorer := f.scorer
	scorer.Goals, scorer.YellowCards = 4, 1
	require.NoError(t, f.repo.UpdatePlayerCounters(ctx, []models.Player{scorer}))
	got, err := f.repo.GetPlayer(ctx, f.scorer.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Goals)
	assert.Equal(t, 1, got.YellowCards)
	assert.Equal(t, "Ama", got.Name)
}

func TestPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv, err := kvstore.NewFileKV(t.TempDir())
	require.NoError(t, err)

	first := New(kv)
	empty, err := first.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	team, err := first.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "Lions", Initials: "LIO", Color: "#FF0000"})
	require.NoError(t, err)

	second := New(kv)
	got, err := second.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lions", got.Name)

	empty, err = second.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestFailedWriteLeavesDataUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	dup := f.home
	_, err := f.repo.CreateTeam(ctx, dup)
	assert.ErrorIs(t, err, models.ErrConflict)

	teams, err := f.repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

// failingKV fails every Set of failKey once armed.
type failingKV struct {
	kvstore.KV
	failKey string
	armed   bool
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.armed && key == f.failKey {
		return errors.New("disk full")
	}
	return f.KV.Set(ctx, key, value)
}

func TestFailedSaveRollsBackCascade(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KV: kvstore.NewMemoryKV(), failKey: keyPlayers}
	f := newFixtureOn(t, kv)
	f.match(t, models.MatchEvent{Type: models.EventTypeGoal, PlayerID: f.scorer.ID, TeamID: f.home.ID})

	kv.armed = true
	err := f.repo.DeleteTeam(ctx, f.home.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	kv.armed = false

	teams, err := f.repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2, "team delete was rolled back")

	players, err := f.repo.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 3)

	matches, err := f.repo.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, f.home.ID, matches[0].HomeTeamID)

	require.NoError(t, f.repo.DeleteTeam(ctx, f.home.ID))
	players, err = f.repo.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestFailedSaveRemovesNewCollection(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KV: kvstore.NewMemoryKV(), failKey: keyPlayers, armed: true}
	repo := New(kv)

	team := models.Team{ID: uuid.New(), Name: "Lions", Initials: "LIO", Color: "#FF0000"}
	err := repo.Import(ctx, []models.Team{team}, []models.Player{{ID: uuid.New(), TeamID: team.ID, Name: "Ama"}}, nil, nil)
	require.Error(t, err)

	_, err = kv.Get(ctx, keyTeams)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
	empty, err := repo.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestNamesSortCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	lower, err := f.repo.CreatePlayer(ctx, models.Player{ID: uuid.New(), TeamID: f.away.ID, Name: "abena"})
	require.NoError(t, err)
	low := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	high := uuid.MustParse("ffffffff-0000-4000-8000-000000000001")
	_, err = f.repo.CreatePlayer(ctx, models.Player{ID: high, TeamID: f.away.ID, Name: "Kojo"})
	require.NoError(t, err)
	_, err = f.repo.CreatePlayer(ctx, models.Player{ID: low, TeamID: f.away.ID, Name: "Kojo"})
	require.NoError(t, err)

	players, err := f.repo.ListPlayers(ctx)
	require.NoError(t, err)
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"abena", "Ama", "Kojo", "Kojo", "Kojo", "Yaw"}, names)
	assert.Equal(t, lower.ID, players[0].ID)

	var kojos []uuid.UUID
	for _, p := range players {
		if p.Name == "Kojo" {
			kojos = append(kojos, p.ID)
		}
	}
	assert.Equal(t, low, kojos[0], "equal names fall back to id order")

	_, err = f.repo.CreateTeam(ctx, models.Team{ID: uuid.New(), Name: "bees", Initials: "BEE", Color: "#FFFF00"})
	require.NoError(t, err)
	teams, err := f.repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []string{"bees", "Eagles", "Lions"}, []string{teams[0].Name, teams[1].Name, teams[2].Name})
}
