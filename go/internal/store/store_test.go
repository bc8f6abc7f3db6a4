package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/localrepo"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type league struct {
	season        models.Season
	lions, eagles models.Team
	ama, kojo     models.Player
	match         models.Match
}

func seed(t *testing.T, repo *localrepo.Repository) league {
	t.Helper()
	ctx := context.Background()
	var l league
	l.season = models.Season{ID: uuid.New(), Name: "2024", Year: 2024, Sequence: 1, IsCurrent: true}
	l.lions = models.Team{ID: uuid.New(), SeasonID: &l.season.ID, Name: "Lions", Initials: "LIO", Color: "#FF0000"}
	l.eagles = models.Team{ID: uuid.New(), Name: "Eagles", Initials: "EAG", Color: "#0000FF"}
	l.ama = models.Player{ID: uuid.New(), TeamID: l.lions.ID, Name: "Ama"}
	l.kojo = models.Player{ID: uuid.New(), TeamID: l.eagles.ID, Name: "Kojo"}
	l.match = models.Match{
		ID:         uuid.New(),
		SeasonID:   l.season.ID,
		HomeTeamID: l.lions.ID,
		AwayTeamID: l.eagles.ID,
		HomeScore:  1,
		IsFinished: true,
		PlayedAt:   time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC),
		Events: []models.MatchEvent{
			{ID: uuid.New(), Type: models.EventTypeGoal, PlayerID: l.ama.ID, TeamID: l.lions.ID, AssistantID: &l.kojo.ID},
			{ID: uuid.New(), Type: models.EventTypeFoul, PlayerID: l.kojo.ID, TeamID: l.eagles.ID},
		},
	}
	require.NoError(t, repo.Import(ctx,
		[]models.Team{l.lions, l.eagles},
		[]models.Player{l.ama, l.kojo},
		[]models.Season{l.season},
		[]models.Match{l.match},
	))
	return l
}

func teamByID(t *testing.T, snap *Snapshot, id uuid.UUID) models.Team {
	t.Helper()
	for _, team := range snap.Teams {
		if team.ID == id {
			return team
		}
	}
	t.Fatalf("team %s not in snapshot", id)
	return models.Team{}
}

func loadedStore(t *testing.T) (*Store, league) {
	t.Helper()
	repo := localrepo.New(kvstore.NewMemoryKV())
	l := seed(t, repo)
	s := New(repo)
	require.NoError(t, s.Refresh(context.Background()))
	return s, l
}

func TestRefreshLoadsEveryCollection(t *testing.T) {
	s, l := loadedStore(t)
	snap := s.Snapshot()

	assert.Len(t, snap.Teams, 2)
	assert.Len(t, snap.Players, 2)
	assert.Len(t, snap.Matches, 1)
	assert.False(t, snap.LoadedAt.IsZero())
	require.NotNil(t, snap.CurrentSeason())
	assert.Equal(t, l.season.ID, snap.CurrentSeason().ID)

	season, ok := snap.Season(l.season.ID)
	require.True(t, ok)
	assert.Equal(t, "2024", season.Name)
	_, ok = snap.Season(uuid.New())
	assert.False(t, ok)
}

func TestSeasonTeamsFallsBackToAllTeams(t *testing.T) {
	s, l := loadedStore(t)
	snap := s.Snapshot()

	registered := snap.SeasonTeams(l.season.ID)
	require.Len(t, registered, 1)
	assert.Equal(t, l.lions.ID, registered[0].ID)

	assert.Len(t, snap.SeasonTeams(uuid.New()), 2)
	assert.Len(t, snap.SeasonMatches(l.season.ID), 1)
	assert.Empty(t, snap.SeasonMatches(uuid.New()))
}

type failingSource struct {
	Source
}

func (failingSource) ListMatches(context.Context) ([]models.Match, error) {
	return nil, errors.New("connection reset")
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	repo := localrepo.New(kvstore.NewMemoryKV())
	seed(t, repo)

	s := New(failingSource{Source: repo})
	err := s.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load matches")
	assert.Empty(t, s.Snapshot().Teams)
}

func TestCompositeSource(t *testing.T) {
	repo := localrepo.New(kvstore.NewMemoryKV())
	seed(t, repo)

	s := New(Composite{Teams: repo, Players: repo, Seasons: repo, Matches: repo})
	require.NoError(t, s.Refresh(context.Background()))
	assert.Len(t, s.Snapshot().Teams, 2)
}

func TestSnapshotHelpersDoNotMutateReceiver(t *testing.T) {
	s, l := loadedStore(t)
	before := s.Snapshot()

	after := before.WithoutPlayer(l.kojo.ID)
	require.Len(t, after.Matches, 1)
	require.Len(t, after.Matches[0].Events, 1)
	assert.Nil(t, after.Matches[0].Events[0].AssistantID)

	assert.Len(t, before.Players, 2)
	require.Len(t, before.Matches[0].Events, 2)
	assert.NotNil(t, before.Matches[0].Events[0].AssistantID)
}

func TestWithoutTeamCascades(t *testing.T) {
	s, l := loadedStore(t)
	snap := s.Snapshot().WithoutTeam(l.eagles.ID)

	assert.Len(t, snap.Teams, 1)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, l.ama.ID, snap.Players[0].ID)
	assert.Empty(t, snap.Matches)
}

func TestWithoutSeasonUnregistersTeams(t *testing.T) {
	s, l := loadedStore(t)
	snap := s.Snapshot().WithoutSeason(l.season.ID)

	assert.Empty(t, snap.Seasons)
	assert.Empty(t, snap.Matches)
	for _, team := range snap.Teams {
		assert.Nil(t, team.SeasonID)
	}
	assert.NotNil(t, teamByID(t, s.Snapshot(), l.lions.ID).SeasonID, "original snapshot keeps registration")
}

func TestApplyChangeEvents(t *testing.T) {
	s, l := loadedStore(t)

	next := models.Season{ID: uuid.New(), Name: "2025", Year: 2025, Sequence: 1, IsCurrent: true}
	ev, err := realtime.NewChangeEvent(realtime.EntitySeason, realtime.ActionCreated, next.ID, next)
	require.NoError(t, err)
	require.NoError(t, s.Apply(ev))

	snap := s.Snapshot()
	require.Len(t, snap.Seasons, 2)
	assert.Equal(t, next.ID, snap.CurrentSeason().ID)
	old, _ := snap.Season(l.season.ID)
	assert.False(t, old.IsCurrent)

	renamed := l.lions
	renamed.Name = "Lionesses"
	ev, err = realtime.NewChangeEvent(realtime.EntityTeam, realtime.ActionUpdated, renamed.ID, renamed)
	require.NoError(t, err)
	require.NoError(t, s.Apply(ev))
	assert.Equal(t, "Lionesses", teamByID(t, s.Snapshot(), l.lions.ID).Name)
	assert.Len(t, s.Snapshot().Teams, 2)

	ev, err = realtime.NewChangeEvent(realtime.EntityMatch, realtime.ActionDeleted, l.match.ID, nil)
	require.NoError(t, err)
	require.NoError(t, s.Apply(ev))
	assert.Empty(t, s.Snapshot().Matches)

	bad := realtime.ChangeEvent{Entity: realtime.EntityPlayer, Action: realtime.ActionUpdated, Payload: []byte("{")}
	assert.Error(t, s.Apply(bad))
}
