package mockdata

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june2024 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func generate(t *testing.T, mutate func(*Options)) *Dataset {
	t.Helper()
	opts := DefaultOptions()
	opts.Now = june2024
	if mutate != nil {
		mutate(&opts)
	}
	ds, err := Generate(opts)
	require.NoError(t, err)
	return ds
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := generate(t, nil)
	b := generate(t, nil)
	assert.Equal(t, a, b)

	c := generate(t, func(o *Options) { o.Seed = 7 })
	assert.NotEqual(t, a.Teams[0].ID, c.Teams[0].ID)
}

func TestGenerateShape(t *testing.T) {
	ds := generate(t, nil)

	assert.Len(t, ds.Teams, 6)
	assert.Len(t, ds.Players, 48)
	require.Len(t, ds.Seasons, 3)
	assert.Len(t, ds.Matches, 3*30)

	assert.Equal(t, 2022, ds.Seasons[0].Year)
	current := ds.Seasons[2]
	assert.True(t, current.IsCurrent)
	assert.False(t, ds.Seasons[0].IsCurrent)
	for _, team := range ds.Teams {
		assert.True(t, team.RegisteredTo(current.ID))
		assert.Regexp(t, `^#[0-9A-F]{6}$`, team.Color)
		assert.Len(t, team.Initials, 3)
	}
	assert.Equal(t, "ALI", ds.Teams[0].Initials)
	assert.Equal(t, "CCS", ds.Teams[2].Initials)
}

func TestDoubleRoundRobin(t *testing.T) {
	ds := generate(t, nil)
	season := ds.Seasons[0].ID

	seen := make(map[[2]uuid.UUID]int)
	for _, m := range ds.Matches {
		if m.SeasonID == season {
			seen[[2]uuid.UUID{m.HomeTeamID, m.AwayTeamID}]++
		}
	}
	assert.Len(t, seen, 30)
	for pair, n := range seen {
		assert.Equal(t, 1, n, "pairing %v", pair)
	}
}

func TestOddTeamCountSingleLeg(t *testing.T) {
	ds := generate(t, func(o *Options) {
		o.Teams = 5
		o.Seasons = 1
		o.RoundRobin = 1
	})
	require.Len(t, ds.Matches, 10)

	played := make(map[uuid.UUID]int)
	for _, m := range ds.Matches {
		played[m.HomeTeamID]++
		played[m.AwayTeamID]++
	}
	for _, team := range ds.Teams {
		assert.Equal(t, 4, played[team.ID])
	}
}

func TestEventsAgreeWithScores(t *testing.T) {
	ds := generate(t, nil)

	squad := make(map[uuid.UUID]uuid.UUID)
	for _, p := range ds.Players {
		squad[p.ID] = p.TeamID
	}

	for _, m := range ds.Matches {
		require.NoError(t, stats.ValidateMatch(m))
		goals := map[uuid.UUID]int{}
		for _, ev := range m.Events {
			assert.Equal(t, m.ID, ev.MatchID)
			assert.True(t, m.Involves(ev.TeamID))
			assert.Equal(t, ev.TeamID, squad[ev.PlayerID])
			require.NotNil(t, ev.Minute)
			assert.GreaterOrEqual(t, *ev.Minute, 1)
			if ev.AssistantID != nil {
				assert.NotEqual(t, ev.PlayerID, *ev.AssistantID)
				assert.Equal(t, ev.TeamID, squad[*ev.AssistantID])
			}
			if ev.Type == models.EventTypeGoal {
				goals[ev.TeamID]++
			}
		}
		assert.Equal(t, m.HomeScore, goals[m.HomeTeamID])
		assert.Equal(t, m.AwayScore, goals[m.AwayTeamID])
	}
}

func TestFutureFixturesAreUnplayed(t *testing.T) {
	ds := generate(t, func(o *Options) { o.Now = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) })
	current := ds.Seasons[len(ds.Seasons)-1]

	finished, pending := 0, 0
	for _, m := range ds.Matches {
		if m.SeasonID != current.ID {
			assert.True(t, m.IsFinished)
			continue
		}
		if m.IsFinished {
			finished++
			continue
		}
		pending++
		assert.Empty(t, m.Events)
		assert.Zero(t, m.HomeScore)
	}
	assert.Equal(t, 15, finished)
	assert.Equal(t, 15, pending)
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"one team", func(o *Options) { o.Teams = 1 }},
		{"too many teams", func(o *Options) { o.Teams = 99 }},
		{"no players", func(o *Options) { o.PlayersPerTeam = 0 }},
		{"no seasons", func(o *Options) { o.Seasons = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := Generate(opts)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}
