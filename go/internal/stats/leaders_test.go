package stats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLeadersGoalWithAssistant(t *testing.T) {
	season := uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1, p2 := player("P1", a), player("P2", a)

	matches := []models.Match{finished(season, a, b, 1, 0, goal(p1, &p2))}
	leaders := ComputeLeaders(season, []models.Player{p1, p2}, matches)

	require.NotNil(t, leaders.TopScorer)
	require.NotNil(t, leaders.TopAssister)
	assert.Equal(t, p1.ID, leaders.TopScorer.Player.ID)
	assert.Equal(t, 1, leaders.TopScorer.Value)
	assert.Equal(t, p2.ID, leaders.TopAssister.Player.ID)
	assert.Equal(t, 1, leaders.TopAssister.Value)
}

func TestComputeLeadersDoubleCountsExplicitAssist(t *testing.T) {
	season := uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1, p2 := player("P1", a), player("P2", a)

	matches := []models.Match{finished(season, a, b, 1, 0,
		goal(p1, &p2),
		event(models.EventTypeAssist, p2),
	)}
	stats := SeasonPlayerStats(season, []models.Player{p1, p2}, matches)

	assert.Equal(t, 1, stats[0].Goals)
	assert.Equal(t, 2, stats[1].Assists)
}

func TestComputeLeadersNoGoals(t *testing.T) {
	season := uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1 := player("P1", a)

	matches := []models.Match{finished(season, a, b, 0, 0, event(models.EventTypeYellowCard, p1))}
	leaders := ComputeLeaders(season, []models.Player{p1}, matches)

	assert.Nil(t, leaders.TopScorer)
	assert.Nil(t, leaders.TopAssister)
}

func TestComputeLeadersNilSeason(t *testing.T) {
	a, b := team("A", "A", ""), team("B", "B", "")
	p1 := player("P1", a)
	matches := []models.Match{finished(uuid.Nil, a, b, 1, 0, goal(p1, nil))}

	assert.Equal(t, Leaders{}, ComputeLeaders(uuid.Nil, []models.Player{p1}, matches))
}

func TestComputeLeadersTies(t *testing.T) {
	season := uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1, p2, p3, p4 := player("P1", a), player("P2", a), player("P3", b), player("P4", b)

	matches := []models.Match{
		finished(season, a, b, 2, 2, goal(p2, nil), goal(p3, nil), goal(p1, nil), goal(p4, &p1)),
	}
	leaders := ComputeLeaders(season, []models.Player{p1, p2, p3, p4}, matches)

	require.NotNil(t, leaders.TopScorer)
	assert.Equal(t, p1.ID, leaders.TopScorer.Player.ID, "first tied player in list order")
	assert.Equal(t, 3, leaders.TopScorer.ExtraCount)

	require.NotNil(t, leaders.TopAssister)
	assert.Equal(t, p1.ID, leaders.TopAssister.Player.ID)
	assert.Equal(t, 0, leaders.TopAssister.ExtraCount)
}

func TestComputeLeadersIgnoresOtherSeasonsAndPenalties(t *testing.T) {
	season, other := uuid.New(), uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1, p2 := player("P1", a), player("P2", b)

	matches := []models.Match{
		finished(season, a, b, 1, 1, goal(p1, nil), event(models.EventTypePenaltyGoal, p2)),
		finished(other, a, b, 0, 3, goal(p2, nil), goal(p2, nil), goal(p2, nil)),
	}
	leaders := ComputeLeaders(season, []models.Player{p1, p2}, matches)

	require.NotNil(t, leaders.TopScorer)
	assert.Equal(t, p1.ID, leaders.TopScorer.Player.ID)
	assert.Equal(t, 0, leaders.TopScorer.ExtraCount)
}

func TestSeasonPlayerStatsCountsCardsAndUnknownPlayers(t *testing.T) {
	season := uuid.New()
	a, b := team("A", "A", ""), team("B", "B", "")
	p1 := player("P1", a)
	ghost := player("Ghost", b)

	matches := []models.Match{finished(season, a, b, 0, 1,
		event(models.EventTypeYellowCard, p1),
		event(models.EventTypeRedCard, p1),
		goal(ghost, nil),
	)}
	stats := SeasonPlayerStats(season, []models.Player{p1}, matches)

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].YellowCards)
	assert.Equal(t, 1, stats[0].RedCards)
	assert.Zero(t, stats[0].Goals)
}

func TestRankPlayers(t *testing.T) {
	a := team("A", "A", "")
	p1, p2, p3 := player("P1", a), player("P2", a), player("P3", a)
	stats := []PlayerStat{
		{Player: p1, Goals: 1},
		{Player: p2, Goals: 0},
		{Player: p3, Goals: 4},
	}

	ranked := RankPlayers(stats, StatGoals)

	require.Len(t, ranked, 2)
	assert.Equal(t, p3.ID, ranked[0].Player.ID)
	assert.Equal(t, p1.ID, ranked[1].Player.ID)
}
