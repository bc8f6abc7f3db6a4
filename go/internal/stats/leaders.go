package stats

import (
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// Stat selects a per-player statistic.
type Stat string

const (
	StatGoals       Stat = "goals"
	StatAssists     Stat = "assists"
	StatYellowCards Stat = "yellow_cards"
	StatRedCards    Stat = "red_cards"
)

// PlayerStat is a player with counters derived from one season's events.
type PlayerStat struct {
	Player      models.Player `json:"player"`
	Goals       int           `json:"goals"`
	Assists     int           `json:"assists"`
	YellowCards int           `json:"yellow_cards"`
	RedCards    int           `json:"red_cards"`
}

// Value returns the counter selected by s.
func (p PlayerStat) Value(s Stat) int {
	switch s {
	case StatGoals:
		return p.Goals
	case StatAssists:
		return p.Assists
	case StatYellowCards:
		return p.YellowCards
	case StatRedCards:
		return p.RedCards
	default:
		return 0
	}
}

// LeaderResult is the representative leader for one statistic. ExtraCount is
// the number of other players tied at the same value.
type LeaderResult struct {
	Player     models.Player `json:"player"`
	Value      int           `json:"value"`
	ExtraCount int           `json:"extra_count"`
}

// Leaders holds the independent top scorer and top assister of a season.
type Leaders struct {
	TopScorer   *LeaderResult `json:"top_scorer,omitempty"`
	TopAssister *LeaderResult `json:"top_assister,omitempty"`
}

// SeasonPlayerStats merges the season's event counts onto every player, in
// player order. Players without events get zero counters.
//
// A GOAL credits its scorer and, if set, its assistant. An ASSIST event
// credits its player independently, so data recording both for the same
// contribution counts the assist twice.
func SeasonPlayerStats(seasonID uuid.UUID, players []models.Player, matches []models.Match) []PlayerStat {
	type counters struct{ goals, assists, yellow, red int }
	counts := make(map[uuid.UUID]*counters)
	get := func(id uuid.UUID) *counters {
		c, ok := counts[id]
		if !ok {
			c = &counters{}
			counts[id] = c
		}
		return c
	}

	for _, m := range seasonMatches(seasonID, matches) {
		for _, ev := range m.Events {
			switch ev.Type {
			case models.EventTypeGoal:
				get(ev.PlayerID).goals++
				if ev.AssistantID != nil {
					get(*ev.AssistantID).assists++
				}
			case models.EventTypeAssist:
				get(ev.PlayerID).assists++
			case models.EventTypeYellowCard:
				get(ev.PlayerID).yellow++
			case models.EventTypeRedCard:
				get(ev.PlayerID).red++
			}
		}
	}

	out := make([]PlayerStat, len(players))
	for i, p := range players {
		out[i] = PlayerStat{Player: p}
		if c, ok := counts[p.ID]; ok {
			out[i].Goals = c.goals
			out[i].Assists = c.assists
			out[i].YellowCards = c.yellow
			out[i].RedCards = c.red
		}
	}
	return out
}

// ComputeLeaders returns the season's top scorer and top assister. A nil
// season yields no leaders, and a statistic whose maximum is zero has no
// leader.
func ComputeLeaders(seasonID uuid.UUID, players []models.Player, matches []models.Match) Leaders {
	if seasonID == uuid.Nil {
		return Leaders{}
	}

	stats := SeasonPlayerStats(seasonID, players, matches)
	return Leaders{
		TopScorer:   leaderFor(stats, StatGoals),
		TopAssister: leaderFor(stats, StatAssists),
	}
}

func leaderFor(stats []PlayerStat, s Stat) *LeaderResult {
	best := 0
	for _, ps := range stats {
		if v := ps.Value(s); v > best {
			best = v
		}
	}
	if best == 0 {
		return nil
	}

	var result *LeaderResult
	tied := 0
	for _, ps := range stats {
		if ps.Value(s) != best {
			continue
		}
		tied++
		if result == nil {
			result = &LeaderResult{Player: ps.Player, Value: best}
		}
	}
	result.ExtraCount = tied - 1
	return result
}

// RankPlayers orders players by one statistic, highest first, dropping rows
// where the statistic is zero. Ties keep player order.
func RankPlayers(stats []PlayerStat, s Stat) []PlayerStat {
	ranked := make([]PlayerStat, 0, len(stats))
	for _, ps := range stats {
		if ps.Value(s) > 0 {
			ranked = append(ranked, ps)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value(s) > ranked[j].Value(s)
	})
	return ranked
}
