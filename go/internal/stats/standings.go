package stats

import (
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// ComputeStandings builds one table entry per team from the finished matches
// given. Unfinished matches and matches referencing a team outside the set
// are ignored. Entries are ordered by points, then goal difference; exact
// ties keep the order of teams.
func ComputeStandings(teams []models.Team, matches []models.Match) []models.LeagueTableEntry {
	entries := make([]models.LeagueTableEntry, len(teams))
	index := make(map[uuid.UUID]int, len(teams))
	for i, t := range teams {
		entries[i] = models.LeagueTableEntry{
			TeamID:   t.ID,
			TeamName: t.Name,
			Initials: t.Initials,
			Color:    t.Color,
		}
		index[t.ID] = i
	}

	for _, m := range matches {
		if !m.IsFinished || m.HomeTeamID == m.AwayTeamID {
			continue
		}
		hi, okHome := index[m.HomeTeamID]
		ai, okAway := index[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		home, away := &entries[hi], &entries[ai]
		home.Played++
		away.Played++
		home.GoalsFor += m.HomeScore
		home.GoalsAgainst += m.AwayScore
		away.GoalsFor += m.AwayScore
		away.GoalsAgainst += m.HomeScore

		homePts, awayPts := matchPoints(m.HomeScore, m.AwayScore)
		home.Points += homePts
		away.Points += awayPts
		switch {
		case m.HomeScore > m.AwayScore:
			home.Won++
			away.Lost++
		case m.HomeScore < m.AwayScore:
			home.Lost++
			away.Won++
		default:
			home.Drawn++
			away.Drawn++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].GoalDifference() > entries[j].GoalDifference()
	})

	return entries
}

// SeasonStandings computes the table for one season.
func SeasonStandings(seasonID uuid.UUID, teams []models.Team, matches []models.Match) []models.LeagueTableEntry {
	return ComputeStandings(teams, seasonMatches(seasonID, matches))
}
