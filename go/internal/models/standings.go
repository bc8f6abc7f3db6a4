package models

import "github.com/google/uuid"

// LeagueTableEntry is the derived per-team aggregate for one season. It is
// recomputed on demand and never persisted.
type LeagueTableEntry struct {
	TeamID       uuid.UUID `json:"team_id"`
	TeamName     string    `json:"team_name"`
	Initials     string    `json:"initials"`
	Color        string    `json:"color"`
	Played       int       `json:"played"`
	Won          int       `json:"won"`
	Drawn        int       `json:"drawn"`
	Lost         int       `json:"lost"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Points       int       `json:"points"`
}

// GoalDifference returns goals for minus goals against.
func (e LeagueTableEntry) GoalDifference() int {
	return e.GoalsFor - e.GoalsAgainst
}
