package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a squad member of exactly one team.
//
// The counters are informational snapshots. Authoritative values are derived
// from match events by the stats package.
type Player struct {
	ID          uuid.UUID `json:"id"`
	TeamID      uuid.UUID `json:"team_id"`
	Name        string    `json:"name"`
	Goals       int       `json:"goals"`
	Assists     int       `json:"assists"`
	YellowCards int       `json:"yellow_cards"`
	RedCards    int       `json:"red_cards"`
	CreatedAt   time.Time `json:"created_at"`
}
