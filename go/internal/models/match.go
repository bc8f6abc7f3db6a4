package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType defines the kind of match event.
type EventType string

const (
	EventTypeGoal        EventType = "GOAL"
	EventTypeAssist      EventType = "ASSIST"
	EventTypeYellowCard  EventType = "YELLOW_CARD"
	EventTypeRedCard     EventType = "RED_CARD"
	EventTypeFoul        EventType = "FOUL"
	EventTypePenaltyGoal EventType = "PENALTY_GOAL"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeGoal, EventTypeAssist, EventTypeYellowCard, EventTypeRedCard, EventTypeFoul, EventTypePenaltyGoal:
		return true
	default:
		return false
	}
}

// AllowsAssistant reports whether an assisting player is meaningful for t.
func (t EventType) AllowsAssistant() bool {
	return t == EventTypeGoal || t == EventTypePenaltyGoal
}

// Match is a single fixture between two teams within a season.
type Match struct {
	ID         uuid.UUID    `json:"id"`
	SeasonID   uuid.UUID    `json:"season_id"`
	HomeTeamID uuid.UUID    `json:"home_team_id"`
	AwayTeamID uuid.UUID    `json:"away_team_id"`
	HomeScore  int          `json:"home_score"`
	AwayScore  int          `json:"away_score"`
	IsFinished bool         `json:"is_finished"`
	PlayedAt   time.Time    `json:"played_at"`
	Events     []MatchEvent `json:"events"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Involves reports whether the team plays in the match.
func (m Match) Involves(teamID uuid.UUID) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// MatchEvent attributes a goal, assist, card or foul to a player.
type MatchEvent struct {
	ID          uuid.UUID  `json:"id"`
	MatchID     uuid.UUID  `json:"match_id"`
	Type        EventType  `json:"type"`
	PlayerID    uuid.UUID  `json:"player_id"`
	TeamID      uuid.UUID  `json:"team_id"`
	AssistantID *uuid.UUID `json:"assistant_id,omitempty"`
	Minute      *int       `json:"minute,omitempty"`
}
