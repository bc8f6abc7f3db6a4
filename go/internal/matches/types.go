package matches

import (
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// EventInput describes one event to attach to a match.
type EventInput struct {
	Type        models.EventType `json:"type"`
	PlayerID    uuid.UUID        `json:"player_id"`
	AssistantID *uuid.UUID       `json:"assistant_id,omitempty"`
	Minute      *int             `json:"minute,omitempty"`
}

// MatchRequest carries a full match; updates replace every field and the
// whole event list.
type MatchRequest struct {
	SeasonID   uuid.UUID    `json:"season_id"`
	HomeTeamID uuid.UUID    `json:"home_team_id"`
	AwayTeamID uuid.UUID    `json:"away_team_id"`
	HomeScore  int          `json:"home_score"`
	AwayScore  int          `json:"away_score"`
	IsFinished bool         `json:"is_finished"`
	PlayedAt   time.Time    `json:"played_at"`
	Events     []EventInput `json:"events"`
}

// Wire messages for MatchService.

type EventMessage struct {
	Type        string `json:"type"`
	PlayerID    string `json:"player_id"`
	AssistantID string `json:"assistant_id,omitempty"`
	Minute      *int   `json:"minute,omitempty"`
}

type CreateMatchMessage struct {
	SeasonID   string         `json:"season_id"`
	HomeTeamID string         `json:"home_team_id"`
	AwayTeamID string         `json:"away_team_id"`
	HomeScore  int            `json:"home_score"`
	AwayScore  int            `json:"away_score"`
	IsFinished bool           `json:"is_finished"`
	PlayedAt   time.Time      `json:"played_at"`
	Events     []EventMessage `json:"events"`
}

type UpdateMatchMessage struct {
	ID string `json:"id"`
	CreateMatchMessage
}

type GetMatchMessage struct {
	ID string `json:"id"`
}

type ListMatchesMessage struct {
	SeasonID string `json:"season_id,omitempty"`
}

type DeleteMatchMessage struct {
	ID string `json:"id"`
}

type MatchResponse struct {
	Match *models.Match `json:"match"`
}

type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}

type DeleteMatchResponse struct{}
