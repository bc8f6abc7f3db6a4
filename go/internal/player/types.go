package player

import (
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// CreatePlayerRequest represents the data needed to create a new player
type CreatePlayerRequest struct {
	TeamID uuid.UUID `json:"team_id"`
	Name   string    `json:"name"`
}

// UpdatePlayerRequest carries the fields that can change. Counters are only
// written through RecalculateCounters or explicit overrides.
type UpdatePlayerRequest struct {
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Goals       *int       `json:"goals,omitempty"`
	Assists     *int       `json:"assists,omitempty"`
	YellowCards *int       `json:"yellow_cards,omitempty"`
	RedCards    *int       `json:"red_cards,omitempty"`
}

// Wire messages for PlayerService.

type CreatePlayerMessage struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type GetPlayerMessage struct {
	ID string `json:"id"`
}

type ListPlayersMessage struct {
	TeamID string `json:"team_id,omitempty"`
}

type UpdatePlayerMessage struct {
	ID          string  `json:"id"`
	TeamID      string  `json:"team_id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Goals       *int    `json:"goals,omitempty"`
	Assists     *int    `json:"assists,omitempty"`
	YellowCards *int    `json:"yellow_cards,omitempty"`
	RedCards    *int    `json:"red_cards,omitempty"`
}

type DeletePlayerMessage struct {
	ID string `json:"id"`
}

type RecalculateCountersMessage struct {
	SeasonID string `json:"season_id"`
}

type PlayerResponse struct {
	Player *models.Player `json:"player"`
}

type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

type DeletePlayerResponse struct{}

type RecalculateCountersResponse struct {
	Updated int `json:"updated"`
}
