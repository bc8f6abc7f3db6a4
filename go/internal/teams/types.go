package teams

import (
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	SeasonID *uuid.UUID `json:"season_id,omitempty"`
	Name     string     `json:"name"`
	Initials string     `json:"initials"`
	Color    string     `json:"color,omitempty"`
	LogoURL  *string    `json:"logo_url,omitempty"`
}

// UpdateTeamRequest represents the fields that can be changed on a team.
// Nil fields are left untouched; ClearSeason unregisters the team.
type UpdateTeamRequest struct {
	SeasonID    *uuid.UUID `json:"season_id,omitempty"`
	ClearSeason bool       `json:"clear_season,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Initials    *string    `json:"initials,omitempty"`
	Color       *string    `json:"color,omitempty"`
	LogoURL     *string    `json:"logo_url,omitempty"`
}

// Wire messages for TeamService.

type CreateTeamMessage struct {
	SeasonID string  `json:"season_id,omitempty"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Color    string  `json:"color,omitempty"`
	LogoURL  *string `json:"logo_url,omitempty"`
}

type GetTeamMessage struct {
	ID string `json:"id"`
}

type ListTeamsMessage struct {
	SeasonID string `json:"season_id,omitempty"`
}

type UpdateTeamMessage struct {
	ID          string  `json:"id"`
	SeasonID    string  `json:"season_id,omitempty"`
	ClearSeason bool    `json:"clear_season,omitempty"`
	Name        *string `json:"name,omitempty"`
	Initials    *string `json:"initials,omitempty"`
	Color       *string `json:"color,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

type DeleteTeamMessage struct {
	ID string `json:"id"`
}

type TeamResponse struct {
	Team *models.Team `json:"team"`
}

type ListTeamsResponse struct {
	Teams []models.Team `json:"teams"`
}

type DeleteTeamResponse struct{}
