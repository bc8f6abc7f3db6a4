package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTeamColor is used when a team is created without a display color.
const DefaultTeamColor = "#808080"

// Team represents a club registered in the league
type Team struct {
	ID        uuid.UUID  `json:"id"`
	SeasonID  *uuid.UUID `json:"season_id,omitempty"`
	Name      string     `json:"name"`
	Initials  string     `json:"initials"`
	Color     string     `json:"color"`
	LogoURL   *string    `json:"logo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RegisteredTo reports whether the team is registered to the given season.
func (t Team) RegisteredTo(seasonID uuid.UUID) bool {
	return t.SeasonID != nil && *t.SeasonID == seasonID
}
