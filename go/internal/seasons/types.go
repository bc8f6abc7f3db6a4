package seasons

import "github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"

// CreateSeasonRequest represents the data needed to open a season. A zero
// Sequence picks the next free slot within Year.
type CreateSeasonRequest struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Sequence  int    `json:"sequence,omitempty"`
	IsCurrent bool   `json:"is_current"`
}

// UpdateSeasonRequest carries the descriptive fields of a season.
type UpdateSeasonRequest struct {
	Name     *string `json:"name,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Sequence *int    `json:"sequence,omitempty"`
}

// Wire messages for SeasonService.

type CreateSeasonMessage = CreateSeasonRequest

type GetSeasonMessage struct {
	ID string `json:"id"`
}

type ListSeasonsMessage struct{}

type CurrentSeasonMessage struct{}

type SetCurrentSeasonMessage struct {
	ID string `json:"id"`
}

type UpdateSeasonMessage struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Year     *int    `json:"year,omitempty"`
	Sequence *int    `json:"sequence,omitempty"`
}

type DeleteSeasonMessage struct {
	ID string `json:"id"`
}

type SeasonResponse struct {
	Season *models.Season `json:"season"`
}

type ListSeasonsResponse struct {
	Seasons []models.Season `json:"seasons"`
}

type DeleteSeasonResponse struct {
	// Promoted is the season that became current because the deleted one was.
	Promoted *models.Season `json:"promoted,omitempty"`
}
