package models

import (
	"time"

	"github.com/google/uuid"
)

// Season is a bounded competition period within a year. Sequence
// disambiguates multiple seasons of the same year.
type Season struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	Sequence  int       `json:"sequence"`
	IsCurrent bool      `json:"is_current"`
	CreatedAt time.Time `json:"created_at"`
}

// After reports whether s is more recent than other (year, then sequence).
func (s Season) After(other Season) bool {
	if s.Year != other.Year {
		return s.Year > other.Year
	}
	return s.Sequence > other.Sequence
}
