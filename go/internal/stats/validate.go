package stats

import (
	"errors"
	"fmt"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

var (
	// ErrInvalidMatch is wrapped by every match validation failure.
	ErrInvalidMatch = errors.New("invalid match")
	// ErrSameTeam is returned when a match has the same home and away team.
	ErrSameTeam = fmt.Errorf("%w: home and away team must differ", ErrInvalidMatch)
	// ErrNegativeScore is returned when either score is below zero.
	ErrNegativeScore = fmt.Errorf("%w: scores cannot be negative", ErrInvalidMatch)
)

// ValidateMatch applies the integrity checks required before a match is
// persisted.
func ValidateMatch(m models.Match) error {
	if m.HomeTeamID == m.AwayTeamID {
		return ErrSameTeam
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return ErrNegativeScore
	}
	return nil
}
