package matches

import (
	"fmt"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

var (
	// ErrUnknownSeason is returned when a match references a missing season
	ErrUnknownSeason = fmt.Errorf("%w: season does not exist", models.ErrValidation)
	// ErrUnknownTeam is returned when either side of a match does not exist
	ErrUnknownTeam = fmt.Errorf("%w: team does not exist", models.ErrValidation)
	// ErrInvalidEvent is wrapped by every match event check
	ErrInvalidEvent = fmt.Errorf("%w: invalid match event", models.ErrValidation)
)
