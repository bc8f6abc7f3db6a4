package player

import (
	"fmt"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// ErrUnknownTeam is returned when a player is assigned to a team that does not exist
var ErrUnknownTeam = fmt.Errorf("%w: team does not exist", models.ErrValidation)
