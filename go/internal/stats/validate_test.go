package stats

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateMatch(t *testing.T) {
	home, away := uuid.New(), uuid.New()

	cases := []struct {
		name  string
		match models.Match
		want  error
	}{
		{"valid", models.Match{HomeTeamID: home, AwayTeamID: away, HomeScore: 2, AwayScore: 0}, nil},
		{"valid goalless", models.Match{HomeTeamID: home, AwayTeamID: away}, nil},
		{"same team", models.Match{HomeTeamID: home, AwayTeamID: home}, ErrSameTeam},
		{"negative home", models.Match{HomeTeamID: home, AwayTeamID: away, HomeScore: -1}, ErrNegativeScore},
		{"negative away", models.Match{HomeTeamID: home, AwayTeamID: away, AwayScore: -3}, ErrNegativeScore},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateMatch(c.match)
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.want)
			assert.True(t, errors.Is(err, ErrInvalidMatch))
		})
	}
}
