package stats

import (
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// matchPoints returns the points awarded to home and away for a final score.
func matchPoints(homeScore, awayScore int) (home, away int) {
	switch {
	case homeScore > awayScore:
		return PointsWin, PointsLoss
	case homeScore < awayScore:
		return PointsLoss, PointsWin
	default:
		return PointsDraw, PointsDraw
	}
}

// seasonMatches returns the matches of one season, in input order.
func seasonMatches(seasonID uuid.UUID, matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out
}
