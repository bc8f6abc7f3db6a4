package localrepo

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

func (d *dataset) matchIndex(id uuid.UUID) int {
	for i := range d.matches {
		if d.matches[i].ID == id {
			return i
		}
	}
	return -1
}

// checkRefs mirrors the foreign keys of the Postgres schema.
func (d *dataset) checkRefs(m models.Match) error {
	if d.seasonIndex(m.SeasonID) < 0 {
		return conflict("season %s does not exist", m.SeasonID)
	}
	if d.teamIndex(m.HomeTeamID) < 0 {
		return conflict("team %s does not exist", m.HomeTeamID)
	}
	if d.teamIndex(m.AwayTeamID) < 0 {
		return conflict("team %s does not exist", m.AwayTeamID)
	}
	for _, ev := range m.Events {
		if d.playerIndex(ev.PlayerID) < 0 {
			return conflict("player %s does not exist", ev.PlayerID)
		}
		if ev.AssistantID != nil && d.playerIndex(*ev.AssistantID) < 0 {
			return conflict("player %s does not exist", *ev.AssistantID)
		}
	}
	return nil
}

func sortMatches(matches []models.Match) []models.Match {
	out := append([]models.Match(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].PlayedAt.Before(out[j].PlayedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func stampEvents(m *models.Match) {
	m.Events = append([]models.MatchEvent(nil), m.Events...)
	for i := range m.Events {
		m.Events[i].MatchID = m.ID
		if m.Events[i].ID == uuid.Nil {
			m.Events[i].ID = uuid.New()
		}
	}
}

func (r *Repository) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	err := r.write(ctx, func(d *dataset) error {
		if d.matchIndex(match.ID) >= 0 {
			return conflict("match %s already exists", match.ID)
		}
		if err := d.checkRefs(match); err != nil {
			return err
		}
		stampEvents(&match)
		d.matches = append(d.matches, match)
		d.touch(keyMatches)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match *models.Match
	err := r.read(ctx, func(d *dataset) error {
		i := d.matchIndex(id)
		if i < 0 {
			return notFound("match")
		}
		match = &d.matches[i]
		return nil
	})
	return match, err
}

func (r *Repository) ListMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := r.read(ctx, func(d *dataset) error {
		matches = sortMatches(d.matches)
		return nil
	})
	return matches, err
}

func (r *Repository) ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.read(ctx, func(d *dataset) error {
		for _, m := range sortMatches(d.matches) {
			if m.SeasonID == seasonID {
				matches = append(matches, m)
			}
		}
		return nil
	})
	return matches, err
}

// UpdateMatch replaces the match row and its events wholesale.
func (r *Repository) UpdateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	err := r.write(ctx, func(d *dataset) error {
		i := d.matchIndex(match.ID)
		if i < 0 {
			return notFound("match")
		}
		if err := d.checkRefs(match); err != nil {
			return err
		}
		match.CreatedAt = d.matches[i].CreatedAt
		stampEvents(&match)
		d.matches[i] = match
		d.touch(keyMatches)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return r.write(ctx, func(d *dataset) error {
		i := d.matchIndex(id)
		if i < 0 {
			return notFound("match")
		}
		d.matches = append(d.matches[:i:i], d.matches[i+1:]...)
		d.touch(keyMatches)
		return nil
	})
}
