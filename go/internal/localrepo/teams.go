package localrepo

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

func (d *dataset) teamIndex(id uuid.UUID) int {
	for i := range d.teams {
		if d.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *dataset) seasonExists(id *uuid.UUID) bool {
	return id == nil || d.seasonIndex(*id) >= 0
}

func sortTeams(teams []models.Team) []models.Team {
	out := append([]models.Team(nil), teams...)
	sort.SliceStable(out, func(i, j int) bool { return nameLess(out[i].Name, out[j].Name, out[i].ID, out[j].ID) })
	return out
}

func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	err := r.write(ctx, func(d *dataset) error {
		if d.teamIndex(team.ID) >= 0 {
			return conflict("team %s already exists", team.ID)
		}
		if !d.seasonExists(team.SeasonID) {
			return conflict("season %s does not exist", *team.SeasonID)
		}
		d.teams = append(d.teams, team)
		d.touch(keyTeams)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team *models.Team
	err := r.read(ctx, func(d *dataset) error {
		i := d.teamIndex(id)
		if i < 0 {
			return notFound("team")
		}
		team = &d.teams[i]
		return nil
	})
	return team, err
}

func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.read(ctx, func(d *dataset) error {
		teams = sortTeams(d.teams)
		return nil
	})
	return teams, err
}

func (r *Repository) ListTeamsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.read(ctx, func(d *dataset) error {
		for _, t := range sortTeams(d.teams) {
			if t.RegisteredTo(seasonID) {
				teams = append(teams, t)
			}
		}
		return nil
	})
	return teams, err
}

func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	err := r.write(ctx, func(d *dataset) error {
		i := d.teamIndex(team.ID)
		if i < 0 {
			return notFound("team")
		}
		if !d.seasonExists(team.SeasonID) {
			return conflict("season %s does not exist", *team.SeasonID)
		}
		team.CreatedAt = d.teams[i].CreatedAt
		d.teams[i] = team
		d.touch(keyTeams)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam removes the team, its players and every match it played.
// Events inside other matches that reference its players are dropped too.
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return r.write(ctx, func(d *dataset) error {
		i := d.teamIndex(id)
		if i < 0 {
			return notFound("team")
		}

		squad := make(map[uuid.UUID]bool)
		players := d.players[:0:0]
		for _, p := range d.players {
			if p.TeamID == id {
				squad[p.ID] = true
				continue
			}
			players = append(players, p)
		}

		matches := d.matches[:0:0]
		for _, m := range d.matches {
			if m.Involves(id) {
				continue
			}
			events := m.Events[:0:0]
			for _, ev := range m.Events {
				if ev.TeamID == id || squad[ev.PlayerID] {
					continue
				}
				if ev.AssistantID != nil && squad[*ev.AssistantID] {
					continue
				}
				events = append(events, ev)
			}
			m.Events = events
			matches = append(matches, m)
		}

		d.teams = append(d.teams[:i:i], d.teams[i+1:]...)
		d.players = players
		d.matches = matches
		d.touch(keyTeams, keyPlayers, keyMatches)
		return nil
	})
}
