package localrepo

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

func (d *dataset) playerIndex(id uuid.UUID) int {
	for i := range d.players {
		if d.players[i].ID == id {
			return i
		}
	}
	return -1
}

func sortPlayers(players []models.Player) []models.Player {
	out := append([]models.Player(nil), players...)
	sort.SliceStable(out, func(i, j int) bool { return nameLess(out[i].Name, out[j].Name, out[i].ID, out[j].ID) })
	return out
}

func (r *Repository) CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	err := r.write(ctx, func(d *dataset) error {
		if d.playerIndex(player.ID) >= 0 {
			return conflict("player %s already exists", player.ID)
		}
		if d.teamIndex(player.TeamID) < 0 {
			return conflict("team %s does not exist", player.TeamID)
		}
		d.players = append(d.players, player)
		d.touch(keyPlayers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var player *models.Player
	err := r.read(ctx, func(d *dataset) error {
		i := d.playerIndex(id)
		if i < 0 {
			return notFound("player")
		}
		player = &d.players[i]
		return nil
	})
	return player, err
}

func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	err := r.read(ctx, func(d *dataset) error {
		players = sortPlayers(d.players)
		return nil
	})
	return players, err
}

func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.read(ctx, func(d *dataset) error {
		for _, p := range sortPlayers(d.players) {
			if p.TeamID == teamID {
				players = append(players, p)
			}
		}
		return nil
	})
	return players, err
}

func (r *Repository) UpdatePlayer(ctx context.Context, player models.Player) (*models.Player, error) {
	err := r.write(ctx, func(d *dataset) error {
		i := d.playerIndex(player.ID)
		if i < 0 {
			return notFound("player")
		}
		if d.teamIndex(player.TeamID) < 0 {
			return conflict("team %s does not exist", player.TeamID)
		}
		player.CreatedAt = d.players[i].CreatedAt
		d.players[i] = player
		d.touch(keyPlayers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePlayerCounters overwrites the stored counters of every listed player.
func (r *Repository) UpdatePlayerCounters(ctx context.Context, players []models.Player) error {
	return r.write(ctx, func(d *dataset) error {
		for _, p := range players {
			i := d.playerIndex(p.ID)
			if i < 0 {
				return notFound("player")
			}
			d.players[i].Goals = p.Goals
			d.players[i].Assists = p.Assists
			d.players[i].YellowCards = p.YellowCards
			d.players[i].RedCards = p.RedCards
		}
		d.touch(keyPlayers)
		return nil
	})
}

// DeletePlayer drops the player's own events, clears them as assistant on
// other events, then removes the player.
func (r *Repository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	return r.write(ctx, func(d *dataset) error {
		i := d.playerIndex(id)
		if i < 0 {
			return notFound("player")
		}

		for mi := range d.matches {
			m := &d.matches[mi]
			events := m.Events[:0:0]
			for _, ev := range m.Events {
				if ev.PlayerID == id {
					continue
				}
				if ev.AssistantID != nil && *ev.AssistantID == id {
					ev.AssistantID = nil
				}
				events = append(events, ev)
			}
			m.Events = events
		}

		d.players = append(d.players[:i:i], d.players[i+1:]...)
		d.touch(keyPlayers, keyMatches)
		return nil
	})
}
