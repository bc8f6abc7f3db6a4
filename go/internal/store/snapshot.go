// Package store keeps an immutable in-memory copy of the league that the
// dashboard reads from. Writers never mutate a published Snapshot; they
// build a new one and swap it in.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// Snapshot is one consistent view of every collection.
type Snapshot struct {
	Teams    []models.Team
	Players  []models.Player
	Seasons  []models.Season
	Matches  []models.Match
	LoadedAt time.Time
}

// clone copies the slice headers so a With*/Without* helper can rebuild one
// collection without touching the receiver.
func (s *Snapshot) clone() *Snapshot {
	c := *s
	return &c
}

// CurrentSeason returns the season flagged current, or nil.
func (s *Snapshot) CurrentSeason() *models.Season {
	for i := range s.Seasons {
		if s.Seasons[i].IsCurrent {
			season := s.Seasons[i]
			return &season
		}
	}
	return nil
}

// Season looks a season up by id.
func (s *Snapshot) Season(id uuid.UUID) (*models.Season, bool) {
	for i := range s.Seasons {
		if s.Seasons[i].ID == id {
			season := s.Seasons[i]
			return &season, true
		}
	}
	return nil, false
}

// SeasonTeams returns the teams registered to the season, or every team
// when none are registered.
func (s *Snapshot) SeasonTeams(seasonID uuid.UUID) []models.Team {
	var registered []models.Team
	for _, t := range s.Teams {
		if t.RegisteredTo(seasonID) {
			registered = append(registered, t)
		}
	}
	if len(registered) == 0 {
		return s.Teams
	}
	return registered
}

// SeasonMatches returns the season's matches in stored order.
func (s *Snapshot) SeasonMatches(seasonID uuid.UUID) []models.Match {
	var out []models.Match
	for _, m := range s.Matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Snapshot) WithTeam(team models.Team) *Snapshot {
	c := s.clone()
	c.Teams = upsert(s.Teams, team, func(t models.Team) uuid.UUID { return t.ID })
	return c
}

// WithoutTeam drops the team with its players and matches, and any event
// credited to one of its players elsewhere.
func (s *Snapshot) WithoutTeam(id uuid.UUID) *Snapshot {
	c := s.clone()
	c.Teams = remove(s.Teams, func(t models.Team) bool { return t.ID == id })

	squad := make(map[uuid.UUID]bool)
	c.Players = remove(s.Players, func(p models.Player) bool {
		if p.TeamID == id {
			squad[p.ID] = true
			return true
		}
		return false
	})

	matches := remove(s.Matches, func(m models.Match) bool { return m.Involves(id) })
	for i, m := range matches {
		matches[i].Events = remove(m.Events, func(ev models.MatchEvent) bool {
			return ev.TeamID == id || squad[ev.PlayerID] || (ev.AssistantID != nil && squad[*ev.AssistantID])
		})
	}
	c.Matches = matches
	return c
}

func (s *Snapshot) WithPlayer(p models.Player) *Snapshot {
	c := s.clone()
	c.Players = upsert(s.Players, p, func(p models.Player) uuid.UUID { return p.ID })
	return c
}

// WithoutPlayer drops the player and their events, and clears them as
// assistant.
func (s *Snapshot) WithoutPlayer(id uuid.UUID) *Snapshot {
	c := s.clone()
	c.Players = remove(s.Players, func(p models.Player) bool { return p.ID == id })

	matches := make([]models.Match, len(s.Matches))
	for i, m := range s.Matches {
		events := remove(m.Events, func(ev models.MatchEvent) bool { return ev.PlayerID == id })
		for j := range events {
			if events[j].AssistantID != nil && *events[j].AssistantID == id {
				events[j].AssistantID = nil
			}
		}
		m.Events = events
		matches[i] = m
	}
	c.Matches = matches
	return c
}

// WithSeason upserts the season. A current season demotes every other.
func (s *Snapshot) WithSeason(season models.Season) *Snapshot {
	c := s.clone()
	seasons := upsert(s.Seasons, season, func(s models.Season) uuid.UUID { return s.ID })
	if season.IsCurrent {
		for i := range seasons {
			seasons[i].IsCurrent = seasons[i].ID == season.ID
		}
	}
	c.Seasons = seasons
	return c
}

// WithoutSeason drops the season and its matches and unregisters its teams.
// Promotion of a new current season arrives as its own update.
func (s *Snapshot) WithoutSeason(id uuid.UUID) *Snapshot {
	c := s.clone()
	c.Seasons = remove(s.Seasons, func(season models.Season) bool { return season.ID == id })
	c.Matches = remove(s.Matches, func(m models.Match) bool { return m.SeasonID == id })

	teams := make([]models.Team, len(s.Teams))
	for i, t := range s.Teams {
		if t.RegisteredTo(id) {
			t.SeasonID = nil
		}
		teams[i] = t
	}
	c.Teams = teams
	return c
}

func (s *Snapshot) WithMatch(m models.Match) *Snapshot {
	c := s.clone()
	c.Matches = upsert(s.Matches, m, func(m models.Match) uuid.UUID { return m.ID })
	return c
}

func (s *Snapshot) WithoutMatch(id uuid.UUID) *Snapshot {
	c := s.clone()
	c.Matches = remove(s.Matches, func(m models.Match) bool { return m.ID == id })
	return c
}

// upsert returns a new slice with item replacing the element of the same id,
// or appended.
func upsert[T any](items []T, item T, id func(T) uuid.UUID) []T {
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, existing := range items {
		if id(existing) == id(item) {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

// remove returns a new slice without the elements drop matches.
func remove[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}
