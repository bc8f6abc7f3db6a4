package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/rs/zerolog/log"
)

// Source loads whole collections. localrepo.Repository satisfies it directly;
// the Postgres repositories are combined with Composite.
type Source interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
}

type TeamLister interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
}

type PlayerLister interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
}

type SeasonLister interface {
	ListSeasons(ctx context.Context) ([]models.Season, error)
}

type MatchLister interface {
	ListMatches(ctx context.Context) ([]models.Match, error)
}

// Composite assembles a Source from one repository per collection.
type Composite struct {
	Teams   TeamLister
	Players PlayerLister
	Seasons SeasonLister
	Matches MatchLister
}

func (c Composite) ListTeams(ctx context.Context) ([]models.Team, error) {
	return c.Teams.ListTeams(ctx)
}

func (c Composite) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return c.Players.ListPlayers(ctx)
}

func (c Composite) ListSeasons(ctx context.Context) ([]models.Season, error) {
	return c.Seasons.ListSeasons(ctx)
}

func (c Composite) ListMatches(ctx context.Context) ([]models.Match, error) {
	return c.Matches.ListMatches(ctx)
}

// Store publishes the latest Snapshot to concurrent readers.
type Store struct {
	source Source
	now    func() time.Time

	// mu serializes writers; readers only load the pointer.
	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]
}

// New creates a store holding an empty snapshot.
func New(source Source) *Store {
	s := &Store{source: source, now: time.Now}
	s.snap.Store(&Snapshot{})
	return s
}

// Snapshot returns the current snapshot. It is never nil and must not be
// modified.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Update replaces the snapshot with fn applied to the current one.
func (s *Store) Update(fn func(*Snapshot) *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Store(fn(s.snap.Load()))
}

// Refresh reloads every collection from the source and swaps the result in
// only if all loads succeed.
func (s *Store) Refresh(ctx context.Context) error {
	if s.source == nil {
		return nil
	}
	start := s.now()

	teams, err := s.source.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	players, err := s.source.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	seasons, err := s.source.ListSeasons(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seasons: %w", err)
	}
	matches, err := s.source.ListMatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	snap := &Snapshot{
		Teams:    teams,
		Players:  players,
		Seasons:  seasons,
		Matches:  matches,
		LoadedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.snap.Store(snap)
	s.mu.Unlock()

	log.Debug().
		Int("teams", len(teams)).
		Int("players", len(players)).
		Int("seasons", len(seasons)).
		Int("matches", len(matches)).
		Dur("took", s.now().Sub(start)).
		Msg("refreshed league snapshot")
	return nil
}

// Apply patches the snapshot with a change event so readers see the write
// before the next full refresh.
func (s *Store) Apply(event realtime.ChangeEvent) error {
	patch, err := patchFor(event)
	if err != nil {
		return err
	}
	if patch != nil {
		s.Update(patch)
	}
	return nil
}

func patchFor(event realtime.ChangeEvent) (func(*Snapshot) *Snapshot, error) {
	id := event.EntityID
	if event.Action == realtime.ActionDeleted {
		switch event.Entity {
		case realtime.EntityTeam:
			return func(s *Snapshot) *Snapshot { return s.WithoutTeam(id) }, nil
		case realtime.EntityPlayer:
			return func(s *Snapshot) *Snapshot { return s.WithoutPlayer(id) }, nil
		case realtime.EntitySeason:
			return func(s *Snapshot) *Snapshot { return s.WithoutSeason(id) }, nil
		case realtime.EntityMatch:
			return func(s *Snapshot) *Snapshot { return s.WithoutMatch(id) }, nil
		}
		return nil, nil
	}

	if len(event.Payload) == 0 {
		return nil, nil
	}
	switch event.Entity {
	case realtime.EntityTeam:
		team, err := decode[models.Team](event)
		if err != nil {
			return nil, err
		}
		return func(s *Snapshot) *Snapshot { return s.WithTeam(team) }, nil
	case realtime.EntityPlayer:
		p, err := decode[models.Player](event)
		if err != nil {
			return nil, err
		}
		return func(s *Snapshot) *Snapshot { return s.WithPlayer(p) }, nil
	case realtime.EntitySeason:
		season, err := decode[models.Season](event)
		if err != nil {
			return nil, err
		}
		return func(s *Snapshot) *Snapshot { return s.WithSeason(season) }, nil
	case realtime.EntityMatch:
		m, err := decode[models.Match](event)
		if err != nil {
			return nil, err
		}
		return func(s *Snapshot) *Snapshot { return s.WithMatch(m) }, nil
	}
	return nil, nil
}

func decode[T any](event realtime.ChangeEvent) (T, error) {
	var v T
	if err := json.Unmarshal(event.Payload, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s payload: %w", event.Entity, err)
	}
	return v, nil
}

