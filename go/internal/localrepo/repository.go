// Package localrepo implements the league repositories on top of a kvstore.KV.
// Each collection is one JSON array; every operation loads, edits and writes
// back the collections it touches while holding a single mutex.
package localrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/kvstore"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

const (
	keyTeams   = "teams"
	keyPlayers = "players"
	keySeasons = "seasons"
	keyMatches = "matches"
)

// Repository satisfies the teams, player, seasons and matches repository
// interfaces as well as store.Source.
type Repository struct {
	mu sync.Mutex
	kv kvstore.KV
}

func New(kv kvstore.KV) *Repository {
	return &Repository{kv: kv}
}

// dataset is the in-flight copy of every collection an operation touched.
type dataset struct {
	teams   []models.Team
	players []models.Player
	seasons []models.Season
	matches []models.Match
	dirty   map[string]bool
	// orig holds the stored bytes of each collection as loaded; a key is
	// absent when the collection was never written.
	orig map[string][]byte
}

func load[T any](ctx context.Context, kv kvstore.KV, key string, orig map[string][]byte) ([]T, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	orig[key] = data
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, nil
}

func save[T any](ctx context.Context, kv kvstore.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *Repository) loadAll(ctx context.Context) (*dataset, error) {
	var (
		d   = &dataset{dirty: make(map[string]bool), orig: make(map[string][]byte)}
		err error
	)
	if d.teams, err = load[models.Team](ctx, r.kv, keyTeams, d.orig); err != nil {
		return nil, err
	}
	if d.players, err = load[models.Player](ctx, r.kv, keyPlayers, d.orig); err != nil {
		return nil, err
	}
	if d.seasons, err = load[models.Season](ctx, r.kv, keySeasons, d.orig); err != nil {
		return nil, err
	}
	if d.matches, err = load[models.Match](ctx, r.kv, keyMatches, d.orig); err != nil {
		return nil, err
	}
	return d, nil
}

// flush writes the dirty collections in a fixed order. If a write fails,
// the collections already written are put back to their loaded state.
func (r *Repository) flush(ctx context.Context, d *dataset) error {
	var written []string
	for _, key := range []string{keyTeams, keyPlayers, keySeasons, keyMatches} {
		if !d.dirty[key] {
			continue
		}
		if err := r.saveKey(ctx, d, key); err != nil {
			if rbErr := r.restore(ctx, d, written); rbErr != nil {
				return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
			return err
		}
		written = append(written, key)
	}
	return nil
}

func (r *Repository) saveKey(ctx context.Context, d *dataset, key string) error {
	switch key {
	case keyTeams:
		return save(ctx, r.kv, key, d.teams)
	case keyPlayers:
		return save(ctx, r.kv, key, d.players)
	case keySeasons:
		return save(ctx, r.kv, key, d.seasons)
	default:
		return save(ctx, r.kv, key, d.matches)
	}
}

// restore rewrites keys with the bytes they held before the operation.
func (r *Repository) restore(ctx context.Context, d *dataset, keys []string) error {
	var errs []error
	for _, key := range keys {
		data, ok := d.orig[key]
		var err error
		if ok {
			err = r.kv.Set(ctx, key, data)
		} else {
			err = r.kv.Delete(ctx, key)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to restore %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// read runs fn against a fresh copy of the data.
func (r *Repository) read(ctx context.Context, fn func(d *dataset) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	return fn(d)
}

// write runs fn and persists the collections it marked dirty. Nothing is
// written when fn fails, and a failed write rolls back the collections
// saved before it.
func (r *Repository) write(ctx context.Context, fn func(d *dataset) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return r.flush(ctx, d)
}

func (d *dataset) touch(keys ...string) {
	for _, k := range keys {
		d.dirty[k] = true
	}
}

// nameLess orders by case-folded name, then raw name, then id. It matches
// the ORDER BY used by the leaguedb list queries.
func nameLess(a, b string, idA, idB uuid.UUID) bool {
	if la, lb := strings.ToLower(a), strings.ToLower(b); la != lb {
		return la < lb
	}
	if a != b {
		return a < b
	}
	return idA.String() < idB.String()
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, models.ErrNotFound)
}

func conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", models.ErrConflict, fmt.Sprintf(format, args...))
}

// Import replaces every collection, e.g. with generated mock data.
func (r *Repository) Import(ctx context.Context, teams []models.Team, players []models.Player, seasons []models.Season, matches []models.Match) error {
	return r.write(ctx, func(d *dataset) error {
		d.teams, d.players, d.seasons, d.matches = teams, players, seasons, matches
		d.touch(keyTeams, keyPlayers, keySeasons, keyMatches)
		return nil
	})
}

// Empty reports whether no team or season has been stored yet.
func (r *Repository) Empty(ctx context.Context) (bool, error) {
	empty := false
	err := r.read(ctx, func(d *dataset) error {
		empty = len(d.teams) == 0 && len(d.seasons) == 0
		return nil
	})
	return empty, err
}
