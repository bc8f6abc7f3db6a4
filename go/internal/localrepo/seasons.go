package localrepo

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

func (d *dataset) seasonIndex(id uuid.UUID) int {
	for i := range d.seasons {
		if d.seasons[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *dataset) nextSequence(year int) int {
	next := 1
	for _, s := range d.seasons {
		if s.Year == year && s.Sequence >= next {
			next = s.Sequence + 1
		}
	}
	return next
}

func (d *dataset) slotTaken(season models.Season) bool {
	for _, s := range d.seasons {
		if s.ID != season.ID && s.Year == season.Year && s.Sequence == season.Sequence {
			return true
		}
	}
	return false
}

// makeCurrent flags index i as the only current season.
func (d *dataset) makeCurrent(i int) {
	for j := range d.seasons {
		d.seasons[j].IsCurrent = j == i
	}
}

func (r *Repository) CreateSeason(ctx context.Context, season models.Season) (*models.Season, error) {
	err := r.write(ctx, func(d *dataset) error {
		if d.seasonIndex(season.ID) >= 0 {
			return conflict("season %s already exists", season.ID)
		}
		if season.Sequence == 0 {
			season.Sequence = d.nextSequence(season.Year)
		}
		if d.slotTaken(season) {
			return conflict("season %d/%d already exists", season.Year, season.Sequence)
		}
		d.seasons = append(d.seasons, season)
		if season.IsCurrent {
			d.makeCurrent(len(d.seasons) - 1)
		}
		d.touch(keySeasons)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var season *models.Season
	err := r.read(ctx, func(d *dataset) error {
		i := d.seasonIndex(id)
		if i < 0 {
			return notFound("season")
		}
		season = &d.seasons[i]
		return nil
	})
	return season, err
}

// ListSeasons returns the most recent season first.
func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	var seasons []models.Season
	err := r.read(ctx, func(d *dataset) error {
		seasons = append([]models.Season(nil), d.seasons...)
		sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].After(seasons[j]) })
		return nil
	})
	return seasons, err
}

func (r *Repository) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	var season *models.Season
	err := r.read(ctx, func(d *dataset) error {
		for i := range d.seasons {
			if d.seasons[i].IsCurrent {
				season = &d.seasons[i]
				return nil
			}
		}
		return notFound("current season")
	})
	return season, err
}

func (r *Repository) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var season *models.Season
	err := r.write(ctx, func(d *dataset) error {
		i := d.seasonIndex(id)
		if i < 0 {
			return notFound("season")
		}
		d.makeCurrent(i)
		d.touch(keySeasons)
		s := d.seasons[i]
		season = &s
		return nil
	})
	return season, err
}

// UpdateSeason changes name, year and sequence. The current flag is owned by
// SetCurrentSeason.
func (r *Repository) UpdateSeason(ctx context.Context, season models.Season) (*models.Season, error) {
	var updated *models.Season
	err := r.write(ctx, func(d *dataset) error {
		i := d.seasonIndex(season.ID)
		if i < 0 {
			return notFound("season")
		}
		if d.slotTaken(season) {
			return conflict("season %d/%d already exists", season.Year, season.Sequence)
		}
		s := d.seasons[i]
		s.Name, s.Year, s.Sequence = season.Name, season.Year, season.Sequence
		d.seasons[i] = s
		d.touch(keySeasons)
		updated = &s
		return nil
	})
	return updated, err
}

// DeleteSeason removes the season and its matches and unregisters its
// teams. When the current season goes, the latest remaining one is promoted
// and returned.
func (r *Repository) DeleteSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var promoted *models.Season
	err := r.write(ctx, func(d *dataset) error {
		i := d.seasonIndex(id)
		if i < 0 {
			return notFound("season")
		}
		wasCurrent := d.seasons[i].IsCurrent
		d.seasons = append(d.seasons[:i:i], d.seasons[i+1:]...)

		matches := d.matches[:0:0]
		for _, m := range d.matches {
			if m.SeasonID != id {
				matches = append(matches, m)
			}
		}
		d.matches = matches

		for ti := range d.teams {
			if d.teams[ti].RegisteredTo(id) {
				d.teams[ti].SeasonID = nil
			}
		}

		if wasCurrent && len(d.seasons) > 0 {
			latest := 0
			for j := range d.seasons {
				if d.seasons[j].After(d.seasons[latest]) {
					latest = j
				}
			}
			d.makeCurrent(latest)
			s := d.seasons[latest]
			promoted = &s
		}
		d.touch(keySeasons, keyMatches, keyTeams)
		return nil
	})
	return promoted, err
}
