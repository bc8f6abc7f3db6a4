package store

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/realtime"
	"github.com/rs/zerolog/log"
)

// DefaultRefreshInterval is the fallback poll period.
const DefaultRefreshInterval = 30 * time.Second

// Refresher reloads a Store on a fixed interval and whenever a change event
// arrives. Triggers received while a refresh is pending collapse into one.
type Refresher struct {
	store    *Store
	clock    clockwork.Clock
	interval time.Duration
	wakeCh   chan struct{}
}

// NewRefresher creates a refresher; a nil clock means the real clock.
func NewRefresher(store *Store, interval time.Duration, clock clockwork.Clock) *Refresher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		store:    store,
		clock:    clock,
		interval: interval,
		wakeCh:   make(chan struct{}, 1),
	}
}

// Trigger requests a refresh without blocking.
func (r *Refresher) Trigger() {
	select {
	case r.wakeCh <- struct{}{}:
	default:
	}
}

// Notify patches the snapshot with the event and schedules a full reload.
func (r *Refresher) Notify(_ context.Context, event realtime.ChangeEvent) error {
	if err := r.store.Apply(event); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to apply change event")
	}
	r.Trigger()
	return nil
}

// Run refreshes once, then on every tick or trigger until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	r.refresh(ctx)

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("store refresher started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("store refresher stopped")
			return
		case <-ticker.Chan():
			r.refresh(ctx)
		case <-r.wakeCh:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.store.Refresh(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("failed to refresh league snapshot")
	}
}
