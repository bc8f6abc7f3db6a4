package realtime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/rs/zerolog/log"
)

type ListenerConfig struct {
	DatabaseURL      string // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string
	FallbackInterval time.Duration // how often to poll for missed events
	MaxRetries       int
	RetryDelay       time.Duration
	PingInterval     time.Duration
	BatchSize        int32
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    DefaultNotifyChannel,
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// Publisher pushes a change event to the downstream feed.
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, event ChangeEvent) error

func (f PublisherFunc) Publish(ctx context.Context, event ChangeEvent) error {
	return f(ctx, event)
}

// RelayQuerier is the slice of leaguedb the relay reads and updates.
type RelayQuerier interface {
	GetOutboxEvent(ctx context.Context, id uuid.UUID) (leaguedb.LeagueOutbox, error)
	ListUnsentOutbox(ctx context.Context, limit int32) ([]leaguedb.LeagueOutbox, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}

// Relay moves outbox rows to a Publisher and marks them sent.
type Relay struct {
	queries   RelayQuerier
	publisher Publisher
	cfg       ListenerConfig
}

func NewRelay(queries RelayQuerier, publisher Publisher, cfg ListenerConfig) *Relay {
	return &Relay{queries: queries, publisher: publisher, cfg: cfg}
}

// HandleNotification relays the outbox row whose id is carried in extra.
func (r *Relay) HandleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	row, err := r.queries.GetOutboxEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}
	if row.SentAt.Valid {
		// already relayed by the fallback poll
		return nil
	}

	if err := r.publishWithRetry(ctx, eventFromOutbox(row)); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Info().Str("event_id", id.String()).Msg("published and marked event as sent")
	return nil
}

// ProcessUnsent relays up to BatchSize rows that were never marked sent.
func (r *Relay) ProcessUnsent(ctx context.Context) error {
	unsent, err := r.queries.ListUnsentOutbox(ctx, r.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	for _, row := range unsent {
		if err := r.publishWithRetry(ctx, eventFromOutbox(row)); err != nil {
			log.Error().Err(err).Str("event_id", row.ID.String()).Msg("failed to publish event")
			continue
		}
	}
	return nil
}

// publishWithRetry publishes with a linearly growing delay between attempts.
func (r *Relay) publishWithRetry(ctx context.Context, event ChangeEvent) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := r.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if err := r.queries.MarkOutboxSent(ctx, event.ID); err != nil {
			return fmt.Errorf("failed to mark outbox event as sent: %w", err)
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.cfg.MaxRetries+1, lastErr)
}

// Listener drives a Relay from Postgres LISTEN/NOTIFY plus a fallback poll.
type Listener struct {
	relay    *Relay
	listener *pq.Listener
	cfg      ListenerConfig
}

func NewListener(dbConn *sql.DB, publisher Publisher, cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().Str("channel", cfg.NotifyChannel).Msg("listening for notifications")

	return &Listener{
		relay:    NewRelay(leaguedb.New(dbConn), publisher, cfg),
		listener: l,
		cfg:      cfg,
	}, nil
}

// Start blocks until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	pingTicker := time.NewTicker(l.cfg.PingInterval)
	fallbackTicker := time.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	// rows written while we were down
	if err := l.relay.ProcessUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.Stop()
		case note := <-l.listener.Notify:
			if note == nil {
				// connection was re-established, notifications may have been missed
				if err := l.relay.ProcessUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
				continue
			}
			if err := l.relay.HandleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.C:
			if err := l.relay.ProcessUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.C:
			if err := l.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

func (l *Listener) Stop() error {
	return l.listener.Close()
}
