package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
)

const DefaultNotifyChannel = "league_outbox_events"

// OutboxQuerier is the slice of leaguedb the outbox needs.
type OutboxQuerier interface {
	InsertOutboxEvent(ctx context.Context, arg leaguedb.InsertOutboxEventParams) (leaguedb.LeagueOutbox, error)
	NotifyOutbox(ctx context.Context, channel string, id uuid.UUID) error
}

// OutboxNotifier records events in league_outbox and wakes the Listener.
type OutboxNotifier struct {
	queries OutboxQuerier
	channel string
}

func NewOutboxNotifier(queries OutboxQuerier, channel string) *OutboxNotifier {
	if channel == "" {
		channel = DefaultNotifyChannel
	}
	return &OutboxNotifier{queries: queries, channel: channel}
}

func (o *OutboxNotifier) Notify(ctx context.Context, event ChangeEvent) error {
	row, err := o.queries.InsertOutboxEvent(ctx, leaguedb.InsertOutboxEventParams{
		ID:       event.ID,
		Entity:   string(event.Entity),
		Action:   string(event.Action),
		EntityID: event.EntityID,
		Payload:  pqtype.NullRawMessage{RawMessage: event.Payload, Valid: len(event.Payload) > 0},
	})
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	// The fallback poll picks the row up if the notify is lost.
	if err := o.queries.NotifyOutbox(ctx, o.channel, row.ID); err != nil {
		log.Warn().Err(err).Str("event_id", row.ID.String()).Msg("pg_notify failed")
	}
	return nil
}

func eventFromOutbox(row leaguedb.LeagueOutbox) ChangeEvent {
	ev := ChangeEvent{
		ID:        row.ID,
		Entity:    Entity(row.Entity),
		Action:    Action(row.Action),
		EntityID:  row.EntityID,
		CreatedAt: row.CreatedAt,
	}
	if row.Payload.Valid {
		ev.Payload = row.Payload.RawMessage
	}
	return ev
}
