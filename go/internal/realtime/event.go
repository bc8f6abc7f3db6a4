// Package realtime carries league change notifications from the write path to
// dashboard clients: a Postgres outbox relay, a JetStream stream and a
// WebSocket hub.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Entity string

const (
	EntityTeam   Entity = "team"
	EntityPlayer Entity = "player"
	EntitySeason Entity = "season"
	EntityMatch  Entity = "match"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent describes one committed mutation.
type ChangeEvent struct {
	ID        uuid.UUID       `json:"id"`
	Entity    Entity          `json:"entity"`
	Action    Action          `json:"action"`
	EntityID  uuid.UUID       `json:"entity_id"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewChangeEvent builds an event, marshalling payload when it is non-nil.
func NewChangeEvent(entity Entity, action Action, entityID uuid.UUID, payload interface{}) (ChangeEvent, error) {
	ev := ChangeEvent{
		ID:        uuid.New(),
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		CreatedAt: time.Now().UTC(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return ChangeEvent{}, fmt.Errorf("failed to marshal %s payload: %w", entity, err)
		}
		ev.Payload = data
	}
	return ev, nil
}

// Notifier is told about every successful mutation.
type Notifier interface {
	Notify(ctx context.Context, event ChangeEvent) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event ChangeEvent) error

func (f NotifierFunc) Notify(ctx context.Context, event ChangeEvent) error {
	return f(ctx, event)
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, ChangeEvent) error { return nil }

// Fanout delivers each event to every notifier and returns the first error.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, event ChangeEvent) error {
	var first error
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Emit builds and sends an event. Delivery failures are logged and not
// returned because the mutation has already been committed.
func Emit(ctx context.Context, n Notifier, entity Entity, action Action, entityID uuid.UUID, payload interface{}) {
	if n == nil {
		return
	}
	ev, err := NewChangeEvent(entity, action, entityID, payload)
	if err != nil {
		log.Error().Err(err).Str("entity", string(entity)).Msg("failed to build change event")
		return
	}
	if err := n.Notify(ctx, ev); err != nil {
		log.Error().
			Err(err).
			Str("entity", string(entity)).
			Str("action", string(action)).
			Str("entity_id", entityID.String()).
			Msg("failed to deliver change event")
	}
}
