package leaguedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const outboxColumns = `id, entity, action, entity_id, payload, created_at, sent_at`

func scanOutbox(row interface{ Scan(...interface{}) error }) (LeagueOutbox, error) {
	var i LeagueOutbox
	err := row.Scan(&i.ID, &i.Entity, &i.Action, &i.EntityID, &i.Payload, &i.CreatedAt, &i.SentAt)
	return i, err
}

const insertOutboxEvent = `INSERT INTO league_outbox (id, entity, action, entity_id, payload)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + outboxColumns

type InsertOutboxEventParams struct {
	ID       uuid.UUID
	Entity   string
	Action   string
	EntityID uuid.UUID
	Payload  pqtype.NullRawMessage
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) (LeagueOutbox, error) {
	row := q.db.QueryRowContext(ctx, insertOutboxEvent, arg.ID, arg.Entity, arg.Action, arg.EntityID, arg.Payload)
	return scanOutbox(row)
}

const notifyOutbox = `SELECT pg_notify($1, $2)`

// NotifyOutbox wakes listeners on channel with the outbox row id as payload.
func (q *Queries) NotifyOutbox(ctx context.Context, channel string, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, notifyOutbox, channel, id.String())
	return err
}

const getOutboxEvent = `SELECT ` + outboxColumns + ` FROM league_outbox WHERE id = $1`

func (q *Queries) GetOutboxEvent(ctx context.Context, id uuid.UUID) (LeagueOutbox, error) {
	return scanOutbox(q.db.QueryRowContext(ctx, getOutboxEvent, id))
}

const listUnsentOutbox = `SELECT ` + outboxColumns + ` FROM league_outbox
WHERE sent_at IS NULL
ORDER BY created_at
LIMIT $1`

func (q *Queries) ListUnsentOutbox(ctx context.Context, limit int32) ([]LeagueOutbox, error) {
	rows, err := q.db.QueryContext(ctx, listUnsentOutbox, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LeagueOutbox
	for rows.Next() {
		i, err := scanOutbox(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxSent = `UPDATE league_outbox SET sent_at = now() WHERE id = $1 AND sent_at IS NULL`

func (q *Queries) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, markOutboxSent, id)
	return err
}

const countUnsentOutbox = `SELECT COUNT(*) FROM league_outbox WHERE sent_at IS NULL`

func (q *Queries) CountUnsentOutbox(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUnsentOutbox)
	var count int64
	err := row.Scan(&count)
	return count, err
}
