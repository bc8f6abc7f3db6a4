package leaguedb

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const matchColumns = `id, season_id, home_team_id, away_team_id, home_score, away_score, is_finished, played_at, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (Match, error) {
	var i Match
	err := row.Scan(&i.ID, &i.SeasonID, &i.HomeTeamID, &i.AwayTeamID,
		&i.HomeScore, &i.AwayScore, &i.IsFinished, &i.PlayedAt, &i.CreatedAt)
	return i, err
}

func collectMatches(rows *sql.Rows, err error) ([]Match, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Match
	for rows.Next() {
		i, err := scanMatch(rows)
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

const createMatch = `INSERT INTO matches (id, season_id, home_team_id, away_team_id, home_score, away_score, is_finished, played_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + matchColumns

type CreateMatchParams struct {
	ID         uuid.UUID
	SeasonID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  int32
	AwayScore  int32
	IsFinished bool
	PlayedAt   time.Time
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, createMatch, arg.ID, arg.SeasonID, arg.HomeTeamID, arg.AwayTeamID,
		arg.HomeScore, arg.AwayScore, arg.IsFinished, arg.PlayedAt)
	return scanMatch(row)
}

const getMatch = `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

func (q *Queries) GetMatch(ctx context.Context, id uuid.UUID) (Match, error) {
	return scanMatch(q.db.QueryRowContext(ctx, getMatch, id))
}

const listMatches = `SELECT ` + matchColumns + ` FROM matches ORDER BY played_at, created_at`

func (q *Queries) ListMatches(ctx context.Context) ([]Match, error) {
	return collectMatches(q.db.QueryContext(ctx, listMatches))
}

const listMatchesBySeason = `SELECT ` + matchColumns + ` FROM matches WHERE season_id = $1 ORDER BY played_at, created_at`

func (q *Queries) ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]Match, error) {
	return collectMatches(q.db.QueryContext(ctx, listMatchesBySeason, seasonID))
}

const updateMatch = `UPDATE matches
SET season_id = $2, home_team_id = $3, away_team_id = $4, home_score = $5, away_score = $6, is_finished = $7, played_at = $8
WHERE id = $1
RETURNING ` + matchColumns

type UpdateMatchParams struct {
	ID         uuid.UUID
	SeasonID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  int32
	AwayScore  int32
	IsFinished bool
	PlayedAt   time.Time
}

func (q *Queries) UpdateMatch(ctx context.Context, arg UpdateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, updateMatch, arg.ID, arg.SeasonID, arg.HomeTeamID, arg.AwayTeamID,
		arg.HomeScore, arg.AwayScore, arg.IsFinished, arg.PlayedAt)
	return scanMatch(row)
}

const deleteMatch = `DELETE FROM matches WHERE id = $1`

func (q *Queries) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteMatch, id)
	return err
}

const eventColumns = `id, match_id, position, type, player_id, team_id, assistant_id, minute`

func scanEvent(row interface{ Scan(...interface{}) error }) (MatchEvent, error) {
	var i MatchEvent
	err := row.Scan(&i.ID, &i.MatchID, &i.Position, &i.Type, &i.PlayerID, &i.TeamID, &i.AssistantID, &i.Minute)
	return i, err
}

func collectEvents(rows *sql.Rows, err error) ([]MatchEvent, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MatchEvent
	for rows.Next() {
		i, err := scanEvent(rows)
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

const insertMatchEvent = `INSERT INTO match_events (id, match_id, position, type, player_id, team_id, assistant_id, minute)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type InsertMatchEventParams struct {
	ID          uuid.UUID
	MatchID     uuid.UUID
	Position    int32
	Type        string
	PlayerID    uuid.UUID
	TeamID      uuid.UUID
	AssistantID uuid.NullUUID
	Minute      sql.NullInt32
}

func (q *Queries) InsertMatchEvent(ctx context.Context, arg InsertMatchEventParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchEvent, arg.ID, arg.MatchID, arg.Position, arg.Type,
		arg.PlayerID, arg.TeamID, arg.AssistantID, arg.Minute)
	return err
}

const deleteMatchEvents = `DELETE FROM match_events WHERE match_id = $1`

func (q *Queries) DeleteMatchEvents(ctx context.Context, matchID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteMatchEvents, matchID)
	return err
}

const listEventsByMatch = `SELECT ` + eventColumns + ` FROM match_events WHERE match_id = $1 ORDER BY position`

func (q *Queries) ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]MatchEvent, error) {
	return collectEvents(q.db.QueryContext(ctx, listEventsByMatch, matchID))
}

const listMatchEvents = `SELECT ` + eventColumns + ` FROM match_events ORDER BY match_id, position`

func (q *Queries) ListMatchEvents(ctx context.Context) ([]MatchEvent, error) {
	return collectEvents(q.db.QueryContext(ctx, listMatchEvents))
}
