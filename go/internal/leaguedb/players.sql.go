package leaguedb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const playerColumns = `id, team_id, name, goals, assists, yellow_cards, red_cards, created_at`

func scanPlayer(row interface{ Scan(...interface{}) error }) (Player, error) {
	var i Player
	err := row.Scan(&i.ID, &i.TeamID, &i.Name, &i.Goals, &i.Assists, &i.YellowCards, &i.RedCards, &i.CreatedAt)
	return i, err
}

func collectPlayers(rows *sql.Rows, err error) ([]Player, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		i, err := scanPlayer(rows)
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

const createPlayer = `INSERT INTO players (id, team_id, name, goals, assists, yellow_cards, red_cards)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + playerColumns

type CreatePlayerParams struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	Name        string
	Goals       int32
	Assists     int32
	YellowCards int32
	RedCards    int32
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.ID, arg.TeamID, arg.Name, arg.Goals, arg.Assists, arg.YellowCards, arg.RedCards)
	return scanPlayer(row)
}

const getPlayer = `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

func (q *Queries) GetPlayer(ctx context.Context, id uuid.UUID) (Player, error) {
	return scanPlayer(q.db.QueryRowContext(ctx, getPlayer, id))
}

const listPlayers = `SELECT ` + playerColumns + ` FROM players ORDER BY lower(name) COLLATE "C", name COLLATE "C", id`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	return collectPlayers(q.db.QueryContext(ctx, listPlayers))
}

const listPlayersByTeam = `SELECT ` + playerColumns + ` FROM players WHERE team_id = $1 ORDER BY lower(name) COLLATE "C", name COLLATE "C", id`

func (q *Queries) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]Player, error) {
	return collectPlayers(q.db.QueryContext(ctx, listPlayersByTeam, teamID))
}

const updatePlayer = `UPDATE players
SET team_id = $2, name = $3, goals = $4, assists = $5, yellow_cards = $6, red_cards = $7
WHERE id = $1
RETURNING ` + playerColumns

type UpdatePlayerParams struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	Name        string
	Goals       int32
	Assists     int32
	YellowCards int32
	RedCards    int32
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer,
		arg.ID, arg.TeamID, arg.Name, arg.Goals, arg.Assists, arg.YellowCards, arg.RedCards)
	return scanPlayer(row)
}

const deletePlayerEvents = `DELETE FROM match_events WHERE player_id = $1`

func (q *Queries) DeletePlayerEvents(ctx context.Context, playerID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deletePlayerEvents, playerID)
	return err
}

const clearAssistant = `UPDATE match_events SET assistant_id = NULL WHERE assistant_id = $1`

func (q *Queries) ClearAssistant(ctx context.Context, playerID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, clearAssistant, playerID)
	return err
}

const deletePlayer = `DELETE FROM players WHERE id = $1`

func (q *Queries) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deletePlayer, id)
	return err
}
