package leaguedb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const teamColumns = `id, season_id, name, initials, color, logo_url, created_at`

func scanTeam(row interface{ Scan(...interface{}) error }) (Team, error) {
	var i Team
	err := row.Scan(&i.ID, &i.SeasonID, &i.Name, &i.Initials, &i.Color, &i.LogoUrl, &i.CreatedAt)
	return i, err
}

func collectTeams(rows *sql.Rows, err error) ([]Team, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		i, err := scanTeam(rows)
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

const createTeam = `INSERT INTO teams (id, season_id, name, initials, color, logo_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + teamColumns

type CreateTeamParams struct {
	ID       uuid.UUID
	SeasonID uuid.NullUUID
	Name     string
	Initials string
	Color    string
	LogoUrl  sql.NullString
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.ID, arg.SeasonID, arg.Name, arg.Initials, arg.Color, arg.LogoUrl)
	return scanTeam(row)
}

const getTeam = `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

func (q *Queries) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	return scanTeam(q.db.QueryRowContext(ctx, getTeam, id))
}

const listTeams = `SELECT ` + teamColumns + ` FROM teams ORDER BY lower(name) COLLATE "C", name COLLATE "C", id`

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	return collectTeams(q.db.QueryContext(ctx, listTeams))
}

const listTeamsBySeason = `SELECT ` + teamColumns + ` FROM teams WHERE season_id = $1 ORDER BY lower(name) COLLATE "C", name COLLATE "C", id`

func (q *Queries) ListTeamsBySeason(ctx context.Context, seasonID uuid.UUID) ([]Team, error) {
	return collectTeams(q.db.QueryContext(ctx, listTeamsBySeason, seasonID))
}

const updateTeam = `UPDATE teams SET season_id = $2, name = $3, initials = $4, color = $5, logo_url = $6
WHERE id = $1
RETURNING ` + teamColumns

type UpdateTeamParams struct {
	ID       uuid.UUID
	SeasonID uuid.NullUUID
	Name     string
	Initials string
	Color    string
	LogoUrl  sql.NullString
}

func (q *Queries) UpdateTeam(ctx context.Context, arg UpdateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeam, arg.ID, arg.SeasonID, arg.Name, arg.Initials, arg.Color, arg.LogoUrl)
	return scanTeam(row)
}

const deleteTeamEvents = `DELETE FROM match_events
WHERE match_id IN (SELECT id FROM matches WHERE home_team_id = $1 OR away_team_id = $1)
   OR team_id = $1
   OR player_id IN (SELECT id FROM players WHERE team_id = $1)
   OR assistant_id IN (SELECT id FROM players WHERE team_id = $1)`

// DeleteTeamEvents removes every event tied to the team, its matches or its players.
func (q *Queries) DeleteTeamEvents(ctx context.Context, teamID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteTeamEvents, teamID)
	return err
}

const deleteTeamMatches = `DELETE FROM matches WHERE home_team_id = $1 OR away_team_id = $1`

func (q *Queries) DeleteTeamMatches(ctx context.Context, teamID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteTeamMatches, teamID)
	return err
}

const deleteTeamPlayers = `DELETE FROM players WHERE team_id = $1`

func (q *Queries) DeleteTeamPlayers(ctx context.Context, teamID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteTeamPlayers, teamID)
	return err
}

const deleteTeam = `DELETE FROM teams WHERE id = $1`

func (q *Queries) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteTeam, id)
	return err
}
