package leaguedb

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

type Season struct {
	ID        uuid.UUID
	Name      string
	Year      int32
	Sequence  int32
	IsCurrent bool
	CreatedAt time.Time
}

type Team struct {
	ID        uuid.UUID
	SeasonID  uuid.NullUUID
	Name      string
	Initials  string
	Color     string
	LogoUrl   sql.NullString
	CreatedAt time.Time
}

type Player struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	Name        string
	Goals       int32
	Assists     int32
	YellowCards int32
	RedCards    int32
	CreatedAt   time.Time
}

type Match struct {
	ID         uuid.UUID
	SeasonID   uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  int32
	AwayScore  int32
	IsFinished bool
	PlayedAt   time.Time
	CreatedAt  time.Time
}

type MatchEvent struct {
	ID          uuid.UUID
	MatchID     uuid.UUID
	Position    int32
	Type        string
	PlayerID    uuid.UUID
	TeamID      uuid.UUID
	AssistantID uuid.NullUUID
	Minute      sql.NullInt32
}

type LeagueOutbox struct {
	ID        uuid.UUID
	Entity    string
	Action    string
	EntityID  uuid.UUID
	Payload   pqtype.NullRawMessage
	CreatedAt time.Time
	SentAt    sql.NullTime
}
