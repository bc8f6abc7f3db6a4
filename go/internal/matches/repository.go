package matches

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateMatch(ctx context.Context, arg leaguedb.CreateMatchParams) (leaguedb.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (leaguedb.Match, error)
	ListMatches(ctx context.Context) ([]leaguedb.Match, error)
	ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]leaguedb.Match, error)
	UpdateMatch(ctx context.Context, arg leaguedb.UpdateMatchParams) (leaguedb.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	InsertMatchEvent(ctx context.Context, arg leaguedb.InsertMatchEventParams) error
	DeleteMatchEvents(ctx context.Context, matchID uuid.UUID) error
	ListEventsByMatch(ctx context.Context, matchID uuid.UUID) ([]leaguedb.MatchEvent, error)
	ListMatchEvents(ctx context.Context) ([]leaguedb.MatchEvent, error)
}

// Repository implements match data access operations on Postgres
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new matches repository
func NewRepository(db sqlutil.TxBeginner, querier Querier) *Repository {
	return &Repository{db: db, queries: querier}
}

func txQueries(tx *sql.Tx) Querier { return leaguedb.New(tx) }

// CreateMatch inserts the match and its events in one transaction
func (r *Repository) CreateMatch(ctx context.Context, m models.Match) (*models.Match, error) {
	var row leaguedb.Match
	err := sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		var err error
		row, err = q.CreateMatch(ctx, leaguedb.CreateMatchParams{
			ID:         m.ID,
			SeasonID:   m.SeasonID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  int32(m.HomeScore),
			AwayScore:  int32(m.AwayScore),
			IsFinished: m.IsFinished,
			PlayedAt:   m.PlayedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to create match: %w", sqlutil.MapError(err, "match"))
		}
		return insertEvents(ctx, q, m.ID, m.Events)
	})
	if err != nil {
		return nil, err
	}
	return dbMatchToModel(row, stampEvents(m.ID, m.Events)), nil
}

// GetMatch retrieves a match with its events
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	row, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", sqlutil.MapError(err, "match"))
	}
	events, err := r.queries.ListEventsByMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list match events: %w", err)
	}
	return dbMatchToModel(row, dbEventsToModels(events)), nil
}

// ListMatches retrieves every match with its events
func (r *Repository) ListMatches(ctx context.Context) ([]models.Match, error) {
	rows, err := r.queries.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return r.attachEvents(ctx, rows)
}

// ListMatchesBySeason retrieves one season's matches with their events
func (r *Repository) ListMatchesBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.Match, error) {
	rows, err := r.queries.ListMatchesBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by season: %w", err)
	}
	return r.attachEvents(ctx, rows)
}

// attachEvents loads all events in one query and groups them by match.
func (r *Repository) attachEvents(ctx context.Context, rows []leaguedb.Match) ([]models.Match, error) {
	events, err := r.queries.ListMatchEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list match events: %w", err)
	}
	byMatch := make(map[uuid.UUID][]leaguedb.MatchEvent)
	for _, ev := range events {
		byMatch[ev.MatchID] = append(byMatch[ev.MatchID], ev)
	}

	out := make([]models.Match, len(rows))
	for i, row := range rows {
		out[i] = *dbMatchToModel(row, dbEventsToModels(byMatch[row.ID]))
	}
	return out, nil
}

// UpdateMatch rewrites the match and replaces its events wholesale
func (r *Repository) UpdateMatch(ctx context.Context, m models.Match) (*models.Match, error) {
	var row leaguedb.Match
	err := sqlutil.Run(ctx, r.db, txQueries, func(q Querier) error {
		var err error
		row, err = q.UpdateMatch(ctx, leaguedb.UpdateMatchParams{
			ID:         m.ID,
			SeasonID:   m.SeasonID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  int32(m.HomeScore),
			AwayScore:  int32(m.AwayScore),
			IsFinished: m.IsFinished,
			PlayedAt:   m.PlayedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to update match: %w", sqlutil.MapError(err, "match"))
		}
		if err := q.DeleteMatchEvents(ctx, m.ID); err != nil {
			return fmt.Errorf("failed to delete match events: %w", err)
		}
		return insertEvents(ctx, q, m.ID, m.Events)
	})
	if err != nil {
		return nil, err
	}
	return dbMatchToModel(row, stampEvents(m.ID, m.Events)), nil
}

// DeleteMatch deletes a match; its events cascade
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

func insertEvents(ctx context.Context, q Querier, matchID uuid.UUID, events []models.MatchEvent) error {
	for i, ev := range stampEvents(matchID, events) {
		err := q.InsertMatchEvent(ctx, leaguedb.InsertMatchEventParams{
			ID:          ev.ID,
			MatchID:     matchID,
			Position:    int32(i),
			Type:        string(ev.Type),
			PlayerID:    ev.PlayerID,
			TeamID:      ev.TeamID,
			AssistantID: sqlutil.ToNullUUID(ev.AssistantID),
			Minute:      sqlutil.ToSqlInt32(ev.Minute),
		})
		if err != nil {
			return fmt.Errorf("failed to insert match event %d: %w", i, sqlutil.MapError(err, "match event"))
		}
	}
	return nil
}

// stampEvents returns a copy of events bound to matchID, with ids assigned.
func stampEvents(matchID uuid.UUID, events []models.MatchEvent) []models.MatchEvent {
	out := make([]models.MatchEvent, len(events))
	for i, ev := range events {
		if ev.ID == uuid.Nil {
			ev.ID = uuid.New()
		}
		ev.MatchID = matchID
		out[i] = ev
	}
	return out
}

func dbMatchToModel(m leaguedb.Match, events []models.MatchEvent) *models.Match {
	return &models.Match{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  int(m.HomeScore),
		AwayScore:  int(m.AwayScore),
		IsFinished: m.IsFinished,
		PlayedAt:   m.PlayedAt,
		Events:     events,
		CreatedAt:  m.CreatedAt,
	}
}

func dbEventsToModels(rows []leaguedb.MatchEvent) []models.MatchEvent {
	events := make([]models.MatchEvent, len(rows))
	for i, e := range rows {
		events[i] = models.MatchEvent{
			ID:          e.ID,
			MatchID:     e.MatchID,
			Type:        models.EventType(e.Type),
			PlayerID:    e.PlayerID,
			TeamID:      e.TeamID,
			AssistantID: sqlutil.FromNullUUID(e.AssistantID),
			Minute:      sqlutil.FromSqlInt32(e.Minute),
		}
	}
	return events
}
