package matches

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
)

const serviceName = "MatchService"

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req MatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, seasonID *uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, req MatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}

// Service exposes the matches app as league.v1.MatchService
type Service struct {
	app MatchesApp
}

// NewService creates a new matches service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

// Register mounts every MatchService procedure on mux.
func (s *Service) Register(mux rpc.Mux, opts ...connect.HandlerOption) {
	rpc.Unary(mux, rpc.Procedure(serviceName, "CreateMatch"), s.CreateMatch, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetMatch"), s.GetMatch, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "ListMatches"), s.ListMatches, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "UpdateMatch"), s.UpdateMatch, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "DeleteMatch"), s.DeleteMatch, opts...)
}

func (s *Service) CreateMatch(ctx context.Context, msg *CreateMatchMessage) (*MatchResponse, error) {
	req, err := matchRequestFromMessage(msg)
	if err != nil {
		return nil, err
	}

	m, err := s.app.CreateMatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return &MatchResponse{Match: m}, nil
}

func (s *Service) GetMatch(ctx context.Context, msg *GetMatchMessage) (*MatchResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}

	m, err := s.app.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MatchResponse{Match: m}, nil
}

func (s *Service) ListMatches(ctx context.Context, msg *ListMatchesMessage) (*ListMatchesResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}

	matches, err := s.app.ListMatches(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return &ListMatchesResponse{Matches: matches}, nil
}

func (s *Service) UpdateMatch(ctx context.Context, msg *UpdateMatchMessage) (*MatchResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	req, err := matchRequestFromMessage(&msg.CreateMatchMessage)
	if err != nil {
		return nil, err
	}

	m, err := s.app.UpdateMatch(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return &MatchResponse{Match: m}, nil
}

func (s *Service) DeleteMatch(ctx context.Context, msg *DeleteMatchMessage) (*DeleteMatchResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.DeleteMatch(ctx, id); err != nil {
		return nil, err
	}
	return &DeleteMatchResponse{}, nil
}

func matchRequestFromMessage(msg *CreateMatchMessage) (MatchRequest, error) {
	seasonID, err := rpc.ParseID("season_id", msg.SeasonID)
	if err != nil {
		return MatchRequest{}, err
	}
	homeID, err := rpc.ParseID("home_team_id", msg.HomeTeamID)
	if err != nil {
		return MatchRequest{}, err
	}
	awayID, err := rpc.ParseID("away_team_id", msg.AwayTeamID)
	if err != nil {
		return MatchRequest{}, err
	}

	events := make([]EventInput, len(msg.Events))
	for i, ev := range msg.Events {
		playerID, err := rpc.ParseID("player_id", ev.PlayerID)
		if err != nil {
			return MatchRequest{}, err
		}
		assistantID, err := rpc.ParseOptionalID("assistant_id", ev.AssistantID)
		if err != nil {
			return MatchRequest{}, err
		}
		events[i] = EventInput{
			Type:        models.EventType(ev.Type),
			PlayerID:    playerID,
			AssistantID: assistantID,
			Minute:      ev.Minute,
		}
	}

	return MatchRequest{
		SeasonID:   seasonID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  msg.HomeScore,
		AwayScore:  msg.AwayScore,
		IsFinished: msg.IsFinished,
		PlayedAt:   msg.PlayedAt,
		Events:     events,
	}, nil
}
