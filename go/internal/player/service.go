package player

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
)

const serviceName = "PlayerService"

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, teamID *uuid.UUID) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	RecalculateCounters(ctx context.Context, seasonID uuid.UUID) (int, error)
}

// Service exposes the player app as league.v1.PlayerService
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{app: app}
}

// Register mounts every PlayerService procedure on mux.
func (s *Service) Register(mux rpc.Mux, opts ...connect.HandlerOption) {
	rpc.Unary(mux, rpc.Procedure(serviceName, "CreatePlayer"), s.CreatePlayer, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetPlayer"), s.GetPlayer, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "ListPlayers"), s.ListPlayers, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "UpdatePlayer"), s.UpdatePlayer, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "DeletePlayer"), s.DeletePlayer, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "RecalculateCounters"), s.RecalculateCounters, opts...)
}

func (s *Service) CreatePlayer(ctx context.Context, msg *CreatePlayerMessage) (*PlayerResponse, error) {
	teamID, err := rpc.ParseID("team_id", msg.TeamID)
	if err != nil {
		return nil, err
	}

	p, err := s.app.CreatePlayer(ctx, CreatePlayerRequest{TeamID: teamID, Name: msg.Name})
	if err != nil {
		return nil, err
	}
	return &PlayerResponse{Player: p}, nil
}

func (s *Service) GetPlayer(ctx context.Context, msg *GetPlayerMessage) (*PlayerResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}

	p, err := s.app.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PlayerResponse{Player: p}, nil
}

func (s *Service) ListPlayers(ctx context.Context, msg *ListPlayersMessage) (*ListPlayersResponse, error) {
	teamID, err := rpc.ParseOptionalID("team_id", msg.TeamID)
	if err != nil {
		return nil, err
	}

	players, err := s.app.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []models.Player{}
	}
	return &ListPlayersResponse{Players: players}, nil
}

func (s *Service) UpdatePlayer(ctx context.Context, msg *UpdatePlayerMessage) (*PlayerResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	teamID, err := rpc.ParseOptionalID("team_id", msg.TeamID)
	if err != nil {
		return nil, err
	}

	p, err := s.app.UpdatePlayer(ctx, id, UpdatePlayerRequest{
		TeamID:      teamID,
		Name:        msg.Name,
		Goals:       msg.Goals,
		Assists:     msg.Assists,
		YellowCards: msg.YellowCards,
		RedCards:    msg.RedCards,
	})
	if err != nil {
		return nil, err
	}
	return &PlayerResponse{Player: p}, nil
}

func (s *Service) DeletePlayer(ctx context.Context, msg *DeletePlayerMessage) (*DeletePlayerResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.DeletePlayer(ctx, id); err != nil {
		return nil, err
	}
	return &DeletePlayerResponse{}, nil
}

func (s *Service) RecalculateCounters(ctx context.Context, msg *RecalculateCountersMessage) (*RecalculateCountersResponse, error) {
	seasonID, err := rpc.ParseID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}

	n, err := s.app.RecalculateCounters(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	return &RecalculateCountersResponse{Updated: n}, nil
}
