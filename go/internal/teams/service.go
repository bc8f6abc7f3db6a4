package teams

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
)

const serviceName = "TeamService"

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, seasonID *uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Service exposes the teams app as league.v1.TeamService
type Service struct {
	app TeamsApp
}

// NewService creates a new teams service
func NewService(app TeamsApp) *Service {
	return &Service{app: app}
}

// Register mounts every TeamService procedure on mux.
func (s *Service) Register(mux rpc.Mux, opts ...connect.HandlerOption) {
	rpc.Unary(mux, rpc.Procedure(serviceName, "CreateTeam"), s.CreateTeam, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetTeam"), s.GetTeam, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "ListTeams"), s.ListTeams, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "UpdateTeam"), s.UpdateTeam, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "DeleteTeam"), s.DeleteTeam, opts...)
}

func (s *Service) CreateTeam(ctx context.Context, msg *CreateTeamMessage) (*TeamResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}

	team, err := s.app.CreateTeam(ctx, CreateTeamRequest{
		SeasonID: seasonID,
		Name:     msg.Name,
		Initials: msg.Initials,
		Color:    msg.Color,
		LogoURL:  msg.LogoURL,
	})
	if err != nil {
		return nil, err
	}
	return &TeamResponse{Team: team}, nil
}

func (s *Service) GetTeam(ctx context.Context, msg *GetTeamMessage) (*TeamResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}

	team, err := s.app.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TeamResponse{Team: team}, nil
}

func (s *Service) ListTeams(ctx context.Context, msg *ListTeamsMessage) (*ListTeamsResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}

	teams, err := s.app.ListTeams(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return &ListTeamsResponse{Teams: teams}, nil
}

func (s *Service) UpdateTeam(ctx context.Context, msg *UpdateTeamMessage) (*TeamResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}

	team, err := s.app.UpdateTeam(ctx, id, UpdateTeamRequest{
		SeasonID:    seasonID,
		ClearSeason: msg.ClearSeason,
		Name:        msg.Name,
		Initials:    msg.Initials,
		Color:       msg.Color,
		LogoURL:     msg.LogoURL,
	})
	if err != nil {
		return nil, err
	}
	return &TeamResponse{Team: team}, nil
}

func (s *Service) DeleteTeam(ctx context.Context, msg *DeleteTeamMessage) (*DeleteTeamResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	if err := s.app.DeleteTeam(ctx, id); err != nil {
		return nil, err
	}
	return &DeleteTeamResponse{}, nil
}
