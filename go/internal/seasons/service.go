package seasons

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
)

const serviceName = "SeasonService"

// SeasonsApp defines what the service layer needs from the seasons application
type SeasonsApp interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	CurrentSeason(ctx context.Context) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	UpdateSeason(ctx context.Context, id uuid.UUID, req UpdateSeasonRequest) (*models.Season, error)
	DeleteSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// Service exposes the seasons app as league.v1.SeasonService
type Service struct {
	app SeasonsApp
}

func NewService(app SeasonsApp) *Service {
	return &Service{app: app}
}

// Register mounts every SeasonService procedure on mux.
func (s *Service) Register(mux rpc.Mux, opts ...connect.HandlerOption) {
	rpc.Unary(mux, rpc.Procedure(serviceName, "CreateSeason"), s.CreateSeason, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetSeason"), s.GetSeason, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "CurrentSeason"), s.CurrentSeason, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "ListSeasons"), s.ListSeasons, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "SetCurrentSeason"), s.SetCurrentSeason, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "UpdateSeason"), s.UpdateSeason, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "DeleteSeason"), s.DeleteSeason, opts...)
}

func (s *Service) CreateSeason(ctx context.Context, msg *CreateSeasonMessage) (*SeasonResponse, error) {
	season, err := s.app.CreateSeason(ctx, *msg)
	if err != nil {
		return nil, err
	}
	return &SeasonResponse{Season: season}, nil
}

func (s *Service) GetSeason(ctx context.Context, msg *GetSeasonMessage) (*SeasonResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	season, err := s.app.GetSeason(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SeasonResponse{Season: season}, nil
}

func (s *Service) CurrentSeason(ctx context.Context, _ *CurrentSeasonMessage) (*SeasonResponse, error) {
	season, err := s.app.CurrentSeason(ctx)
	if err != nil {
		return nil, err
	}
	return &SeasonResponse{Season: season}, nil
}

func (s *Service) ListSeasons(ctx context.Context, _ *ListSeasonsMessage) (*ListSeasonsResponse, error) {
	seasons, err := s.app.ListSeasons(ctx)
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []models.Season{}
	}
	return &ListSeasonsResponse{Seasons: seasons}, nil
}

func (s *Service) SetCurrentSeason(ctx context.Context, msg *SetCurrentSeasonMessage) (*SeasonResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	season, err := s.app.SetCurrentSeason(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SeasonResponse{Season: season}, nil
}

func (s *Service) UpdateSeason(ctx context.Context, msg *UpdateSeasonMessage) (*SeasonResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	season, err := s.app.UpdateSeason(ctx, id, UpdateSeasonRequest{
		Name:     msg.Name,
		Year:     msg.Year,
		Sequence: msg.Sequence,
	})
	if err != nil {
		return nil, err
	}
	return &SeasonResponse{Season: season}, nil
}

func (s *Service) DeleteSeason(ctx context.Context, msg *DeleteSeasonMessage) (*DeleteSeasonResponse, error) {
	id, err := rpc.ParseID("id", msg.ID)
	if err != nil {
		return nil, err
	}
	promoted, err := s.app.DeleteSeason(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeleteSeasonResponse{Promoted: promoted}, nil
}
