package dashboard

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/rpc"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
)

const serviceName = "DashboardService"

// DashboardApp defines what the service layer needs from the dashboard application
type DashboardApp interface {
	Standings(ctx context.Context, seasonID *uuid.UUID) (*StandingsResponse, error)
	Leaders(ctx context.Context, seasonID *uuid.UUID) (*LeadersResponse, error)
	PlayerStats(ctx context.Context, seasonID *uuid.UUID, sortBy stats.Stat) (*PlayerStatsResponse, error)
	History(ctx context.Context, opts stats.HistoryOptions) (*HistoryResponse, error)
	Overview(ctx context.Context) (*OverviewResponse, error)
}

// Service exposes the dashboard app as league.v1.DashboardService
type Service struct {
	app DashboardApp
}

// NewService creates a new dashboard service
func NewService(app DashboardApp) *Service {
	return &Service{app: app}
}

// Register mounts every DashboardService procedure on mux.
func (s *Service) Register(mux rpc.Mux, opts ...connect.HandlerOption) {
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetStandings"), s.GetStandings, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetLeaders"), s.GetLeaders, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetPlayerStats"), s.GetPlayerStats, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetHistory"), s.GetHistory, opts...)
	rpc.Unary(mux, rpc.Procedure(serviceName, "GetOverview"), s.GetOverview, opts...)
}

func (s *Service) GetStandings(ctx context.Context, msg *SeasonMessage) (*StandingsResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}
	return s.app.Standings(ctx, seasonID)
}

func (s *Service) GetLeaders(ctx context.Context, msg *SeasonMessage) (*LeadersResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}
	return s.app.Leaders(ctx, seasonID)
}

func (s *Service) GetPlayerStats(ctx context.Context, msg *PlayerStatsMessage) (*PlayerStatsResponse, error) {
	seasonID, err := rpc.ParseOptionalID("season_id", msg.SeasonID)
	if err != nil {
		return nil, err
	}
	return s.app.PlayerStats(ctx, seasonID, stats.Stat(msg.SortBy))
}

func (s *Service) GetHistory(ctx context.Context, msg *HistoryMessage) (*HistoryResponse, error) {
	return s.app.History(ctx, stats.HistoryOptions{
		SeasonScope: stats.SeasonScope(msg.SeasonScope),
		TeamScope:   stats.TeamScope(msg.TeamScope),
		ColorMode:   stats.ColorMode(msg.ColorMode),
		Palette:     msg.Palette,
	})
}

func (s *Service) GetOverview(ctx context.Context, _ *OverviewMessage) (*OverviewResponse, error) {
	return s.app.Overview(ctx)
}
