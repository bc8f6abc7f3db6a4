package dashboard

import (
	"time"

	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
)

// Wire messages for DashboardService. An empty season_id selects the current
// season.

type SeasonMessage struct {
	SeasonID string `json:"season_id,omitempty"`
}

type PlayerStatsMessage struct {
	SeasonID string `json:"season_id,omitempty"`
	SortBy   string `json:"sort_by,omitempty"`
}

type HistoryMessage struct {
	SeasonScope string   `json:"season_scope,omitempty"`
	TeamScope   string   `json:"team_scope,omitempty"`
	ColorMode   string   `json:"color_mode,omitempty"`
	Palette     []string `json:"palette,omitempty"`
}

type OverviewMessage struct{}

type StandingsResponse struct {
	Season *models.Season            `json:"season,omitempty"`
	Table  []models.LeagueTableEntry `json:"table"`
}

type LeadersResponse struct {
	Season  *models.Season `json:"season,omitempty"`
	Leaders stats.Leaders  `json:"leaders"`
}

type PlayerStatsResponse struct {
	Season  *models.Season     `json:"season,omitempty"`
	Players []stats.PlayerStat `json:"players"`
}

type HistoryResponse struct {
	Options stats.HistoryOptions `json:"options"`
	Records []stats.ChartRecord  `json:"records"`
}

// Totals counts the rows in the snapshot the overview was built from.
type Totals struct {
	Teams   int `json:"teams"`
	Players int `json:"players"`
	Seasons int `json:"seasons"`
	Matches int `json:"matches"`
}

type OverviewResponse struct {
	Season        *models.Season            `json:"season,omitempty"`
	Table         []models.LeagueTableEntry `json:"table"`
	Leaders       stats.Leaders             `json:"leaders"`
	RecentMatches []models.Match            `json:"recent_matches"`
	Totals        Totals                    `json:"totals"`
	LoadedAt      time.Time                 `json:"loaded_at"`
}
