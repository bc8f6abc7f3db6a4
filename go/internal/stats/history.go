package stats

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// SeasonScope selects which seasons appear in a history series.
type SeasonScope string

const (
	// SeasonScopeSameYear charts the seasons sharing the current season's year.
	SeasonScopeSameYear SeasonScope = "same_year"
	// SeasonScopeAll charts every season.
	SeasonScopeAll SeasonScope = "all"
)

// TeamScope selects which teams appear in each season group.
type TeamScope string

const (
	// TeamScopeAll places every team in every season group.
	TeamScopeAll TeamScope = "all"
	// TeamScopeRegistered places only the teams registered to that season.
	TeamScopeRegistered TeamScope = "registered"
)

// ColorMode selects how bar colors are assigned.
type ColorMode string

const (
	ColorModeTeam    ColorMode = "team"
	ColorModePalette ColorMode = "palette"
)

// HistoryOptions configures HistoricalSeries.
type HistoryOptions struct {
	SeasonScope SeasonScope `json:"season_scope" yaml:"season_scope"`
	TeamScope   TeamScope   `json:"team_scope" yaml:"team_scope"`
	ColorMode   ColorMode   `json:"color_mode" yaml:"color_mode"`
	Palette     []string    `json:"palette,omitempty" yaml:"palette"`
}

// ChartRecord is one bar of a grouped bar chart: a team's points in a season.
type ChartRecord struct {
	SeasonID     uuid.UUID `json:"season_id"`
	SeasonName   string    `json:"season_name"`
	TeamID       uuid.UUID `json:"team_id"`
	Label        string    `json:"label"`
	Points       int       `json:"points"`
	Color        string    `json:"color"`
	FirstInGroup bool      `json:"first_in_group"`
	LastInGroup  bool      `json:"last_in_group"`
}

type seasonTeam struct {
	seasonID uuid.UUID
	teamID   uuid.UUID
}

// HistoricalSeries returns the points of each team per season as a flat,
// season-major sequence. Seasons are charted in ascending (year, sequence)
// order for both scopes, since sequence numbers restart every year; within
// one year that is plain ascending sequence. With SeasonScopeSameYear and no
// current season the series is empty.
func HistoricalSeries(teams []models.Team, matches []models.Match, seasons []models.Season, current *models.Season, opts HistoryOptions) []ChartRecord {
	points := make(map[seasonTeam]int)
	for _, m := range matches {
		if !m.IsFinished {
			continue
		}
		home, away := matchPoints(m.HomeScore, m.AwayScore)
		points[seasonTeam{m.SeasonID, m.HomeTeamID}] += home
		points[seasonTeam{m.SeasonID, m.AwayTeamID}] += away
	}

	charted := chartedSeasons(seasons, current, opts.SeasonScope)

	byName := make([]models.Team, len(teams))
	copy(byName, teams)
	sort.SliceStable(byName, func(i, j int) bool {
		return strings.ToLower(byName[i].Name) < strings.ToLower(byName[j].Name)
	})

	var records []ChartRecord
	for _, season := range charted {
		group := byName
		if opts.TeamScope == TeamScopeRegistered {
			group = registeredTeams(byName, season.ID)
		}

		for i, team := range group {
			records = append(records, ChartRecord{
				SeasonID:     season.ID,
				SeasonName:   season.Name,
				TeamID:       team.ID,
				Label:        team.Initials,
				Points:       points[seasonTeam{season.ID, team.ID}],
				Color:        barColor(team, i, opts),
				FirstInGroup: i == 0,
				LastInGroup:  i == len(group)-1,
			})
		}
	}

	return records
}

func chartedSeasons(seasons []models.Season, current *models.Season, scope SeasonScope) []models.Season {
	out := make([]models.Season, 0, len(seasons))
	for _, s := range seasons {
		if scope != SeasonScopeAll {
			if current == nil || s.Year != current.Year {
				continue
			}
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

func registeredTeams(teams []models.Team, seasonID uuid.UUID) []models.Team {
	var out []models.Team
	for _, t := range teams {
		if t.RegisteredTo(seasonID) {
			out = append(out, t)
		}
	}
	return out
}

func barColor(team models.Team, index int, opts HistoryOptions) string {
	if opts.ColorMode == ColorModePalette && len(opts.Palette) > 0 {
		return opts.Palette[index%len(opts.Palette)]
	}
	return team.Color
}
