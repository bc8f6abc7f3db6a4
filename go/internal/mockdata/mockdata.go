// Package mockdata generates a deterministic league for demos, local
// development and the Postgres seeder.
package mockdata

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/xorcare/pointer"
)

// Options controls the size and shape of the generated league.
type Options struct {
	Seed           int64     `yaml:"seed"`
	Teams          int       `yaml:"teams"`
	PlayersPerTeam int       `yaml:"players_per_team"`
	Seasons        int       `yaml:"seasons"`
	RoundRobin     int       `yaml:"round_robin"` // legs per pairing
	Now            time.Time `yaml:"-"`
}

// DefaultOptions returns a small double round-robin league over three seasons.
func DefaultOptions() Options {
	return Options{
		Seed:           42,
		Teams:          6,
		PlayersPerTeam: 8,
		Seasons:        3,
		RoundRobin:     2,
	}
}

// Dataset is a complete league ready to import.
type Dataset struct {
	Teams   []models.Team
	Players []models.Player
	Seasons []models.Season
	Matches []models.Match
}

// simulation constants
const (
	maxChances     = 6
	chanceDivisor  = 140
	homeAdvantage  = 10
	assistRate     = 60
	yellowRate     = 35
	redRate        = 4
	matchMinutes   = 90
	kickoffHourUTC = 15
)

var teamNames = []string{
	"Accra Lions", "Kumasi Eagles", "Cape Coast Sharks", "Tamale Falcons",
	"Ho Rangers", "Takoradi Stars", "Sunyani Leopards", "Koforidua Bulls",
	"Tema Mariners", "Bolga Hawks", "Wa Warriors", "Obuasi Miners",
}

var teamColors = []string{
	"#E53935", "#1E88E5", "#43A047", "#FDD835", "#8E24AA", "#FB8C00",
	"#00ACC1", "#6D4C41", "#3949AB", "#C0CA33", "#D81B60", "#546E7A",
}

var firstNames = []string{
	"Kwame", "Kofi", "Yaw", "Kojo", "Kwesi", "Ama", "Esi", "Akosua",
	"Abena", "Efua", "Nana", "Kwabena", "Adjoa", "Afia", "Fiifi", "Ekow",
}

var lastNames = []string{
	"Mensah", "Owusu", "Boateng", "Asante", "Osei", "Addo", "Appiah",
	"Agyeman", "Darko", "Quaye", "Tetteh", "Annan", "Ofori", "Badu",
}

type generator struct {
	rng      *rand.Rand
	opts     Options
	strength map[uuid.UUID]int
	squads   map[uuid.UUID][]models.Player
}

// Generate builds a league from opts. The same options always produce the
// same dataset. The latest season is current and every team is registered
// to it; its fixtures after opts.Now are left unplayed.
func Generate(opts Options) (*Dataset, error) {
	if opts.Teams < 2 || opts.Teams > len(teamNames) {
		return nil, fmt.Errorf("%w: teams must be between 2 and %d", models.ErrValidation, len(teamNames))
	}
	if opts.PlayersPerTeam < 1 {
		return nil, fmt.Errorf("%w: at least one player per team is required", models.ErrValidation)
	}
	if opts.Seasons < 1 {
		return nil, fmt.Errorf("%w: at least one season is required", models.ErrValidation)
	}
	if opts.RoundRobin < 1 {
		opts.RoundRobin = 1
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	opts.Now = opts.Now.UTC()

	g := &generator{
		rng:      rand.New(rand.NewSource(opts.Seed)),
		opts:     opts,
		strength: make(map[uuid.UUID]int),
		squads:   make(map[uuid.UUID][]models.Player),
	}

	ds := &Dataset{}
	ds.Seasons = g.seasons()
	current := ds.Seasons[len(ds.Seasons)-1].ID
	ds.Teams = g.teams(current)
	for _, team := range ds.Teams {
		ds.Players = append(ds.Players, g.squad(team)...)
	}
	for _, season := range ds.Seasons {
		ds.Matches = append(ds.Matches, g.fixtures(season, ds.Teams)...)
	}
	return ds, nil
}

func (g *generator) id() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand reads never fail
		panic(err)
	}
	return id
}

func (g *generator) seasons() []models.Season {
	first := g.opts.Now.Year() - g.opts.Seasons + 1
	out := make([]models.Season, g.opts.Seasons)
	for i := range out {
		year := first + i
		out[i] = models.Season{
			ID:        g.id(),
			Name:      fmt.Sprintf("%d Season", year),
			Year:      year,
			Sequence:  1,
			IsCurrent: i == g.opts.Seasons-1,
			CreatedAt: g.opts.Now,
		}
	}
	return out
}

func (g *generator) teams(current uuid.UUID) []models.Team {
	out := make([]models.Team, g.opts.Teams)
	for i := range out {
		season := current
		out[i] = models.Team{
			ID:        g.id(),
			SeasonID:  &season,
			Name:      teamNames[i],
			Initials:  initials(teamNames[i]),
			Color:     teamColors[i%len(teamColors)],
			CreatedAt: g.opts.Now,
		}
		g.strength[out[i].ID] = 40 + g.rng.Intn(51)
	}
	return out
}

// initials takes the first letter of each word, topped up from the last
// word to three letters.
func initials(name string) string {
	words := strings.Fields(name)
	var b strings.Builder
	for _, w := range words {
		b.WriteByte(w[0])
	}
	last := words[len(words)-1]
	for i := 1; b.Len() < 3 && i < len(last); i++ {
		b.WriteByte(last[i])
	}
	return strings.ToUpper(b.String())
}

func (g *generator) squad(team models.Team) []models.Player {
	out := make([]models.Player, g.opts.PlayersPerTeam)
	for i := range out {
		out[i] = models.Player{
			ID:        g.id(),
			TeamID:    team.ID,
			Name:      firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))],
			CreatedAt: g.opts.Now,
		}
	}
	g.squads[team.ID] = out
	return out
}

// pairings schedules a single round robin with the circle method. With an
// odd team count, -1 marks the bye slot.
func pairings(n int) [][][2]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n%2 == 1 {
		idx = append(idx, -1)
	}
	size := len(idx)

	rounds := make([][][2]int, 0, size-1)
	for r := 0; r < size-1; r++ {
		var round [][2]int
		for i := 0; i < size/2; i++ {
			home, away := idx[i], idx[size-1-i]
			if home < 0 || away < 0 {
				continue
			}
			if r%2 == 1 {
				home, away = away, home
			}
			round = append(round, [2]int{home, away})
		}
		rounds = append(rounds, round)
		// rotate every slot but the first
		last := idx[size-1]
		copy(idx[2:], idx[1:size-1])
		idx[1] = last
	}
	return rounds
}

func (g *generator) fixtures(season models.Season, teams []models.Team) []models.Match {
	single := pairings(len(teams))
	start := firstSaturday(season.Year)

	var out []models.Match
	week := 0
	for leg := 0; leg < g.opts.RoundRobin; leg++ {
		for _, round := range single {
			playedAt := start.AddDate(0, 0, 7*week)
			for _, pair := range round {
				home, away := teams[pair[0]], teams[pair[1]]
				if leg%2 == 1 {
					home, away = away, home
				}
				out = append(out, g.match(season, home, away, playedAt))
			}
			week++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayedAt.Before(out[j].PlayedAt) })
	return out
}

func firstSaturday(year int) time.Time {
	d := time.Date(year, time.March, 1, kickoffHourUTC, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func (g *generator) match(season models.Season, home, away models.Team, playedAt time.Time) models.Match {
	m := models.Match{
		ID:         g.id(),
		SeasonID:   season.ID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		PlayedAt:   playedAt,
		CreatedAt:  g.opts.Now,
	}
	if playedAt.After(g.opts.Now) {
		return m
	}

	m.IsFinished = true
	m.HomeScore = g.goals(g.strength[home.ID] + homeAdvantage)
	m.AwayScore = g.goals(g.strength[away.ID])

	var events []models.MatchEvent
	events = append(events, g.goalEvents(m.ID, home.ID, m.HomeScore)...)
	events = append(events, g.goalEvents(m.ID, away.ID, m.AwayScore)...)
	events = append(events, g.cardEvents(m.ID, home.ID)...)
	events = append(events, g.cardEvents(m.ID, away.ID)...)
	sort.SliceStable(events, func(i, j int) bool { return *events[i].Minute < *events[j].Minute })
	m.Events = events
	return m
}

// goals rolls maxChances scoring chances weighted by strength.
func (g *generator) goals(strength int) int {
	n := 0
	for i := 0; i < maxChances; i++ {
		if g.rng.Intn(chanceDivisor) < strength {
			n++
		}
	}
	return n
}

func (g *generator) minute() *int {
	return pointer.Int(1 + g.rng.Intn(matchMinutes))
}

// goalEvents credits each goal to a squad member. Assists are recorded
// either on the goal or as a separate ASSIST event, never both.
func (g *generator) goalEvents(matchID, teamID uuid.UUID, goals int) []models.MatchEvent {
	squad := g.squads[teamID]
	var out []models.MatchEvent
	for i := 0; i < goals; i++ {
		scorer := squad[g.rng.Intn(len(squad))]
		ev := models.MatchEvent{
			ID:       g.id(),
			MatchID:  matchID,
			Type:     models.EventTypeGoal,
			PlayerID: scorer.ID,
			TeamID:   teamID,
			Minute:   g.minute(),
		}
		if len(squad) > 1 && g.rng.Intn(100) < assistRate {
			assistant := squad[g.rng.Intn(len(squad))]
			for assistant.ID == scorer.ID {
				assistant = squad[g.rng.Intn(len(squad))]
			}
			if g.rng.Intn(2) == 0 {
				ev.AssistantID = &assistant.ID
			} else {
				out = append(out, models.MatchEvent{
					ID:       g.id(),
					MatchID:  matchID,
					Type:     models.EventTypeAssist,
					PlayerID: assistant.ID,
					TeamID:   teamID,
					Minute:   pointer.Int(*ev.Minute),
				})
			}
		}
		out = append(out, ev)
	}
	return out
}

func (g *generator) cardEvents(matchID, teamID uuid.UUID) []models.MatchEvent {
	squad := g.squads[teamID]
	var out []models.MatchEvent
	add := func(t models.EventType) {
		out = append(out, models.MatchEvent{
			ID:       g.id(),
			MatchID:  matchID,
			Type:     t,
			PlayerID: squad[g.rng.Intn(len(squad))].ID,
			TeamID:   teamID,
			Minute:   g.minute(),
		})
	}
	if g.rng.Intn(100) < yellowRate {
		add(models.EventTypeYellowCard)
	}
	if g.rng.Intn(100) < redRate {
		add(models.EventTypeRedCard)
	}
	if g.rng.Intn(100) < yellowRate {
		add(models.EventTypeFoul)
	}
	return out
}
