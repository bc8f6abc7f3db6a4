package stats

import (
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

func team(name, initials, color string) models.Team {
	return models.Team{ID: uuid.New(), Name: name, Initials: initials, Color: color}
}

func finished(seasonID uuid.UUID, home, away models.Team, homeScore, awayScore int, events ...models.MatchEvent) models.Match {
	return models.Match{
		ID:         uuid.New(),
		SeasonID:   seasonID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		IsFinished: true,
		Events:     events,
	}
}

func goal(scorer models.Player, assistant *models.Player) models.MatchEvent {
	ev := models.MatchEvent{ID: uuid.New(), Type: models.EventTypeGoal, PlayerID: scorer.ID, TeamID: scorer.TeamID}
	if assistant != nil {
		ev.AssistantID = &assistant.ID
	}
	return ev
}

func event(t models.EventType, p models.Player) models.MatchEvent {
	return models.MatchEvent{ID: uuid.New(), Type: t, PlayerID: p.ID, TeamID: p.TeamID}
}

func player(name string, t models.Team) models.Player {
	return models.Player{ID: uuid.New(), TeamID: t.ID, Name: name}
}
