package stats

import "github.com/fortuna/rinkside/internal/store"

// Game result values.
const (
	ResultWin  = "W"
	ResultLoss = "L"
	ResultTie  = "T"
)

// CalculateGameResults derives Result, GoalsFor and GoalsAgainst for every
// game from its goal events. Goal events are partitioned by side: Team equal
// to ourTeamID counts for us, anything else counts against. Any placeholder
// values on the input games are overwritten: a game with no goal events comes
// out 0-0 "T", never "unknown". Idempotent: recomputing over the same inputs
// yields the same table.
func CalculateGameResults(games []*store.Game, events []*store.Event, ourTeamID string) []*store.Game {
	ourTeamID = NormalizeTeam(ourTeamID)

	type tally struct {
		ours, theirs int
	}
	goals := make(map[string]tally, len(games))
	for _, event := range events {
		if !event.IsGoal {
			continue
		}
		t := goals[event.GameID]
		if NormalizeTeam(event.Team) == ourTeamID {
			t.ours++
		} else {
			t.theirs++
		}
		goals[event.GameID] = t
	}

	for _, game := range games {
		t := goals[game.GameID]
		game.GoalsFor = t.ours
		game.GoalsAgainst = t.theirs

		switch {
		case t.ours > t.theirs:
			game.Result = ResultWin
		case t.ours < t.theirs:
			game.Result = ResultLoss
		default:
			game.Result = ResultTie
		}
	}

	return games
}
