package stats

import "github.com/fortuna/rinkside/internal/store"

// GoalieTotals holds season netminding stats for one goalie.
type GoalieTotals struct {
	PlayerID     string  `json:"player_id"`
	GamesPlayed  int     `json:"games_played"`
	GoalsAgainst int     `json:"goals_against"`
	ShotsFaced   int     `json:"shots_faced"`
	Wins         int     `json:"wins"`
	Shutouts     int     `json:"shutouts"`
	GAA          float64 `json:"gaa"`
	SavePct      float64 `json:"save_pct"`
}

// AggregateGoalieStats computes goaltending stats. The goalie is credited
// with a game when they appear as the primary actor in any of its events.
// For each credited game: goals against come from opponent goal events,
// shots faced from opponent Shot-or-Goal events, a win from the game's
// computed Result, a shutout from an opponent-goal count of exactly zero.
// GAA and save percentage guard their zero denominators.
func AggregateGoalieStats(goalie *store.Player, games []*store.Game, events []*store.Event, ourTeamID string) *GoalieTotals {
	ourTeamID = NormalizeTeam(ourTeamID)
	totals := &GoalieTotals{PlayerID: goalie.PlayerID}

	eventsByGame := make(map[string][]*store.Event)
	for _, event := range events {
		eventsByGame[event.GameID] = append(eventsByGame[event.GameID], event)
	}

	for _, game := range games {
		gameEvents := eventsByGame[game.GameID]

		played := false
		for _, event := range gameEvents {
			if event.PrimaryPlayerID == goalie.PlayerID {
				played = true
				break
			}
		}
		if !played {
			continue
		}

		totals.GamesPlayed++

		goalsAgainst := 0
		for _, event := range gameEvents {
			if NormalizeTeam(event.Team) == ourTeamID {
				continue
			}
			if event.IsGoal {
				goalsAgainst++
			}
			if event.EventType == EventShot || event.EventType == EventGoal {
				totals.ShotsFaced++
			}
		}
		totals.GoalsAgainst += goalsAgainst

		if game.Result == ResultWin {
			totals.Wins++
		}
		if goalsAgainst == 0 {
			totals.Shutouts++
		}
	}

	totals.GAA = safeDiv(float64(totals.GoalsAgainst), float64(totals.GamesPlayed))
	totals.SavePct = safeDiv(float64(totals.ShotsFaced-totals.GoalsAgainst), float64(totals.ShotsFaced))

	return totals
}
