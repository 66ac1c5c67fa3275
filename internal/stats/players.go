package stats

import "github.com/fortuna/rinkside/internal/store"

// Event type values the aggregators match on (post-normalization).
// EventPowerPlay marks the start of a power play, the unit the opportunity
// count is built from.
const (
	EventGoal      = "Goal"
	EventShot      = "Shot"
	EventPenalty   = "Penalty"
	EventPowerPlay = "PowerPlay"
)

// PlayerTotals holds counting stats for one player over some game subset.
type PlayerTotals struct {
	PlayerID       string `json:"player_id"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	Points         int    `json:"points"`
	Shots          int    `json:"shots"`
	PenaltyMinutes int    `json:"penalty_minutes"`
	PlusMinus      int    `json:"plus_minus"`
	GamesPlayed    int    `json:"games_played"`
}

// AggregatePlayerStats computes counting stats for one player over the given
// events, optionally restricted to a set of game IDs (nil means all games).
// ourPlayerIDs is the normalized roster of our team, needed for the plus/minus
// membership check. GamesPlayed is not filled here; it belongs to the
// attendance table, which the caller resolves once per computation.
//
// Assists are only credited on goals the player did not score: a row that
// lists the same ID as scorer and assist counts once, as a goal.
func AggregatePlayerStats(player *store.Player, events []*store.Event, gameIDs map[string]struct{}, ourTeamID string, ourPlayerIDs map[string]struct{}) *PlayerTotals {
	totals := &PlayerTotals{PlayerID: player.PlayerID}

	scoped := filterByGames(events, gameIDs)
	for _, event := range scoped {
		isPrimary := event.PrimaryPlayerID == player.PlayerID

		if event.IsGoal {
			if isPrimary {
				totals.Goals++
			} else if event.AssistPlayer1ID == player.PlayerID || event.AssistPlayer2ID == player.PlayerID {
				totals.Assists++
			}
		}

		if isPrimary {
			switch event.EventType {
			case EventShot:
				totals.Shots++
			case EventPenalty:
				totals.PenaltyMinutes += event.PenaltyDuration
			}
		}
	}

	totals.Points = totals.Goals + totals.Assists
	totals.PlusMinus = PlusMinus(scoped, ourPlayerIDs, ourTeamID)[player.PlayerID]

	return totals
}

// filterByGames returns the events belonging to the given game set. A nil set
// means no restriction. References to games missing from the set contribute
// nothing, so stale or misspelled game IDs on events are silently skipped.
func filterByGames(events []*store.Event, gameIDs map[string]struct{}) []*store.Event {
	if gameIDs == nil {
		return events
	}

	var scoped []*store.Event
	for _, event := range events {
		if _, ok := gameIDs[event.GameID]; ok {
			scoped = append(scoped, event)
		}
	}
	return scoped
}

// SingleGame is a convenience set for scoping an aggregation to one game.
func SingleGame(gameID string) map[string]struct{} {
	return map[string]struct{}{gameID: {}}
}

// PlayerIDSet builds the normalized membership set the plus/minus rule needs.
func PlayerIDSet(players []*store.Player) map[string]struct{} {
	set := make(map[string]struct{}, len(players))
	for _, p := range players {
		set[p.PlayerID] = struct{}{}
	}
	return set
}
