package stats

import (
	"testing"

	"github.com/fortuna/rinkside/internal/store"
)

func TestCalculateGameResults(t *testing.T) {
	games := []*store.Game{
		{GameID: "g1", Opponent: "Ice Hawks"},
		{GameID: "g2", Opponent: "Polar Kings"},
		{GameID: "g3", Opponent: "Glacier FC", Result: "W", GoalsFor: 99},
	}
	events := []*store.Event{
		// g1: 1-0 win
		{GameID: "g1", EventType: EventGoal, IsGoal: true, Team: "your_team"},
		// g2: 1-2 loss
		{GameID: "g2", EventType: EventGoal, IsGoal: true, Team: "your_team"},
		{GameID: "g2", EventType: EventGoal, IsGoal: true, Team: "polar kings"},
		{GameID: "g2", EventType: EventGoal, IsGoal: true, Team: "polar kings"},
		// non-goal rows never score
		{GameID: "g1", EventType: EventShot, Team: "your_team"},
		{GameID: "g3", EventType: EventGoal, IsGoal: false, Team: "your_team"},
	}

	CalculateGameResults(games, events, "your_team")

	if games[0].Result != ResultWin || games[0].GoalsFor != 1 || games[0].GoalsAgainst != 0 {
		t.Errorf("g1 = %s %d-%d, want W 1-0", games[0].Result, games[0].GoalsFor, games[0].GoalsAgainst)
	}
	if games[1].Result != ResultLoss || games[1].GoalsFor != 1 || games[1].GoalsAgainst != 2 {
		t.Errorf("g2 = %s %d-%d, want L 1-2", games[1].Result, games[1].GoalsFor, games[1].GoalsAgainst)
	}
	// placeholder values on the input are overwritten, not preserved
	if games[2].Result != ResultTie || games[2].GoalsFor != 0 || games[2].GoalsAgainst != 0 {
		t.Errorf("g3 = %s %d-%d, want T 0-0", games[2].Result, games[2].GoalsFor, games[2].GoalsAgainst)
	}
}

func TestCalculateGameResultsNoEvents(t *testing.T) {
	games := []*store.Game{{GameID: "g1"}}

	CalculateGameResults(games, nil, "your_team")

	if games[0].Result != ResultTie || games[0].GoalsFor != 0 || games[0].GoalsAgainst != 0 {
		t.Errorf("empty season game = %s %d-%d, want T 0-0",
			games[0].Result, games[0].GoalsFor, games[0].GoalsAgainst)
	}
}

func TestCalculateGameResultsIdempotent(t *testing.T) {
	games := []*store.Game{{GameID: "g1"}}
	events := []*store.Event{
		{GameID: "g1", EventType: EventGoal, IsGoal: true, Team: "your_team"},
		{GameID: "g1", EventType: EventGoal, IsGoal: true, Team: "ice hawks"},
	}

	CalculateGameResults(games, events, "your_team")
	first := *games[0]
	CalculateGameResults(games, events, "your_team")

	if *games[0] != first {
		t.Errorf("second pass changed result: %+v vs %+v", *games[0], first)
	}
}
