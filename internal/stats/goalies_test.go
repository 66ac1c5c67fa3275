package stats

import (
	"math"
	"testing"

	"github.com/fortuna/rinkside/internal/store"
)

func TestAggregateGoalieStats(t *testing.T) {
	goalie := &store.Player{PlayerID: "30", Position: "Goalie"}
	games := []*store.Game{
		{GameID: "g1", Result: ResultWin},
		{GameID: "g2", Result: ResultLoss},
		{GameID: "g3", Result: ResultWin},
	}
	events := []*store.Event{
		// g1: goalie appears, faces 3 shots, 0 against -> shutout win
		{GameID: "g1", EventType: "Save", PrimaryPlayerID: "30", Team: "your_team"},
		{GameID: "g1", EventType: EventShot, Team: "ice hawks"},
		{GameID: "g1", EventType: EventShot, Team: "ice hawks"},
		{GameID: "g1", EventType: EventShot, Team: "ice hawks"},
		// g2: goalie appears, faces 2 shots and 1 goal
		{GameID: "g2", EventType: "Save", PrimaryPlayerID: "30", Team: "your_team"},
		{GameID: "g2", EventType: EventShot, Team: "polar kings"},
		{GameID: "g2", EventType: EventShot, Team: "polar kings"},
		{GameID: "g2", EventType: EventGoal, IsGoal: true, Team: "polar kings"},
		// g3: backup played, no appearance for 30
		{GameID: "g3", EventType: EventGoal, IsGoal: true, Team: "your_team", PrimaryPlayerID: "10"},
	}

	totals := AggregateGoalieStats(goalie, games, events, "your_team")

	if totals.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", totals.GamesPlayed)
	}
	if totals.GoalsAgainst != 1 {
		t.Errorf("GoalsAgainst = %d, want 1", totals.GoalsAgainst)
	}
	if totals.ShotsFaced != 6 {
		t.Errorf("ShotsFaced = %d, want 6", totals.ShotsFaced)
	}
	if totals.Wins != 1 {
		t.Errorf("Wins = %d, want 1", totals.Wins)
	}
	if totals.Shutouts != 1 {
		t.Errorf("Shutouts = %d, want 1", totals.Shutouts)
	}
	if totals.GAA != 0.5 {
		t.Errorf("GAA = %v, want 0.5", totals.GAA)
	}
	if math.Abs(totals.SavePct-5.0/6.0) > 1e-9 {
		t.Errorf("SavePct = %v, want %v", totals.SavePct, 5.0/6.0)
	}
}

func TestAggregateGoalieStatsNoAppearances(t *testing.T) {
	goalie := &store.Player{PlayerID: "30", Position: "Goalie"}
	games := []*store.Game{{GameID: "g1", Result: ResultWin}}

	totals := AggregateGoalieStats(goalie, games, nil, "your_team")

	if totals.GamesPlayed != 0 || totals.GAA != 0 || totals.SavePct != 0 {
		t.Errorf("idle goalie totals = %+v, want all zeros", totals)
	}
}
