package stats

import (
	"testing"

	"github.com/fortuna/rinkside/internal/store"
)

func TestAggregateTeamStats(t *testing.T) {
	games := []*store.Game{
		{GameID: "g1", Result: ResultWin, GoalsFor: 4, GoalsAgainst: 1},
		{GameID: "g2", Result: ResultLoss, GoalsFor: 2, GoalsAgainst: 3},
		{GameID: "g3", Result: ResultWin, GoalsFor: 1, GoalsAgainst: 0},
		{GameID: "g4", Result: ResultTie, GoalsFor: 2, GoalsAgainst: 2},
	}

	totals := AggregateTeamStats(games)

	if totals.Wins != 2 || totals.Losses != 1 || totals.Ties != 1 {
		t.Errorf("W-L-T = %d-%d-%d, want 2-1-1", totals.Wins, totals.Losses, totals.Ties)
	}
	if totals.Points != 5 {
		t.Errorf("Points = %d, want 5 (2 per win, 1 per tie)", totals.Points)
	}
	if totals.GoalsFor != 9 || totals.GoalsAgainst != 6 || totals.GoalDifferential != 3 {
		t.Errorf("GF/GA/diff = %d/%d/%d, want 9/6/3",
			totals.GoalsFor, totals.GoalsAgainst, totals.GoalDifferential)
	}
	if totals.WinPct != 0.5 {
		t.Errorf("WinPct = %v, want 0.5", totals.WinPct)
	}
}

func TestAggregateTeamStatsEmpty(t *testing.T) {
	totals := AggregateTeamStats(nil)

	if totals.Points != 0 || totals.WinPct != 0 {
		t.Errorf("empty season totals = %+v, want all zeros", totals)
	}
}
