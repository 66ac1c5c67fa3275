package service

import (
	"testing"

	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
)

func seasonSnapshot() *Snapshot {
	return &Snapshot{
		Players: []*store.Player{
			{PlayerID: "10", FirstName: "Alex", LastName: "Moreau", Position: "Forward"},
			{PlayerID: "7", FirstName: "Sam", LastName: "Larsson", Position: "Defense"},
			{PlayerID: "30", FirstName: "Nils", LastName: "Berg", Position: "Goalie"},
		},
		Games: []*store.Game{
			{GameID: "g1", Date: "2024-11-02", Opponent: "Ice Hawks"},
			{GameID: "g2", Date: "2024-11-09", Opponent: "Polar Kings"},
		},
		Events: []*store.Event{
			{GameID: "g1", EventType: stats.EventGoal, IsGoal: true, Team: "your_team",
				PrimaryPlayerID: "10", AssistPlayer1ID: "7", PlayersOnIce: "player_10, player_7"},
			{GameID: "g1", EventType: "Save", Team: "your_team", PrimaryPlayerID: "30"},
			{GameID: "g2", EventType: stats.EventGoal, IsGoal: true, Team: "polar kings",
				PlayersOnIce: "player_7"},
			{GameID: "g2", EventType: "Save", Team: "your_team", PrimaryPlayerID: "30"},
		},
		Roster: []*store.GameRosterEntry{
			{GameID: "g1", PlayerID: "10", Status: store.StatusPresent},
			{GameID: "g1", PlayerID: "7", Status: store.StatusPresent},
			{GameID: "g1", PlayerID: "30", Status: store.StatusPresent},
			{GameID: "g2", PlayerID: "7", Status: store.StatusPresent},
			{GameID: "g2", PlayerID: "30", Status: store.StatusPresent},
		},
	}
}

func TestComputeSeasonSummary(t *testing.T) {
	svc := &StatsService{ourTeamID: "your_team"}
	summary := svc.ComputeSeasonSummary(seasonSnapshot())

	if summary.Team.Wins != 1 || summary.Team.Losses != 1 || summary.Team.Ties != 0 {
		t.Errorf("record = %d-%d-%d, want 1-1-0",
			summary.Team.Wins, summary.Team.Losses, summary.Team.Ties)
	}
	if summary.Team.Points != 2 {
		t.Errorf("team points = %d, want 2", summary.Team.Points)
	}
	if summary.Attendance != "roster" {
		t.Errorf("attendance source = %q, want roster", summary.Attendance)
	}

	if len(summary.Players) != 3 {
		t.Fatalf("expected 3 player rows, got %d", len(summary.Players))
	}
	// rows sort by points descending; 10 and 7 both have 1 point, input
	// order holds before the goalie's zero
	byID := make(map[string]*stats.PlayerTotals)
	for _, row := range summary.Players {
		byID[row.Player.PlayerID] = row.Totals
	}
	if byID["10"].Goals != 1 || byID["10"].GamesPlayed != 1 {
		t.Errorf("player 10 = %+v, want 1 goal over 1 game", byID["10"])
	}
	if byID["7"].Assists != 1 || byID["7"].GamesPlayed != 2 || byID["7"].PlusMinus != 0 {
		t.Errorf("player 7 = %+v, want 1 assist, 2 games, even plus/minus", byID["7"])
	}

	if len(summary.Goalies) != 1 {
		t.Fatalf("expected 1 goalie line, got %d", len(summary.Goalies))
	}
	goalie := summary.Goalies[0].Totals
	if goalie.GamesPlayed != 2 || goalie.GoalsAgainst != 1 || goalie.Shutouts != 1 || goalie.Wins != 1 {
		t.Errorf("goalie = %+v, want 2 GP, 1 GA, 1 SO, 1 W", goalie)
	}
}

func TestComputeSeasonSummaryEmpty(t *testing.T) {
	svc := &StatsService{ourTeamID: "your_team"}
	summary := svc.ComputeSeasonSummary(&Snapshot{})

	if summary.Team.Points != 0 || summary.Team.WinPct != 0 {
		t.Errorf("empty season team totals = %+v, want zeros", summary.Team)
	}
	if len(summary.Players) != 0 || len(summary.Goalies) != 0 {
		t.Errorf("empty snapshot produced rows: %d players, %d goalies",
			len(summary.Players), len(summary.Goalies))
	}
}
