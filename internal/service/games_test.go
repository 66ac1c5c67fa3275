package service

import (
	"testing"

	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
)

func TestTeamGameSummary(t *testing.T) {
	svc := &GamesService{ourTeamID: "your_team"}

	events := []*store.Event{
		{EventType: stats.EventShot, Team: "your_team"},
		{EventType: stats.EventShot, Team: "your_team"},
		{EventType: stats.EventShot, Team: "ice hawks"},
		{EventType: stats.EventGoal, IsGoal: true, Team: "your_team", IsPowerPlay: true},
		{EventType: stats.EventGoal, IsGoal: true, Team: "ice hawks", IsShortHanded: true},
		{EventType: stats.EventPenalty, Team: "your_team", PenaltyDuration: 2},
		{EventType: stats.EventPenalty, Team: "ice hawks", PenaltyDuration: 2},
		{EventType: stats.EventPowerPlay, Team: "your_team"},
		{EventType: stats.EventPowerPlay, Team: "your_team"},
	}

	summary := svc.teamGameSummary(events)

	// 2 shot events plus the goal
	if summary.Shots != 3 {
		t.Errorf("Shots = %d, want 3", summary.Shots)
	}
	if summary.PenaltyMinutes != 2 {
		t.Errorf("PenaltyMinutes = %d, want 2", summary.PenaltyMinutes)
	}
	if summary.PowerPlayOpportunities != 2 {
		t.Errorf("PowerPlayOpportunities = %d, want 2", summary.PowerPlayOpportunities)
	}
	if summary.PowerPlayGoals != 1 {
		t.Errorf("PowerPlayGoals = %d, want 1", summary.PowerPlayGoals)
	}
	if summary.PowerPlayPct != 0.5 {
		t.Errorf("PowerPlayPct = %v, want 0.5", summary.PowerPlayPct)
	}
	if summary.ShortHandedGoalsAgainst != 1 {
		t.Errorf("ShortHandedGoalsAgainst = %d, want 1", summary.ShortHandedGoalsAgainst)
	}
}

// Opportunities come from PowerPlay event rows, never from opponent
// penalties; a game recorded that way must not report 0 opportunities.
func TestTeamGameSummaryPowerPlayEventRows(t *testing.T) {
	svc := &GamesService{ourTeamID: "your_team"}

	events := []*store.Event{
		{EventType: stats.EventPowerPlay, Team: "your_team"},
		{EventType: stats.EventPowerPlay, Team: "your_team"},
		{EventType: stats.EventGoal, IsGoal: true, Team: "your_team", IsPowerPlay: true},
		{EventType: stats.EventPenalty, Team: "ice hawks", PenaltyDuration: 2},
	}

	summary := svc.teamGameSummary(events)

	if summary.PowerPlayOpportunities != 2 {
		t.Errorf("PowerPlayOpportunities = %d, want 2", summary.PowerPlayOpportunities)
	}
	if summary.PowerPlayGoals != 1 {
		t.Errorf("PowerPlayGoals = %d, want 1", summary.PowerPlayGoals)
	}
	if summary.PowerPlayPct != 0.5 {
		t.Errorf("PowerPlayPct = %v, want 0.5", summary.PowerPlayPct)
	}
}

func TestTeamGameSummaryNoEvents(t *testing.T) {
	svc := &GamesService{ourTeamID: "your_team"}
	summary := svc.teamGameSummary(nil)

	if summary.PowerPlayPct != 0 || summary.Shots != 0 {
		t.Errorf("empty game summary = %+v, want zeros", summary)
	}
}
