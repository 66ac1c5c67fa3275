package sheet

import (
	"errors"
	"testing"
)

func TestParseEventsNormalizesFields(t *testing.T) {
	rows := []Row{
		{
			"GameID":               "g1",
			"EventType":            "  goal ",
			"Team":                 " Your_Team ",
			"PrimaryPlayerID":      "player_10",
			"AssistPlayer1ID":      " player_7 ",
			"IsGoal":               "YES",
			"IsPowerPlay":          "maybe",
			"PenaltyDuration":      "2.0",
			"YourTeamPlayersOnIce": "player_10, player_7",
			"Time":                 "12:30",
		},
	}

	events, err := ParseEvents(rows)
	if err != nil {
		t.Fatalf("ParseEvents returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.EventType != "Goal" {
		t.Errorf("EventType = %q, want %q", e.EventType, "Goal")
	}
	if e.Team != "your_team" {
		t.Errorf("Team = %q, want %q", e.Team, "your_team")
	}
	if e.PrimaryPlayerID != "10" {
		t.Errorf("PrimaryPlayerID = %q, want %q", e.PrimaryPlayerID, "10")
	}
	if e.AssistPlayer1ID != "7" {
		t.Errorf("AssistPlayer1ID = %q, want %q", e.AssistPlayer1ID, "7")
	}
	if !e.IsGoal {
		t.Error("IsGoal = false, want true for \"YES\"")
	}
	if e.IsPowerPlay {
		t.Error("IsPowerPlay = true, want false for unrecognized token")
	}
	if e.PenaltyDuration != 2 {
		t.Errorf("PenaltyDuration = %d, want 2", e.PenaltyDuration)
	}
}

func TestParseEventsPowerPlaySpellings(t *testing.T) {
	rows := []Row{
		{"GameID": "g1", "EventType": "PowerPlay"},
		{"GameID": "g1", "EventType": "powerplay"},
		{"GameID": "g1", "EventType": "Power Play"},
		{"GameID": "g1", "EventType": "Penalty"},
	}

	events, err := ParseEvents(rows)
	if err != nil {
		t.Fatalf("ParseEvents returned error: %v", err)
	}

	want := []string{"PowerPlay", "PowerPlay", "PowerPlay", "Penalty"}
	for i, w := range want {
		if events[i].EventType != w {
			t.Errorf("event %d EventType = %q, want %q", i, events[i].EventType, w)
		}
	}
}

func TestParseEventsMissingGameIDColumn(t *testing.T) {
	rows := []Row{{"EventType": "Goal"}}

	_, err := ParseEvents(rows)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParseEventsTimeFromTimestamp(t *testing.T) {
	rows := []Row{
		{"GameID": "g1", "EventType": "Shot", "Timestamp": "2024-11-02 19:05:33"},
		{"GameID": "g1", "EventType": "Shot", "Timestamp": "2024-11-02T08:15:00"},
		{"GameID": "g1", "EventType": "Shot", "Timestamp": "garbage"},
	}

	events, err := ParseEvents(rows)
	if err != nil {
		t.Fatalf("ParseEvents returned error: %v", err)
	}

	want := []string{"19:05", "08:15", ""}
	for i, w := range want {
		if events[i].Time != w {
			t.Errorf("event %d Time = %q, want %q", i, events[i].Time, w)
		}
	}
}

func TestParseGamesSynthesizesID(t *testing.T) {
	rows := []Row{
		{"Date": "2024-11-02", "Opponent": "Ice Hawks"},
		{"ID": "g9", "Date": "2024-11-09", "Opponent": "Polar Kings"},
		{},
	}

	games := ParseGames(rows)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].GameID != "2024-11-02_ice-hawks" {
		t.Errorf("synthesized GameID = %q, want %q", games[0].GameID, "2024-11-02_ice-hawks")
	}
	if games[1].GameID != "g9" {
		t.Errorf("GameID = %q, want %q", games[1].GameID, "g9")
	}
	if games[0].Result != "T" || games[0].GoalsFor != 0 {
		t.Errorf("scaffold result = %q %d-%d, want T 0-0",
			games[0].Result, games[0].GoalsFor, games[0].GoalsAgainst)
	}
}

func TestParsePlayersDefaults(t *testing.T) {
	rows := []Row{
		{"ID": "player_12", "JerseyNumber": "12", "Position": "Forward"},
		{"ID": "3", "FirstName": "Sam", "LastName": "Larsson"},
		{"ID": ""},
	}

	players := ParsePlayers(rows)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].PlayerID != "12" {
		t.Errorf("PlayerID = %q, want %q", players[0].PlayerID, "12")
	}
	if players[0].FirstName != "Player" || players[0].LastName != "#12" {
		t.Errorf("default name = %q %q, want Player #12",
			players[0].FirstName, players[0].LastName)
	}
	if players[1].FullName() != "Sam Larsson" {
		t.Errorf("FullName = %q, want %q", players[1].FullName(), "Sam Larsson")
	}
}

func TestParseGameRoster(t *testing.T) {
	rows := []Row{
		{"GameID": "g1", "PlayerID": "player_5", "Status": "present"},
		{"GameID": "g1", "PlayerID": "6", "Status": ""},
		{"GameID": "", "PlayerID": "7", "Status": "Present"},
	}

	entries := ParseGameRoster(rows)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].PlayerID != "5" || entries[0].Status != "Present" {
		t.Errorf("entry 0 = %+v, want PlayerID 5 Status Present", entries[0])
	}
	if !entries[0].Present() {
		t.Error("entry 0 Present() = false, want true")
	}
	if entries[1].Status != "Absent" {
		t.Errorf("blank status = %q, want Absent", entries[1].Status)
	}
}

func TestParseWorkbookGrid(t *testing.T) {
	html := `<html><body>
	<ul id="sheet-menu">
	  <li><a href="#100">Players</a></li>
	  <li><a href="#200">Events</a></li>
	</ul>
	<div id="100"><table class="waffle"><tbody>
	  <tr><th>1</th><td>ID</td><td>FirstName</td></tr>
	  <tr><th>2</th><td>player_5</td><td>Alex</td></tr>
	  <tr><th>3</th><td></td><td></td></tr>
	</tbody></table></div>
	<div id="200"><table class="waffle"><tbody>
	  <tr><th>1</th><td>GameID</td><td>EventType</td></tr>
	  <tr><th>2</th><td>g1</td><td>Goal</td></tr>
	</tbody></table></div>
	</body></html>`

	workbook, err := parseWorkbook(html)
	if err != nil {
		t.Fatalf("parseWorkbook returned error: %v", err)
	}

	players, ok := workbook[SheetPlayers]
	if !ok {
		t.Fatal("Players worksheet missing")
	}
	if len(players) != 1 {
		t.Fatalf("expected 1 player row, got %d", len(players))
	}
	if players[0]["ID"] != "player_5" || players[0]["FirstName"] != "Alex" {
		t.Errorf("player row = %v", players[0])
	}

	events := workbook[SheetEvents]
	if len(events) != 1 || events[0]["GameID"] != "g1" {
		t.Errorf("events rows = %v", events)
	}
}
