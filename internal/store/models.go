package store

import "time"

// Player is reference data loaded once from the Players worksheet and never
// mutated by the aggregation engine. PlayerID is the normalized form: trimmed,
// "player_" prefix stripped.
type Player struct {
	PlayerID     string    `json:"player_id" db:"player_id"`
	JerseyNumber string    `json:"jersey_number" db:"jersey_number"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Position     string    `json:"position" db:"position"` // "Forward", "Defense", "Goalie"
	TeamID       string    `json:"team_id" db:"team_id"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// FullName returns the display name the dashboard uses.
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Game is one scheduled game. Result, GoalsFor and GoalsAgainst are derived
// fields: the source sheet may carry placeholders but they are always
// recomputed from goal events and never trusted as loaded.
type Game struct {
	GameID       string    `json:"game_id" db:"game_id"`
	Date         string    `json:"date" db:"game_date"`
	Opponent     string    `json:"opponent" db:"opponent"`
	Result       string    `json:"result" db:"result"` // "W", "L", "T"
	GoalsFor     int       `json:"goals_for" db:"goals_for"`
	GoalsAgainst int       `json:"goals_against" db:"goals_against"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Event is the atomic fact: one row of the Events worksheet after
// normalization. Events are append-only; aggregates are derived from them and
// they are never rewritten. PlayersOnIce keeps the raw delimited list; the
// stats package owns the single parsing contract for it.
type Event struct {
	EventID         int    `json:"event_id,omitempty" db:"event_id"`
	GameID          string `json:"game_id" db:"game_id"`
	EventType       string `json:"event_type" db:"event_type"` // title case: "Goal", "Shot", ...
	Period          string `json:"period,omitempty" db:"period"`
	Time            string `json:"time,omitempty" db:"event_time"` // "HH:MM"
	Team            string `json:"team" db:"team"`                 // lower case side tag
	PrimaryPlayerID string `json:"primary_player_id" db:"primary_player_id"`
	AssistPlayer1ID string `json:"assist_player1_id,omitempty" db:"assist_player1_id"`
	AssistPlayer2ID string `json:"assist_player2_id,omitempty" db:"assist_player2_id"`
	IsGoal          bool   `json:"is_goal" db:"is_goal"`
	IsPowerPlay     bool   `json:"is_power_play" db:"is_power_play"`
	IsShortHanded   bool   `json:"is_short_handed" db:"is_short_handed"`
	PenaltyType     string `json:"penalty_type,omitempty" db:"penalty_type"`
	PenaltyDuration int    `json:"penalty_duration" db:"penalty_duration"`
	PlayersOnIce    string `json:"players_on_ice,omitempty" db:"players_on_ice"`
}

// Roster status values.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// GameRosterEntry ties a player to a game with an attendance status. Roster
// rows are authoritative for games-played; inferring attendance from events is
// only a fallback when no roster data exists at all.
type GameRosterEntry struct {
	GameID   string `json:"game_id" db:"game_id"`
	PlayerID string `json:"player_id" db:"player_id"`
	Status   string `json:"status" db:"status"`
}

// Present reports whether the entry credits the player with the game.
func (e *GameRosterEntry) Present() bool {
	return e.Status == StatusPresent
}
