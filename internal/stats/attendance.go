package stats

import "github.com/fortuna/rinkside/internal/store"

// AttendanceSource identifies where games-played data came from.
type AttendanceSource int

const (
	// RosterBased means attendance comes from GameRoster Present entries.
	// Authoritative: it covers players with no recorded actions.
	RosterBased AttendanceSource = iota
	// InferredFromEvents means attendance was reconstructed from event
	// appearances. Used only when no roster data exists at all; it
	// under-counts players who dressed but recorded nothing.
	InferredFromEvents
)

// Attendance maps players to the games they are credited with. Resolved once
// per computation so every aggregate uses the same source.
type Attendance struct {
	Source AttendanceSource
	games  map[string]map[string]struct{} // playerID -> set of gameIDs
}

// ResolveAttendance builds the attendance table. Roster entries win whenever
// any exist; the event-derived fallback incorporates primary and assist
// appearances, matching what the sheet can actually prove.
func ResolveAttendance(roster []*store.GameRosterEntry, events []*store.Event) *Attendance {
	if len(roster) > 0 {
		games := make(map[string]map[string]struct{})
		for _, entry := range roster {
			if !entry.Present() {
				continue
			}
			addGame(games, entry.PlayerID, entry.GameID)
		}
		return &Attendance{Source: RosterBased, games: games}
	}

	games := make(map[string]map[string]struct{})
	for _, event := range events {
		for _, id := range []string{event.PrimaryPlayerID, event.AssistPlayer1ID, event.AssistPlayer2ID} {
			if id == "" {
				continue
			}
			addGame(games, id, event.GameID)
		}
	}
	return &Attendance{Source: InferredFromEvents, games: games}
}

// GameIDs returns the set of games the player is credited with. May be nil.
func (a *Attendance) GameIDs(playerID string) map[string]struct{} {
	return a.games[playerID]
}

// GamesPlayed returns the count of games the player is credited with.
func (a *Attendance) GamesPlayed(playerID string) int {
	return len(a.games[playerID])
}

func addGame(games map[string]map[string]struct{}, playerID, gameID string) {
	set, ok := games[playerID]
	if !ok {
		set = make(map[string]struct{})
		games[playerID] = set
	}
	set[gameID] = struct{}{}
}
