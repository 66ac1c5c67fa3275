package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
)

// ErrMissingColumn reports a structurally required column absent from a
// worksheet. Every downstream join hangs off these columns, so this is the
// one normalization failure that is fatal; malformed cell values never are.
var ErrMissingColumn = errors.New("required column missing")

// Row is one worksheet record keyed by header name, as extracted from the
// published grid. All values are raw cell strings.
type Row map[string]string

// has reports whether the row's worksheet carried the column at all
// (a present-but-blank cell still counts as carried).
func (r Row) has(key string) bool {
	_, ok := r[key]
	return ok
}

// ParsePlayers normalizes Players worksheet rows into reference records.
// Missing name columns get the dashboard's defaults: FirstName "Player",
// LastName "#<jersey>" or "Unknown".
func ParsePlayers(rows []Row) []*store.Player {
	var players []*store.Player
	for _, row := range rows {
		id := stats.NormalizeID(row["ID"])
		if id == "" {
			continue
		}

		jersey := strings.TrimSpace(row["JerseyNumber"])

		firstName := strings.TrimSpace(row["FirstName"])
		if firstName == "" {
			firstName = "Player"
		}

		lastName := strings.TrimSpace(row["LastName"])
		if lastName == "" {
			if jersey != "" {
				lastName = "#" + jersey
			} else {
				lastName = "Unknown"
			}
		}

		players = append(players, &store.Player{
			PlayerID:     id,
			JerseyNumber: jersey,
			FirstName:    firstName,
			LastName:     lastName,
			Position:     strings.TrimSpace(row["Position"]),
			TeamID:       stats.NormalizeTeam(row["TeamID"]),
		})
	}
	return players
}

// ParseGames normalizes Games worksheet rows. Games without an ID column get
// a synthesized "<date>_<opponent>" identifier. Result/GoalsFor/GoalsAgainst
// are scaffold values pending CalculateGameResults; whatever the sheet
// carries in those columns is deliberately ignored.
func ParseGames(rows []Row) []*store.Game {
	var games []*store.Game
	for _, row := range rows {
		date := strings.TrimSpace(row["Date"])
		opponent := strings.TrimSpace(row["Opponent"])

		id := strings.TrimSpace(row["ID"])
		if id == "" {
			id = synthesizeGameID(date, opponent)
		}
		if id == "" {
			continue
		}

		games = append(games, &store.Game{
			GameID:       id,
			Date:         date,
			Opponent:     opponent,
			Result:       stats.ResultTie,
			GoalsFor:     0,
			GoalsAgainst: 0,
		})
	}
	return games
}

// ParseEvents normalizes Events worksheet rows. The GameID column is the one
// structural requirement: without it no event can join to a game, so its
// absence is surfaced as an error. Every per-cell problem recovers to a safe
// default and the row is still kept.
func ParseEvents(rows []Row) ([]*store.Event, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if !rows[0].has("GameID") {
		return nil, fmt.Errorf("events sheet: %w: GameID", ErrMissingColumn)
	}

	var events []*store.Event
	for _, row := range rows {
		event := &store.Event{
			GameID:          strings.TrimSpace(row["GameID"]),
			EventType:       parseEventType(row["EventType"]),
			Period:          strings.TrimSpace(row["Period"]),
			Team:            stats.NormalizeTeam(row["Team"]),
			PrimaryPlayerID: stats.NormalizeID(row["PrimaryPlayerID"]),
			AssistPlayer1ID: stats.NormalizeID(row["AssistPlayer1ID"]),
			AssistPlayer2ID: stats.NormalizeID(row["AssistPlayer2ID"]),
			IsGoal:          parseBool(row["IsGoal"]),
			IsPowerPlay:     parseBool(row["IsPowerPlay"]),
			IsShortHanded:   parseBool(row["IsShortHanded"]),
			PenaltyType:     strings.TrimSpace(row["PenaltyType"]),
			PenaltyDuration: parseMinutes(row["PenaltyDuration"]),
			PlayersOnIce:    strings.TrimSpace(row["YourTeamPlayersOnIce"]),
		}

		event.Time = strings.TrimSpace(row["Time"])
		if event.Time == "" {
			event.Time = timeFromTimestamp(row["Timestamp"])
		}

		events = append(events, event)
	}
	return events, nil
}

// ParseGameRoster normalizes GameRoster worksheet rows. Rows missing either
// key contribute nothing rather than producing dangling references.
func ParseGameRoster(rows []Row) []*store.GameRosterEntry {
	var entries []*store.GameRosterEntry
	for _, row := range rows {
		gameID := strings.TrimSpace(row["GameID"])
		playerID := stats.NormalizeID(row["PlayerID"])
		if gameID == "" || playerID == "" {
			continue
		}

		status := titleCase(row["Status"])
		if status == "" {
			status = store.StatusAbsent
		}

		entries = append(entries, &store.GameRosterEntry{
			GameID:   gameID,
			PlayerID: playerID,
			Status:   status,
		})
	}
	return entries
}

// parseBool maps the sheet's boolean spellings. Unrecognized tokens are
// false, never an error: a "maybe" in IsGoal excludes the event from goal
// aggregates but keeps the row.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "y":
		return true
	default:
		return false
	}
}

// parseMinutes reads a penalty duration in minutes. Accepts bare integers and
// float spellings ("2", "2.0"); anything unparseable is 0.
func parseMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// parseEventType canonicalizes an event type tag. Plain title-casing would
// split the camel-cased power-play tag from its one-word and two-word
// spellings, so those fold to the canonical form explicitly.
func parseEventType(raw string) string {
	tag := titleCase(raw)
	switch tag {
	case "Powerplay", "Power Play":
		return stats.EventPowerPlay
	}
	return tag
}

// titleCase folds a free-text tag to title case so "goal", "GOAL" and
// " Goal " all compare equal downstream.
func titleCase(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// timeFromTimestamp extracts "HH:MM" from a full timestamp cell, the fallback
// for worksheets that never grew a Time column. Expected shapes are
// "2024-11-02 19:05:00" or "2024-11-02T19:05:00"; anything else yields "".
func timeFromTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == 'T'
	})
	if len(fields) < 2 {
		return ""
	}

	clock := strings.Split(fields[1], ":")
	if len(clock) < 2 {
		return ""
	}
	return clock[0] + ":" + clock[1]
}

// synthesizeGameID builds the fallback game identifier for sheets without an
// ID column: date plus the opponent lowercased with spaces dashed.
func synthesizeGameID(date, opponent string) string {
	if date == "" && opponent == "" {
		return ""
	}
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(opponent)), " ", "-")
	return date + "_" + slug
}
