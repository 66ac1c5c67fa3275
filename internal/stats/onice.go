package stats

import (
	"strings"

	"github.com/fortuna/rinkside/internal/store"
)

// idPrefix is the token the sheet prepends to player identifiers. Stripped
// everywhere so "player_7" and "7" compare equal.
const idPrefix = "player_"

// NormalizeID canonicalizes a player or game identifier: trim whitespace,
// strip the sheet's prefix token. Empty input stays an empty string so
// equality checks remain total.
func NormalizeID(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), idPrefix)
}

// NormalizeTeam canonicalizes a team side tag for comparison.
func NormalizeTeam(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseOnIceList parses the delimited on-ice player list attached to a goal
// event into normalized player IDs. Blank or missing input yields nil,
// contributing nothing. This is the one parsing contract for the field; every
// aggregator that needs on-ice membership goes through here.
func ParseOnIceList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := NormalizeID(part)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// PlusMinus computes plus/minus for every rostered player over the given
// events. Processed once per goal event: each our-team player in that event's
// on-ice list gets +1 if our team scored, -1 otherwise. Players absent from
// the list are untouched by that goal. Game-level and season-level callers use
// this same function over different event subsets, so the two scopes can never
// drift apart.
func PlusMinus(events []*store.Event, ourPlayerIDs map[string]struct{}, ourTeamID string) map[string]int {
	ourTeamID = NormalizeTeam(ourTeamID)

	pm := make(map[string]int)
	for _, event := range events {
		if !event.IsGoal {
			continue
		}

		modifier := -1
		if NormalizeTeam(event.Team) == ourTeamID {
			modifier = 1
		}

		for _, playerID := range ParseOnIceList(event.PlayersOnIce) {
			if _, ok := ourPlayerIDs[playerID]; !ok {
				continue
			}
			pm[playerID] += modifier
		}
	}

	return pm
}
