package stats

import (
	"sort"

	"github.com/fortuna/rinkside/internal/store"
)

// PlayerRow pairs a player with their aggregated totals, the unit the
// leaderboards rank.
type PlayerRow struct {
	Player *store.Player `json:"player"`
	Totals *PlayerTotals `json:"totals"`
}

// Leaderboard sort categories.
const (
	CategoryGoals       = "Goals"
	CategoryAssists     = "Assists"
	CategoryPoints      = "Points"
	CategoryPlusMinus   = "PlusMinus"
	CategoryShots       = "Shots"
	CategoryPIM         = "PIM"
	CategoryGamesPlayed = "GamesPlayed"
)

// TopPlayers filters rows by position (empty means all), sorts descending by
// the category and returns the top limit rows. The sort is stable, so ties
// keep their insertion order. Fewer matching rows than limit is fine; an
// unknown category yields an empty result rather than an arbitrary order.
func TopPlayers(rows []*PlayerRow, category, position string, limit int) []*PlayerRow {
	key := categoryValue(category)
	if key == nil {
		return nil
	}

	filtered := make([]*PlayerRow, 0, len(rows))
	for _, row := range rows {
		if position != "" && row.Player.Position != position {
			continue
		}
		filtered = append(filtered, row)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return key(filtered[i].Totals) > key(filtered[j].Totals)
	})

	if limit >= 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func categoryValue(category string) func(*PlayerTotals) int {
	switch category {
	case CategoryGoals:
		return func(t *PlayerTotals) int { return t.Goals }
	case CategoryAssists:
		return func(t *PlayerTotals) int { return t.Assists }
	case CategoryPoints:
		return func(t *PlayerTotals) int { return t.Points }
	case CategoryPlusMinus:
		return func(t *PlayerTotals) int { return t.PlusMinus }
	case CategoryShots:
		return func(t *PlayerTotals) int { return t.Shots }
	case CategoryPIM:
		return func(t *PlayerTotals) int { return t.PenaltyMinutes }
	case CategoryGamesPlayed:
		return func(t *PlayerTotals) int { return t.GamesPlayed }
	default:
		return nil
	}
}
