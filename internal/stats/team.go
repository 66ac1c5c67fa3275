package stats

import "github.com/fortuna/rinkside/internal/store"

// TeamTotals is the season record rolled up from computed game results.
type TeamTotals struct {
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Ties             int     `json:"ties"`
	Points           int     `json:"points"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	GoalDifferential int     `json:"goal_differential"`
	WinPct           float64 `json:"win_pct"`
}

// AggregateTeamStats rolls games into a team record. Games must already have
// Result/GoalsFor/GoalsAgainst populated by CalculateGameResults. Points are
// 2 per win, 1 per tie. An empty game table yields all zeros, including
// WinPct; never a division by zero.
func AggregateTeamStats(games []*store.Game) *TeamTotals {
	totals := &TeamTotals{}

	for _, game := range games {
		switch game.Result {
		case ResultWin:
			totals.Wins++
		case ResultLoss:
			totals.Losses++
		case ResultTie:
			totals.Ties++
		}
		totals.GoalsFor += game.GoalsFor
		totals.GoalsAgainst += game.GoalsAgainst
	}

	totals.Points = totals.Wins*2 + totals.Ties
	totals.GoalDifferential = totals.GoalsFor - totals.GoalsAgainst

	played := totals.Wins + totals.Losses + totals.Ties
	totals.WinPct = safeDiv(float64(totals.Wins), float64(played))

	return totals
}

// safeDiv performs division with zero check
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
