package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
	"github.com/fortuna/rinkside/internal/store/repository"
)

// BoxScore is the per-game breakdown: the computed game line, each attending
// player's single-game totals, and the team summary.
type BoxScore struct {
	Game        *store.Game        `json:"game"`
	PlayerLines []*stats.PlayerRow `json:"player_lines"`
	TeamSummary *TeamGameSummary   `json:"team_summary"`
}

// TeamGameSummary rolls one game's events into team-level numbers. A
// power-play opportunity is a PowerPlay event row; the percentage guards its
// zero denominator.
type TeamGameSummary struct {
	Shots                   int     `json:"shots"`
	PenaltyMinutes          int     `json:"penalty_minutes"`
	PowerPlayGoals          int     `json:"power_play_goals"`
	PowerPlayOpportunities  int     `json:"power_play_opportunities"`
	PowerPlayPct            float64 `json:"power_play_pct"`
	PowerPlayGoalsAgainst   int     `json:"power_play_goals_against"`
	ShortHandedGoals        int     `json:"short_handed_goals"`
	ShortHandedGoalsAgainst int     `json:"short_handed_goals_against"`
}

// TimelineEntry is one event in chronological order with the scorer resolved
// to a display name where possible.
type TimelineEntry struct {
	Event       *store.Event `json:"event"`
	PlayerName  string       `json:"player_name,omitempty"`
	AssistNames []string     `json:"assist_names,omitempty"`
}

// GamesService handles game-level queries: schedule, box scores, timelines.
type GamesService struct {
	playerRepo *repository.PlayerRepository
	gameRepo   *repository.GameRepository
	eventRepo  *repository.EventRepository
	rosterRepo *repository.RosterRepository

	ourTeamID string
}

// NewGamesService creates a new games service
func NewGamesService(db *store.Database, ourTeamID string) *GamesService {
	return &GamesService{
		playerRepo: repository.NewPlayerRepository(db),
		gameRepo:   repository.NewGameRepository(db),
		eventRepo:  repository.NewEventRepository(db),
		rosterRepo: repository.NewRosterRepository(db),
		ourTeamID:  stats.NormalizeTeam(ourTeamID),
	}
}

// ListGames returns all games with computed results, newest first.
func (s *GamesService) ListGames(ctx context.Context) ([]*store.Game, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	return stats.CalculateGameResults(games, events, s.ourTeamID), nil
}

// GetGame returns one game with its computed result.
func (s *GamesService) GetGame(ctx context.Context, gameID string) (*store.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}
	events, err := s.eventRepo.GetByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game events: %w", err)
	}

	stats.CalculateGameResults([]*store.Game{game}, events, s.ourTeamID)
	return game, nil
}

// GetBoxScore builds the full per-game breakdown.
func (s *GamesService) GetBoxScore(ctx context.Context, gameID string) (*BoxScore, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game events: %w", err)
	}
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	roster, err := s.rosterRepo.GetByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game roster: %w", err)
	}

	attendance := stats.ResolveAttendance(roster, events)
	idSet := stats.PlayerIDSet(players)
	scope := stats.SingleGame(gameID)

	var lines []*stats.PlayerRow
	for _, player := range players {
		if _, attended := attendance.GameIDs(player.PlayerID)[gameID]; !attended {
			continue
		}
		totals := stats.AggregatePlayerStats(player, events, scope, s.ourTeamID, idSet)
		totals.GamesPlayed = 1
		lines = append(lines, &stats.PlayerRow{Player: player, Totals: totals})
	}

	return &BoxScore{
		Game:        game,
		PlayerLines: lines,
		TeamSummary: s.teamGameSummary(events),
	}, nil
}

// GetTimeline returns the game's events in period-then-time order with
// player names resolved.
func (s *GamesService) GetTimeline(ctx context.Context, gameID string) ([]*TimelineEntry, error) {
	events, err := s.eventRepo.GetByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game events: %w", err)
	}
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.PlayerID] = p.FullName()
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Period != events[j].Period {
			return events[i].Period < events[j].Period
		}
		return events[i].Time < events[j].Time
	})

	timeline := make([]*TimelineEntry, 0, len(events))
	for _, event := range events {
		// Rows with no placement in the game are kept in aggregates but
		// cannot be ordered, so they stay off the timeline.
		if event.Period == "" && event.Time == "" {
			continue
		}
		entry := &TimelineEntry{
			Event:      event,
			PlayerName: names[event.PrimaryPlayerID],
		}
		for _, id := range []string{event.AssistPlayer1ID, event.AssistPlayer2ID} {
			if name, ok := names[id]; ok && id != "" {
				entry.AssistNames = append(entry.AssistNames, name)
			}
		}
		timeline = append(timeline, entry)
	}
	return timeline, nil
}

func (s *GamesService) teamGameSummary(events []*store.Event) *TeamGameSummary {
	summary := &TeamGameSummary{}
	for _, event := range events {
		ours := stats.NormalizeTeam(event.Team) == s.ourTeamID

		switch event.EventType {
		case stats.EventShot:
			if ours {
				summary.Shots++
			}
		case stats.EventPenalty:
			if ours {
				summary.PenaltyMinutes += event.PenaltyDuration
			}
		case stats.EventPowerPlay:
			summary.PowerPlayOpportunities++
		}

		if ours && event.EventType == stats.EventGoal {
			summary.Shots++
		}

		if !event.IsGoal {
			continue
		}
		switch {
		case event.IsPowerPlay && ours:
			summary.PowerPlayGoals++
		case event.IsPowerPlay:
			summary.PowerPlayGoalsAgainst++
		case event.IsShortHanded && ours:
			summary.ShortHandedGoals++
		case event.IsShortHanded:
			summary.ShortHandedGoalsAgainst++
		}
	}

	if summary.PowerPlayOpportunities > 0 {
		summary.PowerPlayPct = float64(summary.PowerPlayGoals) / float64(summary.PowerPlayOpportunities)
	}
	return summary
}
