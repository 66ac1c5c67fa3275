package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/fortuna/rinkside/internal/cache"
	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
	"github.com/fortuna/rinkside/internal/store/repository"
)

const seasonSummaryKey = "rinkside:season:summary"

// Snapshot is one consistent read of the whole season: every aggregate in a
// response is computed from the same four tables.
type Snapshot struct {
	Players []*store.Player
	Games   []*store.Game
	Events  []*store.Event
	Roster  []*store.GameRosterEntry
}

// SeasonSummary is the full computed season state served to the dashboard.
type SeasonSummary struct {
	Team       *stats.TeamTotals      `json:"team"`
	Players    []*stats.PlayerRow     `json:"players"`
	Goalies    []*GoalieLine          `json:"goalies"`
	Attendance string                 `json:"attendance_source"`
	ComputedAt time.Time              `json:"computed_at"`
}

// GoalieLine combines goalie info with their netminding totals.
type GoalieLine struct {
	Player *store.Player       `json:"player"`
	Totals *stats.GoalieTotals `json:"totals"`
}

// StatsService computes season-level statistics over the stored tables,
// with a Redis snapshot cache in front of the computation.
type StatsService struct {
	playerRepo *repository.PlayerRepository
	gameRepo   *repository.GameRepository
	eventRepo  *repository.EventRepository
	rosterRepo *repository.RosterRepository

	cache     *cache.RedisCache
	cacheTTL  time.Duration
	ourTeamID string
}

// NewStatsService creates a new stats service. cache may be nil, in which
// case every call recomputes.
func NewStatsService(db *store.Database, c *cache.RedisCache, cacheTTL time.Duration, ourTeamID string) *StatsService {
	return &StatsService{
		playerRepo: repository.NewPlayerRepository(db),
		gameRepo:   repository.NewGameRepository(db),
		eventRepo:  repository.NewEventRepository(db),
		rosterRepo: repository.NewRosterRepository(db),
		cache:      c,
		cacheTTL:   cacheTTL,
		ourTeamID:  stats.NormalizeTeam(ourTeamID),
	}
}

// OurTeamID returns the normalized side tag the engine compares against.
func (s *StatsService) OurTeamID() string {
	return s.ourTeamID
}

// LoadSnapshot reads all four tables in one pass.
func (s *StatsService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	roster, err := s.rosterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching game roster: %w", err)
	}

	return &Snapshot{Players: players, Games: games, Events: events, Roster: roster}, nil
}

// GetSeasonSummary returns the computed season state, served from cache when
// a fresh copy exists. Cache failures degrade to a recompute, never an error.
func (s *StatsService) GetSeasonSummary(ctx context.Context) (*SeasonSummary, error) {
	if s.cache != nil {
		var cached SeasonSummary
		err := s.cache.GetJSON(ctx, seasonSummaryKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("Season summary cache read failed: %v", err)
		}
	}

	snapshot, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.ComputeSeasonSummary(snapshot)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, seasonSummaryKey, summary, s.cacheTTL); err != nil {
			log.Printf("Season summary cache write failed: %v", err)
		}
	}
	return summary, nil
}

// ComputeSeasonSummary runs the full aggregation pipeline over one snapshot.
func (s *StatsService) ComputeSeasonSummary(snapshot *Snapshot) *SeasonSummary {
	games := stats.CalculateGameResults(snapshot.Games, snapshot.Events, s.ourTeamID)
	attendance := stats.ResolveAttendance(snapshot.Roster, snapshot.Events)
	idSet := stats.PlayerIDSet(snapshot.Players)

	rows := make([]*stats.PlayerRow, 0, len(snapshot.Players))
	var goalies []*GoalieLine
	for _, player := range snapshot.Players {
		totals := stats.AggregatePlayerStats(player, snapshot.Events, nil, s.ourTeamID, idSet)
		totals.GamesPlayed = attendance.GamesPlayed(player.PlayerID)
		rows = append(rows, &stats.PlayerRow{Player: player, Totals: totals})

		if player.Position == "Goalie" {
			goalies = append(goalies, &GoalieLine{
				Player: player,
				Totals: stats.AggregateGoalieStats(player, games, snapshot.Events, s.ourTeamID),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Totals.Points > rows[j].Totals.Points
	})

	source := "roster"
	if attendance.Source == stats.InferredFromEvents {
		source = "events"
	}

	return &SeasonSummary{
		Team:       stats.AggregateTeamStats(games),
		Players:    rows,
		Goalies:    goalies,
		Attendance: source,
		ComputedAt: time.Now().UTC(),
	}
}

// GetLeaderboard ranks the season player rows by category.
func (s *StatsService) GetLeaderboard(ctx context.Context, category, position string, limit int) ([]*stats.PlayerRow, error) {
	summary, err := s.GetSeasonSummary(ctx)
	if err != nil {
		return nil, err
	}

	top := stats.TopPlayers(summary.Players, category, position, limit)
	if top == nil {
		return nil, fmt.Errorf("unknown leaderboard category %q", category)
	}
	return top, nil
}

// InvalidateSummary drops the cached season summary. Called after a refresh
// writes new data so the next read recomputes.
func (s *StatsService) InvalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, seasonSummaryKey); err != nil {
		log.Printf("Season summary cache invalidation failed: %v", err)
	}
}
