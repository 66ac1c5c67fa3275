package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/rinkside/internal/ingest/sheet"
	"github.com/fortuna/rinkside/internal/publisher"
	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
	"github.com/fortuna/rinkside/internal/store/repository"
)

// RefreshResult summarizes one completed refresh run.
type RefreshResult struct {
	Players     int       `json:"players"`
	Games       int       `json:"games"`
	Events      int       `json:"events"`
	RosterRows  int       `json:"roster_rows"`
	Duration    string    `json:"duration"`
	CompletedAt time.Time `json:"completed_at"`
}

// RefreshService runs the full ingest pipeline: fetch the published sheet,
// normalize, store, recompute game results and invalidate the snapshot cache.
type RefreshService struct {
	client *sheet.Client

	playerRepo *repository.PlayerRepository
	gameRepo   *repository.GameRepository
	eventRepo  *repository.EventRepository
	rosterRepo *repository.RosterRepository

	statsService *StatsService
	publisher    *publisher.RedisStreamPublisher
	ourTeamID    string
}

// NewRefreshService creates a new refresh service. publisher may be nil.
func NewRefreshService(client *sheet.Client, db *store.Database, statsService *StatsService, pub *publisher.RedisStreamPublisher, ourTeamID string) *RefreshService {
	return &RefreshService{
		client:       client,
		playerRepo:   repository.NewPlayerRepository(db),
		gameRepo:     repository.NewGameRepository(db),
		eventRepo:    repository.NewEventRepository(db),
		rosterRepo:   repository.NewRosterRepository(db),
		statsService: statsService,
		publisher:    pub,
		ourTeamID:    stats.NormalizeTeam(ourTeamID),
	}
}

// Refresh runs one full pipeline pass and returns its summary.
func (s *RefreshService) Refresh(ctx context.Context) (*RefreshResult, error) {
	start := time.Now()

	workbook, err := s.client.FetchWorkbook(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching workbook: %w", err)
	}

	players := sheet.ParsePlayers(workbook[sheet.SheetPlayers])
	games := sheet.ParseGames(workbook[sheet.SheetGames])
	roster := sheet.ParseGameRoster(workbook[sheet.SheetGameRoster])
	events, err := sheet.ParseEvents(workbook[sheet.SheetEvents])
	if err != nil {
		return nil, fmt.Errorf("normalizing events: %w", err)
	}

	// Results are derived before storage so the games table always holds
	// computed values, never whatever the sheet happened to carry.
	stats.CalculateGameResults(games, events, s.ourTeamID)

	for _, player := range players {
		if err := s.playerRepo.Upsert(ctx, player); err != nil {
			return nil, fmt.Errorf("storing player %s: %w", player.PlayerID, err)
		}
	}
	for _, game := range games {
		if err := s.gameRepo.Upsert(ctx, game); err != nil {
			return nil, fmt.Errorf("storing game %s: %w", game.GameID, err)
		}
	}
	if err := s.eventRepo.ReplaceAll(ctx, events); err != nil {
		return nil, fmt.Errorf("storing events: %w", err)
	}
	for _, entry := range roster {
		if err := s.rosterRepo.Upsert(ctx, entry); err != nil {
			return nil, fmt.Errorf("storing roster entry %s/%s: %w", entry.GameID, entry.PlayerID, err)
		}
	}

	s.statsService.InvalidateSummary(ctx)

	result := &RefreshResult{
		Players:     len(players),
		Games:       len(games),
		Events:      len(events),
		RosterRows:  len(roster),
		Duration:    time.Since(start).String(),
		CompletedAt: time.Now().UTC(),
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStatsRefreshed(ctx, result); err != nil {
			log.Printf("Failed to publish refresh notification: %v", err)
		}
		if err := s.publisher.PublishGameResults(ctx, games); err != nil {
			log.Printf("Failed to publish game results: %v", err)
		}
	}

	return result, nil
}
