package service

import (
	"context"
	"fmt"

	"github.com/fortuna/rinkside/internal/stats"
	"github.com/fortuna/rinkside/internal/store"
	"github.com/fortuna/rinkside/internal/store/repository"
)

// GameLogEntry is one game's stat line in a player's game log.
type GameLogEntry struct {
	Game   *store.Game         `json:"game"`
	Totals *stats.PlayerTotals `json:"totals"`
}

// PlayerSeason is a player's season block: totals plus per-game rates.
type PlayerSeason struct {
	Player       *store.Player       `json:"player"`
	Totals       *stats.PlayerTotals `json:"totals"`
	GoalsPerGame float64             `json:"goals_per_game"`
}

// PlayersService handles player-level queries.
type PlayersService struct {
	playerRepo *repository.PlayerRepository
	gameRepo   *repository.GameRepository
	eventRepo  *repository.EventRepository
	rosterRepo *repository.RosterRepository

	ourTeamID string
}

// NewPlayersService creates a new players service
func NewPlayersService(db *store.Database, ourTeamID string) *PlayersService {
	return &PlayersService{
		playerRepo: repository.NewPlayerRepository(db),
		gameRepo:   repository.NewGameRepository(db),
		eventRepo:  repository.NewEventRepository(db),
		rosterRepo: repository.NewRosterRepository(db),
		ourTeamID:  stats.NormalizeTeam(ourTeamID),
	}
}

// ListPlayers returns the player reference table, optionally filtered by
// position (empty means all).
func (s *PlayersService) ListPlayers(ctx context.Context, position string) ([]*store.Player, error) {
	if position != "" {
		players, err := s.playerRepo.GetByPosition(ctx, position)
		if err != nil {
			return nil, fmt.Errorf("fetching players by position: %w", err)
		}
		return players, nil
	}

	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

// GetSeasonStats computes one player's season totals.
func (s *PlayersService) GetSeasonStats(ctx context.Context, playerID string) (*PlayerSeason, error) {
	playerID = stats.NormalizeID(playerID)

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	roster, err := s.rosterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching game roster: %w", err)
	}

	totals := stats.AggregatePlayerStats(player, events, nil, s.ourTeamID, stats.PlayerIDSet(players))
	totals.GamesPlayed = stats.ResolveAttendance(roster, events).GamesPlayed(playerID)

	season := &PlayerSeason{Player: player, Totals: totals}
	if totals.GamesPlayed > 0 {
		season.GoalsPerGame = float64(totals.Goals) / float64(totals.GamesPlayed)
	}
	return season, nil
}

// GetGameLog computes the player's per-game stat lines for every game they
// are credited with attending, newest first.
func (s *PlayersService) GetGameLog(ctx context.Context, playerID string) ([]*GameLogEntry, error) {
	playerID = stats.NormalizeID(playerID)

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}
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

	stats.CalculateGameResults(games, events, s.ourTeamID)
	attendance := stats.ResolveAttendance(roster, events)
	attended := attendance.GameIDs(playerID)
	idSet := stats.PlayerIDSet(players)

	var entries []*GameLogEntry
	for _, game := range games {
		if _, ok := attended[game.GameID]; !ok {
			continue
		}
		totals := stats.AggregatePlayerStats(player, events, stats.SingleGame(game.GameID), s.ourTeamID, idSet)
		totals.GamesPlayed = 1
		entries = append(entries, &GameLogEntry{Game: game, Totals: totals})
	}
	return entries, nil
}
