package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rinkside/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID finds a game by ID
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*store.Game, error) {
	query := `
		SELECT game_id, game_date, opponent, result, goals_for, goals_against,
			created_at, updated_at
		FROM games
		WHERE game_id = $1
	`

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&game.GameID, &game.Date, &game.Opponent, &game.Result,
		&game.GoalsFor, &game.GoalsAgainst, &game.CreatedAt, &game.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetAll returns all games, most recent first
func (r *GameRepository) GetAll(ctx context.Context) ([]*store.Game, error) {
	query := `
		SELECT game_id, game_date, opponent, result, goals_for, goals_against,
			created_at, updated_at
		FROM games
		ORDER BY game_date DESC, game_id DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or updates a game. Derived columns are written too so the
// stored row always mirrors the last computed results.
func (r *GameRepository) Upsert(ctx context.Context, game *store.Game) error {
	query := `
		INSERT INTO games (game_id, game_date, opponent, result, goals_for, goals_against)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			opponent = EXCLUDED.opponent,
			result = EXCLUDED.result,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		game.GameID, game.Date, game.Opponent, game.Result, game.GoalsFor, game.GoalsAgainst,
	)
	if err != nil {
		return fmt.Errorf("upserting game: %w", err)
	}

	return nil
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		err := rows.Scan(
			&game.GameID, &game.Date, &game.Opponent, &game.Result,
			&game.GoalsFor, &game.GoalsAgainst, &game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
