package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rinkside/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID finds a player by normalized ID
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*store.Player, error) {
	query := `
		SELECT player_id, jersey_number, first_name, last_name, position, team_id,
			created_at, updated_at
		FROM players
		WHERE player_id = $1
	`

	player := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&player.PlayerID, &player.JerseyNumber, &player.FirstName, &player.LastName,
		&player.Position, &player.TeamID, &player.CreatedAt, &player.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// GetAll returns all players ordered by jersey number
func (r *PlayerRepository) GetAll(ctx context.Context) ([]*store.Player, error) {
	query := `
		SELECT player_id, jersey_number, first_name, last_name, position, team_id,
			created_at, updated_at
		FROM players
		ORDER BY jersey_number, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// GetByTeam returns all players on a team
func (r *PlayerRepository) GetByTeam(ctx context.Context, teamID string) ([]*store.Player, error) {
	query := `
		SELECT player_id, jersey_number, first_name, last_name, position, team_id,
			created_at, updated_at
		FROM players
		WHERE team_id = $1
		ORDER BY jersey_number, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// GetByPosition returns all players at a position ("Forward", "Defense", "Goalie")
func (r *PlayerRepository) GetByPosition(ctx context.Context, position string) ([]*store.Player, error) {
	query := `
		SELECT player_id, jersey_number, first_name, last_name, position, team_id,
			created_at, updated_at
		FROM players
		WHERE position = $1
		ORDER BY jersey_number, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, position)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// Upsert inserts or updates a player
func (r *PlayerRepository) Upsert(ctx context.Context, player *store.Player) error {
	query := `
		INSERT INTO players (player_id, jersey_number, first_name, last_name, position, team_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (player_id) DO UPDATE SET
			jersey_number = EXCLUDED.jersey_number,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			position = EXCLUDED.position,
			team_id = EXCLUDED.team_id,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		player.PlayerID, player.JerseyNumber, player.FirstName, player.LastName,
		player.Position, player.TeamID,
	)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}

	return nil
}

// scanPlayers scans multiple player rows
func (r *PlayerRepository) scanPlayers(rows *sql.Rows) ([]*store.Player, error) {
	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.PlayerID, &player.JerseyNumber, &player.FirstName, &player.LastName,
			&player.Position, &player.TeamID, &player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
