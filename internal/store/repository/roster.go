package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rinkside/internal/store"
)

// RosterRepository handles game roster data access
type RosterRepository struct {
	db *store.Database
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *store.Database) *RosterRepository {
	return &RosterRepository{db: db}
}

// GetAll returns every roster entry
func (r *RosterRepository) GetAll(ctx context.Context) ([]*store.GameRosterEntry, error) {
	query := `SELECT game_id, player_id, status FROM game_roster ORDER BY game_id, player_id`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByGame returns the roster for one game
func (r *RosterRepository) GetByGame(ctx context.Context, gameID string) ([]*store.GameRosterEntry, error) {
	query := `SELECT game_id, player_id, status FROM game_roster WHERE game_id = $1 ORDER BY player_id`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// Upsert inserts or updates a roster entry
func (r *RosterRepository) Upsert(ctx context.Context, entry *store.GameRosterEntry) error {
	query := `
		INSERT INTO game_roster (game_id, player_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (game_id, player_id) DO UPDATE SET
			status = EXCLUDED.status
	`

	_, err := r.db.DB().ExecContext(ctx, query, entry.GameID, entry.PlayerID, entry.Status)
	if err != nil {
		return fmt.Errorf("upserting roster entry: %w", err)
	}

	return nil
}

// scanEntries scans multiple roster rows
func (r *RosterRepository) scanEntries(rows *sql.Rows) ([]*store.GameRosterEntry, error) {
	var entries []*store.GameRosterEntry
	for rows.Next() {
		entry := &store.GameRosterEntry{}
		if err := rows.Scan(&entry.GameID, &entry.PlayerID, &entry.Status); err != nil {
			return nil, fmt.Errorf("scanning roster entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
