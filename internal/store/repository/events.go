package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rinkside/internal/store"
)

// EventRepository handles event data access
type EventRepository struct {
	db *store.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *store.Database) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `event_id, game_id, event_type, period, event_time, team,
	primary_player_id, assist_player1_id, assist_player2_id,
	is_goal, is_power_play, is_short_handed, penalty_type, penalty_duration, players_on_ice`

// GetAll returns every event
func (r *EventRepository) GetAll(ctx context.Context) ([]*store.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_id`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// GetByGame returns all events for a game
func (r *EventRepository) GetByGame(ctx context.Context, gameID string) ([]*store.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE game_id = $1 ORDER BY event_id`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// ReplaceAll swaps the events table for a fresh snapshot in one transaction.
// Events carry no sheet-side identity, so a full reload is the only way to
// stay consistent with upstream edits and deletions.
func (r *EventRepository) ReplaceAll(ctx context.Context, events []*store.Event) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning event reload: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clearing events: %w", err)
	}

	insert := `
		INSERT INTO events (game_id, event_type, period, event_time, team,
			primary_player_id, assist_player1_id, assist_player2_id,
			is_goal, is_power_play, is_short_handed, penalty_type, penalty_duration, players_on_ice)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	for _, e := range events {
		_, err := tx.ExecContext(ctx, insert,
			e.GameID, e.EventType, e.Period, e.Time, e.Team,
			e.PrimaryPlayerID, e.AssistPlayer1ID, e.AssistPlayer2ID,
			e.IsGoal, e.IsPowerPlay, e.IsShortHanded, e.PenaltyType, e.PenaltyDuration, e.PlayersOnIce,
		)
		if err != nil {
			return fmt.Errorf("inserting event for game %s: %w", e.GameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing event reload: %w", err)
	}

	return nil
}

// scanEvents scans multiple event rows
func (r *EventRepository) scanEvents(rows *sql.Rows) ([]*store.Event, error) {
	var events []*store.Event
	for rows.Next() {
		e := &store.Event{}
		err := rows.Scan(
			&e.EventID, &e.GameID, &e.EventType, &e.Period, &e.Time, &e.Team,
			&e.PrimaryPlayerID, &e.AssistPlayer1ID, &e.AssistPlayer2ID,
			&e.IsGoal, &e.IsPowerPlay, &e.IsShortHanded, &e.PenaltyType, &e.PenaltyDuration, &e.PlayersOnIce,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
