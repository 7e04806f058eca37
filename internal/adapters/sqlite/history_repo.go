// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bptracker/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create persists a new history entry and sets its ID.
func (r *HistoryRepository) Create(ctx context.Context, entry *secondary.HistoryRecord) error {
	var actorID sql.NullString
	if entry.ActorID != "" {
		actorID = sql.NullString{String: entry.ActorID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blueprint_history (action, item, line, actor_id) VALUES (?, ?, ?, ?)`,
		entry.Action,
		entry.Item,
		entry.Line,
		actorID,
	)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read history entry ID: %w", err)
	}
	entry.ID = id

	return nil
}

// GetByID retrieves a history entry by its ID.
func (r *HistoryRepository) GetByID(ctx context.Context, id int64) (*secondary.HistoryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, action, item, line, actor_id, created_at FROM blueprint_history WHERE id = ?`,
		id,
	)

	record, err := scanHistory(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("history entry %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}
	return record, nil
}

// List retrieves history entries matching the given filters, newest first.
func (r *HistoryRepository) List(ctx context.Context, filters secondary.HistoryFilters) ([]*secondary.HistoryRecord, error) {
	query := `SELECT id, action, item, line, actor_id, created_at FROM blueprint_history WHERE 1=1`
	args := []any{}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	if filters.Item != "" {
		query += " AND item = ?"
		args = append(args, filters.Item)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.HistoryRecord
	for rows.Next() {
		record, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// PruneOlderThan deletes history entries older than the given number of days.
func (r *HistoryRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM blueprint_history WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (*secondary.HistoryRecord, error) {
	var (
		actorID   sql.NullString
		createdAt time.Time
	)

	record := &secondary.HistoryRecord{}
	err := s.Scan(&record.ID,
		&record.Action,
		&record.Item,
		&record.Line,
		&actorID,
		&createdAt)
	if err != nil {
		return nil, err
	}
	record.ActorID = actorID.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure HistoryRepository implements the interface
var _ secondary.HistoryRepository = (*HistoryRepository)(nil)
