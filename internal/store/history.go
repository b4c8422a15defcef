package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bulkrename/internal/undo"
)

// BatchSummary describes one committed batch for history listings.
type BatchSummary struct {
	ID        string
	CreatedAt time.Time
	Pairs     int
}

// Push records a committed batch, pruning the oldest batches beyond the
// configured history limit. Implements undo.Stack.
func (s *Store) Push(ctx context.Context, entry undo.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin push tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO undo_batches (id, created_at) VALUES (?, ?)",
		entry.ID, createdAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	for i, pair := range entry.Pairs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO undo_pairs (batch_id, position, origin, final) VALUES (?, ?, ?, ?)",
			entry.ID, i, pair.Origin, pair.Final); err != nil {
			return fmt.Errorf("insert pair %d: %w", i, err)
		}
	}

	if s.historyLimit > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM undo_batches WHERE id NOT IN (
                SELECT id FROM undo_batches ORDER BY created_at DESC, rowid DESC LIMIT ?
            )`, s.historyLimit); err != nil {
			return fmt.Errorf("prune history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit push tx: %w", err)
	}
	return nil
}

// Pop removes and returns the most recent batch. Implements undo.Stack.
func (s *Store) Pop(ctx context.Context) (undo.Entry, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return undo.Entry{}, false, fmt.Errorf("begin pop tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		entry     undo.Entry
		createdAt string
	)
	err = tx.QueryRowContext(ctx,
		"SELECT id, created_at FROM undo_batches ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&entry.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return undo.Entry{}, false, nil
	}
	if err != nil {
		return undo.Entry{}, false, fmt.Errorf("select newest batch: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		entry.CreatedAt = ts
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT origin, final FROM undo_pairs WHERE batch_id = ? ORDER BY position", entry.ID)
	if err != nil {
		return undo.Entry{}, false, fmt.Errorf("load pairs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pair undo.Pair
		if err := rows.Scan(&pair.Origin, &pair.Final); err != nil {
			return undo.Entry{}, false, fmt.Errorf("scan pair: %w", err)
		}
		entry.Pairs = append(entry.Pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return undo.Entry{}, false, fmt.Errorf("iterate pairs: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM undo_batches WHERE id = ?", entry.ID); err != nil {
		return undo.Entry{}, false, fmt.Errorf("delete batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return undo.Entry{}, false, fmt.Errorf("commit pop tx: %w", err)
	}
	return entry, true, nil
}

// Depth counts undoable batches. Implements undo.Stack.
func (s *Store) Depth(ctx context.Context) (int, error) {
	var depth int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM undo_batches").Scan(&depth); err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return depth, nil
}

// ListBatches summarizes the undo history, newest first.
func (s *Store) ListBatches(ctx context.Context) ([]BatchSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT b.id, b.created_at, COUNT(p.batch_id)
         FROM undo_batches b
         LEFT JOIN undo_pairs p ON p.batch_id = b.id
         GROUP BY b.id
         ORDER BY b.created_at DESC, b.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var summaries []BatchSummary
	for rows.Next() {
		var (
			summary   BatchSummary
			createdAt string
		)
		if err := rows.Scan(&summary.ID, &createdAt, &summary.Pairs); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			summary.CreatedAt = ts
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return summaries, nil
}
