package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// requireAffected turns an UPDATE or DELETE that matched no rows into notFound
func requireAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// nextPosition returns one past the largest position in table
func nextPosition(ctx context.Context, tx *sql.Tx, table string) (int, error) {
	var pos int
	query := fmt.Sprintf("SELECT COALESCE(MAX(position) + 1, 0) FROM %s", table)
	if err := tx.QueryRowContext(ctx, query).Scan(&pos); err != nil {
		return 0, fmt.Errorf("failed to get next position in %s: %w", table, err)
	}
	return pos, nil
}
