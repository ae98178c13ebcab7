package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Storage("begin transaction", err)
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
		return models.Storage("commit transaction", err)
	}

	return nil
}

// isMissingTable reports whether err comes from querying a table that
// has not been created yet, i.e. the database was never initialized.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

// notFoundOr maps sql.ErrNoRows to a NotFoundError and anything else to a StorageError
func notFoundOr(err error, entity string, id any, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFound(entity, id)
	}
	return models.Storage(fmt.Sprintf("%s %s %v", op, entity, id), err)
}
