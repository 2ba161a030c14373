package db

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork runs a batch of writes as one transaction. The callback gets a
// DBTX backed by the open *sql.Tx and builds tx-scoped repositories on it.
// The workload importer is the main consumer: either the whole bundle lands
// or none of it does.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork is the database/sql implementation of UnitOfWork.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

// WithinTx begins a transaction, runs fn, and commits. Any error from fn
// rolls everything back and is returned unchanged; a panic rolls back and
// then propagates to the caller.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// Rollback after a successful Commit returns sql.ErrTxDone, which is
	// safe to ignore, so the deferred call covers the error and panic
	// paths without extra bookkeeping.
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
