package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/crewlane/crewlane/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transactions fail on the Nth write.
// Import rollback tests use it to cut a multi-entity bundle off mid-stream,
// for example after the clients and users landed but before the projects,
// and then assert that nothing was persisted.
//
// Writes are counted per transaction starting at 1; only ExecContext counts,
// reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		return err
	}
	return tx.Commit()
}

// countingTx decorates a DBTX, injecting the configured error on write
// number failOn.
type countingTx struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.writes.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
