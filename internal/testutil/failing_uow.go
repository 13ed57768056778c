package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/tasktory/internal/db"
)

// FailingUoW wraps a real unit of work and fails the FailOn-th ExecContext
// (1-based) issued inside each transaction with Err. Reads are untouched, so
// tests can place a failure between two writes and assert the rollback.
type FailingUoW struct {
	Inner  db.UnitOfWork
	FailOn int
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingTx{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execs++
	if f.execs == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
