package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertProject = `INSERT INTO projects (id, name, created_at, updated_at)
	VALUES (?, ?, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func projectExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM projects WHERE id = ?`, id).Scan(&n))
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertProject, "p1", "Website")
		return err
	})
	require.NoError(t, err)
	assert.True(t, projectExists(t, database, "p1"))
}

func TestWithinTx_RollbackKeepsSentinel(t *testing.T) {
	database, uow := openUoW(t)
	errStop := errors.New("stop")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertProject, "p2", "Website"); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.False(t, projectExists(t, database, "p2"), "insert must be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertProject, "p3", "Website")
			panic("boom")
		})
	})
	assert.False(t, projectExists(t, database, "p3"))
}

func TestWithinTx_SeesOwnWrites(t *testing.T) {
	_, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertProject, "p4", "Website"); err != nil {
			return err
		}
		var name string
		if err := tx.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = ?`, "p4").Scan(&name); err != nil {
			return err
		}
		assert.Equal(t, "Website", name)
		return nil
	})
	require.NoError(t, err)
}
