package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_V1ToCurrentSchema simulates upgrading a database
// created before the membership indexes existed. Rows written under version 1
// must survive, and the active-membership unique index must apply afterwards.
func TestMigrate_UpgradePath_V1ToCurrentSchema(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, MigrateTo(ctx, db, 1))
	v, err := SchemaVersion(ctx, db)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	now := "2024-01-01T00:00:00Z"
	_, err = db.Exec(`INSERT INTO projects (id, short_id, name, start_date, end_date, created_at, updated_at)
		VALUES ('p1', 'WEB01', 'Website', '2024-01-01', '2024-03-01', ?, ?)`, now, now)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO team_members (id, name, email, position, created_at, updated_at)
		VALUES ('t1', 'Kim', 'kim@example.com', 'Dev', ?, ?)`, now, now)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO project_members (id, project_id, team_member_id, role, created_at, updated_at)
		VALUES ('pm1', 'p1', 't1', 'Dev', ?, ?)`, now, now)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	var alloc, active int
	require.NoError(t, db.QueryRow(`SELECT allocation_percent, active FROM project_members WHERE id = 'pm1'`).Scan(&alloc, &active))
	assert.Equal(t, 100, alloc, "default allocation should be preserved")
	assert.Equal(t, 1, active)

	_, err = db.Exec(`INSERT INTO project_members (id, project_id, team_member_id, role, created_at, updated_at)
		VALUES ('pm2', 'p1', 't1', 'Dev', ?, ?)`, now, now)
	assert.Error(t, err, "second active membership should violate the unique index")

	_, err = db.Exec(`UPDATE project_members SET active = 0 WHERE id = 'pm1'`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO project_members (id, project_id, team_member_id, role, created_at, updated_at)
		VALUES ('pm2', 'p1', 't1', 'Dev', ?, ?)`, now, now)
	assert.NoError(t, err, "re-adding after soft removal is allowed")
}
