package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjectAndTeam(t *testing.T, db *sql.DB, names ...string) (*domain.Project, []*domain.TeamMember) {
	t.Helper()
	ctx := context.Background()
	proj := testutil.NewTestProject("Roster")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	team := NewSQLiteTeamMemberRepo(db)
	var members []*domain.TeamMember
	for _, n := range names {
		m := testutil.NewTestTeamMember(n)
		require.NoError(t, team.Create(ctx, m))
		members = append(members, m)
	}
	return proj, members
}

func TestProjectMemberRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectMemberRepo(db)
	ctx := context.Background()
	proj, team := seedProjectAndTeam(t, db, "Kim")

	pm := testutil.NewTestProjectMember(proj.ID, team[0].ID,
		testutil.WithAllocation(50),
		testutil.WithMemberDates(testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 16)))
	pm.Responsibility = "API"
	require.NoError(t, repo.Create(ctx, pm))

	fetched, err := repo.GetByID(ctx, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, fetched.AllocationPercent)
	assert.Equal(t, "API", fetched.Responsibility)
	assert.True(t, fetched.Active)
	assert.Equal(t, 15, fetched.Span().Days())
}

func TestProjectMemberRepo_ActiveQueries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectMemberRepo(db)
	ctx := context.Background()
	proj, team := seedProjectAndTeam(t, db, "Kim", "Lee")

	a := testutil.NewTestProjectMember(proj.ID, team[0].ID)
	b := testutil.NewTestProjectMember(proj.ID, team[1].ID)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	active, err := repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	found, err := repo.FindActive(ctx, proj.ID, team[0].ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	require.NoError(t, repo.Deactivate(ctx, a.ID))

	active, err = repo.ListActiveByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	_, err = repo.FindActive(ctx, proj.ID, team[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := repo.CountActiveByTeamMember(ctx, team[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	byMember, err := repo.ListActiveByTeamMember(ctx, team[1].ID)
	require.NoError(t, err)
	assert.Len(t, byMember, 1)
}

func TestProjectMemberRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectMemberRepo(db)
	ctx := context.Background()
	proj, team := seedProjectAndTeam(t, db, "Kim")

	pm := testutil.NewTestProjectMember(proj.ID, team[0].ID)
	require.NoError(t, repo.Create(ctx, pm))

	pm.Role = "Tech Lead"
	pm.AllocationPercent = 30
	pm.EndDate = nil
	require.NoError(t, repo.Update(ctx, pm))

	fetched, err := repo.GetByID(ctx, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Lead", fetched.Role)
	assert.Equal(t, 30, fetched.AllocationPercent)
	assert.Nil(t, fetched.EndDate)

	assert.ErrorIs(t, repo.Deactivate(ctx, "missing"), domain.ErrNotFound)
}

func TestProjectMemberRepo_GetByID_MalformedStoredDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectMemberRepo(db)
	ctx := context.Background()
	proj, team := seedProjectAndTeam(t, db, "Kim")

	pm := testutil.NewTestProjectMember(proj.ID, team[0].ID,
		testutil.WithMemberDates(testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 16)))
	require.NoError(t, repo.Create(ctx, pm))
	_, err := db.ExecContext(ctx, `UPDATE project_members SET start_date = '2024-1-1' WHERE id = ?`, pm.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, pm.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}
