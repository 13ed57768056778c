package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)
	ctx := context.Background()

	tmpl := testutil.NewTestTemplate("Mobile MVP", testutil.WithCategory("mobile"), testutil.WithEstimatedDays(60))
	tmpl.Description = "Cross-platform first release"
	tmpl.RequiredSkills = []string{"flutter", "firebase"}
	tmpl.TeamSize = 4
	require.NoError(t, repo.Create(ctx, tmpl))

	fetched, err := repo.GetByID(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mobile MVP", fetched.Name)
	assert.Equal(t, "mobile", fetched.Category)
	assert.Equal(t, "Cross-platform first release", fetched.Description)
	require.NotNil(t, fetched.EstimatedDays)
	assert.Equal(t, 60, *fetched.EstimatedDays)
	assert.Equal(t, []string{"flutter", "firebase"}, fetched.RequiredSkills)
	assert.Equal(t, 4, fetched.TeamSize)
	assert.True(t, fetched.Active)
}

func TestTemplateRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := NewSQLiteTemplateRepo(db).GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTemplateRepo_ListActive_FiltersCategoryAndInactive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Landing page")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Shop", testutil.WithCategory("web"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Chatbot", testutil.WithCategory("ai"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Retired", testutil.Inactive())))

	all, err := repo.ListActive(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Chatbot", all[0].Name, "ordered by category then name")

	web, err := repo.ListActive(ctx, "WEB")
	require.NoError(t, err)
	require.Len(t, web, 2)
	assert.Equal(t, "Landing page", web[0].Name)
	assert.Equal(t, "Shop", web[1].Name)
	assert.Nil(t, web[0].EstimatedDays)
}
