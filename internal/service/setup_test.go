package service

import (
	"testing"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/alexanderramin/tasktory/internal/testutil"
)

type testRepos struct {
	projects  repository.ProjectRepo
	team      repository.TeamMemberRepo
	members   repository.ProjectMemberRepo
	templates repository.TemplateRepo
	uow       db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		projects:  repository.NewSQLiteProjectRepo(database),
		team:      repository.NewSQLiteTeamMemberRepo(database),
		members:   repository.NewSQLiteProjectMemberRepo(database),
		templates: repository.NewSQLiteTemplateRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}
