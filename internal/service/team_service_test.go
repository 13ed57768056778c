package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/alexanderramin/tasktory/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Create_Defaults(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewTeamService(r.team, r.uow)

	m := &domain.TeamMember{Name: "  Yoon  ", Email: "yoon@example.com", Position: "Designer", Available: true}
	require.NoError(t, svc.Create(ctx, m))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Yoon", m.Name)
	assert.Equal(t, domain.SkillMid, m.SkillLevel)
	assert.Equal(t, []string{}, m.Skills)
}

func TestTeamService_Create_Validation(t *testing.T) {
	r := setupRepos(t)
	svc := NewTeamService(r.team, r.uow)

	tests := []struct {
		name   string
		member domain.TeamMember
	}{
		{"missing name", domain.TeamMember{Email: "a@example.com", Position: "Dev"}},
		{"bad email", domain.TeamMember{Name: "A", Email: "not-an-email", Position: "Dev"}},
		{"missing position", domain.TeamMember{Name: "A", Email: "a@example.com"}},
		{"bad level", domain.TeamMember{Name: "A", Email: "a@example.com", Position: "Dev", SkillLevel: "Guru"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.member
			assert.Error(t, svc.Create(context.Background(), &m))
		})
	}
}

func TestTeamService_DuplicateEmail(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewTeamService(r.team, r.uow)

	first := testutil.NewTestTeamMember("First", testutil.WithEmail("same@example.com"))
	require.NoError(t, svc.Create(ctx, first))

	second := testutil.NewTestTeamMember("Second", testutil.WithEmail("SAME@example.com"))
	err := svc.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Updating a member with its own email is fine.
	first.Position = "Lead"
	require.NoError(t, svc.Update(ctx, first))

	other := testutil.NewTestTeamMember("Other")
	require.NoError(t, svc.Create(ctx, other))
	other.Email = "same@example.com"
	assert.ErrorIs(t, svc.Update(ctx, other), ErrDuplicateEmail)
}

func TestTeamService_List_RejectsUnknownSkillLevel(t *testing.T) {
	r := setupRepos(t)
	svc := NewTeamService(r.team, r.uow)

	_, err := svc.List(context.Background(), repository.TeamMemberFilter{SkillLevel: "Expert"})
	assert.Error(t, err)
}

func TestTeamService_Delete_RefusedWithActiveMemberships(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewTeamService(r.team, r.uow)

	proj := testutil.NewTestProject("Busy")
	require.NoError(t, r.projects.Create(ctx, proj))
	m := testutil.NewTestTeamMember("Kang")
	require.NoError(t, svc.Create(ctx, m))
	pm := testutil.NewTestProjectMember(proj.ID, m.ID)
	require.NoError(t, r.members.Create(ctx, pm))

	err := svc.Delete(ctx, m.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrActiveMemberships)
	assert.Contains(t, err.Error(), "(1)")

	// After the membership is removed the member can go, along with the
	// inactive history row.
	require.NoError(t, r.members.Deactivate(ctx, pm.ID))
	require.NoError(t, svc.Delete(ctx, m.ID))

	_, err = svc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.members.GetByID(ctx, pm.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_Delete_Missing(t *testing.T) {
	r := setupRepos(t)
	svc := NewTeamService(r.team, r.uow)
	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), ErrNotFound)
}
