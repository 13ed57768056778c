package repository

import (
	"context"

	"github.com/alexanderramin/tasktory/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// TeamMemberFilter narrows TeamMemberRepo.List. Zero fields do not filter.
type TeamMemberFilter struct {
	Department string
	SkillLevel domain.SkillLevel
	Available  *bool
	Offset     int
	Limit      int
}

type TeamMemberRepo interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error)
	List(ctx context.Context, f TeamMemberFilter) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type ProjectMemberRepo interface {
	Create(ctx context.Context, pm *domain.ProjectMember) error
	GetByID(ctx context.Context, id string) (*domain.ProjectMember, error)
	FindActive(ctx context.Context, projectID, teamMemberID string) (*domain.ProjectMember, error)
	ListActiveByProject(ctx context.Context, projectID string) ([]*domain.ProjectMember, error)
	ListActiveByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.ProjectMember, error)
	CountActiveByTeamMember(ctx context.Context, teamMemberID string) (int, error)
	Update(ctx context.Context, pm *domain.ProjectMember) error
	Deactivate(ctx context.Context, id string) error
}

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.ProjectTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ProjectTemplate, error)
	ListActive(ctx context.Context, category string) ([]*domain.ProjectTemplate, error)
}
