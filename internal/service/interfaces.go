package service

import (
	"context"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TeamService interface {
	Create(ctx context.Context, m *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	List(ctx context.Context, f repository.TeamMemberFilter) ([]*domain.TeamMember, error)
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type TemplateService interface {
	List(ctx context.Context, category string) ([]*domain.ProjectTemplate, error)
	GetByID(ctx context.Context, id string) (*domain.ProjectTemplate, error)
	Create(ctx context.Context, t *domain.ProjectTemplate) error
	// CreateProject inserts p as a planning project seeded from the template.
	CreateProject(ctx context.Context, templateID string, p *domain.Project) error
}

// Assignment is a submitted member-assignment form.
type Assignment struct {
	Role           string
	Responsibility string
	Draft          *allocation.Draft
}

// RosterEntry is an active project membership joined with its team member.
// Utilization is the member's total allocation across all active projects.
type RosterEntry struct {
	Membership  *domain.ProjectMember
	Member      *domain.TeamMember
	Utilization int
}

type AssignmentService interface {
	ListProjectMembers(ctx context.Context, projectID string) ([]RosterEntry, error)
	OpenDraft(ctx context.Context, projectID, teamMemberID string) (*allocation.Draft, error)
	ResumeDraft(ctx context.Context, projectID, membershipID string) (*allocation.Draft, error)
	AddProjectMember(ctx context.Context, projectID string, a Assignment) (*domain.ProjectMember, error)
	UpdateProjectMember(ctx context.Context, projectID, membershipID string, a Assignment) (*domain.ProjectMember, error)
	RemoveProjectMember(ctx context.Context, projectID, membershipID string) error
	AvailableMembers(ctx context.Context, projectID string) ([]*domain.TeamMember, error)
	Utilization(ctx context.Context, teamMemberID string) (int, error)
}

// Overview is the portfolio summary shown by the status command. Archived
// projects count toward Projects but are not active.
type Overview struct {
	Projects          int
	ByStatus          map[domain.ProjectStatus]int
	TeamMembers       int
	AvailableMembers  int
	ActiveAssignments int
	OverAllocated     int
}

type StatusService interface {
	Overview(ctx context.Context) (*Overview, error)
}
