package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/google/uuid"
)

type assignmentService struct {
	projects repository.ProjectRepo
	team     repository.TeamMemberRepo
	members  repository.ProjectMemberRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewAssignmentService(
	projects repository.ProjectRepo,
	team repository.TeamMemberRepo,
	members repository.ProjectMemberRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AssignmentService {
	return &assignmentService{
		projects: projects,
		team:     team,
		members:  members,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *assignmentService) ListProjectMembers(ctx context.Context, projectID string) ([]RosterEntry, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	memberships, err := s.members.ListActiveByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries := make([]RosterEntry, 0, len(memberships))
	for _, pm := range memberships {
		tm, err := s.team.GetByID(ctx, pm.TeamMemberID)
		if err != nil {
			return nil, fmt.Errorf("loading member of %s: %w", pm.ID, err)
		}
		util, err := s.Utilization(ctx, pm.TeamMemberID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, RosterEntry{Membership: pm, Member: tm, Utilization: util})
	}
	return entries, nil
}

// OpenDraft starts a new assignment form against the project's window.
func (s *assignmentService) OpenDraft(ctx context.Context, projectID, teamMemberID string) (*allocation.Draft, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return allocation.NewDraft(teamMemberID, p.Window()), nil
}

// ResumeDraft reopens an existing membership for editing.
func (s *assignmentService) ResumeDraft(ctx context.Context, projectID, membershipID string) (*allocation.Draft, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	pm, err := s.membershipOf(ctx, s.members, projectID, membershipID)
	if err != nil {
		return nil, err
	}
	return allocation.ResumeDraft(pm.TeamMemberID, pm.Span(), pm.AllocationPercent, p.Window()), nil
}

func (s *assignmentService) AddProjectMember(ctx context.Context, projectID string, a Assignment) (pm *domain.ProjectMember, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		finishUseCase(ctx, s.observer, "add-project-member", startedAt, fields, err)
	}()

	if a.Draft == nil {
		return nil, fmt.Errorf("assignment draft is required")
	}
	fields["team_member_id"] = a.Draft.MemberID
	fields["allocation_mode"] = a.Draft.Mode().String()

	now := time.Now().UTC()
	pm = &domain.ProjectMember{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		TeamMemberID: a.Draft.MemberID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = applyAssignment(pm, a); err != nil {
		return nil, err
	}
	fields["allocation_percent"] = pm.AllocationPercent

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		team := repository.NewSQLiteTeamMemberRepo(tx)
		members := repository.NewSQLiteProjectMemberRepo(tx)

		if _, err := projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		tm, err := team.GetByID(ctx, pm.TeamMemberID)
		if err != nil {
			return err
		}
		_, err = members.FindActive(ctx, projectID, pm.TeamMemberID)
		switch {
		case err == nil:
			return fmt.Errorf("%s: %w", tm.Name, ErrAlreadyMember)
		case !errors.Is(err, ErrNotFound):
			return err
		}
		return members.Create(ctx, pm)
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *assignmentService) UpdateProjectMember(ctx context.Context, projectID, membershipID string, a Assignment) (pm *domain.ProjectMember, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "membership_id": membershipID}
	defer func() {
		finishUseCase(ctx, s.observer, "update-project-member", startedAt, fields, err)
	}()

	if a.Draft == nil {
		return nil, fmt.Errorf("assignment draft is required")
	}
	fields["allocation_mode"] = a.Draft.Mode().String()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		members := repository.NewSQLiteProjectMemberRepo(tx)

		existing, err := s.membershipOf(ctx, members, projectID, membershipID)
		if err != nil {
			return err
		}
		if a.Draft.MemberID != "" && a.Draft.MemberID != existing.TeamMemberID {
			return fmt.Errorf("cannot move membership %s to another team member", membershipID)
		}
		if err := applyAssignment(existing, a); err != nil {
			return err
		}
		existing.UpdatedAt = time.Now().UTC()
		if err := members.Update(ctx, existing); err != nil {
			return err
		}
		pm = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["allocation_percent"] = pm.AllocationPercent
	return pm, nil
}

// RemoveProjectMember deactivates the membership; the row is kept.
func (s *assignmentService) RemoveProjectMember(ctx context.Context, projectID, membershipID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		finishUseCase(ctx, s.observer, "remove-project-member", startedAt,
			map[string]any{"project_id": projectID, "membership_id": membershipID}, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		members := repository.NewSQLiteProjectMemberRepo(tx)
		if _, err := s.membershipOf(ctx, members, projectID, membershipID); err != nil {
			return err
		}
		return members.Deactivate(ctx, membershipID)
	})
}

// AvailableMembers lists team members flagged available that are not
// already active on the project.
func (s *assignmentService) AvailableMembers(ctx context.Context, projectID string) ([]*domain.TeamMember, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	available := true
	candidates, err := s.team.List(ctx, repository.TeamMemberFilter{Available: &available})
	if err != nil {
		return nil, err
	}
	active, err := s.members.ListActiveByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	assigned := make(map[string]bool, len(active))
	for _, pm := range active {
		assigned[pm.TeamMemberID] = true
	}

	var out []*domain.TeamMember
	for _, tm := range candidates {
		if !assigned[tm.ID] {
			out = append(out, tm)
		}
	}
	return out, nil
}

// Utilization sums the member's allocation over active memberships. Values
// above 100 mean the member is over-allocated.
func (s *assignmentService) Utilization(ctx context.Context, teamMemberID string) (int, error) {
	active, err := s.members.ListActiveByTeamMember(ctx, teamMemberID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pm := range active {
		total += pm.AllocationPercent
	}
	return total, nil
}

// membershipOf loads an active membership and checks it belongs to the project.
func (s *assignmentService) membershipOf(ctx context.Context, members repository.ProjectMemberRepo, projectID, membershipID string) (*domain.ProjectMember, error) {
	pm, err := members.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if pm.ProjectID != projectID || !pm.Active {
		return nil, fmt.Errorf("project member %w", ErrNotFound)
	}
	return pm, nil
}

// applyAssignment copies the submitted form onto the stored record.
func applyAssignment(pm *domain.ProjectMember, a Assignment) error {
	if !allocation.ValidPercent(a.Draft.AllocationPercent) {
		return fmt.Errorf("%d%%: %w", a.Draft.AllocationPercent, ErrInvalidAllocation)
	}
	pm.Role = strings.TrimSpace(a.Role)
	pm.Responsibility = strings.TrimSpace(a.Responsibility)
	pm.AllocationPercent = a.Draft.AllocationPercent
	pm.StartDate = optionalDate(a.Draft.Span.Start)
	pm.EndDate = optionalDate(a.Draft.Span.End)
	return pm.Validate()
}

func optionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
