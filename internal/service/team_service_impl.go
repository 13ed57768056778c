package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	team     repository.TeamMemberRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTeamService(team repository.TeamMemberRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TeamService {
	return &teamService{
		team:     team,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *teamService) Create(ctx context.Context, m *domain.TeamMember) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		finishUseCase(ctx, s.observer, "create-team-member", startedAt, map[string]any{"email": m.Email}, err)
	}()

	normalizeTeamMember(m)
	if err = m.Validate(); err != nil {
		return err
	}
	if err = s.ensureEmailFree(ctx, s.team, m.Email, ""); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.team.Create(ctx, m)
}

func (s *teamService) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.team.GetByID(ctx, id)
}

func (s *teamService) List(ctx context.Context, f repository.TeamMemberFilter) ([]*domain.TeamMember, error) {
	if f.SkillLevel != "" && !domain.ValidSkillLevels[string(f.SkillLevel)] {
		return nil, fmt.Errorf("invalid skill level %q (Junior|Mid|Senior)", f.SkillLevel)
	}
	return s.team.List(ctx, f)
}

func (s *teamService) Update(ctx context.Context, m *domain.TeamMember) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		finishUseCase(ctx, s.observer, "update-team-member", startedAt, map[string]any{"team_member_id": m.ID}, err)
	}()

	normalizeTeamMember(m)
	if err = m.Validate(); err != nil {
		return err
	}
	if err = s.ensureEmailFree(ctx, s.team, m.Email, m.ID); err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()
	return s.team.Update(ctx, m)
}

// Delete refuses while the member still has active project memberships.
// Inactive memberships are removed with the member.
func (s *teamService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"team_member_id": id}
	defer func() {
		finishUseCase(ctx, s.observer, "delete-team-member", startedAt, fields, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		team := repository.NewSQLiteTeamMemberRepo(tx)
		members := repository.NewSQLiteProjectMemberRepo(tx)

		if _, err := team.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := members.CountActiveByTeamMember(ctx, id)
		if err != nil {
			return err
		}
		fields["active_memberships"] = n
		if n > 0 {
			return fmt.Errorf("cannot delete: %w (%d)", ErrActiveMemberships, n)
		}
		return team.Delete(ctx, id)
	})
}

func (s *teamService) ensureEmailFree(ctx context.Context, team repository.TeamMemberRepo, email, selfID string) error {
	existing, err := team.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return fmt.Errorf("%s: %w", email, ErrDuplicateEmail)
}

func normalizeTeamMember(m *domain.TeamMember) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if m.SkillLevel == "" {
		m.SkillLevel = domain.SkillMid
	}
	if m.Skills == nil {
		m.Skills = []string{}
	}
}
