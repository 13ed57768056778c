package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := prepareNewProject(p); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

// prepareNewProject validates p and fills its ID, timestamps and default status.
func prepareNewProject(p *domain.Project) error {
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if err := p.ValidateWindow(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectPlanning
	}
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if err := p.ValidateWindow(); err != nil {
		return err
	}
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Unarchive(ctx context.Context, id string) error {
	return s.projects.Unarchive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !force && p.Status != domain.ProjectArchived {
		return fmt.Errorf("project must be archived before deletion (use --force to override)")
	}
	return s.projects.Delete(ctx, id)
}
