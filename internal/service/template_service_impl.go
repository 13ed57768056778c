package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/db"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/google/uuid"
)

type templateService struct {
	templates repository.TemplateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewTemplateService(templates repository.TemplateRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TemplateService {
	return &templateService{
		templates: templates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) List(ctx context.Context, category string) ([]*domain.ProjectTemplate, error) {
	return s.templates.ListActive(ctx, strings.TrimSpace(category))
}

func (s *templateService) GetByID(ctx context.Context, id string) (*domain.ProjectTemplate, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *templateService) Create(ctx context.Context, t *domain.ProjectTemplate) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		finishUseCase(ctx, s.observer, "create-template", startedAt,
			map[string]any{"name": t.Name, "category": t.Category}, err)
	}()

	t.Name = strings.TrimSpace(t.Name)
	t.Category = strings.TrimSpace(t.Category)
	if t.TeamSize == 0 {
		t.TeamSize = 1
	}
	if err = t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.RequiredSkills == nil {
		t.RequiredSkills = []string{}
	}
	now := time.Now().UTC()
	t.Active = true
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.templates.Create(ctx, t)
}

func (s *templateService) CreateProject(ctx context.Context, templateID string, p *domain.Project) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"template_id": templateID, "short_id": p.ShortID}
	defer func() {
		finishUseCase(ctx, s.observer, "create-project-from-template", startedAt, fields, err)
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tmpl, err := repository.NewSQLiteTemplateRepo(tx).GetByID(ctx, templateID)
		if err != nil {
			return err
		}
		fields["template"] = tmpl.Name

		tmpl.Instantiate(p)
		if err := prepareNewProject(p); err != nil {
			return err
		}
		return repository.NewSQLiteProjectRepo(tx).Create(ctx, p)
	})
}
