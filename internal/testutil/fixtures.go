package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64
var testEmailCounter atomic.Int64

// Date returns midnight UTC on the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Project options
type ProjectOption func(*domain.Project)

func WithWindow(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func WithoutWindow() ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = nil
		p.EndDate = nil
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestProject returns an active project spanning January 2024.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	start := Date(2024, 1, 1)
	end := Date(2024, 1, 31)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		StartDate: &start,
		EndDate:   &end,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TeamMember options
type TeamMemberOption func(*domain.TeamMember)

func WithDepartment(d string) TeamMemberOption {
	return func(m *domain.TeamMember) {
		m.Department = d
	}
}

func WithSkillLevel(l domain.SkillLevel) TeamMemberOption {
	return func(m *domain.TeamMember) {
		m.SkillLevel = l
	}
}

func WithAvailability(a bool) TeamMemberOption {
	return func(m *domain.TeamMember) {
		m.Available = a
	}
}

func WithEmail(e string) TeamMemberOption {
	return func(m *domain.TeamMember) {
		m.Email = e
	}
}

func WithSkills(skills ...string) TeamMemberOption {
	return func(m *domain.TeamMember) {
		m.Skills = skills
	}
}

func NewTestTeamMember(name string, opts ...TeamMemberOption) *domain.TeamMember {
	now := time.Now().UTC()
	n := testEmailCounter.Add(1)
	m := &domain.TeamMember{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      fmt.Sprintf("%s.%d@example.com", strings.ToLower(strings.ReplaceAll(name, " ", ".")), n),
		Position:   "Engineer",
		Department: "Engineering",
		Skills:     []string{},
		SkillLevel: domain.SkillMid,
		Available:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ProjectMember options
type ProjectMemberOption func(*domain.ProjectMember)

func WithAllocation(pct int) ProjectMemberOption {
	return func(pm *domain.ProjectMember) {
		pm.AllocationPercent = pct
	}
}

func WithMemberDates(start, end time.Time) ProjectMemberOption {
	return func(pm *domain.ProjectMember) {
		pm.StartDate = &start
		pm.EndDate = &end
	}
}

func WithRole(r string) ProjectMemberOption {
	return func(pm *domain.ProjectMember) {
		pm.Role = r
	}
}

func NewTestProjectMember(projectID, teamMemberID string, opts ...ProjectMemberOption) *domain.ProjectMember {
	now := time.Now().UTC()
	pm := &domain.ProjectMember{
		ID:                uuid.New().String(),
		ProjectID:         projectID,
		TeamMemberID:      teamMemberID,
		Role:              "Backend Developer",
		AllocationPercent: 100,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

// ProjectTemplate options
type TemplateOption func(*domain.ProjectTemplate)

func WithCategory(c string) TemplateOption {
	return func(t *domain.ProjectTemplate) {
		t.Category = c
	}
}

func WithEstimatedDays(d int) TemplateOption {
	return func(t *domain.ProjectTemplate) {
		t.EstimatedDays = &d
	}
}

func Inactive() TemplateOption {
	return func(t *domain.ProjectTemplate) {
		t.Active = false
	}
}

func NewTestTemplate(name string, opts ...TemplateOption) *domain.ProjectTemplate {
	now := time.Now().UTC()
	t := &domain.ProjectTemplate{
		ID:             uuid.New().String(),
		Name:           name,
		Category:       "web",
		RequiredSkills: []string{},
		TeamSize:       1,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
