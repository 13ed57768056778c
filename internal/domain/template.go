package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProjectTemplate is a reusable project outline. Projects created from it
// start in planning and inherit its description.
type ProjectTemplate struct {
	ID             string
	Name           string
	Description    string
	Category       string
	EstimatedDays  *int
	RequiredSkills []string
	TeamSize       int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t *ProjectTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required")
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("template category is required")
	}
	if t.TeamSize < 1 {
		return fmt.Errorf("team size must be at least 1")
	}
	if t.EstimatedDays != nil && *t.EstimatedDays < 1 {
		return fmt.Errorf("estimated duration must be at least 1 day")
	}
	return nil
}

// Instantiate fills the fields of p that the template provides. An empty
// description is taken from the template, and an open-ended project with a
// start date gets an end date EstimatedDays later.
func (t *ProjectTemplate) Instantiate(p *Project) {
	p.Status = ProjectPlanning
	if strings.TrimSpace(p.Description) == "" {
		p.Description = t.Description
	}
	if t.EstimatedDays != nil && p.StartDate != nil && p.EndDate == nil {
		end := p.StartDate.AddDate(0, 0, *t.EstimatedDays)
		p.EndDate = &end
	}
}
