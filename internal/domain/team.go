package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
)

type TeamMember struct {
	ID              string
	Name            string
	Email           string
	Position        string
	Department      string
	ExperienceYears int
	Skills          []string
	SkillLevel      SkillLevel
	Available       bool
	HourlyRate      *int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks required fields and formats.
func (m *TeamMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(m.Position) == "" {
		return fmt.Errorf("position is required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("invalid email %q", m.Email)
	}
	if !ValidSkillLevels[string(m.SkillLevel)] {
		return fmt.Errorf("invalid skill level %q (Junior|Mid|Senior)", m.SkillLevel)
	}
	if m.ExperienceYears < 0 {
		return fmt.Errorf("experience years must not be negative")
	}
	return nil
}

// ProjectMember is a team member's assignment to a project. Removal is soft:
// Active is cleared and the row is kept.
type ProjectMember struct {
	ID                string
	ProjectID         string
	TeamMemberID      string
	Role              string
	Responsibility    string
	AllocationPercent int
	StartDate         *time.Time
	EndDate           *time.Time
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Span returns the assignment's planned dates.
func (pm *ProjectMember) Span() allocation.DateSpan {
	return allocation.NewDateSpan(pm.StartDate, pm.EndDate)
}

// Validate checks the fields a submitted assignment must carry.
func (pm *ProjectMember) Validate() error {
	if pm.TeamMemberID == "" {
		return fmt.Errorf("team member is required")
	}
	if strings.TrimSpace(pm.Role) == "" {
		return fmt.Errorf("role is required")
	}
	if !allocation.ValidPercent(pm.AllocationPercent) {
		return fmt.Errorf("allocation %d%% out of range 0-100", pm.AllocationPercent)
	}
	return nil
}
