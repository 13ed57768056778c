package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

type Project struct {
	ID          string
	ShortID     string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. WEB01, CRM0234).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. WEB01)", p.ShortID)
	}
	return nil
}

// ValidateWindow rejects an end date before the start date. Either bound may
// be unset while the project is still being planned.
func (p *Project) ValidateWindow() error {
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("project end date %s is before start date %s",
			p.EndDate.Format(allocation.DateLayout), p.StartDate.Format(allocation.DateLayout))
	}
	return nil
}

// Window returns the project's overall duration as a date span. Missing
// bounds stay missing.
func (p *Project) Window() allocation.DateSpan {
	return allocation.NewDateSpan(p.StartDate, p.EndDate)
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
