package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/service"
)

// FormatStatus renders the portfolio summary.
func FormatStatus(o *service.Overview) string {
	over := strconv.Itoa(o.OverAllocated)
	if o.OverAllocated > 0 {
		over = StyleRed.Render(over + " ▲")
	}

	var b strings.Builder
	b.WriteString(Header("Projects") + "\n")
	b.WriteString(RenderKeyValues([][2]string{
		{"TOTAL", strconv.Itoa(o.Projects)},
		{"ACTIVE", strconv.Itoa(o.ByStatus[domain.ProjectActive])},
		{"PLANNING", strconv.Itoa(o.ByStatus[domain.ProjectPlanning])},
		{"COMPLETED", strconv.Itoa(o.ByStatus[domain.ProjectCompleted])},
		{"ARCHIVED", strconv.Itoa(o.ByStatus[domain.ProjectArchived])},
	}))
	b.WriteString("\n" + Header("Team") + "\n")
	b.WriteString(RenderKeyValues([][2]string{
		{"MEMBERS", strconv.Itoa(o.TeamMembers)},
		{"AVAILABLE", strconv.Itoa(o.AvailableMembers)},
		{"ASSIGNMENTS", strconv.Itoa(o.ActiveAssignments)},
		{"OVER 100%", over},
	}))
	return RenderBox("Status", strings.TrimRight(b.String(), "\n"))
}
