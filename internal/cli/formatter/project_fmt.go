package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tasktory/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "START", "END"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}
		if strings.TrimSpace(id) == "" {
			id = "--"
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			StatusPill(p.Status),
			DateOrDash(p.StartDate),
			DateOrDash(p.EndDate),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectInspect renders a project card: metadata followed by the
// active roster.
func FormatProjectInspect(p *domain.Project, roster []RosterRow) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderKeyValues([][2]string{
		{"STATUS", StatusPill(p.Status)},
		{"ID", Dim(p.DisplayID())},
		{"UUID", TruncID(p.ID)},
		{"WINDOW", SpanLabel(p.Window())},
	}))

	b.WriteString("\n" + Header(fmt.Sprintf("Members (%d)", len(roster))) + "\n")
	if len(roster) == 0 {
		b.WriteString(Dim("No members assigned.") + "\n")
	} else {
		b.WriteString(rosterTable(roster))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
