package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tasktory/internal/domain"
)

// FormatTemplateList renders the template catalog.
func FormatTemplateList(templates []*domain.ProjectTemplate) string {
	headers := []string{"ID", "NAME", "CATEGORY", "DURATION", "TEAM", "SKILLS"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Name),
			t.Category,
			durationLabel(t.EstimatedDays),
			strconv.Itoa(t.TeamSize),
			skillsLabel(t.RequiredSkills),
		})
	}
	return RenderBox("Templates", RenderTable(headers, rows))
}

// FormatTemplate renders one template in full.
func FormatTemplate(t *domain.ProjectTemplate) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(t.Name) + "  " + Dim(t.Category) + "\n\n")
	b.WriteString(RenderKeyValues([][2]string{
		{"DESCRIPTION", OrDash(t.Description)},
		{"DURATION", durationLabel(t.EstimatedDays)},
		{"TEAM SIZE", strconv.Itoa(t.TeamSize)},
		{"SKILLS", skillsLabel(t.RequiredSkills)},
		{"UUID", Dim(t.ID)},
	}))
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func durationLabel(days *int) string {
	if days == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%dd", *days)
}

func skillsLabel(skills []string) string {
	if len(skills) == 0 {
		return Dim("--")
	}
	return strings.Join(skills, ", ")
}
