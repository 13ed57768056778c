package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tasktory/internal/domain"
)

// FormatTeamList renders the team directory.
func FormatTeamList(members []*domain.TeamMember) string {
	headers := []string{"ID", "NAME", "POSITION", "DEPARTMENT", "LEVEL", "STATUS"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			TruncID(m.ID),
			Bold(m.Name),
			OrDash(m.Position),
			OrDash(m.Department),
			SkillBadge(m.SkillLevel),
			AvailabilityDot(m.Available),
		})
	}
	return RenderBox("Team", RenderTable(headers, rows))
}

// FormatTeamMember renders one member's profile with their current load.
func FormatTeamMember(m *domain.TeamMember, utilization int) string {
	rate := Dim("--")
	if m.HourlyRate != nil {
		rate = fmt.Sprintf("%d/h", *m.HourlyRate)
	}
	skills := Dim("--")
	if len(m.Skills) > 0 {
		skills = strings.Join(m.Skills, ", ")
	}

	var b strings.Builder
	b.WriteString(StyleBold.Render(m.Name) + "  " + Dim(m.Email) + "\n\n")
	b.WriteString(RenderKeyValues([][2]string{
		{"POSITION", OrDash(m.Position)},
		{"DEPARTMENT", OrDash(m.Department)},
		{"LEVEL", SkillBadge(m.SkillLevel)},
		{"EXPERIENCE", fmt.Sprintf("%dy", m.ExperienceYears)},
		{"SKILLS", skills},
		{"RATE", rate},
		{"STATUS", AvailabilityDot(m.Available)},
		{"LOAD", Utilization(utilization)},
		{"UUID", Dim(m.ID)},
	}))
	if m.Notes != "" {
		b.WriteString("\n" + Dim(m.Notes) + "\n")
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
