package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/domain"
)

// RosterRow is one active membership as shown in roster tables.
type RosterRow struct {
	MembershipID   string
	Name           string
	Role           string
	Responsibility string
	Span           allocation.DateSpan
	Allocation     int
	Utilization    int
}

func rosterTable(rows []RosterRow) string {
	headers := []string{"ID", "NAME", "ROLE", "DATES", "ALLOC", "LOAD"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			TruncID(r.MembershipID),
			Bold(r.Name),
			OrDash(r.Role),
			SpanLabel(r.Span),
			Percent(r.Allocation),
			Utilization(r.Utilization),
		})
	}
	return RenderTable(headers, cells)
}

// FormatRoster renders a project's active members.
func FormatRoster(projectName string, rows []RosterRow) string {
	if len(rows) == 0 {
		return RenderBox(projectName, Dim("No members assigned."))
	}
	return RenderBox(projectName, strings.TrimRight(rosterTable(rows), "\n"))
}

// FormatAvailable renders members that can still be assigned.
func FormatAvailable(members []*domain.TeamMember) string {
	headers := []string{"ID", "NAME", "POSITION", "LEVEL"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{TruncID(m.ID), Bold(m.Name), OrDash(m.Position), SkillBadge(m.SkillLevel)})
	}
	return RenderBox("Available", RenderTable(headers, rows))
}

// FormatAllocation explains a computed allocation.
func FormatAllocation(member, project allocation.DateSpan, pct int, computed bool) string {
	pairs := [][2]string{
		{"PROJECT", SpanLabel(project)},
		{"MEMBER", SpanLabel(member)},
		{"ALLOCATION", Percent(pct)},
	}
	if !computed {
		pairs = append(pairs, [2]string{"", Dim(fmt.Sprintf("not computable from dates; default %d%%", allocation.DefaultPercent))})
	}
	return strings.TrimRight(RenderKeyValues(pairs), "\n")
}

// FormatDraft summarizes an assignment draft before it is submitted.
func FormatDraft(d *allocation.Draft, memberName, role string) string {
	mode := StyleGreen.Render("auto")
	if d.Mode() == allocation.ModeManual {
		mode = StyleYellow.Render("manual")
	}
	return strings.TrimRight(RenderKeyValues([][2]string{
		{"MEMBER", Bold(memberName)},
		{"ROLE", OrDash(role)},
		{"DATES", SpanLabel(d.Span)},
		{"ALLOCATION", Percent(d.AllocationPercent) + " " + Dim("("+mode+")")},
	}), "\n")
}
