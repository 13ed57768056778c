package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DateOrDash formats an optional calendar date, or a dimmed "--".
func DateOrDash(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Dim("--")
	}
	return t.Format(allocation.DateLayout)
}

// SpanLabel renders "start → end" with dashes for missing bounds and the day
// count when both are known.
func SpanLabel(s allocation.DateSpan) string {
	var start, end *time.Time
	if !s.Start.IsZero() {
		start = &s.Start
	}
	if !s.End.IsZero() {
		end = &s.End
	}
	label := DateOrDash(start) + " → " + DateOrDash(end)
	if s.Complete() {
		label += Dim(fmt.Sprintf(" (%dd)", s.Days()))
	}
	return label
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectPlanning:
		return StyleBlue.Render("○ Planning")
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectCancelled:
		return StyleRed.Render("⊘ Cancelled")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// SkillBadge colors a skill level.
func SkillBadge(level domain.SkillLevel) string {
	switch level {
	case domain.SkillSenior:
		return StylePurple.Render(string(level))
	case domain.SkillMid:
		return StyleBlue.Render(string(level))
	case domain.SkillJunior:
		return StyleFg.Render(string(level))
	default:
		return Dim("--")
	}
}

// AvailabilityDot is a green dot for available members, dim otherwise.
func AvailabilityDot(available bool) string {
	if available {
		return StyleGreen.Render("● available")
	}
	return StyleDim.Render("○ busy")
}

// Percent renders an allocation percentage in its threshold color.
func Percent(pct int) string {
	return AllocationColor(pct).Render(fmt.Sprintf("%d%%", pct))
}

// Utilization renders total load, marking anything above 100%.
func Utilization(pct int) string {
	text := fmt.Sprintf("%d%%", pct)
	if pct > 100 {
		text += " ▲"
	}
	return UtilizationColor(pct).Render(text)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// OrDash dims "--" in place of an empty string.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
