package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func januaryDraft() *allocation.Draft {
	return allocation.NewDraft("tm-1", allocation.DateSpan{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
}

func TestAssignForm_DatesDriveAllocationInAuto(t *testing.T) {
	d := januaryDraft()
	m := newAssignForm(d, nil, "", "")

	m.values.start = "2024-01-01"
	m.syncDraft()
	assert.Equal(t, 100, d.AllocationPercent)

	m.values.end = "2024-01-1"
	m.syncDraft()
	assert.Equal(t, 100, d.AllocationPercent, "partial dates are ignored")

	m.values.end = "2024-01-16"
	m.syncDraft()
	assert.Equal(t, 50, d.AllocationPercent)
	assert.Equal(t, allocation.ModeAuto, d.Mode())
	assert.Contains(t, stripANSI(m.allocationLine()), "auto")
}

func TestAssignForm_ManualEditSticks(t *testing.T) {
	d := januaryDraft()
	m := newAssignForm(d, nil, "", "")
	m.values.start, m.values.end = "2024-01-01", "2024-01-16"
	m.syncDraft()
	require.Equal(t, 50, d.AllocationPercent)

	drv := teatest.New(t, m)
	drv.Press(tea.KeyCtrlE)
	require.True(t, m.editing)
	assert.Equal(t, allocation.ModeManual, d.Mode())
	assert.Equal(t, "50", m.alloc.Value())

	drv.Backspace(2)
	drv.Type("75")
	drv.Press(tea.KeyEnter)

	assert.False(t, m.editing)
	assert.Equal(t, 75, d.AllocationPercent)

	m.values.end = "2024-01-31"
	m.syncDraft()
	assert.Equal(t, 75, d.AllocationPercent, "dates no longer drive a manual draft")
	assert.Contains(t, stripANSI(m.allocationLine()), "manual")
}

func TestAssignForm_RejectsOutOfRangeAllocation(t *testing.T) {
	d := januaryDraft()
	m := newAssignForm(d, nil, "", "")

	drv := teatest.New(t, m)
	drv.Press(tea.KeyCtrlE)
	drv.Backspace(3)
	drv.Type("150")
	drv.Press(tea.KeyEnter)

	assert.True(t, m.editing)
	assert.NotEmpty(t, m.allocErr)
	assert.Equal(t, 100, d.AllocationPercent)
}

func TestAssignForm_EscCancels(t *testing.T) {
	m := newAssignForm(januaryDraft(), nil, "", "")
	drv := teatest.New(t, m)
	drv.Press(tea.KeyEsc)
	assert.True(t, m.cancelled)
	assert.True(t, drv.Quitting)
}

func TestAssignForm_EscWhileEditingKeepsForm(t *testing.T) {
	d := januaryDraft()
	m := newAssignForm(d, nil, "", "")
	drv := teatest.New(t, m)
	drv.Press(tea.KeyCtrlE)
	drv.Press(tea.KeyEsc)

	assert.False(t, m.editing)
	assert.False(t, m.cancelled)
	assert.False(t, drv.Quitting)
	assert.Equal(t, allocation.ModeManual, d.Mode())
	assert.Equal(t, 100, d.AllocationPercent)
}

func TestAssignForm_PrefillsResumedDraft(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	project := allocation.DateSpan{Start: start, End: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}
	d := allocation.ResumeDraft("tm-1", allocation.DateSpan{Start: start, End: end}, 30, project)

	m := newAssignForm(d, nil, "Data Wrangler", "ETL")
	assert.Equal(t, "2024-01-01", m.values.start)
	assert.Equal(t, "2024-01-16", m.values.end)

	m.syncDraft()
	assert.Equal(t, 30, d.AllocationPercent, "unchanged dates do not recompute")

	role, resp := m.assignment()
	assert.Equal(t, "Data Wrangler", role)
	assert.Equal(t, "ETL", resp)
	assert.Equal(t, "Data Wrangler", roleOptions(role)[0])
}

func TestAssignForm_MemberPickerDefaultsToFirstCandidate(t *testing.T) {
	d := allocation.NewDraft("", allocation.DateSpan{})
	candidates := []*domain.TeamMember{{ID: "a", Name: "Ada"}, {ID: "b", Name: "Bob"}}
	m := newAssignForm(d, candidates, "", "")

	m.syncDraft()
	assert.Equal(t, "a", d.MemberID)
	assert.Equal(t, domain.ProjectRoles[0], m.values.role)
}
