package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var errFormCancelled = errors.New("cancelled")

type assignKeyMap struct {
	EditAllocation key.Binding
	Commit         key.Binding
	Cancel         key.Binding
}

func defaultAssignKeys() assignKeyMap {
	return assignKeyMap{
		EditAllocation: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "set allocation")),
		Commit:         key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "confirm")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k assignKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditAllocation, k.Commit, k.Cancel}
}

func (k assignKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// assignValues holds the raw strings bound to the huh fields.
type assignValues struct {
	memberID       string
	role           string
	responsibility string
	start          string
	end            string
}

// assignForm edits an allocation draft. Date edits are replayed onto the
// draft as they are typed; the allocation line is read-only until the user
// takes manual control, after which the dates no longer drive it.
type assignForm struct {
	draft  *allocation.Draft
	values *assignValues
	form   *huh.Form

	alloc    textinput.Model
	editing  bool
	allocErr string

	appliedStart string
	appliedEnd   string

	keys assignKeyMap
	help help.Model

	cancelled bool
	submitted bool
}

// newAssignForm builds the form. A member picker is shown only when
// candidates is non-empty; otherwise draft.MemberID is fixed.
func newAssignForm(draft *allocation.Draft, candidates []*domain.TeamMember, role, responsibility string) *assignForm {
	v := &assignValues{
		memberID:       draft.MemberID,
		role:           role,
		responsibility: responsibility,
		start:          formatFormDate(draft.Span.Start),
		end:            formatFormDate(draft.Span.End),
	}
	if v.role == "" {
		v.role = domain.ProjectRoles[0]
	}

	var fields []huh.Field
	if len(candidates) > 0 {
		opts := make([]huh.Option[string], 0, len(candidates))
		for _, c := range candidates {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Position), c.ID))
		}
		if v.memberID == "" {
			v.memberID = candidates[0].ID
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Team member").
			Options(opts...).
			Value(&v.memberID))
	}
	fields = append(fields,
		huh.NewSelect[string]().
			Title("Role").
			Options(huh.NewOptions(roleOptions(v.role)...)...).
			Value(&v.role),
		huh.NewInput().
			Title("Responsibility").
			Placeholder("optional").
			Value(&v.responsibility),
		huh.NewInput().
			Title("Start date").
			Placeholder("YYYY-MM-DD").
			Validate(validateOptionalDate).
			Value(&v.start),
		huh.NewInput().
			Title("End date").
			Placeholder("YYYY-MM-DD").
			Validate(validateOptionalDate).
			Value(&v.end),
	)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.Placeholder = "0-100"

	return &assignForm{
		draft:        draft,
		values:       v,
		form:         huh.NewForm(huh.NewGroup(fields...)).WithTheme(tasktoryHuhTheme()).WithShowHelp(false),
		alloc:        ti,
		appliedStart: v.start,
		appliedEnd:   v.end,
		keys:         defaultAssignKeys(),
		help:         help.New(),
	}
}

func roleOptions(current string) []string {
	for _, r := range domain.ProjectRoles {
		if r == current {
			return domain.ProjectRoles
		}
	}
	return append([]string{current}, domain.ProjectRoles...)
}

func (m *assignForm) Init() tea.Cmd {
	return m.form.Init()
}

func (m *assignForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.editing {
			return m, m.updateAllocation(keyMsg)
		}
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.EditAllocation):
			return m, m.startEditing()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	m.syncDraft()

	switch m.form.State {
	case huh.StateCompleted:
		m.submitted = true
		return m, tea.Quit
	case huh.StateAborted:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *assignForm) startEditing() tea.Cmd {
	m.draft.TakeManualControl()
	m.editing = true
	m.allocErr = ""
	m.alloc.SetValue(strconv.Itoa(m.draft.AllocationPercent))
	m.alloc.CursorEnd()
	return m.alloc.Focus()
}

func (m *assignForm) updateAllocation(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return nil
	case key.Matches(msg, m.keys.Commit):
		pct, err := parsePercent(m.alloc.Value())
		if err != nil {
			m.allocErr = err.Error()
			return nil
		}
		m.draft.SetAllocation(pct)
		m.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	m.alloc, cmd = m.alloc.Update(msg)
	return cmd
}

func (m *assignForm) stopEditing() {
	m.editing = false
	m.allocErr = ""
	m.alloc.Blur()
}

// syncDraft replays changed inputs onto the draft. Half-typed dates are
// ignored until they parse.
func (m *assignForm) syncDraft() {
	if m.values.memberID != "" {
		m.draft.MemberID = m.values.memberID
	}
	if v := strings.TrimSpace(m.values.start); v != m.appliedStart {
		if t, ok := parseFormDate(v); ok {
			m.draft.SetStart(t)
			m.appliedStart = v
		}
	}
	if v := strings.TrimSpace(m.values.end); v != m.appliedEnd {
		if t, ok := parseFormDate(v); ok {
			m.draft.SetEnd(t)
			m.appliedEnd = v
		}
	}
}

func (m *assignForm) View() string {
	return m.form.View() + "\n\n" + m.allocationLine() + "\n" + m.help.View(m.keys) + "\n"
}

// allocationLine shows the draft's allocation, or the input while editing.
func (m *assignForm) allocationLine() string {
	label := formatter.StyleHeader.Render("Allocation") + "  "
	if m.editing {
		line := label + m.alloc.View() + "%"
		if m.allocErr != "" {
			line += "  " + formatter.StyleRed.Render(m.allocErr)
		}
		return line
	}
	mode := formatter.Dim("(auto, follows the dates)")
	if m.draft.AllocationEditable() {
		mode = formatter.Dim("(manual)")
	}
	return label + formatter.Percent(m.draft.AllocationPercent) + "  " + mode
}

// assignment returns the submitted role and responsibility.
func (m *assignForm) assignment() (role, responsibility string) {
	return m.values.role, m.values.responsibility
}

func runAssignForm(in io.Reader, out io.Writer, m *assignForm) error {
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return fmt.Errorf("running assignment form: %w", err)
	}
	if f, ok := final.(*assignForm); !ok || f.cancelled || !f.submitted {
		return errFormCancelled
	}
	return nil
}

func parseFormDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(allocation.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func formatFormDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(allocation.DateLayout)
}
