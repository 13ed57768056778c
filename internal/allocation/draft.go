package allocation

import "time"

// Mode says who controls a draft's allocation value.
type Mode int

const (
	// ModeAuto: the allocation is derived from the dates and not user-editable.
	ModeAuto Mode = iota
	// ModeManual: the user has written the allocation directly. Terminal.
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Event is an edit applied to a draft.
type Event int

const (
	EventDateEdited Event = iota
	EventAllocationEdited
)

// Next is the only transition function for Mode. No event leads back to Auto.
func (m Mode) Next(e Event) Mode {
	if m == ModeAuto && e == EventAllocationEdited {
		return ModeManual
	}
	if m == ModeManual {
		return ModeManual
	}
	return m
}

// Draft is an in-memory, not yet submitted project-member assignment.
// The zero value is not usable; call NewDraft.
type Draft struct {
	MemberID          string
	Span              DateSpan
	AllocationPercent int

	project DateSpan
	mode    Mode
}

// NewDraft opens a draft in Auto mode against the given project window.
func NewDraft(memberID string, project DateSpan) *Draft {
	return &Draft{
		MemberID:          memberID,
		AllocationPercent: DefaultPercent,
		project:           project,
		mode:              ModeAuto,
	}
}

// ResumeDraft reopens a stored assignment for editing. It starts in Auto and
// keeps the stored allocation until a date is edited.
func ResumeDraft(memberID string, span DateSpan, pct int, project DateSpan) *Draft {
	return &Draft{
		MemberID:          memberID,
		Span:              span,
		AllocationPercent: pct,
		project:           project,
		mode:              ModeAuto,
	}
}

// Mode returns the current control mode.
func (d *Draft) Mode() Mode { return d.mode }

// Project returns the project window the draft computes against.
func (d *Draft) Project() DateSpan { return d.project }

// AllocationEditable reports whether the allocation field accepts direct input.
func (d *Draft) AllocationEditable() bool { return d.mode == ModeManual }

// SetStart records a member start date edit. A zero time clears the bound.
func (d *Draft) SetStart(t time.Time) {
	d.Span.Start = t
	d.dateEdited()
}

// SetEnd records a member end date edit. A zero time clears the bound.
func (d *Draft) SetEnd(t time.Time) {
	d.Span.End = t
	d.dateEdited()
}

// SetAllocation is a direct user write of the allocation value. The draft
// becomes Manual and stays Manual.
func (d *Draft) SetAllocation(pct int) {
	d.AllocationPercent = pct
	d.mode = d.mode.Next(EventAllocationEdited)
}

// TakeManualControl switches to Manual without changing the value.
func (d *Draft) TakeManualControl() {
	d.mode = d.mode.Next(EventAllocationEdited)
}

func (d *Draft) dateEdited() {
	d.mode = d.mode.Next(EventDateEdited)
	if d.mode != ModeAuto {
		return
	}
	if d.Span.Complete() && d.project.Complete() {
		d.AllocationPercent = Compute(d.Span, d.project)
	}
}
