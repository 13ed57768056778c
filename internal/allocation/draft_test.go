package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func januaryProject() DateSpan {
	return span(date(2024, 1, 1), date(2024, 1, 31))
}

func TestNewDraft_StartsAutoWithDefault(t *testing.T) {
	d := NewDraft("m-1", januaryProject())
	assert.Equal(t, ModeAuto, d.Mode())
	assert.Equal(t, DefaultPercent, d.AllocationPercent)
	assert.False(t, d.AllocationEditable())
	assert.Equal(t, januaryProject(), d.Project())
}

func TestDraft_AutoFillsWhenAllDatesPresent(t *testing.T) {
	d := NewDraft("m-1", januaryProject())

	d.SetStart(date(2024, 1, 1))
	assert.Equal(t, DefaultPercent, d.AllocationPercent, "only start set: untouched")

	d.SetEnd(date(2024, 1, 16))
	assert.Equal(t, 50, d.AllocationPercent)
	assert.Equal(t, ModeAuto, d.Mode())
}

func TestDraft_ManualStopsRecompute(t *testing.T) {
	d := NewDraft("m-1", januaryProject())
	d.SetStart(date(2024, 1, 1))
	d.SetEnd(date(2024, 1, 16))
	assert.Equal(t, 50, d.AllocationPercent)

	d.SetAllocation(80)
	assert.Equal(t, ModeManual, d.Mode())
	assert.True(t, d.AllocationEditable())

	d.SetEnd(date(2024, 1, 31))
	assert.Equal(t, 80, d.AllocationPercent, "manual value must survive date edits")
	assert.Equal(t, ModeManual, d.Mode())

	d.SetStart(date(2024, 1, 20))
	assert.Equal(t, 80, d.AllocationPercent)
}

func TestDraft_MissingProjectDatesKeepsValue(t *testing.T) {
	d := NewDraft("m-1", DateSpan{Start: date(2024, 1, 1)})
	d.SetStart(date(2024, 1, 1))
	d.SetEnd(date(2024, 1, 5))
	assert.Equal(t, DefaultPercent, d.AllocationPercent)
}

func TestDraft_ZeroLengthProjectFallsBackToDefault(t *testing.T) {
	d := NewDraft("m-1", januaryProject())
	d.SetStart(date(2024, 1, 1))
	d.SetEnd(date(2024, 1, 16))
	assert.Equal(t, 50, d.AllocationPercent)

	z := NewDraft("m-2", span(date(2024, 1, 1), date(2024, 1, 1)))
	z.SetStart(date(2024, 1, 1))
	z.SetEnd(date(2024, 1, 16))
	assert.Equal(t, DefaultPercent, z.AllocationPercent)
}

func TestDraft_ClearingADateLeavesLastValue(t *testing.T) {
	d := NewDraft("m-1", januaryProject())
	d.SetStart(date(2024, 1, 1))
	d.SetEnd(date(2024, 1, 7))
	got := d.AllocationPercent

	d.SetEnd(time.Time{})
	assert.Equal(t, got, d.AllocationPercent)
	assert.Equal(t, ModeAuto, d.Mode())
}

func TestDraft_TakeManualControlKeepsValue(t *testing.T) {
	d := NewDraft("m-1", januaryProject())
	d.SetStart(date(2024, 1, 1))
	d.SetEnd(date(2024, 1, 16))

	d.TakeManualControl()
	assert.Equal(t, ModeManual, d.Mode())
	assert.Equal(t, 50, d.AllocationPercent)

	d.SetEnd(date(2024, 1, 31))
	assert.Equal(t, 50, d.AllocationPercent)
}

func TestMode_NextNeverReturnsToAuto(t *testing.T) {
	events := []Event{EventDateEdited, EventAllocationEdited}
	for _, e := range events {
		assert.Equal(t, ModeManual, ModeManual.Next(e))
	}
	assert.Equal(t, ModeAuto, ModeAuto.Next(EventDateEdited))
	assert.Equal(t, ModeManual, ModeAuto.Next(EventAllocationEdited))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "auto", ModeAuto.String())
	assert.Equal(t, "manual", ModeManual.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestResumeDraft_KeepsStoredValueUntilDateEdit(t *testing.T) {
	span := DateSpan{Start: date(2024, 1, 1), End: date(2024, 1, 16)}
	d := ResumeDraft("m-1", span, 30, januaryProject())

	assert.Equal(t, ModeAuto, d.Mode())
	assert.Equal(t, 30, d.AllocationPercent, "stored value survives reopening")

	d.SetEnd(date(2024, 1, 31))
	assert.Equal(t, 100, d.AllocationPercent)
}
