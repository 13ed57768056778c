package allocation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted by forms and flags.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// DateSpan is a pair of calendar dates. A zero bound is treated as missing.
// End before Start is allowed and produces a negative day count.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// NewDateSpan builds a span from optional bounds.
func NewDateSpan(start, end *time.Time) DateSpan {
	var s DateSpan
	if start != nil {
		s.Start = *start
	}
	if end != nil {
		s.End = *end
	}
	return s
}

// ParseDateSpan parses YYYY-MM-DD bounds. An empty (or blank) string leaves
// the bound missing.
func ParseDateSpan(start, end string) (DateSpan, error) {
	var s DateSpan
	var err error
	if s.Start, err = parseOptionalDate(start); err != nil {
		return DateSpan{}, fmt.Errorf("parsing start date: %w", err)
	}
	if s.End, err = parseOptionalDate(end); err != nil {
		return DateSpan{}, fmt.Errorf("parsing end date: %w", err)
	}
	return s, nil
}

func parseOptionalDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, v)
}

// Complete reports whether both bounds are present.
func (s DateSpan) Complete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Days returns the whole calendar days from Start to End. Both bounds are
// truncated to their calendar date in their own location first, so a
// daylight-saving shift between them never yields a fractional day.
func (s DateSpan) Days() int {
	return int(calendarDate(s.End).Sub(calendarDate(s.Start)) / day)
}

// String renders the span as "start..end" with "?" for missing bounds.
func (s DateSpan) String() string {
	return formatBound(s.Start) + ".." + formatBound(s.End)
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return t.Format(DateLayout)
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
