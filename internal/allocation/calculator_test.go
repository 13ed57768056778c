package allocation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func span(start, end time.Time) DateSpan {
	return DateSpan{Start: start, End: end}
}

func TestCompute_HalfOfProject(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 1, 31)) // 30 days
	member := span(date(2024, 1, 1), date(2024, 1, 16))  // 15 days

	pct, ok := TryCompute(member, project)
	assert.True(t, ok)
	assert.Equal(t, 50, pct)
}

func TestCompute_MemberWiderThanProject_ClampsTo100(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 1, 11)) // 10 days
	member := span(date(2024, 1, 1), date(2024, 1, 21))  // 20 days

	assert.Equal(t, 100, Compute(member, project))
}

func TestCompute_EqualSpans(t *testing.T) {
	project := span(date(2024, 3, 1), date(2024, 6, 30))
	assert.Equal(t, 100, Compute(project, project))
}

func TestCompute_ZeroLengthMember(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 2, 1))
	member := span(date(2024, 1, 10), date(2024, 1, 10))

	pct, ok := TryCompute(member, project)
	assert.True(t, ok)
	assert.Equal(t, 0, pct)
}

func TestCompute_ReversedMemberClampsToZero(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 1, 31))
	member := span(date(2024, 1, 20), date(2024, 1, 5))

	pct, ok := TryCompute(member, project)
	assert.True(t, ok)
	assert.Equal(t, 0, pct)
}

func TestCompute_ReversedProjectClamps(t *testing.T) {
	project := span(date(2024, 1, 31), date(2024, 1, 1))
	forward := span(date(2024, 1, 1), date(2024, 1, 16))
	backward := span(date(2024, 2, 15), date(2024, 1, 1)) // -45 / -30 = 150%

	assert.Equal(t, 0, Compute(forward, project))
	assert.Equal(t, 100, Compute(backward, project))
}

func TestCompute_MissingMemberEnd_ReturnsDefault(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 1, 31))
	member := DateSpan{Start: date(2024, 1, 5)}

	pct, ok := TryCompute(member, project)
	assert.False(t, ok)
	assert.Equal(t, DefaultPercent, pct)
}

func TestCompute_MissingProjectBound_ReturnsDefault(t *testing.T) {
	project := DateSpan{End: date(2024, 1, 31)}
	member := span(date(2024, 1, 1), date(2024, 1, 2))

	assert.Equal(t, DefaultPercent, Compute(member, project))
}

func TestCompute_ZeroLengthProject_ReturnsDefault(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 1, 1))
	member := span(date(2024, 1, 1), date(2024, 1, 5))

	pct, ok := TryCompute(member, project)
	assert.False(t, ok)
	assert.Equal(t, DefaultPercent, pct)
}

func TestCompute_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% -> 13
	project := span(date(2024, 1, 1), date(2024, 1, 9))
	member := span(date(2024, 1, 1), date(2024, 1, 2))

	assert.Equal(t, 13, Compute(member, project))
}

func TestCompute_CalendarDaysAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Spring-forward on 2024-03-10 shortens that day to 23 hours.
	project := span(time.Date(2024, 3, 1, 0, 0, 0, 0, ny), time.Date(2024, 3, 21, 0, 0, 0, 0, ny))
	member := span(time.Date(2024, 3, 5, 0, 0, 0, 0, ny), time.Date(2024, 3, 15, 0, 0, 0, 0, ny))

	assert.Equal(t, 20, project.Days())
	assert.Equal(t, 10, member.Days())
	assert.Equal(t, 50, Compute(member, project))
}

func TestCompute_IgnoresTimeOfDay(t *testing.T) {
	project := span(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 11, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, 10, project.Days())
}

func TestCompute_Idempotent(t *testing.T) {
	project := span(date(2024, 1, 1), date(2024, 4, 1))
	member := span(date(2024, 2, 1), date(2024, 2, 20))

	first := Compute(member, project)
	second := Compute(member, project)
	assert.Equal(t, first, second)
}

// TestCompute_Invariant_ContainedSpansStayInRange property-tests that member
// spans contained in a non-degenerate project window always yield [0, 100].
func TestCompute_Invariant_ContainedSpansStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := date(2023, 1, 1)

	for trial := 0; trial < 500; trial++ {
		projectDays := rng.Intn(720) + 1
		project := span(base, base.AddDate(0, 0, projectDays))

		startOff := rng.Intn(projectDays + 1)
		endOff := startOff + rng.Intn(projectDays-startOff+1)
		member := span(base.AddDate(0, 0, startOff), base.AddDate(0, 0, endOff))

		pct, ok := TryCompute(member, project)
		require.True(t, ok, "trial %d", trial)
		assert.GreaterOrEqual(t, pct, 0, "trial %d", trial)
		assert.LessOrEqual(t, pct, 100, "trial %d", trial)
	}
}

func TestParseDateSpan(t *testing.T) {
	s, err := ParseDateSpan("2024-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), s.Start)
	assert.True(t, s.End.IsZero())
	assert.False(t, s.Complete())
	assert.Equal(t, "2024-01-01..?", s.String())

	_, err = ParseDateSpan("2024-13-01", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "start date")

	_, err = ParseDateSpan("", "01/02/2024")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "end date")
}

func TestNewDateSpan(t *testing.T) {
	start := date(2024, 5, 1)
	s := NewDateSpan(&start, nil)
	assert.Equal(t, start, s.Start)
	assert.True(t, s.End.IsZero())
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ValidPercent(0))
	assert.True(t, ValidPercent(100))
	assert.False(t, ValidPercent(-1))
	assert.False(t, ValidPercent(101))
}
