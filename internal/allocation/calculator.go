package allocation

import "math"

// DefaultPercent is used whenever the allocation cannot be derived from dates.
const DefaultPercent = 100

// TryCompute returns the member's share of the project duration as an integer
// percentage in [0, 100]. ok is false when either span is incomplete or the
// project window has zero length; the returned value is then DefaultPercent.
//
// A member span that ends before it starts is not rejected: the negative ratio
// clamps to 0. A reversed project window likewise clamps to 0 or 100.
func TryCompute(member, project DateSpan) (pct int, ok bool) {
	if !member.Complete() || !project.Complete() {
		return DefaultPercent, false
	}

	totalDays := project.Days()
	if totalDays == 0 {
		return DefaultPercent, false
	}
	memberDays := member.Days()

	raw := roundHalfUp(float64(memberDays) / float64(totalDays) * 100)
	return clampPercent(raw), true
}

// Compute is TryCompute without the computability flag.
func Compute(member, project DateSpan) int {
	pct, _ := TryCompute(member, project)
	return pct
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// ValidPercent reports whether v is an acceptable stored allocation.
func ValidPercent(v int) bool {
	return v >= 0 && v <= 100
}
