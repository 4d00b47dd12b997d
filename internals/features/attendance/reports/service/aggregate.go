// file: internals/features/attendance/reports/service/aggregate.go
package service

import "math"

const (
	StatusQualified = "Qualified"
	StatusShortage  = "Shortage"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage is attended/total as a percentage, 2 decimals. A student
// with no marks at all has 0%, not an error and not 100%.
func Percentage(attended, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(attended) * 100 / float64(total))
}

// Classify buckets a percentage against the compliance threshold. Exactly
// at the threshold is Qualified.
func Classify(pct, threshold float64) string {
	if pct >= threshold {
		return StatusQualified
	}
	return StatusShortage
}

// OverallOf is the arithmetic mean of per-subject percentages, 2 decimals.
// Subjects weigh equally regardless of how many sessions each held.
func OverallOf(pcts []float64) float64 {
	if len(pcts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pcts {
		sum += p
	}
	return Round2(sum / float64(len(pcts)))
}
