// file: internals/features/attendance/reports/service/aggregate_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 80.0, Percentage(8, 10))
	assert.Equal(t, 100.0, Percentage(10, 10))
	assert.Equal(t, 0.0, Percentage(0, 10))
	assert.Equal(t, 66.67, Percentage(2, 3), "rounded to 2 decimals")
	assert.Equal(t, 33.33, Percentage(1, 3))
}

func TestPercentage_NoSessions(t *testing.T) {
	// No marks at all is 0%, never a division error and never 100%.
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusQualified, Classify(80.0, 75.0))
	assert.Equal(t, StatusQualified, Classify(75.0, 75.0), "exactly at threshold qualifies")
	assert.Equal(t, StatusShortage, Classify(74.99, 75.0))
	assert.Equal(t, StatusShortage, Classify(0.0, 75.0))
}

func TestOverallOf(t *testing.T) {
	assert.Equal(t, 0.0, OverallOf(nil))
	assert.Equal(t, 80.0, OverallOf([]float64{80.0}))
	// Mean of subject percentages, subjects weigh equally.
	assert.Equal(t, 75.0, OverallOf([]float64{100.0, 50.0}))
	assert.Equal(t, 77.78, OverallOf([]float64{66.67, 88.89, 77.78}))
}

func TestShortageSelection(t *testing.T) {
	threshold := 75.0
	// Strictly below is selected; exactly at threshold is not.
	assert.NotEqual(t, StatusShortage, Classify(75.0, threshold))
	assert.Equal(t, StatusShortage, Classify(74.99, threshold))
}
