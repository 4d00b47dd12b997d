// file: internals/features/reconcile/service/keys_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearOfSemester(t *testing.T) {
	cases := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 8: 4}
	for sem, want := range cases {
		assert.Equal(t, want, YearOfSemester(sem), "semester %d", sem)
	}
	assert.Equal(t, 1, YearOfSemester(0), "invalid semester clamps to year 1")
	assert.Equal(t, 1, YearOfSemester(-3))
}

func TestSemesterYearRoundTrip(t *testing.T) {
	for year := 1; year <= 4; year++ {
		first, second := SemestersOfYear(year)
		assert.Equal(t, year, YearOfSemester(first))
		assert.Equal(t, year, YearOfSemester(second))
		assert.Equal(t, first+1, second)
	}
}

func TestCohortKeyString(t *testing.T) {
	k := CohortKey{Department: "CSE", Semester: 4, Section: "B"}
	assert.Equal(t, "CSE Sem4 SecB", k.String())
}
