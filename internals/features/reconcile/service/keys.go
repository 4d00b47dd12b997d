// file: internals/features/reconcile/service/keys.go
package service

import "fmt"

// CohortKey identifies a group of students that share one timetable.
// The same triple is duplicated on students and timetable sessions, which
// is exactly why the reconciliation pass exists.
type CohortKey struct {
	Department string
	Semester   int
	Section    string
}

func (k CohortKey) String() string {
	return fmt.Sprintf("%s Sem%d Sec%s", k.Department, k.Semester, k.Section)
}

// YearOfSemester maps a semester to its display year: {1,2}→1, {3,4}→2, …
// Total for semester >= 1.
func YearOfSemester(semester int) int {
	if semester < 1 {
		semester = 1
	}
	return (semester + 1) / 2
}

// FirstSemesterOfYear is the inverse: first semester of year N.
func FirstSemesterOfYear(year int) int {
	if year < 1 {
		year = 1
	}
	return (year-1)*2 + 1
}

// SemestersOfYear returns the semester pair of a display year.
func SemestersOfYear(year int) (int, int) {
	first := FirstSemesterOfYear(year)
	return first, first + 1
}
