// file: internals/features/attendance/reports/service/report_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "kampusku_backend/internals/features/academics/students/model"
)

func mkStudent(id int64, name, rollNo string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:         id,
		StudentName:       name,
		StudentRollNo:     rollNo,
		StudentDepartment: "CSE",
		StudentSemester:   3,
		StudentSection:    "A",
		StudentIsActive:   true,
	}
}

func TestShortageEntries_StrictlyBelowThreshold(t *testing.T) {
	students := []studentModel.StudentModel{
		mkStudent(1, "At Threshold", "R001"),
		mkStudent(2, "Just Below", "R002"),
		mkStudent(3, "Well Above", "R003"),
	}
	rows := []subjectCountRow{
		// Student 1: exactly 75.00% (3 of 4), compliant.
		{StudentID: 1, SubjectID: 10, Total: 4, Attended: 3},
		// Student 2: 74.50% (149 of 200), shortage.
		{StudentID: 2, SubjectID: 10, Total: 200, Attended: 149},
		// Student 3: 80%.
		{StudentID: 3, SubjectID: 10, Total: 10, Attended: 8},
	}

	entries := shortageEntries(students, rows, 75.0)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].StudentID)
	assert.Equal(t, 74.5, entries[0].Overall)
}

func TestShortageEntries_NoMarksIsSelectedAtZero(t *testing.T) {
	students := []studentModel.StudentModel{
		mkStudent(1, "Never Marked", "R001"),
	}

	entries := shortageEntries(students, nil, 75.0)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].Overall)
}

func TestShortageEntries_OverallIsMeanOfSubjects(t *testing.T) {
	students := []studentModel.StudentModel{
		mkStudent(1, "Uneven", "R001"),
	}
	// 100% in a 2-session subject, 50% in a 40-session subject. The mean
	// of the percentages (75%) clears the bar even though the raw session
	// ratio would not.
	rows := []subjectCountRow{
		{StudentID: 1, SubjectID: 10, Total: 2, Attended: 2},
		{StudentID: 1, SubjectID: 11, Total: 40, Attended: 20},
	}

	entries := shortageEntries(students, rows, 75.0)
	assert.Empty(t, entries)
}
