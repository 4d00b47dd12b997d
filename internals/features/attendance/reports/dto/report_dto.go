// file: internals/features/attendance/reports/dto/report_dto.go
package dto

// SubjectAttendance is one row of a student's per-subject breakdown.
type SubjectAttendance struct {
	SubjectID        int64   `json:"subject_id"`
	SubjectCode      string  `json:"subject_code"`
	SubjectName      string  `json:"subject_name"`
	TotalSessions    int64   `json:"total_sessions"`
	AttendedSessions int64   `json:"attended_sessions"`
	Percentage       float64 `json:"percentage"`
	Status           string  `json:"status"`
}

// StudentReport is the full report for one student: breakdown plus the
// overall percentage (mean of the subject percentages).
type StudentReport struct {
	StudentID     int64               `json:"student_id"`
	StudentName   string              `json:"student_name"`
	StudentRollNo string              `json:"student_roll_no"`
	Overall       float64             `json:"overall_percentage"`
	Status        string              `json:"status"`
	Threshold     float64             `json:"threshold"`
	Subjects      []SubjectAttendance `json:"subjects"`
}

// LowAttendanceEntry is one student selected by the shortage filter.
type LowAttendanceEntry struct {
	StudentID     int64   `json:"student_id"`
	StudentName   string  `json:"student_name"`
	StudentRollNo string  `json:"student_roll_no"`
	Department    string  `json:"department"`
	Semester      int     `json:"semester"`
	Section       string  `json:"section"`
	Overall       float64 `json:"overall_percentage"`
}

// SubjectPeriodSummary aggregates one subject across all students for the
// admin period report.
type SubjectPeriodSummary struct {
	SubjectID   int64   `json:"subject_id"`
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	TotalMarks  int64   `json:"total_marks"`
	Attended    int64   `json:"attended"`
	Percentage  float64 `json:"percentage"`
}
