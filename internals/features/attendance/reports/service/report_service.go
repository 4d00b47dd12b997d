// file: internals/features/attendance/reports/service/report_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	studentModel "kampusku_backend/internals/features/academics/students/model"
	"kampusku_backend/internals/features/attendance/reports/dto"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// subjectCountRow is the shape of the grouped attendance query. Attended
// counts PRESENT and OD.
type subjectCountRow struct {
	StudentID   int64
	SubjectID   int64
	SubjectCode string
	SubjectName string
	Total       int64
	Attended    int64
}

const subjectCountsSQL = `
SELECT a.attendance_student_id AS student_id,
       s.subject_id,
       s.subject_code,
       s.subject_name,
       COUNT(*) AS total,
       COUNT(*) FILTER (WHERE a.attendance_status IN ('PRESENT','OD')) AS attended
  FROM session_attendances a
  JOIN timetable_sessions ts ON ts.session_id = a.attendance_session_id
  JOIN subjects s ON s.subject_id = ts.session_subject_id
 WHERE a.attendance_student_id = ANY(?)
   AND (? OR a.attendance_date >= ?)
   AND (? OR a.attendance_date <= ?)
 GROUP BY a.attendance_student_id, s.subject_id, s.subject_code, s.subject_name`

func (svc *ReportService) subjectCounts(ctx context.Context, studentIDs []int64, from, to time.Time) ([]subjectCountRow, error) {
	var rows []subjectCountRow
	err := svc.DB.WithContext(ctx).Raw(subjectCountsSQL,
		pq.Int64Array(studentIDs),
		from.IsZero(), from,
		to.IsZero(), to,
	).Scan(&rows).Error
	return rows, err
}

// StudentReport builds the per-subject breakdown and overall percentage
// for one student over [from, to] (zero time = unbounded).
func (svc *ReportService) StudentReport(ctx context.Context, studentID int64, from, to time.Time, threshold float64) (*dto.StudentReport, error) {
	var student studentModel.StudentModel
	if err := svc.DB.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, err
	}

	rows, err := svc.subjectCounts(ctx, []int64{studentID}, from, to)
	if err != nil {
		return nil, err
	}

	report := &dto.StudentReport{
		StudentID:     student.StudentID,
		StudentName:   student.StudentName,
		StudentRollNo: student.StudentRollNo,
		Threshold:     threshold,
	}
	pcts := make([]float64, 0, len(rows))
	for _, r := range rows {
		pct := Percentage(r.Attended, r.Total)
		pcts = append(pcts, pct)
		report.Subjects = append(report.Subjects, dto.SubjectAttendance{
			SubjectID:        r.SubjectID,
			SubjectCode:      r.SubjectCode,
			SubjectName:      r.SubjectName,
			TotalSessions:    r.Total,
			AttendedSessions: r.Attended,
			Percentage:       pct,
			Status:           Classify(pct, threshold),
		})
	}
	sort.Slice(report.Subjects, func(i, j int) bool {
		return report.Subjects[i].SubjectCode < report.Subjects[j].SubjectCode
	})

	report.Overall = OverallOf(pcts)
	report.Status = Classify(report.Overall, threshold)
	return report, nil
}

// LowAttendanceFilter narrows the shortage scan. Zero values mean "all".
type LowAttendanceFilter struct {
	Department string
	Semester   int
	Section    string
	From       time.Time
	To         time.Time
}

// LowAttendance selects active students whose overall percentage is
// strictly below the threshold. Students with no marks in the window sit
// at 0% and are selected.
func (svc *ReportService) LowAttendance(ctx context.Context, f LowAttendanceFilter, threshold float64) ([]dto.LowAttendanceEntry, error) {
	q := svc.DB.WithContext(ctx).Where("student_is_active = TRUE")
	if f.Department != "" {
		q = q.Where("student_department = ?", f.Department)
	}
	if f.Semester > 0 {
		q = q.Where("student_semester = ?", f.Semester)
	}
	if f.Section != "" {
		q = q.Where("student_section = ?", f.Section)
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_roll_no").Find(&students).Error; err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return []dto.LowAttendanceEntry{}, nil
	}

	ids := make([]int64, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentID)
	}
	rows, err := svc.subjectCounts(ctx, ids, f.From, f.To)
	if err != nil {
		return nil, err
	}
	return shortageEntries(students, rows, threshold), nil
}

// shortageEntries applies the strictly-below-threshold filter to grouped
// counts. Exactly at the threshold is compliant; a student with no rows
// sits at 0% and is selected.
func shortageEntries(students []studentModel.StudentModel, rows []subjectCountRow, threshold float64) []dto.LowAttendanceEntry {
	pctsByStudent := make(map[int64][]float64)
	for _, r := range rows {
		pctsByStudent[r.StudentID] = append(pctsByStudent[r.StudentID], Percentage(r.Attended, r.Total))
	}

	entries := []dto.LowAttendanceEntry{}
	for _, st := range students {
		overall := OverallOf(pctsByStudent[st.StudentID])
		if overall >= threshold {
			continue
		}
		entries = append(entries, dto.LowAttendanceEntry{
			StudentID:     st.StudentID,
			StudentName:   st.StudentName,
			StudentRollNo: st.StudentRollNo,
			Department:    st.StudentDepartment,
			Semester:      st.StudentSemester,
			Section:       st.StudentSection,
			Overall:       overall,
		})
	}
	return entries
}

const periodSummarySQL = `
SELECT s.subject_id,
       s.subject_code,
       s.subject_name,
       COUNT(*) AS total_marks,
       COUNT(*) FILTER (WHERE a.attendance_status IN ('PRESENT','OD')) AS attended
  FROM session_attendances a
  JOIN timetable_sessions ts ON ts.session_id = a.attendance_session_id
  JOIN subjects s ON s.subject_id = ts.session_subject_id
 WHERE (? OR a.attendance_date >= ?)
   AND (? OR a.attendance_date <= ?)
 GROUP BY s.subject_id, s.subject_code, s.subject_name
 ORDER BY s.subject_code`

// PeriodSummary aggregates marks per subject across all students, for the
// admin period report.
func (svc *ReportService) PeriodSummary(ctx context.Context, from, to time.Time) ([]dto.SubjectPeriodSummary, error) {
	var rows []struct {
		SubjectID   int64
		SubjectCode string
		SubjectName string
		TotalMarks  int64
		Attended    int64
	}
	err := svc.DB.WithContext(ctx).Raw(periodSummarySQL,
		from.IsZero(), from,
		to.IsZero(), to,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubjectPeriodSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SubjectPeriodSummary{
			SubjectID:   r.SubjectID,
			SubjectCode: r.SubjectCode,
			SubjectName: r.SubjectName,
			TotalMarks:  r.TotalMarks,
			Attended:    r.Attended,
			Percentage:  Percentage(r.Attended, r.TotalMarks),
		})
	}
	return out, nil
}
