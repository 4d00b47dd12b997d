// file: internals/features/attendance/marking/model/session_attendance_model.go
package model

import (
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	// StatusOD ("on duty") counts as present for percentages but is
	// recorded distinctly.
	StatusOD AttendanceStatus = "OD"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOD:
		return true
	}
	return false
}

// CountsAsPresent: PRESENT and OD are attendance-equivalent.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == StatusPresent || s == StatusOD
}

// SessionAttendanceModel maps session_attendances. At most one record per
// (student, session, date); marking upserts on that key.
type SessionAttendanceModel struct {
	AttendanceID        int64            `json:"attendance_id" gorm:"primaryKey;autoIncrement;column:attendance_id"`
	AttendanceStudentID int64            `json:"attendance_student_id" gorm:"not null;uniqueIndex:uq_attendance_mark,priority:1;column:attendance_student_id"`
	AttendanceSessionID int64            `json:"attendance_session_id" gorm:"not null;uniqueIndex:uq_attendance_mark,priority:2;column:attendance_session_id"`
	AttendanceDate      time.Time        `json:"attendance_date" gorm:"type:date;not null;uniqueIndex:uq_attendance_mark,priority:3;column:attendance_date"`
	AttendanceStatus    AttendanceStatus `json:"attendance_status" gorm:"type:varchar(10);not null;column:attendance_status"`
	AttendanceCreatedAt time.Time        `json:"attendance_created_at" gorm:"column:attendance_created_at;autoCreateTime"`
	AttendanceUpdatedAt time.Time        `json:"attendance_updated_at" gorm:"column:attendance_updated_at;autoUpdateTime"`
}

func (SessionAttendanceModel) TableName() string { return "session_attendances" }
