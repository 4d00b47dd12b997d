// file: internals/features/academics/timetable/model/session_model.go
package model

import (
	"time"

	staffModel "kampusku_backend/internals/features/academics/staff/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
)

// TimetableSessionModel maps the timetable_sessions table. Subject and
// staff references stay nullable until resolved; the cohort columns
// (department, semester, section) declare which students the session
// teaches and must match an actual cohort after reconciliation.
type TimetableSessionModel struct {
	SessionID         int64   `json:"session_id" gorm:"primaryKey;autoIncrement;column:session_id"`
	SessionSubjectID  *int64  `json:"session_subject_id,omitempty" gorm:"column:session_subject_id"`
	SessionStaffID    *int64  `json:"session_staff_id,omitempty" gorm:"column:session_staff_id"`
	SessionDepartment string  `json:"session_department" gorm:"type:text;not null;column:session_department"`
	SessionSemester   int     `json:"session_semester" gorm:"not null;column:session_semester"`
	SessionSection    string  `json:"session_section" gorm:"type:varchar(5);not null;column:session_section"`
	SessionDayOfWeek  string  `json:"session_day_of_week" gorm:"type:varchar(10);not null;column:session_day_of_week"`
	SessionStartTime  string  `json:"session_start_time" gorm:"type:varchar(8);not null;column:session_start_time"`
	SessionEndTime    string  `json:"session_end_time" gorm:"type:varchar(8);not null;column:session_end_time"`
	SessionRoom       *string `json:"session_room,omitempty" gorm:"type:text;column:session_room"`
	SessionIsActive   bool    `json:"session_is_active" gorm:"not null;default:true;column:session_is_active"`

	SessionCreatedAt time.Time `json:"session_created_at" gorm:"column:session_created_at;autoCreateTime"`
	SessionUpdatedAt time.Time `json:"session_updated_at" gorm:"column:session_updated_at;autoUpdateTime"`

	Subject *subjectModel.SubjectModel `json:"subject,omitempty" gorm:"foreignKey:SessionSubjectID;references:SubjectID"`
	Staff   *staffModel.StaffModel     `json:"staff,omitempty" gorm:"foreignKey:SessionStaffID;references:StaffID"`
}

func (TimetableSessionModel) TableName() string { return "timetable_sessions" }
