// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"
)

// StudentModel maps the students table. A student belongs to exactly one
// cohort (department, semester, section) at a time; semester and section
// may be rewritten by the reconciliation pass.
type StudentModel struct {
	StudentID         int64     `json:"student_id" gorm:"primaryKey;autoIncrement;column:student_id"`
	StudentName       string    `json:"student_name" gorm:"type:text;not null;column:student_name"`
	StudentRollNo     string    `json:"student_roll_no" gorm:"type:varchar(30);not null;uniqueIndex;column:student_roll_no"`
	StudentDepartment string    `json:"student_department" gorm:"type:text;not null;column:student_department"`
	StudentSemester   int       `json:"student_semester" gorm:"not null;check:student_semester >= 1;column:student_semester"`
	StudentSection    string    `json:"student_section" gorm:"type:varchar(5);not null;column:student_section"`
	StudentIsActive   bool      `json:"student_is_active" gorm:"not null;default:true;column:student_is_active"`
	StudentCreatedAt  time.Time `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt  time.Time `json:"student_updated_at" gorm:"column:student_updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string { return "students" }

// Year is the display year derived from the semester: {1,2}→1, {3,4}→2, …
func (m StudentModel) Year() int { return (m.StudentSemester + 1) / 2 }
