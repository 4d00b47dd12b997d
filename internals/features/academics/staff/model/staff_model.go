// file: internals/features/academics/staff/model/staff_model.go
package model

import (
	"time"

	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
)

// StaffModel maps the staff table. StaffSubjects (many2many) is the source
// of truth for session assignment; StaffSubject is the legacy free-text
// field kept in sync by the subject deduplicator.
type StaffModel struct {
	StaffID           int64     `json:"staff_id" gorm:"primaryKey;autoIncrement;column:staff_id"`
	StaffName         string    `json:"staff_name" gorm:"type:text;not null;column:staff_name"`
	StaffEmployeeCode string    `json:"staff_employee_code" gorm:"type:varchar(30);not null;uniqueIndex;column:staff_employee_code"`
	StaffDepartment   string    `json:"staff_department" gorm:"type:text;not null;column:staff_department"`
	StaffSubject      *string   `json:"staff_subject,omitempty" gorm:"type:text;column:staff_subject"`
	StaffIsActive     bool      `json:"staff_is_active" gorm:"not null;default:true;column:staff_is_active"`
	StaffCreatedAt    time.Time `json:"staff_created_at" gorm:"column:staff_created_at;autoCreateTime"`
	StaffUpdatedAt    time.Time `json:"staff_updated_at" gorm:"column:staff_updated_at;autoUpdateTime"`

	StaffSubjects []subjectModel.SubjectModel `json:"staff_subjects,omitempty" gorm:"many2many:staff_subjects;foreignKey:StaffID;joinForeignKey:staff_id;References:SubjectID;joinReferences:subject_id"`
}

func (StaffModel) TableName() string { return "staff" }

// HasSubject reports whether the subject is in the registered set.
func (m StaffModel) HasSubject(subjectID int64) bool {
	for _, s := range m.StaffSubjects {
		if s.SubjectID == subjectID {
			return true
		}
	}
	return false
}
