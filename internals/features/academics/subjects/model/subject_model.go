// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"strings"
	"time"
)

// SubjectModel maps the subjects table. Subject names are meant to be
// unique modulo case/whitespace; free-text entry breaks that and the
// deduplicator restores it.
type SubjectModel struct {
	SubjectID         int64     `json:"subject_id" gorm:"primaryKey;autoIncrement;column:subject_id"`
	SubjectCode       string    `json:"subject_code" gorm:"type:varchar(20);not null;uniqueIndex;column:subject_code"`
	SubjectName       string    `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	SubjectDepartment string    `json:"subject_department" gorm:"type:text;not null;column:subject_department"`
	SubjectSemester   int       `json:"subject_semester" gorm:"not null;column:subject_semester"`
	SubjectCredits    int       `json:"subject_credits" gorm:"not null;default:3;column:subject_credits"`
	SubjectIsElective bool      `json:"subject_is_elective" gorm:"not null;default:false;column:subject_is_elective"`
	SubjectCreatedAt  time.Time `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt  time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

// NormalizeSubjectName is the duplicate-grouping key: uppercase + trim.
func NormalizeSubjectName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
