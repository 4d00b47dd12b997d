// file: internals/features/reconcile/service/store_gorm.go
package service

import (
	"context"

	"gorm.io/gorm"

	staffModel "kampusku_backend/internals/features/academics/staff/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
)

// GormRosterStore is the production RosterStore over *gorm.DB.
type GormRosterStore struct {
	DB *gorm.DB
}

func NewGormRosterStore(db *gorm.DB) *GormRosterStore {
	return &GormRosterStore{DB: db}
}

func (s *GormRosterStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	db := s.DB.WithContext(ctx)

	if err := db.Order("student_id").Find(&snap.Students).Error; err != nil {
		return nil, err
	}
	if err := db.Order("session_id").Find(&snap.Sessions).Error; err != nil {
		return nil, err
	}
	if err := db.Order("subject_id").Find(&snap.Subjects).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("StaffSubjects").Order("staff_id").Find(&snap.Staff).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *GormRosterStore) UpdateSessionSemester(ctx context.Context, sessionID int64, semester int) error {
	return s.DB.WithContext(ctx).
		Model(&sessionModel.TimetableSessionModel{}).
		Where("session_id = ?", sessionID).
		Update("session_semester", semester).Error
}

func (s *GormRosterStore) UpdateStudentSection(ctx context.Context, studentID int64, section string) error {
	return s.DB.WithContext(ctx).
		Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		Update("student_section", section).Error
}

func (s *GormRosterStore) RepointSessionSubject(ctx context.Context, fromSubjectID, toSubjectID int64) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&sessionModel.TimetableSessionModel{}).
		Where("session_subject_id = ?", fromSubjectID).
		Update("session_subject_id", toSubjectID)
	return res.RowsAffected, res.Error
}

func (s *GormRosterStore) RepointStaffSubjects(ctx context.Context, fromSubjectID, toSubjectID int64) (int64, error) {
	// Delete join rows that would collide with an existing canonical row,
	// then repoint the rest. Keeps the (staff_id, subject_id) pair unique.
	db := s.DB.WithContext(ctx)
	if err := db.Exec(
		`DELETE FROM staff_subjects a
		  WHERE a.subject_id = ?
		    AND EXISTS (SELECT 1 FROM staff_subjects b
		                 WHERE b.staff_id = a.staff_id AND b.subject_id = ?)`,
		fromSubjectID, toSubjectID).Error; err != nil {
		return 0, err
	}
	res := db.Exec(`UPDATE staff_subjects SET subject_id = ? WHERE subject_id = ?`,
		toSubjectID, fromSubjectID)
	return res.RowsAffected, res.Error
}

func (s *GormRosterStore) RewriteStaffLegacySubject(ctx context.Context, normalizedName, displayName string) (int64, error) {
	res := s.DB.WithContext(ctx).Exec(
		`UPDATE staff SET staff_subject = ? WHERE UPPER(TRIM(staff_subject)) = ?`,
		displayName, normalizedName)
	return res.RowsAffected, res.Error
}

func (s *GormRosterStore) DeleteSubject(ctx context.Context, subjectID int64) error {
	return s.DB.WithContext(ctx).
		Delete(&subjectModel.SubjectModel{}, "subject_id = ?", subjectID).Error
}

func (s *GormRosterStore) AssignSessionStaff(ctx context.Context, sessionID, staffID int64) error {
	return s.DB.WithContext(ctx).
		Model(&sessionModel.TimetableSessionModel{}).
		Where("session_id = ?", sessionID).
		Update("session_staff_id", staffID).Error
}

func (s *GormRosterStore) StaffWithSubjects(ctx context.Context, staffID int64) (*staffModel.StaffModel, error) {
	var st staffModel.StaffModel
	err := s.DB.WithContext(ctx).
		Preload("StaffSubjects").
		First(&st, "staff_id = ?", staffID).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *GormRosterStore) ActiveSessionsBySubject(ctx context.Context, subjectID int64) ([]sessionModel.TimetableSessionModel, error) {
	var out []sessionModel.TimetableSessionModel
	err := s.DB.WithContext(ctx).
		Where("session_subject_id = ? AND session_is_active = TRUE", subjectID).
		Order("session_id").
		Find(&out).Error
	return out, err
}

func (s *GormRosterStore) Transaction(ctx context.Context, fn func(RosterStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRosterStore{DB: tx})
	})
}
