// file: internals/features/academics/timetable/service/timetable_service.go
package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	studentModel "kampusku_backend/internals/features/academics/students/model"
	"kampusku_backend/internals/features/academics/timetable/model"
)

// ErrNoStudentsAnywhere: the requested (department, section) has no
// enrolled students in any semester, so the session would teach nobody.
var ErrNoStudentsAnywhere = errors.New("no students enrolled for this department and section in any semester")

type TimetableService struct {
	DB          *gorm.DB
	MaxSemester int
}

func NewTimetableService(db *gorm.DB, maxSemester int) *TimetableService {
	if maxSemester < 1 {
		maxSemester = 8
	}
	return &TimetableService{DB: db, MaxSemester: maxSemester}
}

// ValidateAndCorrectEnrollment checks that the cohort has students. When
// the requested semester is empty it scans the other semesters for the
// same (department, section) and returns the first populated one, the
// same correction the maintenance pass applies to stale sessions.
func (svc *TimetableService) ValidateAndCorrectEnrollment(ctx context.Context, department string, semester int, section string) (int, error) {
	count := func(sem int) (int64, error) {
		var n int64
		err := svc.DB.WithContext(ctx).
			Model(&studentModel.StudentModel{}).
			Where("student_department = ? AND student_semester = ? AND student_section = ? AND student_is_active = TRUE",
				department, sem, section).
			Count(&n).Error
		return n, err
	}

	n, err := count(semester)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return semester, nil
	}

	for sem := 1; sem <= svc.MaxSemester; sem++ {
		if sem == semester {
			continue
		}
		n, err := count(sem)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			log.Printf("[TIMETABLE] corrected semester %d -> %d for %s Sec%s (%d students)",
				semester, sem, department, section, n)
			return sem, nil
		}
	}
	return 0, ErrNoStudentsAnywhere
}

// AutoAssignStaff picks the staff member for a subject: active staff who
// registered it, most recently created one wins. Nil when nobody did.
func (svc *TimetableService) AutoAssignStaff(ctx context.Context, subjectID int64) (*int64, error) {
	var staffID int64
	err := svc.DB.WithContext(ctx).
		Table("staff_subjects").
		Select("staff_subjects.staff_id").
		Joins("JOIN staff ON staff.staff_id = staff_subjects.staff_id").
		Where("staff_subjects.subject_id = ? AND staff.staff_is_active = TRUE", subjectID).
		Order("staff_subjects.staff_id DESC").
		Limit(1).
		Scan(&staffID).Error
	if err != nil {
		return nil, err
	}
	if staffID == 0 {
		return nil, nil
	}
	return &staffID, nil
}

// SessionsForCohort lists the active timetable of one cohort.
func (svc *TimetableService) SessionsForCohort(ctx context.Context, department string, semester int, section string) ([]model.TimetableSessionModel, error) {
	var sessions []model.TimetableSessionModel
	err := svc.DB.WithContext(ctx).
		Preload("Subject").
		Preload("Staff").
		Where("session_department = ? AND session_semester = ? AND session_section = ? AND session_is_active = TRUE",
			department, semester, section).
		Order("session_day_of_week, session_start_time").
		Find(&sessions).Error
	return sessions, err
}
