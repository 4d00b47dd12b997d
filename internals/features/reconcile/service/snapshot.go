// file: internals/features/reconcile/service/snapshot.go
package service

import (
	"context"

	staffModel "kampusku_backend/internals/features/academics/staff/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
)

// Snapshot is the in-memory roster view one pass works on. Planners are
// pure functions over it; nothing here touches the database.
type Snapshot struct {
	Students []studentModel.StudentModel
	Sessions []sessionModel.TimetableSessionModel
	Subjects []subjectModel.SubjectModel
	Staff    []staffModel.StaffModel // StaffSubjects preloaded
}

// RosterStore is the persistence seam of the engine. The production
// implementation wraps *gorm.DB; tests use an in-memory fake.
type RosterStore interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)

	UpdateSessionSemester(ctx context.Context, sessionID int64, semester int) error
	UpdateStudentSection(ctx context.Context, studentID int64, section string) error

	RepointSessionSubject(ctx context.Context, fromSubjectID, toSubjectID int64) (int64, error)
	RepointStaffSubjects(ctx context.Context, fromSubjectID, toSubjectID int64) (int64, error)
	RewriteStaffLegacySubject(ctx context.Context, normalizedName, displayName string) (int64, error)
	DeleteSubject(ctx context.Context, subjectID int64) error

	AssignSessionStaff(ctx context.Context, sessionID, staffID int64) error
	StaffWithSubjects(ctx context.Context, staffID int64) (*staffModel.StaffModel, error)
	ActiveSessionsBySubject(ctx context.Context, subjectID int64) ([]sessionModel.TimetableSessionModel, error)

	// Transaction runs fn against a store bound to one transaction; all
	// corrections of a pass commit together or not at all.
	Transaction(ctx context.Context, fn func(RosterStore) error) error
}

// ActiveStudents filters the snapshot to active students.
func (s *Snapshot) ActiveStudents() []studentModel.StudentModel {
	out := make([]studentModel.StudentModel, 0, len(s.Students))
	for _, st := range s.Students {
		if st.StudentIsActive {
			out = append(out, st)
		}
	}
	return out
}

// ActiveSessions filters the snapshot to active sessions.
func (s *Snapshot) ActiveSessions() []sessionModel.TimetableSessionModel {
	out := make([]sessionModel.TimetableSessionModel, 0, len(s.Sessions))
	for _, ses := range s.Sessions {
		if ses.SessionIsActive {
			out = append(out, ses)
		}
	}
	return out
}

// studentCountByCohort indexes active students by their full cohort key.
func (s *Snapshot) studentCountByCohort() map[CohortKey]int {
	idx := make(map[CohortKey]int)
	for _, st := range s.ActiveStudents() {
		key := CohortKey{st.StudentDepartment, st.StudentSemester, st.StudentSection}
		idx[key]++
	}
	return idx
}
