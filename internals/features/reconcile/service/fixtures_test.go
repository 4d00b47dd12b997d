// file: internals/features/reconcile/service/fixtures_test.go
package service

import (
	"context"
	"fmt"

	staffModel "kampusku_backend/internals/features/academics/staff/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	sessionModel "kampusku_backend/internals/features/academics/timetable/model"
)

func mkStudent(id int64, dept string, sem int, section string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:         id,
		StudentName:       fmt.Sprintf("Student %d", id),
		StudentRollNo:     fmt.Sprintf("R%03d", id),
		StudentDepartment: dept,
		StudentSemester:   sem,
		StudentSection:    section,
		StudentIsActive:   true,
	}
}

func mkSession(id int64, subjectID, staffID *int64, dept string, sem int, section string) sessionModel.TimetableSessionModel {
	return sessionModel.TimetableSessionModel{
		SessionID:         id,
		SessionSubjectID:  subjectID,
		SessionStaffID:    staffID,
		SessionDepartment: dept,
		SessionSemester:   sem,
		SessionSection:    section,
		SessionDayOfWeek:  "MON",
		SessionStartTime:  "09:00",
		SessionEndTime:    "10:00",
		SessionIsActive:   true,
	}
}

func mkSubject(id int64, code, name string) subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectID:         id,
		SubjectCode:       code,
		SubjectName:       name,
		SubjectDepartment: "CSE",
		SubjectSemester:   3,
	}
}

func mkStaff(id int64, subjects ...subjectModel.SubjectModel) staffModel.StaffModel {
	return staffModel.StaffModel{
		StaffID:           id,
		StaffName:         fmt.Sprintf("Staff %d", id),
		StaffEmployeeCode: fmt.Sprintf("E%03d", id),
		StaffDepartment:   "CSE",
		StaffIsActive:     true,
		StaffSubjects:     subjects,
	}
}

func ptr(v int64) *int64 { return &v }

// memStore is the in-memory RosterStore used by runner tests. Writes land
// on the slices so a reload observes them, same as the real store.
type memStore struct {
	students []studentModel.StudentModel
	sessions []sessionModel.TimetableSessionModel
	subjects []subjectModel.SubjectModel
	staff    []staffModel.StaffModel

	writes int
}

func (m *memStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Students: append([]studentModel.StudentModel(nil), m.students...),
		Sessions: append([]sessionModel.TimetableSessionModel(nil), m.sessions...),
		Subjects: append([]subjectModel.SubjectModel(nil), m.subjects...),
	}
	for _, st := range m.staff {
		cp := st
		cp.StaffSubjects = append([]subjectModel.SubjectModel(nil), st.StaffSubjects...)
		snap.Staff = append(snap.Staff, cp)
	}
	return snap, nil
}

func (m *memStore) UpdateSessionSemester(ctx context.Context, sessionID int64, semester int) error {
	for i := range m.sessions {
		if m.sessions[i].SessionID == sessionID {
			m.sessions[i].SessionSemester = semester
			m.writes++
		}
	}
	return nil
}

func (m *memStore) UpdateStudentSection(ctx context.Context, studentID int64, section string) error {
	for i := range m.students {
		if m.students[i].StudentID == studentID {
			m.students[i].StudentSection = section
			m.writes++
		}
	}
	return nil
}

func (m *memStore) RepointSessionSubject(ctx context.Context, from, to int64) (int64, error) {
	var n int64
	for i := range m.sessions {
		if sid := m.sessions[i].SessionSubjectID; sid != nil && *sid == from {
			m.sessions[i].SessionSubjectID = ptr(to)
			n++
		}
	}
	m.writes += int(n)
	return n, nil
}

func (m *memStore) RepointStaffSubjects(ctx context.Context, from, to int64) (int64, error) {
	var canonical *subjectModel.SubjectModel
	for i := range m.subjects {
		if m.subjects[i].SubjectID == to {
			canonical = &m.subjects[i]
		}
	}
	var n int64
	for i := range m.staff {
		kept := m.staff[i].StaffSubjects[:0]
		has := m.staff[i].HasSubject(to)
		for _, sub := range m.staff[i].StaffSubjects {
			if sub.SubjectID != from {
				kept = append(kept, sub)
				continue
			}
			n++
			if !has && canonical != nil {
				kept = append(kept, *canonical)
				has = true
			}
		}
		m.staff[i].StaffSubjects = kept
	}
	m.writes += int(n)
	return n, nil
}

func (m *memStore) RewriteStaffLegacySubject(ctx context.Context, normalizedName, displayName string) (int64, error) {
	var n int64
	for i := range m.staff {
		if s := m.staff[i].StaffSubject; s != nil && subjectModel.NormalizeSubjectName(*s) == normalizedName && *s != displayName {
			v := displayName
			m.staff[i].StaffSubject = &v
			n++
		}
	}
	m.writes += int(n)
	return n, nil
}

func (m *memStore) DeleteSubject(ctx context.Context, subjectID int64) error {
	kept := m.subjects[:0]
	for _, sub := range m.subjects {
		if sub.SubjectID != subjectID {
			kept = append(kept, sub)
		}
	}
	m.subjects = kept
	m.writes++
	return nil
}

func (m *memStore) AssignSessionStaff(ctx context.Context, sessionID, staffID int64) error {
	for i := range m.sessions {
		if m.sessions[i].SessionID == sessionID {
			m.sessions[i].SessionStaffID = ptr(staffID)
			m.writes++
		}
	}
	return nil
}

func (m *memStore) StaffWithSubjects(ctx context.Context, staffID int64) (*staffModel.StaffModel, error) {
	for i := range m.staff {
		if m.staff[i].StaffID == staffID {
			cp := m.staff[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("staff %d not found", staffID)
}

func (m *memStore) ActiveSessionsBySubject(ctx context.Context, subjectID int64) ([]sessionModel.TimetableSessionModel, error) {
	var out []sessionModel.TimetableSessionModel
	for _, ses := range m.sessions {
		if ses.SessionIsActive && ses.SessionSubjectID != nil && *ses.SessionSubjectID == subjectID {
			out = append(out, ses)
		}
	}
	return out, nil
}

func (m *memStore) Transaction(ctx context.Context, fn func(RosterStore) error) error {
	return fn(m)
}
