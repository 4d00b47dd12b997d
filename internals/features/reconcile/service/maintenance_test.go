// file: internals/features/reconcile/service/maintenance_test.go
package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full pass over a roster with one of every defect.
func TestRunMaintenancePass_FullPipeline(t *testing.T) {
	canonical := mkSubject(1, "CS301", "Data Structures")
	dup := mkSubject(2, "CS301B", "DATA STRUCTURES")
	legacy := "data structures "

	teacherA := mkStaff(5, canonical)
	teacherA.StaffSubject = &legacy
	teacherB := mkStaff(9, dup) // registered the duplicate spelling later

	store := &memStore{}
	store.subjects = append(store.subjects, canonical, dup)
	store.staff = append(store.staff, teacherA, teacherB)
	store.students = append(store.students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "B"), // drifted section
	)
	store.sessions = append(store.sessions,
		mkSession(10, ptr(2), ptr(5), "CSE", 1, "A"), // stale semester + dup subject
	)

	runner := NewRunner(store, 8)
	report, err := runner.RunMaintenancePass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.SessionsRewritten, "session moved to semester 3")
	assert.Equal(t, 1, report.StudentsRewritten, "student 2 moved to section A")
	assert.Equal(t, 1, report.SubjectsMerged)
	assert.Equal(t, 1, report.SessionsRelinked, "session handed to most recent registrant")
	assert.Empty(t, report.Unresolved)

	// Store state after the pass.
	assert.Equal(t, 3, store.sessions[0].SessionSemester)
	assert.Equal(t, "A", store.students[1].StudentSection)
	require.Len(t, store.subjects, 1)
	assert.Equal(t, int64(1), store.subjects[0].SubjectID)
	require.NotNil(t, store.sessions[0].SessionSubjectID)
	assert.Equal(t, int64(1), *store.sessions[0].SessionSubjectID)
	require.NotNil(t, store.sessions[0].SessionStaffID)
	assert.Equal(t, int64(9), *store.sessions[0].SessionStaffID)
	require.NotNil(t, store.staff[0].StaffSubject)
	assert.Equal(t, "Data Structures", *store.staff[0].StaffSubject)
}

// A second pass over a repaired roster must write nothing.
func TestRunMaintenancePass_Idempotent(t *testing.T) {
	canonical := mkSubject(1, "CS301", "Data Structures")
	dup := mkSubject(2, "CS301B", "DATA STRUCTURES")

	store := &memStore{}
	store.subjects = append(store.subjects, canonical, dup)
	store.staff = append(store.staff, mkStaff(5, canonical))
	store.students = append(store.students, mkStudent(1, "CSE", 3, "A"))
	store.sessions = append(store.sessions, mkSession(10, ptr(2), nil, "CSE", 1, "A"))

	runner := NewRunner(store, 8)
	_, err := runner.RunMaintenancePass(context.Background())
	require.NoError(t, err)

	before := store.writes
	report, err := runner.RunMaintenancePass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, before, store.writes, "second pass must not touch the store")
	assert.Zero(t, report.SessionsRewritten)
	assert.Zero(t, report.StudentsRewritten)
	assert.Zero(t, report.SubjectsMerged)
	assert.Zero(t, report.SessionsRelinked)
}

func TestRunMaintenancePass_ReportsUnrepairable(t *testing.T) {
	store := &memStore{}
	store.sessions = append(store.sessions, mkSession(10, nil, nil, "MECH", 1, "A"))

	runner := NewRunner(store, 8)
	report, err := runner.RunMaintenancePass(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Unresolved, 1)
	assert.Equal(t, MismatchSemester, report.Unresolved[0].Kind)
	assert.Equal(t, 1, store.sessions[0].SessionSemester, "unrepairable group left untouched")
}

func TestRunMaintenancePass_RejectsConcurrentPass(t *testing.T) {
	store := &memStore{}
	runner := NewRunner(store, 8)

	runner.mu.Lock()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := runner.RunMaintenancePass(context.Background())
		assert.ErrorIs(t, err, ErrPassInProgress)
	}()
	wg.Wait()
	runner.mu.Unlock()

	_, err := runner.RunMaintenancePass(context.Background())
	assert.NoError(t, err, "runner usable again once the lock is free")
}

func TestOnStaffSubjectsChanged(t *testing.T) {
	ds := mkSubject(1, "CS301", "Data Structures")
	algo := mkSubject(2, "CS302", "Algorithms")

	store := &memStore{}
	store.subjects = append(store.subjects, ds, algo)
	store.staff = append(store.staff, mkStaff(5, ds), mkStaff(9, ds, algo))
	store.sessions = append(store.sessions,
		mkSession(10, ptr(1), ptr(5), "CSE", 3, "A"),
		mkSession(11, ptr(2), nil, "CSE", 3, "A"),
	)
	store.students = append(store.students, mkStudent(1, "CSE", 3, "A"))

	runner := NewRunner(store, 8)
	relinked, err := runner.OnStaffSubjectsChanged(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 2, relinked)

	assert.Equal(t, int64(9), *store.sessions[0].SessionStaffID)
	assert.Equal(t, int64(9), *store.sessions[1].SessionStaffID)
}

func TestBuildDistribution(t *testing.T) {
	store := &memStore{}
	store.students = append(store.students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "A"),
	)
	store.sessions = append(store.sessions,
		mkSession(10, nil, nil, "CSE", 3, "A"),
		mkSession(11, nil, nil, "CSE", 5, "B"), // nobody enrolled
	)
	snap, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)

	dist := BuildDistribution(snap)
	assert.Equal(t, 2, dist.StudentsTotal)
	assert.Equal(t, 2, dist.SessionsTotal)
	require.Len(t, dist.EmptySessions, 1)
	assert.Equal(t, 5, dist.EmptySessions[0].Semester)
	assert.Equal(t, 3, dist.EmptySessions[0].Year)
	assert.Equal(t, 1, dist.MismatchCounts[MismatchSemester])
}
