// file: internals/features/reconcile/service/staffsync_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStaffSync_LastRegisteredWins(t *testing.T) {
	sub := mkSubject(1, "CS301", "Data Structures")

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, sub)
	// Both staff registered the subject; the one registered later (higher
	// id) takes the sessions.
	snap.Staff = append(snap.Staff, mkStaff(5, sub), mkStaff(9, sub))
	snap.Sessions = append(snap.Sessions,
		mkSession(10, ptr(1), ptr(5), "CSE", 3, "A"),
		mkSession(11, ptr(1), nil, "CSE", 3, "A"),
	)

	plan := PlanStaffSync(snap)
	require.Len(t, plan.Assignments, 2)
	for _, a := range plan.Assignments {
		assert.Equal(t, int64(9), a.StaffID)
	}
	assert.Empty(t, plan.OrphanSessions)
}

func TestPlanStaffSync_AlreadyAlignedUntouched(t *testing.T) {
	sub := mkSubject(1, "CS301", "Data Structures")

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, sub)
	snap.Staff = append(snap.Staff, mkStaff(5, sub))
	snap.Sessions = append(snap.Sessions, mkSession(10, ptr(1), ptr(5), "CSE", 3, "A"))

	plan := PlanStaffSync(snap)
	assert.Empty(t, plan.Assignments)
}

func TestPlanStaffSync_OrphanSessions(t *testing.T) {
	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, mkSubject(1, "CS301", "Data Structures"))
	snap.Staff = append(snap.Staff, mkStaff(5)) // registered nothing
	snap.Sessions = append(snap.Sessions, mkSession(10, ptr(1), nil, "CSE", 3, "A"))

	plan := PlanStaffSync(snap)
	assert.Empty(t, plan.Assignments)
	assert.Equal(t, []int64{10}, plan.OrphanSessions)
}

func TestPlanStaffSync_InactiveStaffSkipped(t *testing.T) {
	sub := mkSubject(1, "CS301", "Data Structures")

	retired := mkStaff(9, sub)
	retired.StaffIsActive = false

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, sub)
	snap.Staff = append(snap.Staff, mkStaff(5, sub), retired)
	snap.Sessions = append(snap.Sessions, mkSession(10, ptr(1), nil, "CSE", 3, "A"))

	plan := PlanStaffSync(snap)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, int64(5), plan.Assignments[0].StaffID)
}

func TestPlanStaffSyncForStaff_DroppedSubjectHandedOver(t *testing.T) {
	ds := mkSubject(1, "CS301", "Data Structures")
	algo := mkSubject(2, "CS302", "Algorithms")

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, ds, algo)
	// Staff 9 just dropped Data Structures (current set is Algorithms
	// only) but session 10 is still assigned to them for it.
	snap.Staff = append(snap.Staff, mkStaff(5, ds), mkStaff(9, algo))
	snap.Sessions = append(snap.Sessions,
		mkSession(10, ptr(1), ptr(9), "CSE", 3, "A"),
	)

	plan := PlanStaffSyncForStaff(snap, 9)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, int64(10), plan.Assignments[0].SessionID)
	assert.Equal(t, int64(5), plan.Assignments[0].StaffID, "session handed to the remaining registrant")
}

func TestPlanStaffSyncForStaff_ScopedToRegistrations(t *testing.T) {
	ds := mkSubject(1, "CS301", "Data Structures")
	algo := mkSubject(2, "CS302", "Algorithms")

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, ds, algo)
	snap.Staff = append(snap.Staff, mkStaff(5, ds), mkStaff(9, algo))
	snap.Sessions = append(snap.Sessions,
		mkSession(10, ptr(1), nil, "CSE", 3, "A"),
		mkSession(11, ptr(2), nil, "CSE", 3, "A"),
	)

	plan := PlanStaffSyncForStaff(snap, 9)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, int64(11), plan.Assignments[0].SessionID)
	assert.Equal(t, int64(9), plan.Assignments[0].StaffID)
}
