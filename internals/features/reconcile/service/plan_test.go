// file: internals/features/reconcile/service/plan_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepairs_SemesterSearchFirstHitWins(t *testing.T) {
	snap := &Snapshot{}
	// Students for (CSE, A) exist in semesters 3 and 5; the scan takes 3.
	snap.Students = append(snap.Students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "A"),
		mkStudent(3, "CSE", 5, "A"),
	)
	snap.Sessions = append(snap.Sessions, mkSession(10, nil, nil, "CSE", 1, "A"))

	// Declared semester 1 has nobody enrolled.
	mismatches := []Mismatch{{
		Kind:       MismatchSemester,
		Key:        CohortKey{"CSE", 1, "A"},
		SessionIDs: []int64{10},
	}}

	plan := PlanRepairs(snap, mismatches, 8)
	require.Len(t, plan.SemesterFixes, 1)
	fix := plan.SemesterFixes[0]
	assert.Equal(t, 1, fix.OldSemester)
	assert.Equal(t, 3, fix.NewSemester)
	assert.Equal(t, 2, fix.StudentsFound)
	assert.Equal(t, []int64{10}, fix.SessionIDs)
	assert.Empty(t, plan.Unresolved)
}

func TestPlanRepairs_NoStudentsAnywhere(t *testing.T) {
	snap := &Snapshot{}
	snap.Sessions = append(snap.Sessions, mkSession(10, nil, nil, "MECH", 1, "A"))

	mismatches := []Mismatch{{
		Kind:       MismatchSemester,
		Key:        CohortKey{"MECH", 1, "A"},
		SessionIDs: []int64{10},
	}}

	plan := PlanRepairs(snap, mismatches, 8)
	assert.Empty(t, plan.SemesterFixes)
	require.Len(t, plan.Unresolved, 1)
	assert.Equal(t, "no students found in any semester", plan.Unresolved[0].Reason)
}

func TestPlanRepairs_SearchBoundedByMaxSemester(t *testing.T) {
	snap := &Snapshot{}
	// The only students are in semester 6, beyond the configured bound.
	snap.Students = append(snap.Students, mkStudent(1, "CSE", 6, "A"))

	mismatches := []Mismatch{{
		Kind:       MismatchSemester,
		Key:        CohortKey{"CSE", 1, "A"},
		SessionIDs: []int64{10},
	}}

	plan := PlanRepairs(snap, mismatches, 4)
	assert.Empty(t, plan.SemesterFixes)
	assert.Len(t, plan.Unresolved, 1)
}

func TestPlanRepairs_SectionFixes(t *testing.T) {
	snap := &Snapshot{}
	snap.Students = append(snap.Students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "B"),
	)

	mismatches := []Mismatch{{
		Kind:        MismatchSection,
		Key:         CohortKey{"CSE", 3, "A"},
		StudentIDs:  []int64{2},
		WantSection: "A",
	}}

	plan := PlanRepairs(snap, mismatches, 8)
	require.Len(t, plan.SectionFixes, 1)
	fix := plan.SectionFixes[0]
	assert.Equal(t, int64(2), fix.StudentID)
	assert.Equal(t, "B", fix.OldSection)
	assert.Equal(t, "A", fix.NewSection)
}
