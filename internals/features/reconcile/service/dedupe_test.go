// file: internals/features/reconcile/service/dedupe_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSubjectMerges_CaseAndWhitespace(t *testing.T) {
	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects,
		mkSubject(3, "CS301", "  data structures "),
		mkSubject(1, "CS301A", "Data Structures"),
		mkSubject(2, "CS301B", "DATA STRUCTURES"),
		mkSubject(4, "CS302", "Algorithms"),
	)

	merges := PlanSubjectMerges(snap)
	require.Len(t, merges, 1)

	mg := merges[0]
	assert.Equal(t, "DATA STRUCTURES", mg.NormalizedName)
	assert.Equal(t, int64(1), mg.CanonicalID, "lowest id is canonical")
	assert.Equal(t, "Data Structures", mg.CanonicalName)
	assert.Equal(t, []int64{2, 3}, mg.DuplicateIDs)
}

func TestPlanSubjectMerges_NoDuplicates(t *testing.T) {
	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects,
		mkSubject(1, "CS301", "Data Structures"),
		mkSubject(2, "CS302", "Algorithms"),
	)
	assert.Empty(t, PlanSubjectMerges(snap))
}

func TestApplyMergesToSnapshot(t *testing.T) {
	canonical := mkSubject(1, "CS301", "Data Structures")
	dup := mkSubject(2, "CS301B", "DATA STRUCTURES")

	snap := &Snapshot{}
	snap.Subjects = append(snap.Subjects, canonical, dup)
	snap.Sessions = append(snap.Sessions,
		mkSession(10, ptr(2), nil, "CSE", 3, "A"),
		mkSession(11, ptr(1), nil, "CSE", 3, "A"),
	)
	// Staff 5 registered both spellings; the merge collapses them to one.
	snap.Staff = append(snap.Staff, mkStaff(5, canonical, dup))

	merges := PlanSubjectMerges(snap)
	ApplyMergesToSnapshot(snap, merges)

	require.Len(t, snap.Subjects, 1)
	assert.Equal(t, int64(1), snap.Subjects[0].SubjectID)

	for _, ses := range snap.Sessions {
		require.NotNil(t, ses.SessionSubjectID)
		assert.Equal(t, int64(1), *ses.SessionSubjectID)
	}

	require.Len(t, snap.Staff[0].StaffSubjects, 1)
	assert.Equal(t, int64(1), snap.Staff[0].StaffSubjects[0].SubjectID)
}
