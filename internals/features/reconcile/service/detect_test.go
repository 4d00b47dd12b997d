// file: internals/features/reconcile/service/detect_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMismatches_CleanRoster(t *testing.T) {
	snap := &Snapshot{}
	snap.Students = append(snap.Students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "A"),
	)
	snap.Sessions = append(snap.Sessions,
		mkSession(10, nil, nil, "CSE", 3, "A"),
	)

	mismatches, unresolved := DetectMismatches(snap)
	assert.Empty(t, mismatches)
	assert.Empty(t, unresolved)
}

func TestDetectMismatches_SemesterMismatch(t *testing.T) {
	snap := &Snapshot{}
	// Students sit in semester 3, sessions still declare semester 1.
	snap.Students = append(snap.Students, mkStudent(1, "CSE", 3, "A"))
	snap.Sessions = append(snap.Sessions,
		mkSession(11, nil, nil, "CSE", 1, "A"),
		mkSession(10, nil, nil, "CSE", 1, "A"),
	)

	mismatches, unresolved := DetectMismatches(snap)
	require.Len(t, mismatches, 1)
	assert.Empty(t, unresolved)

	m := mismatches[0]
	assert.Equal(t, MismatchSemester, m.Kind)
	assert.Equal(t, CohortKey{"CSE", 1, "A"}, m.Key)
	assert.Equal(t, []int64{10, 11}, m.SessionIDs)
}

func TestDetectMismatches_DeclaredSemesterFromLowestID(t *testing.T) {
	snap := &Snapshot{}
	snap.Students = append(snap.Students, mkStudent(1, "CSE", 2, "A"))
	// Same group, disagreeing semesters; the lowest-id session declares.
	snap.Sessions = append(snap.Sessions,
		mkSession(20, nil, nil, "CSE", 2, "A"),
		mkSession(21, nil, nil, "CSE", 5, "A"),
	)

	mismatches, _ := DetectMismatches(snap)
	// Declared semester 2 has students, so no mismatch is raised.
	assert.Empty(t, mismatches)
}

func TestDetectMismatches_SectionMismatch(t *testing.T) {
	snap := &Snapshot{}
	snap.Students = append(snap.Students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "B"), // drifted
		mkStudent(3, "CSE", 3, "C"), // drifted
	)
	snap.Sessions = append(snap.Sessions, mkSession(10, nil, nil, "CSE", 3, "A"))

	mismatches, unresolved := DetectMismatches(snap)
	assert.Empty(t, unresolved)
	require.Len(t, mismatches, 1)

	m := mismatches[0]
	assert.Equal(t, MismatchSection, m.Kind)
	assert.Equal(t, "A", m.WantSection)
	assert.Equal(t, []int64{2, 3}, m.StudentIDs)
}

func TestDetectMismatches_HealthyParallelSections(t *testing.T) {
	snap := &Snapshot{}
	// Two parallel sections, everyone consistent. A repeated pass must
	// stay silent or operators would chase a phantom defect forever.
	snap.Students = append(snap.Students,
		mkStudent(1, "CSE", 3, "A"),
		mkStudent(2, "CSE", 3, "B"),
	)
	snap.Sessions = append(snap.Sessions,
		mkSession(10, nil, nil, "CSE", 3, "A"),
		mkSession(11, nil, nil, "CSE", 3, "B"),
	)

	mismatches, unresolved := DetectMismatches(snap)
	assert.Empty(t, mismatches)
	assert.Empty(t, unresolved)
}

func TestDetectMismatches_AmbiguousSectionsUnresolved(t *testing.T) {
	snap := &Snapshot{}
	snap.Students = append(snap.Students, mkStudent(1, "CSE", 3, "C"))
	// The student sits outside both declared sections; with two candidate
	// targets there is no safe repair.
	snap.Sessions = append(snap.Sessions,
		mkSession(10, nil, nil, "CSE", 3, "A"),
		mkSession(11, nil, nil, "CSE", 3, "B"),
	)

	mismatches, unresolved := DetectMismatches(snap)
	require.Len(t, unresolved, 1)
	assert.Equal(t, MismatchSection, unresolved[0].Kind)

	for _, m := range mismatches {
		assert.NotEqual(t, MismatchSection, m.Kind, "ambiguous group must not produce section fixes")
	}
}

func TestDetectMismatches_IgnoresInactive(t *testing.T) {
	snap := &Snapshot{}
	inactiveStudent := mkStudent(1, "CSE", 3, "B")
	inactiveStudent.StudentIsActive = false
	snap.Students = append(snap.Students, inactiveStudent, mkStudent(2, "CSE", 3, "A"))

	inactiveSession := mkSession(10, nil, nil, "CSE", 1, "A")
	inactiveSession.SessionIsActive = false
	snap.Sessions = append(snap.Sessions, inactiveSession, mkSession(11, nil, nil, "CSE", 3, "A"))

	mismatches, unresolved := DetectMismatches(snap)
	assert.Empty(t, mismatches)
	assert.Empty(t, unresolved)
}
