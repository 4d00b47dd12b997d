// file: internals/features/reconcile/service/detect.go
package service

import (
	"fmt"
	"sort"
)

type MismatchKind string

const (
	MismatchSemester MismatchKind = "SEMESTER_MISMATCH"
	MismatchSection  MismatchKind = "SECTION_MISMATCH"
)

// Mismatch is a detected defect. Detection never mutates anything; the
// repair planner decides what to do about each record.
type Mismatch struct {
	Kind MismatchKind
	Key  CohortKey // cohort as declared by the sessions

	// SEMESTER_MISMATCH: the session group whose declared key matches no
	// enrolled student.
	SessionIDs []int64

	// SECTION_MISMATCH: students disagreeing with the session-declared
	// section for their (department, semester).
	StudentIDs  []int64
	WantSection string
}

// Unresolved is a defect the engine refuses to repair (guessing would be
// worse than reporting).
type Unresolved struct {
	Kind   MismatchKind
	Key    CohortKey
	Reason string
}

type deptSection struct {
	Department string
	Section    string
}

type deptSemester struct {
	Department string
	Semester   int
}

// DetectMismatches scans active sessions and students for cohorts whose
// declared keys no longer line up.
//
// Semester mismatches: sessions grouped by (department, section); the
// group's declared semester (lowest-id session wins, for determinism) must
// match at least one enrolled student.
//
// Section mismatches: students grouped by (department, semester); when the
// sessions for that group declare exactly one section, every student must
// be in it. Groups running several parallel sections are healthy as long
// as every student sits in a declared section; students outside all of
// them are reported unresolved, because the repair target is ambiguous.
func DetectMismatches(snap *Snapshot) ([]Mismatch, []Unresolved) {
	students := snap.ActiveStudents()
	sessions := snap.ActiveSessions()
	byCohort := snap.studentCountByCohort()

	var mismatches []Mismatch
	var unresolved []Unresolved

	// ---- semester mismatches ----
	groups := make(map[deptSection][]int)
	for i, ses := range sessions {
		k := deptSection{ses.SessionDepartment, ses.SessionSection}
		groups[k] = append(groups[k], i)
	}
	groupKeys := make([]deptSection, 0, len(groups))
	for k := range groups {
		groupKeys = append(groupKeys, k)
	}
	sort.Slice(groupKeys, func(i, j int) bool {
		if groupKeys[i].Department != groupKeys[j].Department {
			return groupKeys[i].Department < groupKeys[j].Department
		}
		return groupKeys[i].Section < groupKeys[j].Section
	})

	for _, gk := range groupKeys {
		idxs := groups[gk]
		declared := sessions[idxs[0]]
		ids := make([]int64, 0, len(idxs))
		for _, i := range idxs {
			if sessions[i].SessionID < declared.SessionID {
				declared = sessions[i]
			}
			ids = append(ids, sessions[i].SessionID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		key := CohortKey{gk.Department, declared.SessionSemester, gk.Section}
		if byCohort[key] > 0 {
			continue // students found, group is fine
		}
		mismatches = append(mismatches, Mismatch{
			Kind:       MismatchSemester,
			Key:        key,
			SessionIDs: ids,
		})
	}

	// ---- section mismatches ----
	sectionBySemGroup := make(map[deptSemester]map[string]bool)
	for _, ses := range sessions {
		k := deptSemester{ses.SessionDepartment, ses.SessionSemester}
		if sectionBySemGroup[k] == nil {
			sectionBySemGroup[k] = make(map[string]bool)
		}
		sectionBySemGroup[k][ses.SessionSection] = true
	}

	studentGroups := make(map[deptSemester][]int)
	for i, st := range students {
		k := deptSemester{st.StudentDepartment, st.StudentSemester}
		studentGroups[k] = append(studentGroups[k], i)
	}
	semKeys := make([]deptSemester, 0, len(studentGroups))
	for k := range studentGroups {
		semKeys = append(semKeys, k)
	}
	sort.Slice(semKeys, func(i, j int) bool {
		if semKeys[i].Department != semKeys[j].Department {
			return semKeys[i].Department < semKeys[j].Department
		}
		return semKeys[i].Semester < semKeys[j].Semester
	})

	for _, k := range semKeys {
		declaredSections := sectionBySemGroup[k]
		if len(declaredSections) == 0 {
			continue // no sessions teach this group; nothing to compare with
		}
		if len(declaredSections) > 1 {
			// Parallel sections are the normal case, not a defect. Only
			// students sitting in a section no session declares are wrong
			// here, and with several candidate targets the repair is
			// ambiguous, so they are reported instead of moved.
			stray := 0
			for _, i := range studentGroups[k] {
				if !declaredSections[students[i].StudentSection] {
					stray++
				}
			}
			if stray > 0 {
				unresolved = append(unresolved, Unresolved{
					Kind: MismatchSection,
					Key:  CohortKey{k.Department, k.Semester, ""},
					Reason: fmt.Sprintf("%d student(s) outside the %d session-declared sections",
						stray, len(declaredSections)),
				})
			}
			continue
		}
		var want string
		for s := range declaredSections {
			want = s
		}

		var wrong []int64
		for _, i := range studentGroups[k] {
			if students[i].StudentSection != want {
				wrong = append(wrong, students[i].StudentID)
			}
		}
		if len(wrong) == 0 {
			continue
		}
		sort.Slice(wrong, func(i, j int) bool { return wrong[i] < wrong[j] })
		mismatches = append(mismatches, Mismatch{
			Kind:        MismatchSection,
			Key:         CohortKey{k.Department, k.Semester, want},
			StudentIDs:  wrong,
			WantSection: want,
		})
	}

	return mismatches, unresolved
}
