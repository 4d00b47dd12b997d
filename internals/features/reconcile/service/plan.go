// file: internals/features/reconcile/service/plan.go
package service

// SessionSemesterFix rewrites every session of a (department, section)
// group to the semester where its students actually are.
type SessionSemesterFix struct {
	Department    string
	Section       string
	OldSemester   int
	NewSemester   int
	SessionIDs    []int64
	StudentsFound int
}

// StudentSectionFix moves one student to the session-declared section.
type StudentSectionFix struct {
	StudentID  int64
	Department string
	Semester   int
	OldSection string
	NewSection string
}

type RepairPlan struct {
	SemesterFixes []SessionSemesterFix
	SectionFixes  []StudentSectionFix
	Unresolved    []Unresolved
}

func (p RepairPlan) Empty() bool {
	return len(p.SemesterFixes) == 0 && len(p.SectionFixes) == 0
}

// ApplyRepairsToSnapshot mirrors the store writes onto the in-memory
// snapshot so a re-detect sees the repaired roster. Section mismatches
// only surface once the semester fixes are in, hence the second round.
func ApplyRepairsToSnapshot(snap *Snapshot, plan RepairPlan) {
	for _, fix := range plan.SemesterFixes {
		ids := make(map[int64]bool, len(fix.SessionIDs))
		for _, id := range fix.SessionIDs {
			ids[id] = true
		}
		for i := range snap.Sessions {
			if ids[snap.Sessions[i].SessionID] {
				snap.Sessions[i].SessionSemester = fix.NewSemester
			}
		}
	}
	for _, fix := range plan.SectionFixes {
		for i := range snap.Students {
			if snap.Students[i].StudentID == fix.StudentID {
				snap.Students[i].StudentSection = fix.NewSection
			}
		}
	}
}

// PlanRepairs turns detected mismatches into concrete corrections.
//
// For a semester mismatch the semesters 1..maxSemester are scanned in
// order and the first one with enrolled students for (department, section)
// wins. When no semester has students the group stays unrepaired: making
// up a semester would just move the defect.
func PlanRepairs(snap *Snapshot, mismatches []Mismatch, maxSemester int) RepairPlan {
	if maxSemester < 1 {
		maxSemester = 8
	}
	byCohort := snap.studentCountByCohort()
	sectionByStudent := make(map[int64]string)
	for _, st := range snap.ActiveStudents() {
		sectionByStudent[st.StudentID] = st.StudentSection
	}

	var plan RepairPlan
	for _, m := range mismatches {
		switch m.Kind {
		case MismatchSemester:
			found := 0
			var count int
			for sem := 1; sem <= maxSemester; sem++ {
				if n := byCohort[CohortKey{m.Key.Department, sem, m.Key.Section}]; n > 0 {
					found = sem
					count = n
					break
				}
			}
			if found == 0 {
				plan.Unresolved = append(plan.Unresolved, Unresolved{
					Kind:   MismatchSemester,
					Key:    m.Key,
					Reason: "no students found in any semester",
				})
				continue
			}
			plan.SemesterFixes = append(plan.SemesterFixes, SessionSemesterFix{
				Department:    m.Key.Department,
				Section:       m.Key.Section,
				OldSemester:   m.Key.Semester,
				NewSemester:   found,
				SessionIDs:    m.SessionIDs,
				StudentsFound: count,
			})

		case MismatchSection:
			for _, id := range m.StudentIDs {
				plan.SectionFixes = append(plan.SectionFixes, StudentSectionFix{
					StudentID:  id,
					Department: m.Key.Department,
					Semester:   m.Key.Semester,
					OldSection: sectionByStudent[id],
					NewSection: m.WantSection,
				})
			}
		}
	}
	return plan
}
