// file: internals/features/reconcile/service/staffsync.go
package service

import "sort"

// StaffAssignment points one session at the staff member who should teach
// its subject.
type StaffAssignment struct {
	SessionID   int64
	SubjectID   int64
	StaffID     int64
	PrevStaffID *int64
}

type StaffSyncPlan struct {
	Assignments []StaffAssignment
	// OrphanSessions are active sessions whose subject no active staff has
	// registered; they end the pass with no staff and are reported, not
	// guessed at.
	OrphanSessions []int64
}

// chosenStaffBySubject picks one staff id per subject id. Active staff are
// walked in ascending id order and each registration overwrites the
// previous choice, so the most recently registered staff wins.
func chosenStaffBySubject(snap *Snapshot) map[int64]int64 {
	staff := make([]int, 0, len(snap.Staff))
	for i := range snap.Staff {
		if snap.Staff[i].StaffIsActive {
			staff = append(staff, i)
		}
	}
	sort.Slice(staff, func(i, j int) bool {
		return snap.Staff[staff[i]].StaffID < snap.Staff[staff[j]].StaffID
	})

	chosen := make(map[int64]int64)
	for _, i := range staff {
		for _, sub := range snap.Staff[i].StaffSubjects {
			chosen[sub.SubjectID] = snap.Staff[i].StaffID
		}
	}
	return chosen
}

// PlanStaffSync aligns session staff with subject registrations across the
// whole roster. A session is touched only when its current staff differs
// from the chosen one.
func PlanStaffSync(snap *Snapshot) StaffSyncPlan {
	chosen := chosenStaffBySubject(snap)

	var plan StaffSyncPlan
	for _, ses := range snap.ActiveSessions() {
		if ses.SessionSubjectID == nil {
			continue
		}
		staffID, ok := chosen[*ses.SessionSubjectID]
		if !ok {
			if ses.SessionStaffID == nil {
				plan.OrphanSessions = append(plan.OrphanSessions, ses.SessionID)
			}
			continue
		}
		if ses.SessionStaffID != nil && *ses.SessionStaffID == staffID {
			continue
		}
		plan.Assignments = append(plan.Assignments, StaffAssignment{
			SessionID:   ses.SessionID,
			SubjectID:   *ses.SessionSubjectID,
			StaffID:     staffID,
			PrevStaffID: ses.SessionStaffID,
		})
	}
	sort.Slice(plan.Assignments, func(i, j int) bool {
		return plan.Assignments[i].SessionID < plan.Assignments[j].SessionID
	})
	sort.Slice(plan.OrphanSessions, func(i, j int) bool {
		return plan.OrphanSessions[i] < plan.OrphanSessions[j]
	})
	return plan
}

// PlanStaffSyncForStaff restricts the sync to the sessions a registration
// change can affect: those teaching a subject in the member's current set,
// plus those still assigned to the member for a subject that was dropped.
// The winner per subject is still computed over all staff.
func PlanStaffSyncForStaff(snap *Snapshot, staffID int64) StaffSyncPlan {
	subjects := make(map[int64]bool)
	for _, st := range snap.Staff {
		if st.StaffID != staffID {
			continue
		}
		for _, sub := range st.StaffSubjects {
			subjects[sub.SubjectID] = true
		}
	}

	full := PlanStaffSync(snap)
	var plan StaffSyncPlan
	for _, a := range full.Assignments {
		if subjects[a.SubjectID] || (a.PrevStaffID != nil && *a.PrevStaffID == staffID) {
			plan.Assignments = append(plan.Assignments, a)
		}
	}
	return plan
}
