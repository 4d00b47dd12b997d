// file: internals/features/reconcile/service/maintenance.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrPassInProgress is returned when a maintenance pass is requested while
// another one holds the runner.
var ErrPassInProgress = errors.New("maintenance pass already in progress")

// FieldChange is one correction applied during a pass, for the report.
type FieldChange struct {
	Entity   string `json:"entity"`
	EntityID int64  `json:"entity_id"`
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// PassReport summarizes one maintenance pass.
type PassReport struct {
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`

	SessionsRewritten int `json:"sessions_rewritten"`
	StudentsRewritten int `json:"students_rewritten"`
	SubjectsMerged    int `json:"subjects_merged"`
	SessionsRelinked  int `json:"sessions_relinked"`
	Writes            int `json:"writes"`

	Unresolved     []Unresolved  `json:"unresolved,omitempty"`
	OrphanSessions []int64       `json:"orphan_sessions,omitempty"`
	Changes        []FieldChange `json:"changes,omitempty"`
}

// Runner owns the serialized maintenance pass. One Runner per process; all
// entry points (startup, admin endpoint, staff registration hook) share it.
type Runner struct {
	store       RosterStore
	maxSemester int
	mu          sync.Mutex
}

func NewRunner(store RosterStore, maxSemester int) *Runner {
	if maxSemester < 1 {
		maxSemester = 8
	}
	return &Runner{store: store, maxSemester: maxSemester}
}

// RunMaintenancePass runs the full pipeline inside one transaction:
// detect mismatches, repair them, merge duplicate subjects, then realign
// session staff. Returns ErrPassInProgress instead of queueing when a
// pass already holds the runner.
func (r *Runner) RunMaintenancePass(ctx context.Context) (*PassReport, error) {
	if !r.mu.TryLock() {
		return nil, ErrPassInProgress
	}
	defer r.mu.Unlock()

	report := &PassReport{StartedAt: time.Now()}
	err := r.store.Transaction(ctx, func(tx RosterStore) error {
		snap, err := tx.LoadSnapshot(ctx)
		if err != nil {
			return err
		}

		// ---- mismatch repair ----
		// Two rounds: section drift is only detectable against repaired
		// session semesters, so round one fixes semesters and round two
		// picks up the sections. Unresolved defects from the last round
		// are the ones that actually persist.
		for round := 0; round < 2; round++ {
			mismatches, unresolved := DetectMismatches(snap)
			plan := PlanRepairs(snap, mismatches, r.maxSemester)
			report.Unresolved = append(unresolved, plan.Unresolved...)
			if plan.Empty() {
				break
			}

			for _, fix := range plan.SemesterFixes {
				for _, id := range fix.SessionIDs {
					if err := tx.UpdateSessionSemester(ctx, id, fix.NewSemester); err != nil {
						return err
					}
					report.record("session", id, "semester",
						fmt.Sprintf("%d", fix.OldSemester), fmt.Sprintf("%d", fix.NewSemester))
					report.SessionsRewritten++
				}
				log.Printf("[RECONCILE] semester fix dept=%s section=%s old=%d new=%d sessions=%d students=%d",
					fix.Department, fix.Section, fix.OldSemester, fix.NewSemester, len(fix.SessionIDs), fix.StudentsFound)
			}
			for _, fix := range plan.SectionFixes {
				if err := tx.UpdateStudentSection(ctx, fix.StudentID, fix.NewSection); err != nil {
					return err
				}
				report.record("student", fix.StudentID, "section", fix.OldSection, fix.NewSection)
				report.StudentsRewritten++
				log.Printf("[RECONCILE] section fix student=%d dept=%s sem=%d old=%s new=%s",
					fix.StudentID, fix.Department, fix.Semester, fix.OldSection, fix.NewSection)
			}
			ApplyRepairsToSnapshot(snap, plan)
		}

		// ---- subject dedup ----
		merges := PlanSubjectMerges(snap)
		for _, mg := range merges {
			for _, dup := range mg.DuplicateIDs {
				n, err := tx.RepointSessionSubject(ctx, dup, mg.CanonicalID)
				if err != nil {
					return err
				}
				report.Writes += int(n)
				n, err = tx.RepointStaffSubjects(ctx, dup, mg.CanonicalID)
				if err != nil {
					return err
				}
				report.Writes += int(n)
				if err := tx.DeleteSubject(ctx, dup); err != nil {
					return err
				}
				report.record("subject", dup, "merged_into", "", fmt.Sprintf("%d", mg.CanonicalID))
				report.SubjectsMerged++
			}
			n, err := tx.RewriteStaffLegacySubject(ctx, mg.NormalizedName, mg.CanonicalName)
			if err != nil {
				return err
			}
			report.Writes += int(n)
			log.Printf("[RECONCILE] subject merge name=%q canonical=%d duplicates=%d",
				mg.NormalizedName, mg.CanonicalID, len(mg.DuplicateIDs))
		}
		ApplyMergesToSnapshot(snap, merges)

		// ---- staff sync ----
		staffPlan := PlanStaffSync(snap)
		for _, a := range staffPlan.Assignments {
			if err := tx.AssignSessionStaff(ctx, a.SessionID, a.StaffID); err != nil {
				return err
			}
			prev := ""
			if a.PrevStaffID != nil {
				prev = fmt.Sprintf("%d", *a.PrevStaffID)
			}
			report.record("session", a.SessionID, "staff", prev, fmt.Sprintf("%d", a.StaffID))
			report.SessionsRelinked++
		}
		report.OrphanSessions = staffPlan.OrphanSessions
		if len(staffPlan.OrphanSessions) > 0 {
			log.Printf("⚠️ [RECONCILE] %d session(s) left without staff", len(staffPlan.OrphanSessions))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Writes += report.SessionsRewritten + report.StudentsRewritten + report.SessionsRelinked + report.SubjectsMerged
	report.DurationMS = time.Since(report.StartedAt).Milliseconds()
	log.Printf("✅ [RECONCILE] pass done in %dms: sessions=%d students=%d merges=%d relinks=%d unresolved=%d",
		report.DurationMS, report.SessionsRewritten, report.StudentsRewritten,
		report.SubjectsMerged, report.SessionsRelinked, len(report.Unresolved))
	return report, nil
}

// OnStaffSubjectsChanged relinks the sessions affected by one staff
// member's registration change: those teaching subjects now registered,
// and those still assigned to the member for subjects that were dropped.
// Called right after a registration update; blocks until any running pass
// finishes instead of failing, because the caller already committed the
// registration change.
func (r *Runner) OnStaffSubjectsChanged(ctx context.Context, staffID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	relinked := 0
	err := r.store.Transaction(ctx, func(tx RosterStore) error {
		snap, err := tx.LoadSnapshot(ctx)
		if err != nil {
			return err
		}
		plan := PlanStaffSyncForStaff(snap, staffID)
		for _, a := range plan.Assignments {
			if err := tx.AssignSessionStaff(ctx, a.SessionID, a.StaffID); err != nil {
				return err
			}
			relinked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if relinked > 0 {
		log.Printf("[RECONCILE] staff=%d registration change relinked %d session(s)", staffID, relinked)
	}
	return relinked, nil
}

func (rep *PassReport) record(entity string, id int64, field, oldV, newV string) {
	rep.Changes = append(rep.Changes, FieldChange{
		Entity: entity, EntityID: id, Field: field, OldValue: oldV, NewValue: newV,
	})
}
