// file: internals/features/reconcile/service/dedupe.go
package service

import (
	"sort"

	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
)

// SubjectMerge folds every duplicate of one normalized subject name into
// the canonical row (the one with the lowest id, i.e. created first).
type SubjectMerge struct {
	NormalizedName string
	CanonicalID    int64
	CanonicalName  string
	CanonicalCode  string
	DuplicateIDs   []int64
}

// PlanSubjectMerges groups subjects by normalized name (uppercase + trim)
// and plans one merge per group with more than one member. Merges come
// back sorted by normalized name; duplicate ids ascending.
func PlanSubjectMerges(snap *Snapshot) []SubjectMerge {
	groups := make(map[string][]subjectModel.SubjectModel)
	for _, sub := range snap.Subjects {
		key := subjectModel.NormalizeSubjectName(sub.SubjectName)
		groups[key] = append(groups[key], sub)
	}

	names := make([]string, 0, len(groups))
	for name, members := range groups {
		if len(members) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	merges := make([]SubjectMerge, 0, len(names))
	for _, name := range names {
		members := groups[name]
		sort.Slice(members, func(i, j int) bool { return members[i].SubjectID < members[j].SubjectID })
		canonical := members[0]

		dups := make([]int64, 0, len(members)-1)
		for _, m := range members[1:] {
			dups = append(dups, m.SubjectID)
		}
		merges = append(merges, SubjectMerge{
			NormalizedName: name,
			CanonicalID:    canonical.SubjectID,
			CanonicalName:  canonical.SubjectName,
			CanonicalCode:  canonical.SubjectCode,
			DuplicateIDs:   dups,
		})
	}
	return merges
}

// ApplyMergesToSnapshot rewrites the in-memory snapshot the same way the
// store writes do, so later planners in the same pass (staff sync) see the
// post-merge world without a reload.
func ApplyMergesToSnapshot(snap *Snapshot, merges []SubjectMerge) {
	if len(merges) == 0 {
		return
	}
	canonicalOf := make(map[int64]int64)
	dead := make(map[int64]bool)
	for _, mg := range merges {
		for _, id := range mg.DuplicateIDs {
			canonicalOf[id] = mg.CanonicalID
			dead[id] = true
		}
	}

	for i := range snap.Sessions {
		if sid := snap.Sessions[i].SessionSubjectID; sid != nil {
			if canon, ok := canonicalOf[*sid]; ok {
				snap.Sessions[i].SessionSubjectID = &canon
			}
		}
	}

	for i := range snap.Staff {
		kept := snap.Staff[i].StaffSubjects[:0]
		seen := make(map[int64]bool)
		for _, sub := range snap.Staff[i].StaffSubjects {
			id := sub.SubjectID
			if canon, ok := canonicalOf[id]; ok {
				id = canon
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			for _, s := range snap.Subjects {
				if s.SubjectID == id {
					kept = append(kept, s)
					break
				}
			}
		}
		snap.Staff[i].StaffSubjects = kept
	}

	live := snap.Subjects[:0]
	for _, sub := range snap.Subjects {
		if !dead[sub.SubjectID] {
			live = append(live, sub)
		}
	}
	snap.Subjects = live
}
