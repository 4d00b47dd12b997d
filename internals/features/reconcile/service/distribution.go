// file: internals/features/reconcile/service/distribution.go
package service

import "sort"

// CohortDistribution is the read-only diagnostic behind the distribution
// endpoint: how students and sessions spread across cohort keys, and which
// session cohorts have nobody enrolled.
type CohortDistribution struct {
	Cohorts        []CohortCount        `json:"cohorts"`
	EmptySessions  []CohortCount        `json:"empty_session_cohorts,omitempty"`
	StudentsTotal  int                  `json:"students_total"`
	SessionsTotal  int                  `json:"sessions_total"`
	SubjectsTotal  int                  `json:"subjects_total"`
	MismatchCounts map[MismatchKind]int `json:"mismatch_counts"`
}

type CohortCount struct {
	Department string `json:"department"`
	Semester   int    `json:"semester"`
	Year       int    `json:"year"`
	Section    string `json:"section"`
	Students   int    `json:"students"`
	Sessions   int    `json:"sessions"`
}

// BuildDistribution never mutates anything; it can run concurrently with
// reads and does not take the runner lock.
func BuildDistribution(snap *Snapshot) *CohortDistribution {
	students := snap.ActiveStudents()
	sessions := snap.ActiveSessions()

	counts := make(map[CohortKey]*CohortCount)
	get := func(k CohortKey) *CohortCount {
		if c, ok := counts[k]; ok {
			return c
		}
		c := &CohortCount{
			Department: k.Department,
			Semester:   k.Semester,
			Year:       YearOfSemester(k.Semester),
			Section:    k.Section,
		}
		counts[k] = c
		return c
	}
	for _, st := range students {
		get(CohortKey{st.StudentDepartment, st.StudentSemester, st.StudentSection}).Students++
	}
	for _, ses := range sessions {
		get(CohortKey{ses.SessionDepartment, ses.SessionSemester, ses.SessionSection}).Sessions++
	}

	dist := &CohortDistribution{
		StudentsTotal:  len(students),
		SessionsTotal:  len(sessions),
		SubjectsTotal:  len(snap.Subjects),
		MismatchCounts: make(map[MismatchKind]int),
	}
	for _, c := range counts {
		dist.Cohorts = append(dist.Cohorts, *c)
		if c.Sessions > 0 && c.Students == 0 {
			dist.EmptySessions = append(dist.EmptySessions, *c)
		}
	}
	sort.Slice(dist.Cohorts, func(i, j int) bool { return lessCohortCount(dist.Cohorts[i], dist.Cohorts[j]) })
	sort.Slice(dist.EmptySessions, func(i, j int) bool { return lessCohortCount(dist.EmptySessions[i], dist.EmptySessions[j]) })

	mismatches, unresolved := DetectMismatches(snap)
	for _, m := range mismatches {
		dist.MismatchCounts[m.Kind]++
	}
	for _, u := range unresolved {
		dist.MismatchCounts[u.Kind]++
	}
	return dist
}

func lessCohortCount(a, b CohortCount) bool {
	if a.Department != b.Department {
		return a.Department < b.Department
	}
	if a.Semester != b.Semester {
		return a.Semester < b.Semester
	}
	return a.Section < b.Section
}
