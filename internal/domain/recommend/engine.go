package recommend

import (
	"sort"

	"jobpath/internal/domain/allocation"
	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
	"jobpath/internal/domain/scoring"
)

// MaxRecommendations caps the final list after the global re-sort.
const MaxRecommendations = allocation.TotalBudget

// Item is one recommended vacancy with its relative ranking score.
type Item struct {
	JobID string  `json:"job_id"`
	Score float64 `json:"score"`
}

// Dataset is the read-only reference data the engine computes over.
type Dataset interface {
	// CoursesByUser returns the user's distinct rated courses in catalog
	// order. Empty for unknown users.
	CoursesByUser(userID string) []course.Course
	// AppliedJobs returns the set of vacancy ids the user already applied
	// to. The returned set must not be mutated.
	AppliedJobs(userID string) map[string]struct{}
	// Jobs returns the full vacancy catalog in table order.
	Jobs() []job.Job
}

// Recommend produces at most MaxRecommendations vacancies for the user,
// score descending. The budget is first split across the user's learning
// paths by completion proportion; each path shortlists its own top
// candidates before the global re-sort. A user with no course history gets
// an empty list, not an error.
//
// Ties keep catalog order: sorts are stable and jobs are scored in table
// order, so identical inputs always produce identical output.
func Recommend(ds Dataset, userID string) ([]Item, error) {
	userCourses := ds.CoursesByUser(userID)
	if len(userCourses) == 0 {
		return []Item{}, nil
	}
	applied := ds.AppliedJobs(userID)

	counts := make(map[string]int)
	byPath := make(map[string][]course.Course)
	for _, c := range userCourses {
		counts[c.LearningPath]++
		byPath[c.LearningPath] = append(byPath[c.LearningPath], c)
	}

	quotas, err := allocation.Plan(counts)
	if err != nil {
		return nil, err
	}

	combined := make([]Item, 0, MaxRecommendations*len(quotas))
	for _, pq := range quotas {
		if pq.Quota <= 0 {
			continue
		}
		shortlist, err := rankForPath(ds, byPath[pq.LearningPath], applied)
		if err != nil {
			return nil, err
		}
		if len(shortlist) > pq.Quota {
			shortlist = shortlist[:pq.Quota]
		}
		combined = append(combined, shortlist...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Score > combined[j].Score
	})
	if len(combined) > MaxRecommendations {
		combined = combined[:MaxRecommendations]
	}
	return combined, nil
}

// rankForPath scores every unapplied vacancy against the path's courses
// using the best-course-match policy: a job's score is the maximum over the
// user's courses in the path, not the average.
func rankForPath(ds Dataset, pathCourses []course.Course, applied map[string]struct{}) ([]Item, error) {
	candidates := make([]Item, 0, len(ds.Jobs()))
	for _, j := range ds.Jobs() {
		if _, ok := applied[j.ID]; ok {
			continue
		}
		best := 0.0
		for _, c := range pathCourses {
			s, err := scoring.Score(c, j)
			if err != nil {
				return nil, err
			}
			if s > best {
				best = s
			}
		}
		candidates = append(candidates, Item{JobID: j.ID, Score: best})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}
