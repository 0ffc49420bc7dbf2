package dataset

import (
	"jobpath/internal/domain/activity"
	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
	"jobpath/internal/nlp"
)

// Tables holds the four raw reference tables as loaded from a source.
type Tables struct {
	Courses      []course.Course
	Jobs         []job.Job
	Ratings      []activity.Rating
	Applications []activity.JobApplication
}

// Store is the immutable in-memory view of the reference data. Course and
// job descriptions are normalized exactly once when the store is built;
// every later read sees the normalized form. A store is safe for concurrent
// readers because nothing mutates it after NewStore returns.
type Store struct {
	courses []course.Course
	jobs    []job.Job

	jobsByID      map[string]job.Job
	ratedByUser   map[string]map[string]struct{}
	appliedByUser map[string]map[string]struct{}
}

func NewStore(t Tables) *Store {
	s := &Store{
		courses:       make([]course.Course, len(t.Courses)),
		jobs:          make([]job.Job, len(t.Jobs)),
		jobsByID:      make(map[string]job.Job, len(t.Jobs)),
		ratedByUser:   make(map[string]map[string]struct{}, len(t.Ratings)),
		appliedByUser: make(map[string]map[string]struct{}, len(t.Applications)),
	}

	for i, c := range t.Courses {
		c.Description = nlp.Normalize(c.Description)
		s.courses[i] = c
	}
	for i, j := range t.Jobs {
		j.Description = nlp.Normalize(j.Description)
		s.jobs[i] = j
		s.jobsByID[j.ID] = j
	}

	for _, r := range t.Ratings {
		set := s.ratedByUser[r.RespondentID]
		if set == nil {
			set = make(map[string]struct{})
			s.ratedByUser[r.RespondentID] = set
		}
		set[r.CourseID] = struct{}{}
	}
	for _, a := range t.Applications {
		set := s.appliedByUser[a.UserID]
		if set == nil {
			set = make(map[string]struct{})
			s.appliedByUser[a.UserID] = set
		}
		set[a.VacancyID] = struct{}{}
	}

	return s
}

// CoursesByUser returns the user's distinct rated courses in catalog order.
func (s *Store) CoursesByUser(userID string) []course.Course {
	rated := s.ratedByUser[userID]
	if len(rated) == 0 {
		return nil
	}
	out := make([]course.Course, 0, len(rated))
	for _, c := range s.courses {
		if _, ok := rated[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// AppliedJobs returns the set of vacancy ids the user already applied to.
// The set is shared; callers must treat it as read-only.
func (s *Store) AppliedJobs(userID string) map[string]struct{} {
	return s.appliedByUser[userID]
}

// Jobs returns the vacancy catalog in table order. Read-only.
func (s *Store) Jobs() []job.Job {
	return s.jobs
}

func (s *Store) JobByID(id string) (job.Job, bool) {
	j, ok := s.jobsByID[id]
	return j, ok
}

// Counts reports table sizes for startup logging.
func (s *Store) Counts() (courses, jobs, ratings, applications int) {
	return len(s.courses), len(s.jobs), len(s.ratedByUser), len(s.appliedByUser)
}
