package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jobpath/internal/domain/activity"
	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
)

// Flat-file names expected under the data directory. All four are
// semicolon-delimited with a header row.
const (
	coursesFile      = "courses.csv"
	jobsFile         = "jobs.csv"
	ratingsFile      = "ratings.csv"
	applicationsFile = "job_applicants.csv"
)

// LoadCSVDir parses the four reference tables from dir. Columns are matched
// by header name, so extra columns (e.g. rating values) are ignored.
func LoadCSVDir(dir string) (Tables, error) {
	var t Tables

	if err := readCSV(filepath.Join(dir, coursesFile), func(row record) error {
		c := course.Course{
			ID:           row.get("id"),
			Name:         row.get("name"),
			Description:  row.get("description"),
			LearningPath: row.get("learning_path"),
			Level:        course.Level(row.get("level")),
			Technology:   row.get("technology"),
		}
		t.Courses = append(t.Courses, c)
		return row.err()
	}); err != nil {
		return Tables{}, err
	}

	if err := readCSV(filepath.Join(dir, jobsFile), func(row record) error {
		j := job.Job{
			ID:                row.get("id"),
			Position:          row.get("position"),
			Description:       row.get("description"),
			MinimumExperience: job.Experience(row.get("minimum_job_experience")),
		}
		t.Jobs = append(t.Jobs, j)
		return row.err()
	}); err != nil {
		return Tables{}, err
	}

	if err := readCSV(filepath.Join(dir, ratingsFile), func(row record) error {
		t.Ratings = append(t.Ratings, activity.Rating{
			RespondentID: row.get("respondent_identifier"),
			CourseID:     row.get("course_id"),
		})
		return row.err()
	}); err != nil {
		return Tables{}, err
	}

	if err := readCSV(filepath.Join(dir, applicationsFile), func(row record) error {
		t.Applications = append(t.Applications, activity.JobApplication{
			UserID:    row.get("user_id"),
			VacancyID: row.get("vacancy_id"),
		})
		return row.err()
	}); err != nil {
		return Tables{}, err
	}

	return t, nil
}

type record struct {
	cols    map[string]int
	fields  []string
	missing []string
}

func (r *record) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.fields) {
		r.missing = append(r.missing, name)
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r *record) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing column(s) %s", strings.Join(r.missing, ", "))
}

func readCSV(path string, each func(record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("parse %s: empty file", path)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for n, fields := range rows[1:] {
		if err := each(record{cols: cols, fields: fields}); err != nil {
			return fmt.Errorf("parse %s row %d: %w", path, n+2, err)
		}
	}
	return nil
}
