package dataset

import (
	"context"
	"fmt"

	"jobpath/internal/database"
	"jobpath/internal/domain/activity"
	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
)

// LoadPostgres reads the four reference tables from the database. Row order
// follows the primary key so repeated loads of the same data produce the
// same catalog order (and therefore the same tie-breaks downstream).
func LoadPostgres(ctx context.Context, db database.DB) (Tables, error) {
	var t Tables

	err := queryAll(ctx, db,
		`SELECT id, name, description, learning_path, level, technology
		 FROM courses ORDER BY id`,
		func(rows database.Rows) error {
			var c course.Course
			var level string
			if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.LearningPath, &level, &c.Technology); err != nil {
				return err
			}
			c.Level = course.Level(level)
			t.Courses = append(t.Courses, c)
			return nil
		})
	if err != nil {
		return Tables{}, fmt.Errorf("load courses: %w", err)
	}

	err = queryAll(ctx, db,
		`SELECT id, position, description, minimum_job_experience
		 FROM jobs ORDER BY id`,
		func(rows database.Rows) error {
			var j job.Job
			var exp string
			if err := rows.Scan(&j.ID, &j.Position, &j.Description, &exp); err != nil {
				return err
			}
			j.MinimumExperience = job.Experience(exp)
			t.Jobs = append(t.Jobs, j)
			return nil
		})
	if err != nil {
		return Tables{}, fmt.Errorf("load jobs: %w", err)
	}

	err = queryAll(ctx, db,
		`SELECT respondent_identifier, course_id FROM ratings`,
		func(rows database.Rows) error {
			var r activity.Rating
			if err := rows.Scan(&r.RespondentID, &r.CourseID); err != nil {
				return err
			}
			t.Ratings = append(t.Ratings, r)
			return nil
		})
	if err != nil {
		return Tables{}, fmt.Errorf("load ratings: %w", err)
	}

	err = queryAll(ctx, db,
		`SELECT user_id, vacancy_id FROM job_applicants`,
		func(rows database.Rows) error {
			var a activity.JobApplication
			if err := rows.Scan(&a.UserID, &a.VacancyID); err != nil {
				return err
			}
			t.Applications = append(t.Applications, a)
			return nil
		})
	if err != nil {
		return Tables{}, fmt.Errorf("load job applicants: %w", err)
	}

	return t, nil
}

func queryAll(ctx context.Context, db database.DB, query string, scan func(database.Rows) error) error {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
