package activity

// Rating records that a user completed and rated a course.
type Rating struct {
	RespondentID string
	CourseID     string
}

// JobApplication records that a user already applied to a vacancy. Applied
// vacancies are never recommended again to the same user.
type JobApplication struct {
	UserID    string
	VacancyID string
}
