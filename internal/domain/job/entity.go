package job

// Experience is the ordinal minimum-experience band of a job posting.
type Experience string

const (
	ExperienceFreshGraduate    Experience = "freshgraduate"
	ExperienceOneToThreeYears  Experience = "one_to_three_years"
	ExperienceFourToFiveYears  Experience = "four_to_five_years"
	ExperienceSixToTenYears    Experience = "six_to_ten_years"
	ExperienceMoreThanTenYears Experience = "more_than_ten_years"
)

var experienceOrder = []Experience{
	ExperienceFreshGraduate,
	ExperienceOneToThreeYears,
	ExperienceFourToFiveYears,
	ExperienceSixToTenYears,
	ExperienceMoreThanTenYears,
}

// Index returns the ordinal position of the experience band, or false when
// the value is not part of the fixed vocabulary.
func (e Experience) Index() (int, bool) {
	for i, v := range experienceOrder {
		if e == v {
			return i, true
		}
	}
	return 0, false
}

func ExperienceCount() int {
	return len(experienceOrder)
}

type Job struct {
	ID                string
	Position          string
	Description       string
	MinimumExperience Experience
}
