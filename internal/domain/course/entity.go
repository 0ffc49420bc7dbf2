package course

import "strings"

// Level is the ordinal difficulty of a course. The order of the values
// matters: it is compared against job experience bands by index distance.
type Level string

const (
	LevelFundamental  Level = "FUNDAMENTAL"
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelProfessional Level = "PROFESSIONAL"
)

var levelOrder = []Level{
	LevelFundamental,
	LevelBeginner,
	LevelIntermediate,
	LevelProfessional,
}

// Index returns the ordinal position of the level, or false when the value
// is not part of the fixed vocabulary.
func (l Level) Index() (int, bool) {
	for i, v := range levelOrder {
		if l == v {
			return i, true
		}
	}
	return 0, false
}

func LevelCount() int {
	return len(levelOrder)
}

type Course struct {
	ID           string
	Name         string
	Description  string
	LearningPath string
	Level        Level
	Technology   string
}

// TechnologyTokens splits the comma-separated technology field into
// lowercased, trimmed keywords. Empty entries are dropped.
func (c Course) TechnologyTokens() []string {
	parts := strings.Split(strings.ToLower(c.Technology), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
