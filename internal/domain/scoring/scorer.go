package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"jobpath/internal/domain/course"
	"jobpath/internal/domain/job"
)

// ErrInvalidCategory reports a course level or job experience value outside
// its fixed ordinal vocabulary. Scoring aborts rather than producing a
// silently wrong rank.
var ErrInvalidCategory = errors.New("invalid category value")

// Blend weights. They intentionally sum to 0.95, exactly as the model was
// calibrated; the result is a relative ranking score, not a probability.
const (
	weightName       = 0.4
	weightDesc       = 0.3
	weightLevel      = 0.2
	weightTechnology = 0.05
)

// Score blends four similarity signals between one course and one job
// posting. Descriptions are expected to be normalized already.
func Score(c course.Course, j job.Job) (float64, error) {
	levelIdx, ok := c.Level.Index()
	if !ok {
		return 0, fmt.Errorf("%w: course %s level %q", ErrInvalidCategory, c.ID, c.Level)
	}
	expIdx, ok := j.MinimumExperience.Index()
	if !ok {
		return 0, fmt.Errorf("%w: job %s experience %q", ErrInvalidCategory, j.ID, j.MinimumExperience)
	}

	nameSim := pairCosine(c.Name+" "+c.LearningPath, j.Position)
	descSim := pairCosine(c.Description, j.Description)
	levelSim := levelSimilarity(levelIdx, expIdx)
	techSim := technologyRelevance(c.TechnologyTokens(), j.Description)

	return weightName*nameSim +
		weightDesc*descSim +
		weightLevel*levelSim +
		weightTechnology*techSim, nil
}

// levelSimilarity measures raw index distance between the two ordinal
// scales, normalized by the longer one. It does not calibrate the scales
// against each other.
func levelSimilarity(levelIdx, expIdx int) float64 {
	denom := course.LevelCount()
	if job.ExperienceCount() > denom {
		denom = job.ExperienceCount()
	}
	return 1 - math.Abs(float64(levelIdx-expIdx))/float64(denom)
}

// technologyRelevance counts literal occurrences of each technology keyword
// in the job description and averages over the keyword count. A keyword
// repeated often can push the value above 1.0; that is part of the ranking
// semantics, not a bug.
func technologyRelevance(techs []string, description string) float64 {
	if len(techs) == 0 {
		return 0
	}
	total := 0
	for _, t := range techs {
		total += strings.Count(description, t)
	}
	return float64(total) / float64(len(techs))
}
