package allocation

import (
	"errors"
	"sort"
)

// TotalBudget is the fixed number of recommendation slots shared by all
// learning paths in one request.
const TotalBudget = 10

// ErrEmptyHistory reports a plan request for a user with no completed
// courses; there is no proportion to compute.
var ErrEmptyHistory = errors.New("empty course history")

// PathQuota is one learning path's share of the recommendation budget.
type PathQuota struct {
	LearningPath string
	Count        int
	Proportion   float64
	Quota        int
}

// Plan distributes TotalBudget slots across learning paths in proportion to
// completed-course counts. Each proportion is floored to a tenth; the
// smallest path then absorbs whatever the flooring left over, so the quotas
// always sum to exactly TotalBudget. Result is ordered by proportion
// descending, ties by count descending then path name.
func Plan(counts map[string]int) ([]PathQuota, error) {
	total := 0
	for _, n := range counts {
		if n > 0 {
			total += n
		}
	}
	if total == 0 {
		return nil, ErrEmptyHistory
	}

	// Work in integer tenths so flooring is exact: count*10/total is
	// floor(proportion*10) without float drift.
	out := make([]PathQuota, 0, len(counts))
	for path, n := range counts {
		if n <= 0 {
			continue
		}
		tenths := n * TotalBudget / total
		out = append(out, PathQuota{
			LearningPath: path,
			Count:        n,
			Proportion:   float64(tenths) / 10,
			Quota:        tenths,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quota != out[j].Quota {
			return out[i].Quota > out[j].Quota
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LearningPath < out[j].LearningPath
	})

	// Remainder correction: the last (smallest) path's proportion becomes
	// 1 - sum(others), absorbing the rounding drift.
	rest := 0
	for i := 0; i < len(out)-1; i++ {
		rest += out[i].Quota
	}
	last := &out[len(out)-1]
	last.Quota = TotalBudget - rest
	last.Proportion = float64(last.Quota) / 10

	return out, nil
}
