package allocation

import (
	"errors"
	"testing"
)

func quotaByPath(t *testing.T, quotas []PathQuota) map[string]int {
	t.Helper()
	m := make(map[string]int, len(quotas))
	for _, q := range quotas {
		m[q.LearningPath] = q.Quota
	}
	return m
}

func TestPlan_ExactProportions(t *testing.T) {
	quotas, err := Plan(map[string]int{"Data": 8, "Web": 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := quotaByPath(t, quotas)
	if m["Data"] != 8 || m["Web"] != 2 {
		t.Fatalf("expected Data=8 Web=2, got %v", m)
	}
	if quotas[0].LearningPath != "Data" {
		t.Fatalf("expected Data first, got %s", quotas[0].LearningPath)
	}
}

func TestPlan_SinglePathTakesFullBudget(t *testing.T) {
	quotas, err := Plan(map[string]int{"Android": 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(quotas) != 1 || quotas[0].Quota != TotalBudget {
		t.Fatalf("expected single quota of %d, got %v", TotalBudget, quotas)
	}
	if quotas[0].Proportion != 1.0 {
		t.Fatalf("expected corrected proportion 1.0, got %v", quotas[0].Proportion)
	}
}

func TestPlan_SmallestPathAbsorbsRemainder(t *testing.T) {
	// Thirds floor to 0.3 each; the last path is corrected to 0.4.
	quotas, err := Plan(map[string]int{"Data": 1, "Web": 1, "Android": 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(quotas) != 3 {
		t.Fatalf("expected 3 quotas, got %d", len(quotas))
	}
	if quotas[0].Quota != 3 || quotas[1].Quota != 3 || quotas[2].Quota != 4 {
		t.Fatalf("expected quotas 3,3,4, got %v", quotas)
	}
	// Equal proportions and counts order by path name, so Web is last.
	if quotas[2].LearningPath != "Web" {
		t.Fatalf("expected Web last, got %s", quotas[2].LearningPath)
	}
}

func TestPlan_QuotasAlwaysSumToBudget(t *testing.T) {
	cases := []map[string]int{
		{"Data": 1},
		{"Data": 1, "Web": 1},
		{"Data": 8, "Web": 2},
		{"Data": 7, "Web": 2, "Android": 1},
		{"Data": 5, "Web": 3, "Android": 3, "Cloud": 2},
		{"Data": 13, "Web": 7},
		{"Data": 1, "Web": 1, "Android": 1, "Cloud": 1, "ML": 1, "IOS": 1, "Game": 1},
	}
	for _, counts := range cases {
		quotas, err := Plan(counts)
		if err != nil {
			t.Fatalf("unexpected err for %v: %v", counts, err)
		}
		sum := 0
		for _, q := range quotas {
			if q.Proportion < 0 || q.Proportion > 1 {
				t.Fatalf("proportion out of range for %v: %v", counts, q)
			}
			if q.Quota < 0 {
				t.Fatalf("negative quota for %v: %v", counts, q)
			}
			sum += q.Quota
		}
		if sum != TotalBudget {
			t.Fatalf("quotas for %v sum to %d, want %d", counts, sum, TotalBudget)
		}
	}
}

func TestPlan_EmptyHistory(t *testing.T) {
	if _, err := Plan(nil); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
	if _, err := Plan(map[string]int{}); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestPlan_Deterministic(t *testing.T) {
	counts := map[string]int{"Data": 4, "Web": 4, "Android": 2}
	first, err := Plan(counts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Plan(counts)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for k := range first {
			if first[k] != again[k] {
				t.Fatalf("plan order changed: %v vs %v", first, again)
			}
		}
	}
}
