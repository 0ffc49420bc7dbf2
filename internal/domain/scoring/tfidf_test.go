package scoring

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPairCosine_IdenticalDocuments(t *testing.T) {
	got := pairCosine("backend developer go", "backend developer go")
	if !almostEqual(got, 1.0) {
		t.Fatalf("expected 1.0, got %v", got)
	}
}

func TestPairCosine_DisjointDocuments(t *testing.T) {
	if got := pairCosine("backend go", "frontend react"); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestPairCosine_EmptyDocuments(t *testing.T) {
	if got := pairCosine("", "backend"); got != 0 {
		t.Fatalf("expected 0 for empty left doc, got %v", got)
	}
	if got := pairCosine("backend", ""); got != 0 {
		t.Fatalf("expected 0 for empty right doc, got %v", got)
	}
	if got := pairCosine("", ""); got != 0 {
		t.Fatalf("expected 0 for two empty docs, got %v", got)
	}
}

func TestPairCosine_PartialOverlap(t *testing.T) {
	// Shared term has idf 1, unique terms idf ln(1.5)+1. With one shared
	// and one unique term on each side the cosine is 1/(1+idf^2).
	idfUnique := math.Log(1.5) + 1
	want := 1 / (1 + idfUnique*idfUnique)

	got := pairCosine("python developer", "python engineer")
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPairCosine_SingleCharTokensIgnored(t *testing.T) {
	// Runs shorter than two word characters never enter the vocabulary.
	if got := pairCosine("a b c", "a b c"); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestTokenize_Lowercases(t *testing.T) {
	got := tokenize("Backend GO")
	if len(got) != 2 || got[0] != "backend" || got[1] != "go" {
		t.Fatalf("unexpected tokens %v", got)
	}
}
