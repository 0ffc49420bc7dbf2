package scoring

import (
	"math"
	"regexp"
	"strings"
)

// Tokens are runs of two or more word characters, matching the default
// token pattern of scikit-learn's TfidfVectorizer the model was tuned with.
var reToken = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(s string) []string {
	return reToken.FindAllString(strings.ToLower(s), -1)
}

func termCounts(tokens []string) map[string]float64 {
	m := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

// pairCosine is the cosine similarity between the TF-IDF vectors of two
// documents where both the vocabulary and the document frequencies come
// from exactly this pair. Rebuilding the weighting per pair is deliberate:
// scoring one (course, job) pair must not depend on the rest of the corpus.
// IDF is smoothed, ln((1+n)/(1+df)) + 1 with n = 2.
func pairCosine(a, b string) float64 {
	ca := termCounts(tokenize(a))
	cb := termCounts(tokenize(b))
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	idf := func(term string) float64 {
		df := 0.0
		if ca[term] > 0 {
			df++
		}
		if cb[term] > 0 {
			df++
		}
		return math.Log(3.0/(1.0+df)) + 1.0
	}

	var dot, na, nb float64
	for term, n := range ca {
		w := n * idf(term)
		na += w * w
		if m := cb[term]; m > 0 {
			dot += w * m * idf(term)
		}
	}
	for term, n := range cb {
		w := n * idf(term)
		nb += w * w
	}

	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
