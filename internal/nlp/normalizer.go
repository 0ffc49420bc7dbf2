package nlp

import (
	"regexp"
	"strings"
)

var (
	reTag    = regexp.MustCompile(`<[^>]+>`)
	reDigits = regexp.MustCompile(`\d+`)
	reURL    = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize cleans a free-text description for similarity scoring.
// The steps run in a fixed order: HTML-like tags become spaces, the text is
// lowercased, digit runs, punctuation and URL-like substrings are removed,
// and the surviving words are filtered against the Indonesian stopword set
// and rejoined with single spaces. Normalize is idempotent.
func Normalize(text string) string {
	text = reTag.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = reDigits.ReplaceAllString(text, "")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	text = reURL.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
