package search

import (
	"fmt"
	"regexp"
)

// HighlightMatch wraps every case-insensitive occurrence of each query term
// in a <mark> span. Display-formatting only; it plays no part in ranking.
func HighlightMatch(text, query string) string {
	for _, term := range tokenize(query) {
		pattern, err := regexp.Compile(fmt.Sprintf(`(?i)(%s)`, regexp.QuoteMeta(term)))
		if err != nil {
			continue
		}
		text = pattern.ReplaceAllString(text, "<mark>$1</mark>")
	}

	return text
}
