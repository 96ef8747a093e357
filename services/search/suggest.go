package search

import "strings"

const (
	// DefaultSuggestionLimit caps the dropdown suggestion list.
	DefaultSuggestionLimit = 5

	minSuggestionQueryLength = 2
)

// Suggestions collects distinct titles, categories, countries and tags that
// contain the query as a substring. It is a lightweight companion to
// SearchItems for type-ahead dropdowns and does no fuzzy matching.
func Suggestions(items []Item, query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minSuggestionQueryLength {
		return []string{}
	}

	suggestions := []string{}
	seen := make(map[string]bool)

	collect := func(candidate string) {
		if len(suggestions) >= limit || candidate == "" {
			return
		}
		candidateLower := strings.ToLower(candidate)
		if seen[candidateLower] || !strings.Contains(candidateLower, query) {
			return
		}
		seen[candidateLower] = true
		suggestions = append(suggestions, candidate)
	}

	for _, item := range items {
		collect(item.Title)
		collect(item.Category)
		for _, country := range item.Countries {
			collect(country)
		}
		for _, tag := range item.Tags {
			collect(tag)
		}
		if len(suggestions) >= limit {
			break
		}
	}

	return suggestions
}
