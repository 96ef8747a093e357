package search

import "strings"

// minFuzzyQueryLength guards the edit-distance tiers: terms shorter than
// this produce too many false positives to be worth fuzzy matching.
const minFuzzyQueryLength = 4

// minFuzzyWordLength is the shortest field word considered by the per-word
// fuzzy tier.
const minFuzzyWordLength = 3

// FieldMatch is the outcome of matching one query term against one field.
type FieldMatch struct {
	Matches bool
	Score   float64
}

// matchTier attempts one matching strategy. It reports the score and whether
// the tier matched at all; tiers are tried in priority order and the first
// hit wins.
type matchTier func(textLower, query string, threshold float64) (float64, bool)

// matchTiers is ordered by strictly decreasing maximum score: substring
// containment (up to 1.2), word prefix (0.9), whole-field edit distance
// (up to 0.7), per-word edit distance (up to 0.6). The layering keeps a
// fuzzy hit from ever outscoring a clean one before field weighting.
var matchTiers = []matchTier{
	matchSubstring,
	matchWordPrefix,
	matchWholeFieldFuzzy,
	matchWordFuzzy,
}

// FuzzyMatch matches a single lower-cased query term against a field value.
// Callers split multi-word queries into terms before calling this.
func FuzzyMatch(text, query string, threshold float64) FieldMatch {
	if text == "" || query == "" {
		return FieldMatch{}
	}

	textLower := strings.ToLower(text)
	for _, tier := range matchTiers {
		if score, ok := tier(textLower, query, threshold); ok {
			return FieldMatch{Matches: true, Score: score}
		}
	}

	return FieldMatch{}
}

func matchSubstring(textLower, query string, _ float64) (float64, bool) {
	if !strings.Contains(textLower, query) {
		return 0, false
	}

	score := 1.0
	// Bonus for matching the start of the whole field.
	if strings.HasPrefix(textLower, query) {
		score += 0.2
	}

	return score, true
}

func matchWordPrefix(textLower, query string, _ float64) (float64, bool) {
	for _, word := range strings.Fields(textLower) {
		if strings.HasPrefix(word, query) {
			return 0.9, true
		}
	}

	return 0, false
}

func matchWholeFieldFuzzy(textLower, query string, threshold float64) (float64, bool) {
	if len(query) < minFuzzyQueryLength {
		return 0, false
	}

	fieldSimilarity := similarity(textLower, query)
	if fieldSimilarity < 1-threshold {
		return 0, false
	}

	return fieldSimilarity * 0.7, true
}

func matchWordFuzzy(textLower, query string, threshold float64) (float64, bool) {
	if len(query) < minFuzzyQueryLength {
		return 0, false
	}

	for _, word := range strings.Fields(textLower) {
		if len(word) < minFuzzyWordLength {
			continue
		}
		if wordSimilarity := similarity(word, query); wordSimilarity >= 1-threshold {
			return wordSimilarity * 0.6, true
		}
	}

	return 0, false
}

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the classic insert/delete/substitute edit distance
// with a single-row DP table. O(len(a)*len(b)) time, O(len(b)) space, so
// keep the inputs to titles and other short fields.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}

	return prev[len(b)]
}
