package search

import (
	"sort"
	"strings"
)

// scoredField names one weighted field and how to read its value(s) from an
// item. For list-valued fields the matcher stops at the first element that
// matches, so a field contributes its weight at most once per term.
type scoredField struct {
	name   string
	weight float64
	value  func(Item) string
	values func(Item) []string
}

// scoredFields is the fixed weight table, in evaluation order. Title
// dominates, long-form text contributes least.
var scoredFields = []scoredField{
	{name: "title", weight: 5, value: func(item Item) string { return item.Title }},
	{name: "category", weight: 3, value: func(item Item) string { return item.Category }},
	{name: "countries", weight: 3, values: func(item Item) []string { return item.Countries }},
	{name: "tags", weight: 2.5, values: func(item Item) []string { return item.Tags }},
	{name: "excerpt", weight: 1.5, value: func(item Item) string { return item.Excerpt }},
	{name: "description", weight: 1, value: func(item Item) string { return item.Description }},
}

// SearchItems scores every item against the query and returns the ranked,
// capped result list. It is a pure function: no state survives between
// calls, and concurrent calls are safe.
func SearchItems(items []Item, query string, opts Options) []Result {
	opts = opts.withDefaults()

	terms := tokenize(query)
	if len(terms) == 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		result := scoreItem(item, terms, opts.FuzzyThreshold)
		if result.Score < opts.MinScore {
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}

	return results
}

func scoreItem(item Item, terms []string, threshold float64) Result {
	var totalScore float64
	var matchedFields []string
	seenFields := make(map[string]bool, len(scoredFields))

	for _, term := range terms {
		for _, field := range scoredFields {
			match := matchField(item, field, term, threshold)
			if !match.Matches {
				continue
			}

			totalScore += match.Score * field.weight
			if !seenFields[field.name] {
				seenFields[field.name] = true
				matchedFields = append(matchedFields, field.name)
			}
		}
	}

	// Average across terms so multi-word queries don't outscore single
	// words purely by term count.
	if len(terms) > 1 {
		totalScore /= float64(len(terms))
	}

	return Result{
		Item:          item,
		Score:         totalScore,
		MatchedFields: matchedFields,
	}
}

func matchField(item Item, field scoredField, term string, threshold float64) FieldMatch {
	if field.value != nil {
		return FuzzyMatch(field.value(item), term, threshold)
	}

	for _, element := range field.values(item) {
		if match := FuzzyMatch(element, term, threshold); match.Matches {
			return match
		}
	}

	return FieldMatch{}
}

func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}
