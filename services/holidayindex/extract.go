package holidayindex

import (
	"regexp"
	"strings"

	"github.com/sunwaytravel/tripsearch/db/catalog"
)

const minKeywordLength = 3

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	htmlEntityPattern = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)
	nonWordPattern    = regexp.MustCompile(`[^\w\s-]`)
)

// ExtractKeywords produces the normalized keyword set for a package: HTML
// and punctuation stripped, lower-cased, split on whitespace, short tokens
// dropped, de-duplicated in first-seen order. It covers every text field of
// the package including highlights, inclusions and itinerary day text.
func ExtractKeywords(pkg catalog.Package) []string {
	var parts []string
	parts = append(parts, pkg.Title, pkg.Description, pkg.Excerpt, pkg.Category)
	parts = append(parts, pkg.Countries...)
	parts = append(parts, pkg.Tags...)
	parts = append(parts, pkg.Highlights...)
	parts = append(parts, pkg.Inclusions...)
	for _, day := range pkg.Itinerary {
		parts = append(parts, day.Title, day.Description)
	}

	text := strings.Join(parts, " ")
	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = htmlEntityPattern.ReplaceAllString(text, " ")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)

	var keywords []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(text) {
		if len(token) < minKeywordLength || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}

// calculateHolidayTypeMatches classifies the extracted keyword text against
// the taxonomy. A package whose own tags name the category gets a flat
// direct-assertion bonus regardless of text content. Primary keywords found
// as substrings of the keyword text add 15 each, secondary keywords 5 each;
// a keyword that is a substring of another matched keyword counts again,
// which downstream ranking is tuned around.
func calculateHolidayTypeMatches(pkg catalog.Package, keywordText string) []HolidayTypeMatch {
	var matches []HolidayTypeMatch

	for _, category := range holidayTaxonomy {
		var score float64
		var matchedTerms []string

		for _, tag := range pkg.Tags {
			if strings.EqualFold(tag, category.Name) {
				score += 50
				matchedTerms = append(matchedTerms, strings.ToLower(category.Name))
				break
			}
		}

		for _, keyword := range category.Primary {
			if strings.Contains(keywordText, keyword) {
				score += 15
				matchedTerms = append(matchedTerms, keyword)
			}
		}

		for _, keyword := range category.Secondary {
			if strings.Contains(keywordText, keyword) {
				score += 5
				matchedTerms = append(matchedTerms, keyword)
			}
		}

		if score == 0 {
			continue
		}

		matches = append(matches, HolidayTypeMatch{
			HolidayType:  category.Name,
			Score:        score,
			MatchedTerms: matchedTerms,
		})
	}

	sortMatchesByScore(matches)

	return matches
}

// extractDestinationKeywords returns the canonical lower-cased destination
// names implied by the package: its own category and country list
// unconditionally, plus the first gazetteer alias hit per destination.
func extractDestinationKeywords(pkg catalog.Package, keywordText string) []string {
	var destinations []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.ToLower(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		destinations = append(destinations, name)
	}

	if pkg.Category != "" {
		add(pkg.Category)
	}
	for _, country := range pkg.Countries {
		add(country)
	}

	for _, dest := range destinationGazetteer {
		for _, alias := range dest.Aliases {
			if strings.Contains(keywordText, alias) {
				add(dest.Name)
				break
			}
		}
	}

	return destinations
}
