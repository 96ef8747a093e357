package holidayindex

import (
	"sort"

	"github.com/sunwaytravel/tripsearch/db/catalog"
)

const defaultRankLimit = 20

// RankedPackage is a catalog package with its holiday-type filter score.
type RankedPackage struct {
	catalog.Package
	Score float64 `json:"score"`
}

// RankPackages scores every package against the requested holiday-type
// filters using the current snapshot and returns the ranked, capped list.
// Packages that score zero (no matching category, or not indexed) are
// dropped. The surrounding application combines this score with other
// ranking signals such as price and recency.
func (s *Service) RankPackages(packages []catalog.Package, holidayTypeFilters []string, maxResults int) []RankedPackage {
	if maxResults <= 0 {
		maxResults = defaultRankLimit
	}

	ranked := make([]RankedPackage, 0, len(packages))
	for _, pkg := range packages {
		score := s.ScorePackage(pkg.ID, holidayTypeFilters)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, RankedPackage{Package: pkg, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return ranked
}
