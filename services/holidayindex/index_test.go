package holidayindex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
)

func TestIndexPackageDirectTagBonus(t *testing.T) {
	assert := require.New(t)

	// The tag assertion alone must clear 50, independent of free text.
	pkg := catalog.Package{ID: "p1", Title: "Mystery Trip", Tags: []string{"Beach"}}

	index := IndexPackage(pkg)

	assert.Len(index.HolidayTypeMatches, 1)
	beach := index.HolidayTypeMatches[0]
	assert.Equal("Beach", beach.HolidayType)
	assert.GreaterOrEqual(beach.Score, float64(50))
}

func TestIndexPackageKeywordSubstringScoring(t *testing.T) {
	assert := require.New(t)

	// "beach" matches as a substring of "beachfront"; the keyword scorer
	// deliberately does not deduplicate substring overlaps.
	pkg := catalog.Package{ID: "p1", Title: "Beachfront Villas"}

	index := IndexPackage(pkg)

	assert.Len(index.HolidayTypeMatches, 1)
	assert.Equal("Beach", index.HolidayTypeMatches[0].HolidayType)
	assert.InDelta(15, index.HolidayTypeMatches[0].Score, 1e-9)
	assert.Equal([]string{"beach"}, index.HolidayTypeMatches[0].MatchedTerms)
}

func TestIndexPackageMatchesSortedByScore(t *testing.T) {
	assert := require.New(t)

	pkg := catalog.Package{
		ID:          "p1",
		Title:       "Bali Honeymoon Beach Escape",
		Tags:        []string{"Honeymoon"},
		Description: "Romantic sunset dinners on the beach",
	}

	index := IndexPackage(pkg)

	assert.NotEmpty(index.HolidayTypeMatches)
	for i := 1; i < len(index.HolidayTypeMatches); i++ {
		assert.GreaterOrEqual(index.HolidayTypeMatches[i-1].Score, index.HolidayTypeMatches[i].Score)
	}
	assert.Equal("Honeymoon", index.HolidayTypeMatches[0].HolidayType)
}

func TestIndexPackageDestinations(t *testing.T) {
	assert := require.New(t)

	pkg := catalog.Package{
		ID:          "p1",
		Title:       "Bali Beach Escape",
		Category:    "Asia",
		Countries:   []string{"Indonesia"},
		Description: "Optional extension to Machu Picchu",
	}

	index := IndexPackage(pkg)

	assert.Contains(index.DestinationKeywords, "asia")
	assert.Contains(index.DestinationKeywords, "indonesia")
	assert.Contains(index.DestinationKeywords, "peru")

	seen := make(map[string]bool)
	for _, dest := range index.DestinationKeywords {
		assert.False(seen[dest], "destination %s duplicated", dest)
		seen[dest] = true
	}
}

func TestBuildReplacesPriorSnapshot(t *testing.T) {
	assert := require.New(t)

	service := New(logger.New())
	a := catalog.Package{ID: "a", Title: "Beach Escape", Tags: []string{"Beach"}}
	b := catalog.Package{ID: "b", Title: "Ski Week", Tags: []string{"Ski"}}

	service.Build([]catalog.Package{a})
	assert.NotNil(service.Get("a"))

	service.Build([]catalog.Package{b})
	assert.Nil(service.Get("a"))
	assert.NotNil(service.Get("b"))
	assert.Equal(1, service.Size())
}

func TestIsBuilt(t *testing.T) {
	assert := require.New(t)

	service := New(logger.New())
	assert.False(service.IsBuilt())

	service.Build([]catalog.Package{{ID: "a", Title: "Beach Escape"}})
	assert.True(service.IsBuilt())
}

var scoreIndexTestIndex = &Index{
	PackageID: "p1",
	HolidayTypeMatches: []HolidayTypeMatch{
		{HolidayType: "Beach", Score: 65},
		{HolidayType: "Honeymoon", Score: 30},
	},
}

var scoreIndexTestCases = []struct {
	name     string
	filters  []string
	expected float64
}{
	{name: "NoFiltersMeansEverythingMatches", filters: nil, expected: 10},
	{name: "SingleFilter", filters: []string{"Beach"}, expected: 65},
	{name: "FilterIsCaseInsensitive", filters: []string{"beach"}, expected: 65},
	{name: "MultiFilterBonus", filters: []string{"Beach", "Honeymoon"}, expected: 65 + 30 + 2*10},
	{name: "UnmatchedFilter", filters: []string{"Ski"}, expected: 0},
	{name: "MixedMatchedAndUnmatched", filters: []string{"Beach", "Ski"}, expected: 65},
}

func TestScoreIndex(t *testing.T) {
	for _, testCase := range scoreIndexTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			assert.InDelta(testCase.expected, ScoreIndex(scoreIndexTestIndex, testCase.filters), 1e-9)
		})
	}
}

func TestScorePackageUnknownID(t *testing.T) {
	assert := require.New(t)

	service := New(logger.New())
	service.Build([]catalog.Package{{ID: "a", Title: "Beach Escape"}})

	assert.Zero(service.ScorePackage("missing", []string{"Beach"}))
}

func TestRankPackages(t *testing.T) {
	assert := require.New(t)

	tagged := catalog.Package{ID: "tagged", Title: "Mystery Trip", Tags: []string{"Beach"}}
	textOnly := catalog.Package{ID: "text", Title: "Beachfront Villas"}
	unrelated := catalog.Package{ID: "ski", Title: "Alpine Ski Week", Tags: []string{"Ski"}}
	packages := []catalog.Package{textOnly, tagged, unrelated}

	service := New(logger.New())
	service.Build(packages)

	ranked := service.RankPackages(packages, []string{"Beach"}, 10)

	assert.Len(ranked, 2)
	assert.Equal("tagged", ranked[0].ID)
	assert.Equal("text", ranked[1].ID)

	// Zero filters rank everything equally at the base score.
	all := service.RankPackages(packages, nil, 10)
	assert.Len(all, 3)
	for _, pkg := range all {
		assert.InDelta(10, pkg.Score, 1e-9)
	}

	capped := service.RankPackages(packages, nil, 2)
	assert.Len(capped, 2)
}
