package holidayindex

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
)

// zeroFilterBaseScore makes "no filter requested" mean "everything matches
// equally", not "nothing matches".
const zeroFilterBaseScore = 10

// multiFilterBonus rewards packages that satisfy several requested holiday
// types at once (matchCount x bonus, applied when more than one matched).
const multiFilterBonus = 10

// HolidayTypeMatch is one taxonomy category the package classified into.
type HolidayTypeMatch struct {
	HolidayType  string   `json:"holiday_type"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

// Index is the precomputed keyword record for one package.
type Index struct {
	PackageID           string             `json:"package_id"`
	ExtractedKeywords   []string           `json:"extracted_keywords"`
	HolidayTypeMatches  []HolidayTypeMatch `json:"holiday_type_matches"`
	DestinationKeywords []string           `json:"destination_keywords"`
}

// Service owns the process-wide index snapshot. Build replaces the whole
// snapshot atomically, so concurrent readers either see the previous
// complete index or the new one, never a partial rebuild.
type Service struct {
	logger   logger.Logger
	snapshot atomic.Pointer[map[string]*Index]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(logger logger.Logger, opts ...Option) *Service {
	s := &Service{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IndexPackage computes the keyword record for a single package. Pure;
// exposed for reuse and testing.
func IndexPackage(pkg catalog.Package) *Index {
	keywords := ExtractKeywords(pkg)
	keywordText := strings.Join(keywords, " ")

	return &Index{
		PackageID:           pkg.ID,
		ExtractedKeywords:   keywords,
		HolidayTypeMatches:  calculateHolidayTypeMatches(pkg, keywordText),
		DestinationKeywords: extractDestinationKeywords(pkg, keywordText),
	}
}

// Build indexes the full package collection and swaps in the result as the
// new snapshot. Prior entries are discarded wholesale, never merged.
func (s *Service) Build(packages []catalog.Package) {
	indexes := make(map[string]*Index, len(packages))
	for _, pkg := range packages {
		indexes[pkg.ID] = IndexPackage(pkg)
	}

	s.snapshot.Store(&indexes)
	s.logger.Info("rebuilt holiday keyword index", "packages", len(indexes))
}

// Get returns the index record for a package, or nil if the package is
// unknown or no index has been built yet.
func (s *Service) Get(packageID string) *Index {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	return (*snapshot)[packageID]
}

// IsBuilt reports populated vs empty. There is no in-progress state: the
// index is either empty or fully populated.
func (s *Service) IsBuilt() bool {
	return s.Size() > 0
}

// Size returns the number of indexed packages.
func (s *Service) Size() int {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return 0
	}
	return len(*snapshot)
}

// ScorePackage scores a package against the requested holiday-type filters
// using the current snapshot. Unknown packages score zero.
func (s *Service) ScorePackage(packageID string, holidayTypeFilters []string) float64 {
	index := s.Get(packageID)
	if index == nil {
		return 0
	}
	return ScoreIndex(index, holidayTypeFilters)
}

// ScoreIndex sums the matched taxonomy scores for each requested filter and
// adds the multi-filter bonus when more than one filter matched. With no
// filters requested every package gets the flat base score.
func ScoreIndex(index *Index, holidayTypeFilters []string) float64 {
	if len(holidayTypeFilters) == 0 {
		return zeroFilterBaseScore
	}

	var score float64
	matched := 0
	for _, filter := range holidayTypeFilters {
		for _, match := range index.HolidayTypeMatches {
			if strings.EqualFold(match.HolidayType, filter) {
				score += match.Score
				matched++
				break
			}
		}
	}

	if matched > 1 {
		score += float64(matched) * multiFilterBonus
	}

	return score
}

func sortMatchesByScore(matches []HolidayTypeMatch) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
