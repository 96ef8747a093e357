package search

import (
	"fmt"

	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
)

// Catalog supplies the candidate collection on every search call. The
// engine holds no copy of its own.
type Catalog interface {
	ListPackages() ([]catalog.Package, error)
	ListTours() ([]catalog.Tour, error)
}

// Response is the search endpoint payload: ranked results, type-ahead
// suggestions and the pre-cap result count.
type Response struct {
	Results     []Result `json:"results"`
	Suggestions []string `json:"suggestions"`
	Total       int      `json:"total"`
}

type Service struct {
	logger   logger.Logger
	catalog  Catalog
	defaults Options
}

func New(logger logger.Logger, catalog Catalog, defaults Options) *Service {
	return &Service{
		logger:   logger,
		catalog:  catalog,
		defaults: defaults.withDefaults(),
	}
}

// Search runs the weighted scorer and the suggestion collector over the full
// package and tour collection.
func (s *Service) Search(query string, maxResults int) (*Response, error) {
	items, err := s.loadItems()
	if err != nil {
		return nil, err
	}

	opts := s.defaults
	if maxResults > 0 {
		opts.MaxResults = maxResults
	}

	// Score without a cap first so the reported total reflects every item
	// that cleared the minimum score.
	uncapped := opts
	uncapped.MaxResults = len(items) + 1
	scored := SearchItems(items, query, uncapped)

	total := len(scored)
	if len(scored) > opts.MaxResults {
		scored = scored[:opts.MaxResults]
	}

	return &Response{
		Results:     scored,
		Suggestions: Suggestions(items, query, DefaultSuggestionLimit),
		Total:       total,
	}, nil
}

func (s *Service) loadItems() ([]Item, error) {
	packages, err := s.catalog.ListPackages()
	if err != nil {
		s.logger.Error("failed to list packages", "err", err.Error())
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	tours, err := s.catalog.ListTours()
	if err != nil {
		s.logger.Error("failed to list tours", "err", err.Error())
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	items := make([]Item, 0, len(packages)+len(tours))
	for _, pkg := range packages {
		items = append(items, PackageItem(pkg))
	}
	for _, tour := range tours {
		items = append(items, TourItem(tour))
	}

	return items, nil
}

// PackageItem projects a catalog package onto the searchable fields.
func PackageItem(pkg catalog.Package) Item {
	return Item{
		ID:          pkg.ID,
		Type:        ItemTypePackage,
		Title:       pkg.Title,
		Description: pkg.Description,
		Excerpt:     pkg.Excerpt,
		Category:    pkg.Category,
		Countries:   pkg.Countries,
		Tags:        pkg.Tags,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		Image:       pkg.Image,
		Slug:        pkg.Slug,
	}
}

// TourItem projects a catalog tour onto the searchable fields.
func TourItem(tour catalog.Tour) Item {
	return Item{
		ID:          tour.ID,
		Type:        ItemTypeTour,
		Title:       tour.Title,
		Description: tour.Description,
		Excerpt:     tour.Excerpt,
		Category:    tour.Category,
		Countries:   tour.Countries,
		Tags:        tour.Tags,
		Price:       tour.Price,
		Duration:    tour.Duration,
		Image:       tour.Image,
		Slug:        tour.Slug,
	}
}
