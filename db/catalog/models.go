package catalog

// ItineraryDay is one day of a package itinerary.
type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Package is a flight-inclusive holiday package as stored in the catalog.
type Package struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Excerpt     string         `json:"excerpt"`
	Category    string         `json:"category"`
	Countries   []string       `json:"countries"`
	Tags        []string       `json:"tags"`
	Highlights  []string       `json:"highlights"`
	Inclusions  []string       `json:"inclusions"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Price       float64        `json:"price"`
	Duration    string         `json:"duration"`
	Image       string         `json:"image"`
	Slug        string         `json:"slug"`
}

// Tour is a land-only tour. It carries less content than a package and is
// never classified by the holiday-type index.
type Tour struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	Countries   []string `json:"countries"`
	Tags        []string `json:"tags"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Slug        string   `json:"slug"`
}
