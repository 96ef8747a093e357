package search

// ItemType discriminates the two kinds of searchable entities.
type ItemType string

const (
	ItemTypePackage ItemType = "package"
	ItemTypeTour    ItemType = "tour"
)

// Item is a candidate entity fed into the scorer. Only the text fields
// participate in scoring; price, duration, image and slug are carried
// through for display.
type Item struct {
	ID          string   `json:"id"`
	Type        ItemType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Category    string   `json:"category,omitempty"`
	Countries   []string `json:"countries,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Image       string   `json:"image,omitempty"`
	Slug        string   `json:"slug,omitempty"`
}

// Result is an Item with its relevance score. MatchedFields lists the fields
// that contributed a nonzero score for at least one query term, in
// evaluation order.
type Result struct {
	Item
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields"`
}

// Options tunes a single SearchItems call. Zero values fall back to the
// defaults below.
type Options struct {
	FuzzyThreshold float64
	MaxResults     int
	MinScore       float64
}

const (
	DefaultFuzzyThreshold = 0.3
	DefaultMaxResults     = 20
	DefaultMinScore       = 0.1
)

func (o Options) withDefaults() Options {
	if o.FuzzyThreshold == 0 {
		o.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if o.MaxResults == 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.MinScore == 0 {
		o.MinScore = DefaultMinScore
	}
	return o
}
