package holidayindex

// holidayType is one taxonomy category. Primary keywords signal the theme
// strongly, secondary keywords are weaker supporting evidence. Both are
// matched as substrings of the extracted keyword text.
type holidayType struct {
	Name      string
	Primary   []string
	Secondary []string
}

// holidayTaxonomy is data, not behavior: extend it without touching the
// scoring code.
var holidayTaxonomy = []holidayType{
	{
		Name:      "Beach",
		Primary:   []string{"beach", "island", "coast", "seaside", "shore"},
		Secondary: []string{"sand", "snorkel", "swimming", "sunbathing", "lagoon", "palm"},
	},
	{
		Name:      "Adventure",
		Primary:   []string{"adventure", "trek", "hiking", "rafting", "expedition"},
		Secondary: []string{"kayak", "climb", "zipline", "jungle", "canyon", "outdoor"},
	},
	{
		Name:      "Cultural",
		Primary:   []string{"culture", "cultural", "heritage", "history", "temple"},
		Secondary: []string{"museum", "ruins", "unesco", "tradition", "ancient", "palace"},
	},
	{
		Name:      "Family",
		Primary:   []string{"family", "kids", "children"},
		Secondary: []string{"theme park", "waterpark", "playground", "all ages"},
	},
	{
		Name:      "Luxury",
		Primary:   []string{"luxury", "five star", "premium"},
		Secondary: []string{"butler", "suite", "gourmet", "exclusive", "private pool"},
	},
	{
		Name:      "Honeymoon",
		Primary:   []string{"honeymoon", "romantic", "romance"},
		Secondary: []string{"couples", "sunset", "candlelit", "secluded", "overwater"},
	},
	{
		Name:      "Safari",
		Primary:   []string{"safari", "wildlife", "game drive"},
		Secondary: []string{"elephant", "lion", "savannah", "big five", "reserve"},
	},
	{
		Name:      "City Break",
		Primary:   []string{"city break", "city", "metropolis"},
		Secondary: []string{"shopping", "nightlife", "rooftop", "gallery", "skyline"},
	},
	{
		Name:      "Cruise",
		Primary:   []string{"cruise", "sailing", "voyage"},
		Secondary: []string{"cabin", "deck", "port", "river cruise", "catamaran"},
	},
	{
		Name:      "Ski",
		Primary:   []string{"ski", "snowboard", "alpine"},
		Secondary: []string{"piste", "chalet", "apres", "snow", "glacier"},
	},
	{
		Name:      "Wellness",
		Primary:   []string{"wellness", "spa", "retreat"},
		Secondary: []string{"yoga", "massage", "meditation", "detox", "thermal"},
	},
	{
		Name:      "Food and Wine",
		Primary:   []string{"food", "wine", "culinary"},
		Secondary: []string{"tasting", "vineyard", "cooking", "gastronomy", "street food"},
	},
	{
		Name:      "Golf",
		Primary:   []string{"golf"},
		Secondary: []string{"fairway", "course", "tee", "links", "clubhouse"},
	},
	{
		Name:      "Festive",
		Primary:   []string{"christmas", "festive", "new year"},
		Secondary: []string{"markets", "lights", "carnival", "celebration", "fireworks"},
	},
}
