package holidayindex

// destination maps a canonical destination name to the alias substrings
// (cities, demonyms, landmarks) that imply it. The first alias hit wins;
// later aliases for the same destination are not scanned.
type destination struct {
	Name    string
	Aliases []string
}

var destinationGazetteer = []destination{
	{Name: "Thailand", Aliases: []string{"thailand", "bangkok", "phuket", "krabi", "thai"}},
	{Name: "Vietnam", Aliases: []string{"vietnam", "hanoi", "saigon", "ho chi minh", "halong"}},
	{Name: "Japan", Aliases: []string{"japan", "tokyo", "kyoto", "osaka", "japanese"}},
	{Name: "Italy", Aliases: []string{"italy", "rome", "venice", "florence", "amalfi", "italian"}},
	{Name: "Spain", Aliases: []string{"spain", "barcelona", "madrid", "seville", "spanish"}},
	{Name: "Greece", Aliases: []string{"greece", "athens", "santorini", "crete", "greek"}},
	{Name: "Portugal", Aliases: []string{"portugal", "lisbon", "porto", "algarve", "madeira"}},
	{Name: "France", Aliases: []string{"france", "paris", "nice", "provence", "french"}},
	{Name: "Croatia", Aliases: []string{"croatia", "dubrovnik", "split", "hvar"}},
	{Name: "Turkey", Aliases: []string{"turkey", "istanbul", "cappadocia", "antalya", "turkish"}},
	{Name: "Egypt", Aliases: []string{"egypt", "cairo", "nile", "luxor", "pyramids"}},
	{Name: "Morocco", Aliases: []string{"morocco", "marrakech", "casablanca", "atlas"}},
	{Name: "South Africa", Aliases: []string{"south africa", "cape town", "kruger", "johannesburg"}},
	{Name: "Kenya", Aliases: []string{"kenya", "nairobi", "masai mara", "mombasa"}},
	{Name: "Tanzania", Aliases: []string{"tanzania", "zanzibar", "serengeti", "kilimanjaro"}},
	{Name: "India", Aliases: []string{"india", "delhi", "jaipur", "kerala", "taj mahal"}},
	{Name: "Sri Lanka", Aliases: []string{"sri lanka", "colombo", "kandy", "galle", "sigiriya"}},
	{Name: "Maldives", Aliases: []string{"maldives", "atoll", "male"}},
	{Name: "Indonesia", Aliases: []string{"indonesia", "bali", "jakarta", "ubud", "komodo"}},
	{Name: "Malaysia", Aliases: []string{"malaysia", "kuala lumpur", "langkawi", "borneo"}},
	{Name: "Singapore", Aliases: []string{"singapore", "marina bay", "sentosa"}},
	{Name: "Australia", Aliases: []string{"australia", "sydney", "melbourne", "great barrier"}},
	{Name: "New Zealand", Aliases: []string{"new zealand", "auckland", "queenstown", "rotorua"}},
	{Name: "United States", Aliases: []string{"new york", "florida", "california", "las vegas", "hawaii"}},
	{Name: "Mexico", Aliases: []string{"mexico", "cancun", "tulum", "yucatan", "riviera maya"}},
	{Name: "Peru", Aliases: []string{"peru", "lima", "cusco", "machu picchu"}},
}
