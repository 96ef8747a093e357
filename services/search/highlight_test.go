package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var highlightTestCases = []struct {
	name     string
	text     string
	query    string
	expected string
}{
	{
		name:     "SingleTermPreservesCasing",
		text:     "Rome City Break",
		query:    "rome",
		expected: "<mark>Rome</mark> City Break",
	},
	{
		name:     "EveryOccurrenceWrapped",
		text:     "Beach resort with a private beach",
		query:    "beach",
		expected: "<mark>Beach</mark> resort with a private <mark>beach</mark>",
	},
	{
		name:     "MultipleTerms",
		text:     "Paris city break",
		query:    "paris break",
		expected: "<mark>Paris</mark> city <mark>break</mark>",
	},
	{
		name:     "NoOccurrence",
		text:     "Alpine Ski Week",
		query:    "beach",
		expected: "Alpine Ski Week",
	},
	{
		name:     "EmptyQuery",
		text:     "Alpine Ski Week",
		query:    "",
		expected: "Alpine Ski Week",
	},
	{
		name:     "RegexMetacharactersAreLiteral",
		text:     "Deals (2 for 1)",
		query:    "(2",
		expected: "Deals <mark>(2</mark> for 1)",
	},
}

func TestHighlightMatch(t *testing.T) {
	for _, testCase := range highlightTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(testCase.expected, HighlightMatch(testCase.text, testCase.query))
		})
	}
}
