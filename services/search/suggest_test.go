package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var suggestionTestItems = []Item{
	{
		ID:        "1",
		Type:      ItemTypePackage,
		Title:     "Bali Beach Escape",
		Category:  "Indonesia",
		Countries: []string{"Indonesia"},
		Tags:      []string{"Beach", "Honeymoon"},
	},
	{
		ID:        "2",
		Type:      ItemTypeTour,
		Title:     "Beaches of Thailand",
		Category:  "Thailand",
		Countries: []string{"Thailand"},
		Tags:      []string{"Beach"},
	},
	{
		ID:    "3",
		Type:  ItemTypeTour,
		Title: "Alpine Ski Week",
		Tags:  []string{"Ski"},
	},
}

func TestSuggestionsQueryTooShort(t *testing.T) {
	assert := require.New(t)

	assert.Empty(Suggestions(suggestionTestItems, "b", 5))
	assert.Empty(Suggestions(suggestionTestItems, "", 5))
}

func TestSuggestionsCollectsAcrossFields(t *testing.T) {
	assert := require.New(t)

	suggestions := Suggestions(suggestionTestItems, "beach", 10)

	assert.Contains(suggestions, "Bali Beach Escape")
	assert.Contains(suggestions, "Beaches of Thailand")
	assert.Contains(suggestions, "Beach")
	assert.NotContains(suggestions, "Alpine Ski Week")
}

func TestSuggestionsDeduplicates(t *testing.T) {
	assert := require.New(t)

	// "Beach" is tagged on two items but must be suggested once.
	suggestions := Suggestions(suggestionTestItems, "beach", 10)

	beachCount := 0
	for _, suggestion := range suggestions {
		if suggestion == "Beach" {
			beachCount++
		}
	}
	assert.Equal(1, beachCount)
}

func TestSuggestionsLimit(t *testing.T) {
	assert := require.New(t)

	suggestions := Suggestions(suggestionTestItems, "beach", 2)

	assert.Len(suggestions, 2)
}

func TestSuggestionsDefaultLimit(t *testing.T) {
	assert := require.New(t)

	items := make([]Item, 0, 10)
	for _, title := range []string{
		"Beach One", "Beach Two", "Beach Three", "Beach Four",
		"Beach Five", "Beach Six", "Beach Seven",
	} {
		items = append(items, Item{ID: title, Type: ItemTypePackage, Title: title})
	}

	suggestions := Suggestions(items, "beach", 0)

	assert.Len(suggestions, DefaultSuggestionLimit)
}
