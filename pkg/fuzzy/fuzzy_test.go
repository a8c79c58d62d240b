package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("Milk", "milk"))
	assert.Equal(t, 1, LevenshteinDistance("milk", "mlk"))
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 4, LevenshteinDistance("", "susu"))
	assert.Equal(t, 1, LevenshteinDistance("牛奶", "牛"))
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("milk", "Buy milk"))
	assert.True(t, Match("牛奶", "買牛奶"))
	assert.True(t, Match("laundr", "Fold the laundry"))
	assert.True(t, Match("grocery", "Grocery shoping"))
	assert.True(t, Match("shopping", "Grocery shoping"))
	assert.False(t, Match("dog", "Buy milk"))
	assert.True(t, Match("", "anything"))
}

func TestScoreRanksExactAboveFuzzy(t *testing.T) {
	exact := Score("susu", "Beli susu")
	prefix := Score("sus", "Beli susunya")
	typo := Score("sussu", "Beli susu")
	none := Score("anjing", "Beli susu")

	assert.Greater(t, exact, prefix)
	assert.Greater(t, prefix, 0.0)
	assert.Greater(t, typo, 0.0)
	assert.Equal(t, 0.0, none)
	assert.Equal(t, 150.0, Score("milk", "買牛奶", "Buy milk"))
}
