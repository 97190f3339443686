package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titles = []string{
	"The Matrix",
	"Fight Club",
	"Amélie",
	"Pulp Fiction",
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Filter("", titles))
	assert.Equal(t, []int{0, 1, 2, 3}, Filter("   ", titles))
}

func TestFilterMatchesSubsequences(t *testing.T) {
	assert.Equal(t, []int{0}, Filter("mtrx", titles))
	assert.Equal(t, []int{1, 3}, Filter("f", titles))
}

func TestFilterIgnoresDiacriticsAndCase(t *testing.T) {
	assert.Equal(t, []int{2}, Filter("amelie", titles))
	assert.Equal(t, []int{0}, Filter("MATRIX", titles))
}

func TestFilterNoHits(t *testing.T) {
	assert.Empty(t, Filter("zzzz", titles))
}

func TestRankOrdersBestFirst(t *testing.T) {
	matches := Rank("fight", titles)
	require.NotEmpty(t, matches)
	assert.Equal(t, 1, matches[0].Index)
	assert.NotEmpty(t, matches[0].MatchedIndexes)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRankEmptyQuery(t *testing.T) {
	assert.Nil(t, Rank("", titles))
}
