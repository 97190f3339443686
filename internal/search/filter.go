// Package search filters locally held listings (the favorites screen) by
// title. Remote text search belongs to the feed coordinators; this package
// only narrows what is already on screen.
package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Match is one ranked filter hit.
type Match struct {
	Index          int   // Index in the source slice
	Score          int   // Higher is better
	MatchedIndexes []int // Rune positions that matched, for highlighting
}

// Filter returns the indexes of titles matching the query, unranked, using
// diacritic-insensitive fuzzy matching. An empty query matches everything.
func Filter(query string, titles []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		indexes := make([]int, len(titles))
		for i := range titles {
			indexes[i] = i
		}
		return indexes
	}

	var indexes []int
	for i, title := range titles {
		if fuzzy.MatchNormalizedFold(query, title) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// Rank returns matches ordered best-first, with matched rune positions for
// highlighting. An empty query returns nil.
func Rank(query string, titles []string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	found := sahilm.Find(query, titles)
	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{
			Index:          m.Index,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		})
	}
	return matches
}
