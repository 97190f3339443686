package tui

import (
	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/feed"
	"github.com/cenkeray/cineglass/internal/tmdb"
)

// Message types for the TUI

// MovieFeedMsg carries the movie feed's state after an operation
type MovieFeedMsg feed.Snapshot[domain.Movie]

// SeriesFeedMsg carries the series feed's state after an operation
type SeriesFeedMsg feed.Snapshot[domain.Series]

// PersonFeedMsg carries the people feed's state after an operation
type PersonFeedMsg feed.Snapshot[domain.Person]

// MovieFavoritesMsg carries a fresh movie favorites listing
type MovieFavoritesMsg []domain.FavoriteMovie

// SeriesFavoritesMsg carries a fresh series favorites listing
type SeriesFavoritesMsg []domain.FavoriteSeries

// PersonFavoritesMsg carries a fresh people favorites listing
type PersonFavoritesMsg []domain.FavoritePerson

// DetailMsg carries the detail pane content for the selected item
type DetailMsg struct {
	Kind    domain.Kind
	Movie   *tmdb.MovieDetail
	Series  *tmdb.SeriesDetail
	Person  *tmdb.PersonDetail
	Cast    []tmdb.CastMember
	Credits []tmdb.PersonCredit
	Trailer string // YouTube key, "" when none
}

// ErrMsg represents an error surfaced outside feed state
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}
