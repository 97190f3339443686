package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenkeray/cineglass/internal/adapter"
	"github.com/cenkeray/cineglass/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", adapter.NullLogger())
}

func TestRequestCarriesAPIKeyAndPaging(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/movie/popular", r.URL.Path)
		w.Write([]byte(`{"page":3,"results":[]}`))
	})

	_, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 3, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "test-key", got.Get("api_key"))
	assert.Equal(t, "3", got.Get("page"))
	assert.Equal(t, "en-US", got.Get("language"))
}

func TestPopularMoviesAreMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 603, "title": "The Matrix", "poster_path": "/m.jpg",
				 "release_date": "1999-03-30", "vote_average": 8.2,
				 "genre_ids": [28, 878]},
				{"id": 550, "title": "Fight Club", "vote_average": 8.4}
			]
		}`))
	})

	items, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 1, "en-US")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 603, items[0].ID)
	assert.Equal(t, "The Matrix", items[0].Title)
	assert.Equal(t, "/m.jpg", items[0].PosterPath)
	assert.Equal(t, 8.2, items[0].VoteAverage)
	assert.True(t, items[0].HasGenre(878))
	assert.False(t, items[1].HasGenre(878))
}

func TestSearchExcludesAdultContent(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/search/tv", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":1396,"name":"Breaking Bad"}]}`))
	})

	items, err := client.Series().Search(context.Background(), "breaking", 1, "en-US")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Breaking Bad", items[0].Name)
	assert.Equal(t, "breaking", got.Get("query"))
	assert.Equal(t, "false", got.Get("include_adult"))
}

func TestDiscoverByGenreIsCertificationGated(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/discover/movie", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.Movies().ByGenre(context.Background(), 28, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "28", got.Get("with_genres"))
	assert.Equal(t, "US", got.Get("certification_country"))
	assert.Equal(t, "R", got.Get("certification.lte"))
	assert.Equal(t, "1", got.Get("page"))
}

func TestGenreTaxonomy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":35,"name":"Comedy"}]}`))
	})

	names, err := client.Movies().Genres(context.Background(), "en-US")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{28: "Action", 35: "Comedy"}, names)
}

func TestPeopleHaveNoTopRatedListing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Persons().ByCategory(context.Background(), domain.CategoryTopRated, 1, "en-US")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestUnauthorizedMapsToAuthFailed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 1, "en-US")
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestNotFoundMapsToNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetMovieDetail(context.Background(), 999999, "en-US")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServerErrorMapsToBadResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 1, "en-US")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestMalformedBodyMapsToBadResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": not-json`))
	})

	_, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 1, "en-US")
	assert.ErrorIs(t, err, domain.ErrBadResponse)
}

func TestUnreachableHostMapsToNoConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, "test-key", adapter.NullLogger())
	_, err := client.Movies().ByCategory(context.Background(), domain.CategoryPopular, 1, "en-US")
	assert.ErrorIs(t, err, domain.ErrNoConnection)
}

func TestTrailerPicksFirstYouTubeTrailer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/videos", r.URL.Path)
		w.Write([]byte(`{"results":[
			{"key":"aaa","site":"Vimeo","type":"Trailer"},
			{"key":"bbb","site":"YouTube","type":"Teaser"},
			{"key":"ccc","site":"YouTube","type":"Trailer"}
		]}`))
	})

	key, err := client.GetTrailerKey(context.Background(), domain.KindMovie, 603)
	require.NoError(t, err)
	assert.Equal(t, "ccc", key)
}

func TestPersonCreditsOrderedByPopularity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/6384/combined_credits", r.URL.Path)
		w.Write([]byte(`{"cast":[
			{"id":1,"title":"Obscure Film","media_type":"movie","popularity":2.1},
			{"id":603,"title":"The Matrix","media_type":"movie","character":"Neo","popularity":90.3},
			{"id":2,"name":"Some Show","media_type":"tv","popularity":15.0}
		]}`))
	})

	credits, err := client.GetPersonCredits(context.Background(), 6384, "en-US")
	require.NoError(t, err)
	require.Len(t, credits, 3)
	assert.Equal(t, "The Matrix", credits[0].Title)
	assert.Equal(t, "Neo", credits[0].Character)
	assert.Equal(t, "Some Show", credits[1].Title, "tv credits fall back to the name field")
	assert.Equal(t, "Obscure Film", credits[2].Title)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://image.tmdb.org/t/p/w500/a.jpg",
		ImageURL(DefaultImageBaseURL, "/a.jpg"))
	assert.Empty(t, ImageURL(DefaultImageBaseURL, ""))
}
