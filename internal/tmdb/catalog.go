package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cenkeray/cineglass/internal/domain"
)

// MovieCatalog adapts the client to the movie feed's source interfaces.
type MovieCatalog struct {
	c *Client
}

// Movies returns the catalog source for movie feeds
func (c *Client) Movies() *MovieCatalog { return &MovieCatalog{c: c} }

func (m *MovieCatalog) ByCategory(ctx context.Context, cat domain.Category, page int, language string) ([]domain.Movie, error) {
	var path string
	switch cat {
	case domain.CategoryPopular:
		path = "/movie/popular"
	case domain.CategoryTopRated:
		path = "/movie/top_rated"
	case domain.CategoryTrending:
		path = "/trending/movie/week"
	default:
		return nil, fmt.Errorf("%w: unknown category %v", domain.ErrBadResponse, cat)
	}
	var resp pagedResponse[movieDTO]
	if err := m.c.get(ctx, path, pageQuery(language, page), &resp); err != nil {
		return nil, err
	}
	return mapMovies(resp.Results), nil
}

func (m *MovieCatalog) Search(ctx context.Context, query string, page int, language string) ([]domain.Movie, error) {
	var resp pagedResponse[movieDTO]
	if err := m.c.get(ctx, "/search/movie", searchQuery(query, language, page), &resp); err != nil {
		return nil, err
	}
	return mapMovies(resp.Results), nil
}

func (m *MovieCatalog) ByGenre(ctx context.Context, genreID int, language string) ([]domain.Movie, error) {
	var resp pagedResponse[movieDTO]
	if err := m.c.get(ctx, "/discover/movie", discoverQuery(genreID, language), &resp); err != nil {
		return nil, err
	}
	return mapMovies(resp.Results), nil
}

func (m *MovieCatalog) Genres(ctx context.Context, language string) (map[int]string, error) {
	q := url.Values{}
	q.Set("language", language)
	var resp genreListDTO
	if err := m.c.get(ctx, "/genre/movie/list", q, &resp); err != nil {
		return nil, err
	}
	return mapGenres(resp), nil
}

// SeriesCatalog adapts the client to the series feed's source interfaces.
type SeriesCatalog struct {
	c *Client
}

// Series returns the catalog source for TV series feeds
func (c *Client) Series() *SeriesCatalog { return &SeriesCatalog{c: c} }

func (s *SeriesCatalog) ByCategory(ctx context.Context, cat domain.Category, page int, language string) ([]domain.Series, error) {
	var path string
	q := pageQuery(language, page)
	switch cat {
	case domain.CategoryPopular:
		// TMDB has no /tv/popular ranking worth using; discover sorted by
		// popularity matches it
		path = "/discover/tv"
		q.Set("sort_by", "popularity.desc")
	case domain.CategoryTopRated:
		path = "/tv/top_rated"
	case domain.CategoryTrending:
		path = "/trending/tv/week"
	default:
		return nil, fmt.Errorf("%w: unknown category %v", domain.ErrBadResponse, cat)
	}
	var resp pagedResponse[seriesDTO]
	if err := s.c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return mapSeries(resp.Results), nil
}

func (s *SeriesCatalog) Search(ctx context.Context, query string, page int, language string) ([]domain.Series, error) {
	var resp pagedResponse[seriesDTO]
	if err := s.c.get(ctx, "/search/tv", searchQuery(query, language, page), &resp); err != nil {
		return nil, err
	}
	return mapSeries(resp.Results), nil
}

func (s *SeriesCatalog) ByGenre(ctx context.Context, genreID int, language string) ([]domain.Series, error) {
	var resp pagedResponse[seriesDTO]
	if err := s.c.get(ctx, "/discover/tv", discoverQuery(genreID, language), &resp); err != nil {
		return nil, err
	}
	return mapSeries(resp.Results), nil
}

func (s *SeriesCatalog) Genres(ctx context.Context, language string) (map[int]string, error) {
	q := url.Values{}
	q.Set("language", language)
	var resp genreListDTO
	if err := s.c.get(ctx, "/genre/tv/list", q, &resp); err != nil {
		return nil, err
	}
	return mapGenres(resp), nil
}

// PersonCatalog adapts the client to the people feed's source interface.
// People have no genre taxonomy, so it implements only the base source.
type PersonCatalog struct {
	c *Client
}

// Persons returns the catalog source for people feeds
func (c *Client) Persons() *PersonCatalog { return &PersonCatalog{c: c} }

func (p *PersonCatalog) ByCategory(ctx context.Context, cat domain.Category, page int, language string) ([]domain.Person, error) {
	var path string
	switch cat {
	case domain.CategoryPopular:
		path = "/person/popular"
	case domain.CategoryTrending:
		path = "/trending/person/week"
	default:
		return nil, fmt.Errorf("%w: unsupported category %v for people", domain.ErrBadResponse, cat)
	}
	var resp pagedResponse[personDTO]
	if err := p.c.get(ctx, path, pageQuery(language, page), &resp); err != nil {
		return nil, err
	}
	return mapPersons(resp.Results), nil
}

func (p *PersonCatalog) Search(ctx context.Context, query string, page int, language string) ([]domain.Person, error) {
	var resp pagedResponse[personDTO]
	if err := p.c.get(ctx, "/search/person", searchQuery(query, language, page), &resp); err != nil {
		return nil, err
	}
	return mapPersons(resp.Results), nil
}
