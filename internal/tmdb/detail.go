package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/cenkeray/cineglass/internal/domain"
)

// MovieDetail is the full metadata of a single movie.
type MovieDetail struct {
	ID          int
	Title       string
	Overview    string
	Tagline     string
	Genres      []domain.Genre
	VoteAverage float64
	ReleaseDate string
	PosterPath  string
	Runtime     int
}

// SeriesDetail is the full metadata of a single TV series.
type SeriesDetail struct {
	ID           int
	Name         string
	Overview     string
	Tagline      string
	Genres       []domain.Genre
	VoteAverage  float64
	FirstAirDate string
	PosterPath   string
	SeasonCount  int
	EpisodeCount int
}

// PersonDetail is the full metadata of a single person.
type PersonDetail struct {
	ID                 int
	Name               string
	Biography          string
	Birthday           string
	Deathday           string
	PlaceOfBirth       string
	KnownForDepartment string
	Popularity         float64
	ProfilePath        string
}

// CastMember is one acting credit of a movie or series.
type CastMember struct {
	ID          int
	Name        string
	Character   string
	ProfilePath string
}

// PersonCredit is one movie or series a person is credited in.
type PersonCredit struct {
	ID         int
	Title      string
	MediaType  string // "movie" or "tv"
	Character  string
	PosterPath string
}

func langQuery(language string) url.Values {
	q := url.Values{}
	q.Set("language", language)
	return q
}

// GetMovieDetail returns full metadata for one movie
func (c *Client) GetMovieDetail(ctx context.Context, id int, language string) (*MovieDetail, error) {
	var dto movieDetailDTO
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), langQuery(language), &dto); err != nil {
		return nil, err
	}
	return &MovieDetail{
		ID:          dto.ID,
		Title:       dto.Title,
		Overview:    dto.Overview,
		Tagline:     dto.Tagline,
		Genres:      mapGenreList(dto.Genres),
		VoteAverage: dto.VoteAverage,
		ReleaseDate: dto.ReleaseDate,
		PosterPath:  dto.PosterPath,
		Runtime:     dto.Runtime,
	}, nil
}

// GetSeriesDetail returns full metadata for one TV series
func (c *Client) GetSeriesDetail(ctx context.Context, id int, language string) (*SeriesDetail, error) {
	var dto seriesDetailDTO
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), langQuery(language), &dto); err != nil {
		return nil, err
	}
	return &SeriesDetail{
		ID:           dto.ID,
		Name:         dto.Name,
		Overview:     dto.Overview,
		Tagline:      dto.Tagline,
		Genres:       mapGenreList(dto.Genres),
		VoteAverage:  dto.VoteAverage,
		FirstAirDate: dto.FirstAirDate,
		PosterPath:   dto.PosterPath,
		SeasonCount:  dto.SeasonCount,
		EpisodeCount: dto.EpisodeCount,
	}, nil
}

// GetPersonDetail returns full metadata for one person
func (c *Client) GetPersonDetail(ctx context.Context, id int, language string) (*PersonDetail, error) {
	var dto personDetailDTO
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), langQuery(language), &dto); err != nil {
		return nil, err
	}
	return &PersonDetail{
		ID:                 dto.ID,
		Name:               dto.Name,
		Biography:          dto.Biography,
		Birthday:           dto.Birthday,
		Deathday:           dto.Deathday,
		PlaceOfBirth:       dto.PlaceOfBirth,
		KnownForDepartment: dto.KnownForDepartment,
		Popularity:         dto.Popularity,
		ProfilePath:        dto.ProfilePath,
	}, nil
}

// GetMovieCast returns the cast list of a movie, in billing order
func (c *Client) GetMovieCast(ctx context.Context, id int) ([]CastMember, error) {
	return c.getCast(ctx, fmt.Sprintf("/movie/%d/credits", id))
}

// GetSeriesCast returns the cast list of a TV series, in billing order
func (c *Client) GetSeriesCast(ctx context.Context, id int) ([]CastMember, error) {
	return c.getCast(ctx, fmt.Sprintf("/tv/%d/credits", id))
}

func (c *Client) getCast(ctx context.Context, path string) ([]CastMember, error) {
	var dto creditsDTO
	if err := c.get(ctx, path, nil, &dto); err != nil {
		return nil, err
	}
	cast := make([]CastMember, 0, len(dto.Cast))
	for _, m := range dto.Cast {
		cast = append(cast, CastMember{
			ID:          m.ID,
			Name:        m.Name,
			Character:   m.Character,
			ProfilePath: m.ProfilePath,
		})
	}
	return cast, nil
}

// GetPersonCredits returns the person's movie and TV acting credits, best
// known first.
func (c *Client) GetPersonCredits(ctx context.Context, id int, language string) ([]PersonCredit, error) {
	var dto personCreditsDTO
	path := fmt.Sprintf("/person/%d/combined_credits", id)
	if err := c.get(ctx, path, langQuery(language), &dto); err != nil {
		return nil, err
	}
	sort.SliceStable(dto.Cast, func(i, j int) bool {
		return dto.Cast[i].Popularity > dto.Cast[j].Popularity
	})
	credits := make([]PersonCredit, 0, len(dto.Cast))
	for _, m := range dto.Cast {
		title := m.Title
		if title == "" {
			title = m.Name
		}
		credits = append(credits, PersonCredit{
			ID:         m.ID,
			Title:      title,
			MediaType:  m.MediaType,
			Character:  m.Character,
			PosterPath: m.PosterPath,
		})
	}
	return credits, nil
}

// GetTrailerKey returns the YouTube key of the first trailer of a movie or
// series, or "" when none is published.
func (c *Client) GetTrailerKey(ctx context.Context, kind domain.Kind, id int) (string, error) {
	var path string
	switch kind {
	case domain.KindMovie:
		path = fmt.Sprintf("/movie/%d/videos", id)
	case domain.KindSeries:
		path = fmt.Sprintf("/tv/%d/videos", id)
	default:
		return "", fmt.Errorf("%w: no videos for kind %v", domain.ErrNotFound, kind)
	}
	var dto videoListDTO
	if err := c.get(ctx, path, nil, &dto); err != nil {
		return "", err
	}
	for _, v := range dto.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v.Key, nil
		}
	}
	return "", nil
}

func mapGenreList(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, 0, len(dtos))
	for _, g := range dtos {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}
