package tmdb

import "github.com/cenkeray/cineglass/internal/domain"

// mapMovies converts movie DTOs to domain movies
func mapMovies(dtos []movieDTO) []domain.Movie {
	items := make([]domain.Movie, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, domain.Movie{
			ID:            d.ID,
			Title:         d.Title,
			OriginalTitle: d.OriginalTitle,
			GenreIDs:      d.GenreIDs,
			VoteAverage:   d.VoteAverage,
			ReleaseDate:   d.ReleaseDate,
			PosterPath:    d.PosterPath,
			Overview:      d.Overview,
		})
	}
	return items
}

// mapSeries converts series DTOs to domain series
func mapSeries(dtos []seriesDTO) []domain.Series {
	items := make([]domain.Series, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, domain.Series{
			ID:           d.ID,
			Name:         d.Name,
			OriginalName: d.OriginalName,
			GenreIDs:     d.GenreIDs,
			VoteAverage:  d.VoteAverage,
			FirstAirDate: d.FirstAirDate,
			PosterPath:   d.PosterPath,
			Overview:     d.Overview,
		})
	}
	return items
}

// mapPersons converts person DTOs to domain persons
func mapPersons(dtos []personDTO) []domain.Person {
	items := make([]domain.Person, 0, len(dtos))
	for _, d := range dtos {
		known := make([]domain.KnownFor, 0, len(d.KnownFor))
		for _, k := range d.KnownFor {
			title := k.Title
			if title == "" {
				title = k.Name
			}
			known = append(known, domain.KnownFor{
				ID:         k.ID,
				Title:      title,
				MediaType:  k.MediaType,
				PosterPath: k.PosterPath,
			})
		}
		items = append(items, domain.Person{
			ID:                 d.ID,
			Name:               d.Name,
			OriginalName:       d.OriginalName,
			KnownForDepartment: d.KnownForDepartment,
			Popularity:         d.Popularity,
			ProfilePath:        d.ProfilePath,
			KnownFor:           known,
		})
	}
	return items
}

func mapGenres(list genreListDTO) map[int]string {
	genres := make(map[int]string, len(list.Genres))
	for _, g := range list.Genres {
		genres[g.ID] = g.Name
	}
	return genres
}
