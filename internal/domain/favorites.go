package domain

// Favorite is a locally persisted, denormalized snapshot of a catalog item.
// It does not track later metadata changes of the live item.
type Favorite interface {
	// Key returns the catalog id the record is stored under
	Key() int
}

// FavoriteMovie is the persisted snapshot for a favorited movie.
type FavoriteMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"posterPath,omitempty"`
	ReleaseDate string  `json:"releaseDate"`
	VoteAverage float64 `json:"voteAverage"`
}

func (f FavoriteMovie) Key() int { return f.ID }

// SnapshotMovie builds the persisted record from a live feed item.
func SnapshotMovie(m Movie) FavoriteMovie {
	return FavoriteMovie{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		ReleaseDate: m.ReleaseDate,
		VoteAverage: m.VoteAverage,
	}
}

// FavoriteSeries is the persisted snapshot for a favorited TV series.
type FavoriteSeries struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"posterPath,omitempty"`
	FirstAirDate string  `json:"firstAirDate"`
	VoteAverage  float64 `json:"voteAverage"`
}

func (f FavoriteSeries) Key() int { return f.ID }

// SnapshotSeries builds the persisted record from a live feed item.
func SnapshotSeries(s Series) FavoriteSeries {
	return FavoriteSeries{
		ID:           s.ID,
		Title:        s.Name,
		PosterPath:   s.PosterPath,
		FirstAirDate: s.FirstAirDate,
		VoteAverage:  s.VoteAverage,
	}
}

// FavoritePerson is the persisted snapshot for a favorited person.
type FavoritePerson struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ProfilePath string  `json:"profilePath,omitempty"`
	Popularity  float64 `json:"popularity"`
}

func (f FavoritePerson) Key() int { return f.ID }

// SnapshotPerson builds the persisted record from a live feed item.
func SnapshotPerson(p Person) FavoritePerson {
	return FavoritePerson{
		ID:          p.ID,
		Name:        p.Name,
		ProfilePath: p.ProfilePath,
		Popularity:  p.Popularity,
	}
}
