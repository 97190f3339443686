package tmdb

// pagedResponse is the common envelope of TMDB listing endpoints
type pagedResponse[R any] struct {
	Page         int `json:"page"`
	Results      []R `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

type movieDTO struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	GenreIDs      []int   `json:"genre_ids"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	Overview      string  `json:"overview"`
}

type seriesDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
}

type personDTO struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	OriginalName       string        `json:"original_name"`
	KnownForDepartment string        `json:"known_for_department"`
	Popularity         float64       `json:"popularity"`
	ProfilePath        string        `json:"profile_path"`
	KnownFor           []knownForDTO `json:"known_for"`
}

type knownForDTO struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Name       string `json:"name"`
	MediaType  string `json:"media_type"`
	PosterPath string `json:"poster_path"`
}

type genreListDTO struct {
	Genres []genreDTO `json:"genres"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type movieDetailDTO struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	Genres      []genreDTO `json:"genres"`
	VoteAverage float64    `json:"vote_average"`
	ReleaseDate string     `json:"release_date"`
	PosterPath  string     `json:"poster_path"`
	Runtime     int        `json:"runtime"`
	Tagline     string     `json:"tagline"`
}

type seriesDetailDTO struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Overview     string     `json:"overview"`
	Genres       []genreDTO `json:"genres"`
	VoteAverage  float64    `json:"vote_average"`
	FirstAirDate string     `json:"first_air_date"`
	PosterPath   string     `json:"poster_path"`
	SeasonCount  int        `json:"number_of_seasons"`
	EpisodeCount int        `json:"number_of_episodes"`
	Tagline      string     `json:"tagline"`
}

type personDetailDTO struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           string  `json:"birthday"`
	Deathday           string  `json:"deathday"`
	PlaceOfBirth       string  `json:"place_of_birth"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
}

type creditsDTO struct {
	ID   int       `json:"id"`
	Cast []castDTO `json:"cast"`
}

type castDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type personCreditsDTO struct {
	ID   int               `json:"id"`
	Cast []personCreditDTO `json:"cast"`
}

type personCreditDTO struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Name       string  `json:"name"`
	MediaType  string  `json:"media_type"`
	Character  string  `json:"character"`
	PosterPath string  `json:"poster_path"`
	Popularity float64 `json:"popularity"`
}

type videoListDTO struct {
	ID      int        `json:"id"`
	Results []videoDTO `json:"results"`
}

type videoDTO struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}
