package domain

import "unicode"

// Kind distinguishes the three parallel catalog feeds.
type Kind int

const (
	KindMovie Kind = iota
	KindSeries
	KindPerson
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindSeries:
		return "series"
	case KindPerson:
		return "person"
	default:
		return "unknown"
	}
}

// Item is the polymorphic interface for catalog entries shown in feeds.
// Domain entities (Movie, Series, Person) implement this interface directly.
type Item interface {
	// GetID returns the TMDB identifier, unique within a Kind
	GetID() int

	// GetTitle returns the display title
	GetTitle() string

	// GetPosterPath returns the relative poster/profile image path ("" if none)
	GetPosterPath() string

	// GetScore returns the vote average or popularity score
	GetScore() float64
}

// Movie represents one entry of a movie feed. Immutable once fetched.
type Movie struct {
	ID            int
	Title         string
	OriginalTitle string
	GenreIDs      []int
	VoteAverage   float64
	ReleaseDate   string
	PosterPath    string
	Overview      string
}

func (m Movie) GetID() int            { return m.ID }
func (m Movie) GetTitle() string      { return m.Title }
func (m Movie) GetPosterPath() string { return m.PosterPath }
func (m Movie) GetScore() float64     { return m.VoteAverage }
func (m Movie) HasGenre(id int) bool  { return containsGenre(m.GenreIDs, id) }

// Series represents one entry of a TV series feed. Immutable once fetched.
type Series struct {
	ID           int
	Name         string
	OriginalName string
	GenreIDs     []int
	VoteAverage  float64
	FirstAirDate string
	PosterPath   string
	Overview     string
}

func (s Series) GetID() int            { return s.ID }
func (s Series) GetTitle() string      { return s.Name }
func (s Series) GetPosterPath() string { return s.PosterPath }
func (s Series) GetScore() float64     { return s.VoteAverage }
func (s Series) HasGenre(id int) bool  { return containsGenre(s.GenreIDs, id) }

// Person represents one entry of a people feed. Immutable once fetched.
type Person struct {
	ID                 int
	Name               string
	OriginalName       string
	KnownForDepartment string
	Popularity         float64
	ProfilePath        string
	KnownFor           []KnownFor
}

func (p Person) GetID() int            { return p.ID }
func (p Person) GetTitle() string      { return p.Name }
func (p Person) GetPosterPath() string { return p.ProfilePath }
func (p Person) GetScore() float64     { return p.Popularity }

// KnownFor is a credit the person is known for, attached to people results.
type KnownFor struct {
	ID         int
	Title      string
	MediaType  string
	PosterPath string
}

func containsGenre(ids []int, id int) bool {
	for _, g := range ids {
		if g == id {
			return true
		}
	}
	return false
}

// HasCJKTitle reports whether a title contains Japanese or Chinese script.
// Untranslated entries slip through the remote source's language filter;
// feeds drop them before display.
func HasCJKTitle(title string) bool {
	for _, r := range title {
		if (r >= '぀' && r <= 'ヿ') || (r >= '一' && r <= '龿') {
			return true
		}
	}
	return false
}

// IsLatinName reports whether a person name uses only basic Latin letters,
// digits, spaces and common punctuation. People feeds keep only these.
func IsLatinName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case unicode.IsDigit(r), r == ' ', r == '.', r == '\'', r == '-':
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
