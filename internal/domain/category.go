package domain

// Category is the coarse listing filter for a feed.
type Category int

const (
	CategoryPopular Category = iota
	CategoryTrending
	CategoryTopRated
)

func (c Category) String() string {
	switch c {
	case CategoryPopular:
		return "popular"
	case CategoryTrending:
		return "trending"
	case CategoryTopRated:
		return "top_rated"
	default:
		return "unknown"
	}
}

// Categories returns the filters applicable to a kind. People have no
// top-rated listing on the remote source.
func Categories(k Kind) []Category {
	if k == KindPerson {
		return []Category{CategoryPopular, CategoryTrending}
	}
	return []Category{CategoryPopular, CategoryTrending, CategoryTopRated}
}

// Genre is one entry of a kind's genre taxonomy.
type Genre struct {
	ID   int
	Name string
}
