package domain

import "context"

// Source provides the paged listings of a feed: category pages and free-text
// search. One implementation exists per Kind.
type Source[T Item] interface {
	// ByCategory returns one page of a category listing. An empty slice
	// means the listing is exhausted.
	ByCategory(ctx context.Context, c Category, page int, language string) ([]T, error)

	// Search returns one page of text-search results.
	Search(ctx context.Context, query string, page int, language string) ([]T, error)
}

// GenreSource provides the genre taxonomy and genre-filtered discovery for
// kinds that have one (movies and series; people do not).
type GenreSource[T Item] interface {
	// ByGenre returns a single, non-paginated listing filtered by genre.
	ByGenre(ctx context.Context, genreID int, language string) ([]T, error)

	// Genres returns the id-to-name genre taxonomy.
	Genres(ctx context.Context, language string) (map[int]string, error)
}
