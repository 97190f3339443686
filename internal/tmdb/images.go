package tmdb

// DefaultImageBaseURL is the TMDB image CDN root for medium-width posters
const DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"

// ImageURL resolves a relative poster/profile path to a full URL.
// Returns "" for items without an image.
func ImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	return base + path
}
