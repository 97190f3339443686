package feed

import (
	"errors"

	"github.com/cenkeray/cineglass/internal/domain"
)

// Status is the user-visible condition of a feed.
type Status int

const (
	// StatusLoading means the first page of a fresh listing is in flight
	StatusLoading Status = iota

	// StatusReady means the feed holds at least one displayable item
	StatusReady

	// StatusEmpty means a fresh listing or search produced no results.
	// Distinct from pagination exhaustion, which keeps prior items visible.
	StatusEmpty

	// StatusErrored means the last fetch failed; Snapshot.Message explains
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusEmpty:
		return "empty"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// User-facing messages for failed or fruitless fetches
const (
	msgNoConnection = "Check your internet connection."
	msgNothingFound = "Nothing found."
	msgCouldNotLoad = "Could not load results."
)

// Snapshot is an immutable copy of a feed's state, published to subscribers
// after every transition. Items may contain duplicate ids across page
// boundaries; the remote source's ordering can shift between fetches and the
// feed does not deduplicate.
type Snapshot[T domain.Item] struct {
	Items      []T
	Page       int
	EndReached bool
	Loading    bool
	Filter     domain.Category
	GenreID    *int
	Query      string
	Status     Status
	Message    string
	GenreNames map[int]string
}

// classify maps a collaborator failure to a user-facing condition.
// Host-unreachable failures get their own message; everything else is a
// generic load failure.
func classify(err error) string {
	if errors.Is(err, domain.ErrNoConnection) {
		return msgNoConnection
	}
	return msgCouldNotLoad
}
