package feed

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cenkeray/cineglass/internal/domain"
)

// loadAheadWindow is how close to the end of the listing the visible cursor
// must be before the next page is requested.
const loadAheadWindow = 4

// Options configures a Coordinator. Source and Language are required; the
// genre capabilities and the Keep filter vary per kind.
type Options[T domain.Item] struct {
	Kind   domain.Kind
	Source domain.Source[T]

	// Genres provides the genre taxonomy and genre-filtered discovery.
	// nil for kinds without one (people).
	Genres domain.GenreSource[T]

	// HasGenre tests an item's genre-id membership for listings that have
	// no genre-filtered endpoint (trending). nil for genre-less items.
	HasGenre func(T, int) bool

	// Keep drops items before they enter the feed (untranslated titles,
	// non-Latin names). nil keeps everything.
	Keep func(T) bool

	Language string
	Logger   *slog.Logger
}

// Coordinator maintains one paginated, filterable, searchable listing for one
// kind. All state lives behind its mutex; operations are safe to call from
// concurrent presentation tasks, and at most one category page fetch is in
// flight at a time. A fetch that completes after a later filter, genre, or
// search change is discarded by comparing the request epoch.
type Coordinator[T domain.Item] struct {
	kind     domain.Kind
	src      domain.Source[T]
	genres   domain.GenreSource[T]
	hasGenre func(T, int) bool
	keep     func(T) bool
	lang     string
	logger   *slog.Logger

	mu    sync.Mutex
	epoch uint64
	st    Snapshot[T]
	subs  []chan Snapshot[T]
}

// New creates a coordinator. The feed stays idle until the first SetFilter.
func New[T domain.Item](opts Options[T]) *Coordinator[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator[T]{
		kind:     opts.Kind,
		src:      opts.Source,
		genres:   opts.Genres,
		hasGenre: opts.HasGenre,
		keep:     opts.Keep,
		lang:     opts.Language,
		logger:   logger,
		st: Snapshot[T]{
			Filter: domain.CategoryPopular,
			Page:   1,
			Status: StatusLoading,
		},
	}
}

// Kind returns the kind this coordinator serves.
func (c *Coordinator[T]) Kind() domain.Kind { return c.kind }

// State returns a copy of the current feed state.
func (c *Coordinator[T]) State() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// Subscribe streams state snapshots. The current snapshot is emitted
// immediately; a slow reader sees the latest state rather than every
// intermediate one.
func (c *Coordinator[T]) Subscribe() (<-chan Snapshot[T], func()) {
	ch := make(chan Snapshot[T], 1)

	c.mu.Lock()
	c.subs = append(c.subs, ch)
	pushSnapshot(ch, c.st)
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == ch {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// SetFilter switches the category, resets pagination and genre selection,
// and fetches the first page. Any in-flight fetch for the previous filter is
// superseded: its late result is dropped.
func (c *Coordinator[T]) SetFilter(ctx context.Context, f domain.Category) {
	c.mu.Lock()
	c.epoch++
	c.st = Snapshot[T]{
		Filter:     f,
		Page:       1,
		Status:     StatusLoading,
		GenreNames: c.st.GenreNames,
	}
	c.publishLocked()
	c.mu.Unlock()

	if f == domain.CategoryPopular {
		c.refreshGenres(ctx)
	}
	c.fetch(ctx)
}

// FetchPage requests the next category page. No-op while a fetch is in
// flight, after the listing is exhausted, or while a search or genre
// selection owns the listing.
func (c *Coordinator[T]) FetchPage(ctx context.Context) {
	c.fetch(ctx)
}

// LoadMoreIfNeeded triggers the next page fetch when the visible cursor is
// near the end of the listing. Safe to call redundantly.
func (c *Coordinator[T]) LoadMoreIfNeeded(ctx context.Context, visibleIndex int) {
	c.mu.Lock()
	near := len(c.st.Items) > 0 && visibleIndex >= len(c.st.Items)-loadAheadWindow
	c.mu.Unlock()
	if near {
		c.fetch(ctx)
	}
}

// Search replaces the listing with one page of text-search results. A blank
// query restores the paginated feed for the current filter. Repeating the
// same query while its fetch is outstanding is a no-op.
func (c *Coordinator[T]) Search(ctx context.Context, query string) {
	c.mu.Lock()
	if strings.TrimSpace(query) == "" {
		f := c.st.Filter
		c.mu.Unlock()
		c.SetFilter(ctx, f)
		return
	}
	if c.st.Loading && c.st.Query == query {
		c.mu.Unlock()
		return
	}
	c.epoch++
	epoch := c.epoch
	c.st.Query = query
	c.st.GenreID = nil
	c.st.Page = 1
	c.st.EndReached = false
	c.st.Loading = true
	c.st.Status = StatusLoading
	c.publishLocked()
	c.mu.Unlock()

	items, err := c.src.Search(ctx, query, 1, c.lang)
	c.commitReplace(epoch, c.filterItems(items), err)
}

// SelectGenre replaces the listing with a one-shot, non-paginated
// genre-filtered fetch. A nil genre restores the paginated feed for the
// current filter.
func (c *Coordinator[T]) SelectGenre(ctx context.Context, genreID *int) {
	if genreID == nil {
		c.mu.Lock()
		f := c.st.Filter
		c.mu.Unlock()
		c.SetFilter(ctx, f)
		return
	}

	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	id := *genreID
	cat := c.st.Filter
	c.st.GenreID = genreID
	c.st.Query = ""
	c.st.Page = 1
	c.st.EndReached = false
	c.st.Loading = true
	c.st.Status = StatusLoading
	c.publishLocked()
	c.mu.Unlock()

	var items []T
	var err error
	switch {
	case cat == domain.CategoryTrending && c.hasGenre != nil:
		// trending has no genre-filtered endpoint; filter its first page
		items, err = c.src.ByCategory(ctx, domain.CategoryTrending, 1, c.lang)
		if err == nil {
			matched := make([]T, 0, len(items))
			for _, it := range items {
				if c.hasGenre(it, id) {
					matched = append(matched, it)
				}
			}
			items = matched
		}
	case c.genres != nil:
		items, err = c.genres.ByGenre(ctx, id, c.lang)
	default:
		c.logger.Warn("genre selection on a kind without genres", "kind", c.kind)
		items = nil
	}
	c.commitReplace(epoch, c.filterItems(items), err)
}

// fetch requests the page the cursor points at and appends the result.
func (c *Coordinator[T]) fetch(ctx context.Context) {
	c.mu.Lock()
	if c.st.Loading || c.st.EndReached || c.st.Query != "" || c.st.GenreID != nil {
		c.mu.Unlock()
		return
	}
	c.st.Loading = true
	page := c.st.Page
	cat := c.st.Filter
	epoch := c.epoch
	c.publishLocked()
	c.mu.Unlock()

	items, err := c.src.ByCategory(ctx, cat, page, c.lang)
	items = c.filterItems(items)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return // superseded; a newer operation owns the state now
	}
	c.st.Loading = false
	switch {
	case err != nil:
		c.st.Status = StatusErrored
		c.st.Message = classify(err)
		c.logger.Error("page fetch failed",
			"kind", c.kind, "category", cat, "page", page, "error", err)
	case len(items) == 0:
		c.st.EndReached = true
		if page == 1 {
			c.st.Status = StatusEmpty
			c.st.Message = msgNothingFound
		}
	default:
		merged := make([]T, 0, len(c.st.Items)+len(items))
		merged = append(merged, c.st.Items...)
		merged = append(merged, items...)
		c.st.Items = merged
		c.st.Page++
		c.st.Status = StatusReady
		c.st.Message = ""
	}
	c.publishLocked()
}

// commitReplace applies the result of a one-shot search or genre fetch,
// replacing the listing wholesale.
func (c *Coordinator[T]) commitReplace(epoch uint64, items []T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return
	}
	c.st.Loading = false
	switch {
	case err != nil:
		c.st.Items = nil
		c.st.Status = StatusErrored
		c.st.Message = classify(err)
		c.logger.Error("one-shot fetch failed", "kind", c.kind, "error", err)
	case len(items) == 0:
		c.st.Items = nil
		c.st.Status = StatusEmpty
		c.st.Message = msgNothingFound
	default:
		c.st.Items = items
		c.st.Status = StatusReady
		c.st.Message = ""
	}
	c.publishLocked()
}

// refreshGenres updates the id-to-name genre map, best effort.
func (c *Coordinator[T]) refreshGenres(ctx context.Context) {
	if c.genres == nil {
		return
	}
	names, err := c.genres.Genres(ctx, c.lang)
	if err != nil {
		c.logger.Warn("genre list fetch failed", "kind", c.kind, "error", err)
		return
	}
	c.mu.Lock()
	c.st.GenreNames = names
	c.publishLocked()
	c.mu.Unlock()
}

func (c *Coordinator[T]) filterItems(items []T) []T {
	if c.keep == nil {
		return items
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if c.keep(it) {
			kept = append(kept, it)
		}
	}
	return kept
}

// publishLocked fans the current snapshot out to subscribers. Callers hold c.mu.
func (c *Coordinator[T]) publishLocked() {
	for _, ch := range c.subs {
		pushSnapshot(ch, c.st)
	}
}

// pushSnapshot delivers the latest snapshot, replacing an unconsumed
// previous one.
func pushSnapshot[T domain.Item](ch chan Snapshot[T], st Snapshot[T]) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}
