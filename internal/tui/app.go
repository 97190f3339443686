package tui

import (
	"context"
	"sort"

	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/favorites"
	"github.com/cenkeray/cineglass/internal/feed"
	"github.com/cenkeray/cineglass/internal/settings"
	"github.com/cenkeray/cineglass/internal/tmdb"
	"github.com/cenkeray/cineglass/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies one of the top-level screens
type Tab int

const (
	TabMovies Tab = iota
	TabSeries
	TabPeople
	TabFavorites
)

var tabNames = map[Tab]string{
	TabMovies:    "Movies",
	TabSeries:    "Series",
	TabPeople:    "People",
	TabFavorites: "Favorites",
}

// Deps are the collaborators the TUI renders and drives.
type Deps struct {
	Movies *feed.Coordinator[domain.Movie]
	Series *feed.Coordinator[domain.Series]
	People *feed.Coordinator[domain.Person]

	MovieFavs  *favorites.Coordinator[domain.Movie, domain.FavoriteMovie]
	SeriesFavs *favorites.Coordinator[domain.Series, domain.FavoriteSeries]
	PersonFavs *favorites.Coordinator[domain.Person, domain.FavoritePerson]

	Client    *tmdb.Client
	Settings  *settings.Service
	Language  string
	ImageBase string
}

// Model is the main Bubble Tea model for the application
type Model struct {
	ctx  context.Context
	deps Deps
	keys KeyMap

	theme     styles.Theme
	themeName string

	// Latest published feed states and the streams feeding them
	movieState   feed.Snapshot[domain.Movie]
	seriesState  feed.Snapshot[domain.Series]
	personState  feed.Snapshot[domain.Person]
	movieFeedCh  <-chan feed.Snapshot[domain.Movie]
	seriesFeedCh <-chan feed.Snapshot[domain.Series]
	personFeedCh <-chan feed.Snapshot[domain.Person]

	// Favorite listings and the streams feeding them
	favMovies    []domain.FavoriteMovie
	favSeries    []domain.FavoriteSeries
	favPersons   []domain.FavoritePerson
	favMovieCh   <-chan []domain.FavoriteMovie
	favSeriesCh  <-chan []domain.FavoriteSeries
	favPersonCh  <-chan []domain.FavoritePerson
	cancelStream []func()

	tab      Tab
	cursor   map[Tab]int
	genreIdx map[Tab]int // position in the sorted genre list; -1 = none

	searchInput textinput.Model
	searching   bool
	favQuery    string // local filter on the favorites screen

	spinner spinner.Model
	detail  *DetailMsg
	err     error

	width  int
	height int
}

// NewModel wires the TUI over its collaborators.
func NewModel(ctx context.Context, deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	themeName := deps.Settings.Current().Theme

	// Feed and favorites subscriptions live for the whole program run;
	// every published snapshot reaches the view through these streams
	mFeedCh, mFeedCancel := deps.Movies.Subscribe()
	sFeedCh, sFeedCancel := deps.Series.Subscribe()
	pFeedCh, pFeedCancel := deps.People.Subscribe()
	mCh, mCancel := deps.MovieFavs.All()
	sCh, sCancel := deps.SeriesFavs.All()
	pCh, pCancel := deps.PersonFavs.All()

	return Model{
		ctx:          ctx,
		deps:         deps,
		keys:         DefaultKeyMap(),
		theme:        styles.NewTheme(themeName),
		themeName:    themeName,
		cursor:       map[Tab]int{},
		genreIdx:     map[Tab]int{TabMovies: -1, TabSeries: -1},
		searchInput:  ti,
		spinner:      sp,
		movieFeedCh:  mFeedCh,
		seriesFeedCh: sFeedCh,
		personFeedCh: pFeedCh,
		favMovieCh:   mCh,
		favSeriesCh:  sCh,
		favPersonCh:  pCh,
		cancelStream: []func(){
			mFeedCancel, sFeedCancel, pFeedCancel,
			mCancel, sCancel, pCancel,
		},
	}
}

// Init starts the spinner, the feed and favorites streams, and the first
// page of every feed.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdSetFilter(TabMovies, domain.CategoryPopular),
		m.cmdSetFilter(TabSeries, domain.CategoryPopular),
		m.cmdSetFilter(TabPeople, domain.CategoryPopular),
		waitFeed(m.movieFeedCh, func(st feed.Snapshot[domain.Movie]) tea.Msg { return MovieFeedMsg(st) }),
		waitFeed(m.seriesFeedCh, func(st feed.Snapshot[domain.Series]) tea.Msg { return SeriesFeedMsg(st) }),
		waitFeed(m.personFeedCh, func(st feed.Snapshot[domain.Person]) tea.Msg { return PersonFeedMsg(st) }),
		waitFavorites(m.favMovieCh, func(r []domain.FavoriteMovie) tea.Msg { return MovieFavoritesMsg(r) }),
		waitFavorites(m.favSeriesCh, func(r []domain.FavoriteSeries) tea.Msg { return SeriesFavoritesMsg(r) }),
		waitFavorites(m.favPersonCh, func(r []domain.FavoritePerson) tea.Msg { return PersonFavoritesMsg(r) }),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MovieFeedMsg:
		m.movieState = feed.Snapshot[domain.Movie](msg)
		m.clampCursor(TabMovies)
		return m, waitFeed(m.movieFeedCh, func(st feed.Snapshot[domain.Movie]) tea.Msg { return MovieFeedMsg(st) })
	case SeriesFeedMsg:
		m.seriesState = feed.Snapshot[domain.Series](msg)
		m.clampCursor(TabSeries)
		return m, waitFeed(m.seriesFeedCh, func(st feed.Snapshot[domain.Series]) tea.Msg { return SeriesFeedMsg(st) })
	case PersonFeedMsg:
		m.personState = feed.Snapshot[domain.Person](msg)
		m.clampCursor(TabPeople)
		return m, waitFeed(m.personFeedCh, func(st feed.Snapshot[domain.Person]) tea.Msg { return PersonFeedMsg(st) })

	case MovieFavoritesMsg:
		m.favMovies = msg
		return m, waitFavorites(m.favMovieCh, func(r []domain.FavoriteMovie) tea.Msg { return MovieFavoritesMsg(r) })
	case SeriesFavoritesMsg:
		m.favSeries = msg
		return m, waitFavorites(m.favSeriesCh, func(r []domain.FavoriteSeries) tea.Msg { return SeriesFavoritesMsg(r) })
	case PersonFavoritesMsg:
		m.favPersons = msg
		return m, waitFavorites(m.favPersonCh, func(r []domain.FavoritePerson) tea.Msg { return PersonFavoritesMsg(r) })

	case DetailMsg:
		m.detail = &msg
		return m, nil

	case ErrMsg:
		m.err = msg
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		for _, cancel := range m.cancelStream {
			cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.detail != nil {
			m.detail = nil
			return m, nil
		}
		if m.favQuery != "" && m.tab == TabFavorites {
			m.favQuery = ""
			return m, nil
		}
		return m, m.cmdSearch(m.tab, "") // restore the paginated feed

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % 4
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + 3) % 4
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.tab] < m.rowCount(m.tab)-1 {
			m.cursor[m.tab]++
		}
		if m.tab != TabFavorites {
			return m, m.cmdLoadMore(m.tab, m.cursor[m.tab])
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.tab == TabFavorites {
			return m, nil
		}
		next := m.nextFilter(m.tab)
		m.cursor[m.tab] = 0
		m.genreIdx[m.tab] = -1
		return m, m.cmdSetFilter(m.tab, next)

	case key.Matches(msg, m.keys.Genre):
		return m.cycleGenre()

	case key.Matches(msg, m.keys.ClearGenre):
		if m.tab == TabMovies || m.tab == TabSeries {
			m.genreIdx[m.tab] = -1
			m.cursor[m.tab] = 0
			return m, m.cmdSelectGenre(m.tab, nil)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Favorite):
		return m, m.cmdToggleFavorite()

	case key.Matches(msg, m.keys.Details):
		return m, m.cmdDetails()

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		query := m.searchInput.Value()
		m.searchInput.Blur()
		m.cursor[m.tab] = 0
		if m.tab == TabFavorites {
			m.favQuery = query
			return m, nil
		}
		return m, m.cmdSearch(m.tab, query)
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// cycleGenre advances to the next genre of the active feed's taxonomy.
func (m Model) cycleGenre() (tea.Model, tea.Cmd) {
	if m.tab != TabMovies && m.tab != TabSeries {
		return m, nil
	}
	ids := m.sortedGenreIDs(m.tab)
	if len(ids) == 0 {
		return m, nil
	}
	m.genreIdx[m.tab] = (m.genreIdx[m.tab] + 1) % len(ids)
	id := ids[m.genreIdx[m.tab]]
	m.cursor[m.tab] = 0
	return m, m.cmdSelectGenre(m.tab, &id)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "light"
	if m.themeName == "light" {
		next = "dark"
	}
	m.themeName = next
	m.theme = styles.NewTheme(next)
	svc := m.deps.Settings
	return m, func() tea.Msg {
		if err := svc.SetTheme(next); err != nil {
			return ErrMsg{Err: err, Context: "saving theme"}
		}
		return nil
	}
}

// sortedGenreIDs returns the active feed's genre ids in a stable order.
func (m Model) sortedGenreIDs(t Tab) []int {
	var names map[int]string
	switch t {
	case TabMovies:
		names = m.movieState.GenreNames
	case TabSeries:
		names = m.seriesState.GenreNames
	}
	ids := make([]int, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return names[ids[i]] < names[ids[j]] })
	return ids
}

func (m *Model) clampCursor(t Tab) {
	if n := m.rowCount(t); m.cursor[t] >= n {
		if n == 0 {
			m.cursor[t] = 0
		} else {
			m.cursor[t] = n - 1
		}
	}
}

func (m Model) nextFilter(t Tab) domain.Category {
	var kind domain.Kind
	var current domain.Category
	switch t {
	case TabMovies:
		kind, current = domain.KindMovie, m.movieState.Filter
	case TabSeries:
		kind, current = domain.KindSeries, m.seriesState.Filter
	case TabPeople:
		kind, current = domain.KindPerson, m.personState.Filter
	}
	cats := domain.Categories(kind)
	for i, c := range cats {
		if c == current {
			return cats[(i+1)%len(cats)]
		}
	}
	return cats[0]
}

// waitFeed blocks on a feed's snapshot stream and forwards the next state.
func waitFeed[T domain.Item](ch <-chan feed.Snapshot[T], wrap func(feed.Snapshot[T]) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(st)
	}
}

// waitFavorites blocks on a favorites stream and forwards the next listing.
func waitFavorites[R domain.Favorite](ch <-chan []R, wrap func([]R) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		records, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(records)
	}
}
