package tui

import (
	"github.com/cenkeray/cineglass/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Commands run coordinator operations off the update loop. The resulting
// state reaches the model through the feed subscription streams, not as a
// command return value.

func (m Model) cmdSetFilter(t Tab, f domain.Category) tea.Cmd {
	ctx := m.ctx
	switch t {
	case TabMovies:
		c := m.deps.Movies
		return func() tea.Msg { c.SetFilter(ctx, f); return nil }
	case TabSeries:
		c := m.deps.Series
		return func() tea.Msg { c.SetFilter(ctx, f); return nil }
	case TabPeople:
		c := m.deps.People
		return func() tea.Msg { c.SetFilter(ctx, f); return nil }
	default:
		return nil
	}
}

func (m Model) cmdSearch(t Tab, query string) tea.Cmd {
	ctx := m.ctx
	switch t {
	case TabMovies:
		c := m.deps.Movies
		return func() tea.Msg { c.Search(ctx, query); return nil }
	case TabSeries:
		c := m.deps.Series
		return func() tea.Msg { c.Search(ctx, query); return nil }
	case TabPeople:
		c := m.deps.People
		return func() tea.Msg { c.Search(ctx, query); return nil }
	default:
		return nil
	}
}

func (m Model) cmdSelectGenre(t Tab, genreID *int) tea.Cmd {
	ctx := m.ctx
	switch t {
	case TabMovies:
		c := m.deps.Movies
		return func() tea.Msg { c.SelectGenre(ctx, genreID); return nil }
	case TabSeries:
		c := m.deps.Series
		return func() tea.Msg { c.SelectGenre(ctx, genreID); return nil }
	default:
		return nil
	}
}

func (m Model) cmdLoadMore(t Tab, visibleIndex int) tea.Cmd {
	ctx := m.ctx
	switch t {
	case TabMovies:
		c := m.deps.Movies
		return func() tea.Msg { c.LoadMoreIfNeeded(ctx, visibleIndex); return nil }
	case TabSeries:
		c := m.deps.Series
		return func() tea.Msg { c.LoadMoreIfNeeded(ctx, visibleIndex); return nil }
	case TabPeople:
		c := m.deps.People
		return func() tea.Msg { c.LoadMoreIfNeeded(ctx, visibleIndex); return nil }
	default:
		return nil
	}
}

// cmdToggleFavorite flips the favorite status of the item under the cursor.
// On the favorites screen it removes the selected record instead.
func (m Model) cmdToggleFavorite() tea.Cmd {
	idx := m.cursor[m.tab]
	switch m.tab {
	case TabMovies:
		items := m.movieState.Items
		if idx >= len(items) {
			return nil
		}
		item, c := items[idx], m.deps.MovieFavs
		return func() tea.Msg {
			if _, err := c.Toggle(item); err != nil {
				return ErrMsg{Err: err, Context: "toggling favorite"}
			}
			return nil
		}
	case TabSeries:
		items := m.seriesState.Items
		if idx >= len(items) {
			return nil
		}
		item, c := items[idx], m.deps.SeriesFavs
		return func() tea.Msg {
			if _, err := c.Toggle(item); err != nil {
				return ErrMsg{Err: err, Context: "toggling favorite"}
			}
			return nil
		}
	case TabPeople:
		items := m.personState.Items
		if idx >= len(items) {
			return nil
		}
		item, c := items[idx], m.deps.PersonFavs
		return func() tea.Msg {
			if _, err := c.Toggle(item); err != nil {
				return ErrMsg{Err: err, Context: "toggling favorite"}
			}
			return nil
		}
	case TabFavorites:
		return m.cmdRemoveFavorite(idx)
	}
	return nil
}

// cmdRemoveFavorite deletes the selected row of the favorites screen.
func (m Model) cmdRemoveFavorite(idx int) tea.Cmd {
	rows := m.favoriteRows()
	if idx >= len(rows) {
		return nil
	}
	row := rows[idx]
	switch row.kind {
	case domain.KindMovie:
		c := m.deps.MovieFavs
		return func() tea.Msg {
			if err := c.Remove(row.id); err != nil {
				return ErrMsg{Err: err, Context: "removing favorite"}
			}
			return nil
		}
	case domain.KindSeries:
		c := m.deps.SeriesFavs
		return func() tea.Msg {
			if err := c.Remove(row.id); err != nil {
				return ErrMsg{Err: err, Context: "removing favorite"}
			}
			return nil
		}
	case domain.KindPerson:
		c := m.deps.PersonFavs
		return func() tea.Msg {
			if err := c.Remove(row.id); err != nil {
				return ErrMsg{Err: err, Context: "removing favorite"}
			}
			return nil
		}
	}
	return nil
}

// cmdDetails fetches full metadata for the item under the cursor.
func (m Model) cmdDetails() tea.Cmd {
	ctx, client, lang := m.ctx, m.deps.Client, m.deps.Language
	idx := m.cursor[m.tab]
	switch m.tab {
	case TabMovies:
		items := m.movieState.Items
		if idx >= len(items) {
			return nil
		}
		id := items[idx].ID
		return func() tea.Msg {
			detail, err := client.GetMovieDetail(ctx, id, lang)
			if err != nil {
				return ErrMsg{Err: err, Context: "loading movie details"}
			}
			cast, _ := client.GetMovieCast(ctx, id)
			trailer, _ := client.GetTrailerKey(ctx, domain.KindMovie, id)
			return DetailMsg{Kind: domain.KindMovie, Movie: detail, Cast: cast, Trailer: trailer}
		}
	case TabSeries:
		items := m.seriesState.Items
		if idx >= len(items) {
			return nil
		}
		id := items[idx].ID
		return func() tea.Msg {
			detail, err := client.GetSeriesDetail(ctx, id, lang)
			if err != nil {
				return ErrMsg{Err: err, Context: "loading series details"}
			}
			cast, _ := client.GetSeriesCast(ctx, id)
			trailer, _ := client.GetTrailerKey(ctx, domain.KindSeries, id)
			return DetailMsg{Kind: domain.KindSeries, Series: detail, Cast: cast, Trailer: trailer}
		}
	case TabPeople:
		items := m.personState.Items
		if idx >= len(items) {
			return nil
		}
		id := items[idx].ID
		return func() tea.Msg {
			detail, err := client.GetPersonDetail(ctx, id, lang)
			if err != nil {
				return ErrMsg{Err: err, Context: "loading person details"}
			}
			credits, _ := client.GetPersonCredits(ctx, id, lang)
			return DetailMsg{Kind: domain.KindPerson, Person: detail, Credits: credits}
		}
	}
	return nil
}
