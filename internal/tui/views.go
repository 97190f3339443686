package tui

import (
	"fmt"
	"strings"

	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/feed"
	"github.com/cenkeray/cineglass/internal/search"
	"github.com/cenkeray/cineglass/internal/tmdb"
)

// favoriteRow is one display row of the favorites screen.
type favoriteRow struct {
	kind  domain.Kind
	id    int
	title string
	extra string
}

// View renders the application
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.theme.Accent.Render("/ "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if m.detail != nil {
		b.WriteString(m.renderDetail())
	} else if m.tab == TabFavorites {
		b.WriteString(m.renderFavorites())
	} else {
		b.WriteString(m.renderFeed())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	var parts []string
	for t := TabMovies; t <= TabFavorites; t++ {
		style := m.theme.TabIdle
		if t == m.tab {
			style = m.theme.TabActive
		}
		parts = append(parts, style.Render(tabNames[t]))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderFeed() string {
	switch m.tab {
	case TabMovies:
		return renderSnapshot(m, m.movieState, m.favoriteIDs(domain.KindMovie), movieLine)
	case TabSeries:
		return renderSnapshot(m, m.seriesState, m.favoriteIDs(domain.KindSeries), seriesLine)
	default:
		return renderSnapshot(m, m.personState, m.favoriteIDs(domain.KindPerson), personLine)
	}
}

// renderSnapshot draws one feed's listing, or its loading/empty/error state.
func renderSnapshot[T domain.Item](m Model, st feed.Snapshot[T], favs map[int]bool, line func(T) string) string {
	var b strings.Builder

	b.WriteString(m.theme.Subtitle.Render(m.feedHeader(st.Filter, st.GenreID, st.Query)))
	b.WriteString("\n")

	switch {
	case st.Status == feed.StatusLoading && len(st.Items) == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Dim.Render(" loading..."))
	case st.Status == feed.StatusErrored:
		b.WriteString(m.theme.Error.Render(st.Message))
	case st.Status == feed.StatusEmpty:
		b.WriteString(m.theme.Dim.Render(st.Message))
	default:
		cursor := m.cursor[m.tab]
		top, bottom := viewport(cursor, len(st.Items), m.listHeight())
		for i := top; i < bottom; i++ {
			b.WriteString(m.renderLine(line(st.Items[i]), favs[st.Items[i].GetID()], i == cursor))
			b.WriteString("\n")
		}
		if st.Loading {
			b.WriteString(m.spinner.View())
			b.WriteString(m.theme.Dim.Render(" loading more..."))
		} else if st.EndReached {
			b.WriteString(m.theme.Dim.Render("— end —"))
		}
	}
	return b.String()
}

func (m Model) renderLine(text string, favorited, selected bool) string {
	marker := "  "
	if favorited {
		marker = m.theme.Favorite.Render("♥ ")
	}
	if selected {
		return marker + m.theme.Selected.Render(text)
	}
	return marker + text
}

func (m Model) renderFavorites() string {
	var b strings.Builder

	header := "favorites"
	if m.favQuery != "" {
		header = fmt.Sprintf("favorites · filter %q", m.favQuery)
	}
	b.WriteString(m.theme.Subtitle.Render(header))
	b.WriteString("\n")

	rows := m.favoriteRows()
	if len(rows) == 0 {
		b.WriteString(m.theme.Dim.Render("No favorites yet."))
		return b.String()
	}

	cursor := m.cursor[TabFavorites]
	top, bottom := viewport(cursor, len(rows), m.listHeight())
	lastKind := domain.Kind(-1)
	for i := top; i < bottom; i++ {
		row := rows[i]
		if row.kind != lastKind {
			b.WriteString(m.theme.Accent.Render(strings.ToUpper(row.kind.String()) + "S"))
			b.WriteString("\n")
			lastKind = row.kind
		}
		text := fmt.Sprintf("%s %s", row.title, m.theme.Dim.Render(row.extra))
		if i == cursor {
			text = m.theme.Selected.Render(row.title) + " " + m.theme.Dim.Render(row.extra)
		}
		b.WriteString("  " + text + "\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	d := m.detail
	var b strings.Builder
	switch d.Kind {
	case domain.KindMovie:
		b.WriteString(m.theme.Title.Render(d.Movie.Title))
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  %s · %.1f · %d min", d.Movie.ReleaseDate, d.Movie.VoteAverage, d.Movie.Runtime)))
		b.WriteString("\n\n")
		b.WriteString(d.Movie.Overview)
	case domain.KindSeries:
		b.WriteString(m.theme.Title.Render(d.Series.Name))
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  %s · %.1f · %d seasons", d.Series.FirstAirDate, d.Series.VoteAverage, d.Series.SeasonCount)))
		b.WriteString("\n\n")
		b.WriteString(d.Series.Overview)
	case domain.KindPerson:
		b.WriteString(m.theme.Title.Render(d.Person.Name))
		b.WriteString(m.theme.Dim.Render("  " + d.Person.KnownForDepartment))
		b.WriteString("\n\n")
		b.WriteString(d.Person.Biography)
	}
	if len(d.Credits) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Subtitle.Render("Known for: "))
		titles := make([]string, 0, 6)
		for i, c := range d.Credits {
			if i == 6 {
				break
			}
			titles = append(titles, c.Title)
		}
		b.WriteString(strings.Join(titles, ", "))
	}
	if len(d.Cast) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Subtitle.Render("Cast: "))
		names := make([]string, 0, 6)
		for i, c := range d.Cast {
			if i == 6 {
				break
			}
			names = append(names, c.Name)
		}
		b.WriteString(strings.Join(names, ", "))
	}
	if d.Trailer != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Trailer: "))
		b.WriteString("https://www.youtube.com/watch?v=" + d.Trailer)
	}
	var posterPath string
	switch d.Kind {
	case domain.KindMovie:
		posterPath = d.Movie.PosterPath
	case domain.KindSeries:
		posterPath = d.Series.PosterPath
	case domain.KindPerson:
		posterPath = d.Person.ProfilePath
	}
	if url := tmdb.ImageURL(m.deps.ImageBase, posterPath); url != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Poster: "))
		b.WriteString(url)
	}
	return m.theme.Pane.Render(b.String())
}

func (m Model) renderFooter() string {
	if m.err != nil {
		return m.theme.Error.Render(m.err.Error())
	}
	help := "tab: switch · f: filter · g/G: genre · /: search · space: favorite · enter: details · t: theme · q: quit"
	return m.theme.Dim.Render(help)
}

func (m Model) feedHeader(filter domain.Category, genreID *int, query string) string {
	if query != "" {
		return fmt.Sprintf("%s · search %q", filter, query)
	}
	if genreID != nil {
		name := m.genreName(*genreID)
		return fmt.Sprintf("%s · genre %s", filter, name)
	}
	return filter.String()
}

func (m Model) genreName(id int) string {
	var names map[int]string
	switch m.tab {
	case TabMovies:
		names = m.movieState.GenreNames
	case TabSeries:
		names = m.seriesState.GenreNames
	}
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprint(id)
}

// favoriteRows merges the three favorite listings, grouped by kind and
// narrowed by the local filter query.
func (m Model) favoriteRows() []favoriteRow {
	var rows []favoriteRow
	for _, f := range m.favMovies {
		rows = append(rows, favoriteRow{
			kind:  domain.KindMovie,
			id:    f.ID,
			title: f.Title,
			extra: fmt.Sprintf("%s · %.1f", f.ReleaseDate, f.VoteAverage),
		})
	}
	for _, f := range m.favSeries {
		rows = append(rows, favoriteRow{
			kind:  domain.KindSeries,
			id:    f.ID,
			title: f.Title,
			extra: fmt.Sprintf("%s · %.1f", f.FirstAirDate, f.VoteAverage),
		})
	}
	for _, f := range m.favPersons {
		rows = append(rows, favoriteRow{
			kind:  domain.KindPerson,
			id:    f.ID,
			title: f.Name,
			extra: fmt.Sprintf("%.1f", f.Popularity),
		})
	}
	if m.favQuery == "" {
		return rows
	}

	titles := make([]string, len(rows))
	for i, r := range rows {
		titles[i] = r.title
	}
	kept := search.Filter(m.favQuery, titles)
	keptSet := make(map[int]bool, len(kept))
	for _, idx := range kept {
		keptSet[idx] = true
	}

	// best matches first; diacritic-folded hits the ranker misses keep
	// their listing order at the end
	matched := make([]favoriteRow, 0, len(kept))
	ranked := make(map[int]bool, len(kept))
	for _, hit := range search.Rank(m.favQuery, titles) {
		if keptSet[hit.Index] {
			matched = append(matched, rows[hit.Index])
			ranked[hit.Index] = true
		}
	}
	for _, idx := range kept {
		if !ranked[idx] {
			matched = append(matched, rows[idx])
		}
	}
	return matched
}

// favoriteIDs returns the favorited id set for one kind, for row markers.
func (m Model) favoriteIDs(kind domain.Kind) map[int]bool {
	ids := make(map[int]bool)
	switch kind {
	case domain.KindMovie:
		for _, f := range m.favMovies {
			ids[f.ID] = true
		}
	case domain.KindSeries:
		for _, f := range m.favSeries {
			ids[f.ID] = true
		}
	case domain.KindPerson:
		for _, f := range m.favPersons {
			ids[f.ID] = true
		}
	}
	return ids
}

func (m Model) rowCount(t Tab) int {
	switch t {
	case TabMovies:
		return len(m.movieState.Items)
	case TabSeries:
		return len(m.seriesState.Items)
	case TabPeople:
		return len(m.personState.Items)
	default:
		return len(m.favoriteRows())
	}
}

func (m Model) listHeight() int {
	// Tabs, header, footer and padding eat a few rows
	h := m.height - 6
	if h < 5 {
		h = 20
	}
	return h
}

// viewport returns the [top, bottom) window keeping the cursor visible.
func viewport(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	top := cursor - height/2
	if top < 0 {
		top = 0
	}
	if top+height > total {
		top = total - height
	}
	return top, top + height
}

func movieLine(m domain.Movie) string {
	return fmt.Sprintf("%-40.40s %s  %.1f", m.Title, year(m.ReleaseDate), m.VoteAverage)
}

func seriesLine(s domain.Series) string {
	return fmt.Sprintf("%-40.40s %s  %.1f", s.Name, year(s.FirstAirDate), s.VoteAverage)
}

func personLine(p domain.Person) string {
	dept := p.KnownForDepartment
	if dept == "" {
		dept = "—"
	}
	return fmt.Sprintf("%-30.30s %-12.12s %.1f", p.Name, dept, p.Popularity)
}

func year(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "    "
}
