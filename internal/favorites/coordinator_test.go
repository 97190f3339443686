package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenkeray/cineglass/internal/adapter"
	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/store"
)

func newTestCoordinator(t *testing.T) *Coordinator[domain.Movie, domain.FavoriteMovie] {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	table := store.NewTable[domain.FavoriteMovie](s, store.BucketMovies)
	return New(table, domain.SnapshotMovie, adapter.NullLogger())
}

func TestToggleSnapshotsTheLiveItem(t *testing.T) {
	c := newTestCoordinator(t)
	m := domain.Movie{
		ID:          603,
		Title:       "The Matrix",
		PosterPath:  "/matrix.jpg",
		ReleaseDate: "1999-03-30",
		VoteAverage: 8.2,
	}

	on, err := c.Toggle(m)
	require.NoError(t, err)
	assert.True(t, on)

	all, cancel := c.All()
	defer cancel()
	listing := <-all
	require.Len(t, listing, 1)
	assert.Equal(t, "The Matrix", listing[0].Title)
	assert.Equal(t, "/matrix.jpg", listing[0].PosterPath)
	assert.Equal(t, "1999-03-30", listing[0].ReleaseDate)
}

func TestIsFavoriteTracksToggles(t *testing.T) {
	c := newTestCoordinator(t)
	m := domain.Movie{ID: 550, Title: "Fight Club"}

	ch, cancel := c.IsFavorite(550)
	defer cancel()
	assert.False(t, <-ch)

	on, err := c.Toggle(m)
	require.NoError(t, err)
	require.True(t, on)
	assert.True(t, <-ch)

	off, err := c.Toggle(m)
	require.NoError(t, err)
	require.False(t, off)
	assert.False(t, <-ch)
}

func TestRemoveNotifiesWatchers(t *testing.T) {
	c := newTestCoordinator(t)
	m := domain.Movie{ID: 680, Title: "Pulp Fiction"}

	_, err := c.Toggle(m)
	require.NoError(t, err)

	ch, cancel := c.IsFavorite(680)
	defer cancel()
	require.True(t, <-ch)

	require.NoError(t, c.Remove(680))
	assert.False(t, <-ch)
}

func TestAllReflectsEveryMutation(t *testing.T) {
	c := newTestCoordinator(t)

	all, cancel := c.All()
	defer cancel()
	assert.Empty(t, <-all)

	_, err := c.Toggle(domain.Movie{ID: 1, Title: "A"})
	require.NoError(t, err)
	require.Len(t, <-all, 1)

	_, err = c.Toggle(domain.Movie{ID: 2, Title: "B"})
	require.NoError(t, err)
	listing := <-all
	require.Len(t, listing, 2)
	assert.Equal(t, "A", listing[0].Title)
	assert.Equal(t, "B", listing[1].Title)

	_, err = c.Toggle(domain.Movie{ID: 1, Title: "A"})
	require.NoError(t, err)
	listing = <-all
	require.Len(t, listing, 1)
	assert.Equal(t, "B", listing[0].Title)
}
