package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cenkeray/cineglass/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fav(id int, title string) domain.FavoriteMovie {
	return domain.FavoriteMovie{ID: id, Title: title}
}

func TestToggleRoundTrip(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	on, err := table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)
	assert.True(t, on)

	exists, err := table.Exists(603)
	require.NoError(t, err)
	assert.True(t, exists)

	off, err := table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)
	assert.False(t, off)

	exists, err = table.Exists(603)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	// ids deliberately out of numeric order
	for _, m := range []domain.FavoriteMovie{
		fav(550, "Fight Club"),
		fav(13, "Forrest Gump"),
		fav(680, "Pulp Fiction"),
	} {
		_, err := table.Toggle(m)
		require.NoError(t, err)
	}

	records, err := table.All()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 550, records[0].ID)
	assert.Equal(t, 13, records[1].ID)
	assert.Equal(t, 680, records[2].ID)
}

func TestReAddedFavoriteMovesToEnd(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	for _, m := range []domain.FavoriteMovie{fav(1, "A"), fav(2, "B")} {
		_, err := table.Toggle(m)
		require.NoError(t, err)
	}
	_, err := table.Toggle(fav(1, "A")) // remove
	require.NoError(t, err)
	_, err = table.Toggle(fav(1, "A")) // re-add
	require.NoError(t, err)

	records, err := table.All()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].ID)
	assert.Equal(t, 1, records[1].ID)
}

func TestPutReplacesExistingRecord(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	require.NoError(t, table.Put(domain.FavoriteMovie{ID: 603, Title: "The Matrix"}))
	require.NoError(t, table.Put(domain.FavoriteMovie{ID: 603, Title: "The Matrix", VoteAverage: 8.7}))

	records, err := table.All()
	require.NoError(t, err)
	require.Len(t, records, 1, "replacing an id must not duplicate it")
	assert.Equal(t, 8.7, records[0].VoteAverage)
}

func TestPutNotifiesWatchers(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	ch, cancel := table.Watch(603)
	defer cancel()
	require.False(t, <-ch)

	require.NoError(t, table.Put(fav(603, "The Matrix")))
	assert.True(t, <-ch)
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	require.NoError(t, table.Delete(42))

	records, err := table.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTablesAreIsolatedPerKind(t *testing.T) {
	s := openTestStore(t)
	movies := NewTable[domain.FavoriteMovie](s, BucketMovies)
	series := NewTable[domain.FavoriteSeries](s, BucketSeries)

	_, err := movies.Toggle(fav(100, "Inception"))
	require.NoError(t, err)
	_, err = series.Toggle(domain.FavoriteSeries{ID: 100, Title: "Dark"})
	require.NoError(t, err)

	exists, err := movies.Exists(100)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = movies.Toggle(fav(100, "Inception"))
	require.NoError(t, err)

	stillThere, err := series.Exists(100)
	require.NoError(t, err)
	assert.True(t, stillThere, "a movie toggle must not touch the series table")
}

func TestWatchEmitsCurrentThenUpdates(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	ch, cancel := table.Watch(603)
	defer cancel()

	assert.False(t, <-ch, "initial emission reflects the stored state")

	_, err := table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)
	assert.True(t, <-ch)

	_, err = table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)
	assert.False(t, <-ch)
}

func TestWatchSlowReaderSeesLatest(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	ch, cancel := table.Watch(603)
	defer cancel()

	// two mutations before any read; the unread intermediate is replaced
	_, err := table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)
	_, err = table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)

	assert.False(t, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra emission: %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestWatchCancelStopsEmissions(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	ch, cancel := table.Watch(603)
	<-ch
	cancel()

	_, err := table.Toggle(fav(603, "The Matrix"))
	require.NoError(t, err)

	select {
	case v := <-ch:
		t.Fatalf("emission after cancel: %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestWatchAllTracksListing(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	ch, cancel := table.WatchAll()
	defer cancel()

	assert.Empty(t, <-ch)

	_, err := table.Toggle(fav(550, "Fight Club"))
	require.NoError(t, err)
	listing := <-ch
	require.Len(t, listing, 1)
	assert.Equal(t, "Fight Club", listing[0].Title)

	_, err = table.Toggle(fav(680, "Pulp Fiction"))
	require.NoError(t, err)
	listing = <-ch
	require.Len(t, listing, 2)

	require.NoError(t, table.Delete(550))
	listing = <-ch
	require.Len(t, listing, 1)
	assert.Equal(t, 680, listing[0].ID)
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
	s := openTestStore(t)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)

	// an even number of toggles of one id must land on "not favorited"
	const rounds = 8
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := table.Toggle(fav(603, "The Matrix"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	exists, err := table.Exists(603)
	require.NoError(t, err)
	assert.False(t, exists)

	records, err := table.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	table := NewTable[domain.FavoriteMovie](s, BucketMovies)
	_, err = table.Toggle(fav(27205, "Inception"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	records, err := NewTable[domain.FavoriteMovie](s, BucketMovies).All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Inception", records[0].Title)
}
