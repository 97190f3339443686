package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names, one per favorite kind
var (
	BucketMovies  = []byte("favorite_movies")
	BucketSeries  = []byte("favorite_series")
	BucketPersons = []byte("favorite_persons")
)

// Store owns the BoltDB file holding all favorite tables. Typed access goes
// through Table instances created with NewTable.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the favorites database at dir/favorites.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "favorites.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{BucketMovies, BucketSeries, BucketPersons} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
