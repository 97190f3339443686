package store

import (
	"encoding/binary"
	"encoding/json"
	"sort"
	"sync"

	"github.com/cenkeray/cineglass/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// row wraps a record with its insertion sequence so listings keep the order
// favorites were added in.
type row[R domain.Favorite] struct {
	Seq    uint64 `json:"seq"`
	Record R      `json:"record"`
}

// Table is the typed favorites table for one kind. Mutations are serialized
// per table, and every mutation runs in a single BoltDB transaction, so a
// toggle cannot race another toggle of the same id.
type Table[R domain.Favorite] struct {
	store  *Store
	bucket []byte

	mu          sync.Mutex
	idWatchers  map[int][]chan bool
	allWatchers []chan []R
}

// NewTable creates the typed accessor for one of the store's buckets.
func NewTable[R domain.Favorite](s *Store, bucket []byte) *Table[R] {
	return &Table[R]{
		store:      s,
		bucket:     bucket,
		idWatchers: make(map[int][]chan bool),
	}
}

// Toggle inserts the record if its id is absent and deletes it otherwise,
// atomically. Returns whether the id is favorited after the call.
func (t *Table[R]) Toggle(rec R) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var nowFavorite bool
	err := t.store.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		k := itob(rec.Key())
		if b.Get(k) != nil {
			return b.Delete(k)
		}
		nowFavorite = true
		return putRow(b, k, rec)
	})
	if err != nil {
		return false, err
	}
	t.notifyLocked(rec.Key())
	return nowFavorite, nil
}

// Put inserts the record, replacing any existing record with the same id.
func (t *Table[R]) Put(rec R) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.store.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		return putRow(b, itob(rec.Key()), rec)
	})
	if err != nil {
		return err
	}
	t.notifyLocked(rec.Key())
	return nil
}

// Delete removes the record for id. Deleting an absent id is a no-op.
func (t *Table[R]) Delete(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(t.bucket).Delete(itob(id))
	})
	if err != nil {
		return err
	}
	t.notifyLocked(id)
	return nil
}

// Exists reports whether id is currently favorited.
func (t *Table[R]) Exists(id int) (bool, error) {
	var found bool
	err := t.store.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(t.bucket).Get(itob(id)) != nil
		return nil
	})
	return found, err
}

// All returns every record in insertion order.
func (t *Table[R]) All() ([]R, error) {
	var rows []row[R]
	err := t.store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(t.bucket).ForEach(func(_, v []byte) error {
			var r row[R]
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			rows = append(rows, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Seq < rows[j].Seq })
	records := make([]R, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record)
	}
	return records, nil
}

// Watch streams the favorite status of one id. The current value is emitted
// immediately; a new value is emitted after every mutation of that id. The
// returned cancel func releases the subscription. Multiple watches of the
// same id are independent.
func (t *Table[R]) Watch(id int) (<-chan bool, func()) {
	ch := make(chan bool, 1)

	t.mu.Lock()
	t.idWatchers[id] = append(t.idWatchers[id], ch)
	current, _ := t.Exists(id)
	push(ch, current)
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		watchers := t.idWatchers[id]
		for i, w := range watchers {
			if w == ch {
				t.idWatchers[id] = append(watchers[:i], watchers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// WatchAll streams the full listing. The current listing is emitted
// immediately; a fresh listing is emitted after every mutation of the table.
func (t *Table[R]) WatchAll() (<-chan []R, func()) {
	ch := make(chan []R, 1)

	t.mu.Lock()
	t.allWatchers = append(t.allWatchers, ch)
	if records, err := t.All(); err == nil {
		pushList(ch, records)
	}
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, w := range t.allWatchers {
			if w == ch {
				t.allWatchers = append(t.allWatchers[:i], t.allWatchers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}

// notifyLocked fans the post-mutation state out to watchers. Callers hold t.mu.
func (t *Table[R]) notifyLocked(id int) {
	if watchers := t.idWatchers[id]; len(watchers) > 0 {
		current, _ := t.Exists(id)
		for _, ch := range watchers {
			push(ch, current)
		}
	}
	if len(t.allWatchers) > 0 {
		records, err := t.All()
		if err != nil {
			return
		}
		for _, ch := range t.allWatchers {
			pushList(ch, records)
		}
	}
}

func putRow[R domain.Favorite](b *bolt.Bucket, key []byte, rec R) error {
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	data, err := json.Marshal(row[R]{Seq: seq, Record: rec})
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

// push delivers the latest value, replacing an unconsumed previous one so a
// slow reader always sees the final state.
func push(ch chan bool, v bool) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

func pushList[R domain.Favorite](ch chan []R, records []R) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- records:
	default:
	}
}

func itob(id int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
