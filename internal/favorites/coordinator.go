package favorites

import (
	"log/slog"

	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/store"
)

// Coordinator bridges per-item favorite status between the presentation
// layer and one kind's favorite table. Toggling persists a denormalized
// snapshot of the live item; the record does not follow later metadata
// changes of the catalog entry.
type Coordinator[T domain.Item, R domain.Favorite] struct {
	table    *store.Table[R]
	snapshot func(T) R
	logger   *slog.Logger
}

// New creates a coordinator over one favorite table. snapshot builds the
// persisted record from a live feed item.
func New[T domain.Item, R domain.Favorite](table *store.Table[R], snapshot func(T) R, logger *slog.Logger) *Coordinator[T, R] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator[T, R]{table: table, snapshot: snapshot, logger: logger}
}

// IsFavorite streams the favorite status of one id. Emits the current value
// immediately and again after every change to that id. Concurrent
// subscriptions for the same id are independent.
func (c *Coordinator[T, R]) IsFavorite(id int) (<-chan bool, func()) {
	return c.table.Watch(id)
}

// Toggle flips the favorite status of the item atomically and returns the
// status after the call.
func (c *Coordinator[T, R]) Toggle(item T) (bool, error) {
	nowFavorite, err := c.table.Toggle(c.snapshot(item))
	if err != nil {
		c.logger.Error("favorite toggle failed", "id", item.GetID(), "error", err)
		return false, err
	}
	c.logger.Debug("favorite toggled", "id", item.GetID(), "favorite", nowFavorite)
	return nowFavorite, nil
}

// Remove deletes the record for id. Removing an absent id is a no-op.
func (c *Coordinator[T, R]) Remove(id int) error {
	if err := c.table.Delete(id); err != nil {
		c.logger.Error("favorite removal failed", "id", id, "error", err)
		return err
	}
	return nil
}

// All streams the kind's favorite listing in insertion order. Emits the
// current listing immediately and again after every table change.
func (c *Coordinator[T, R]) All() (<-chan []R, func()) {
	return c.table.WatchAll()
}
