package order

import (
	"context"

	"github.com/freshbasket/freshbasket-backend/internal/storage"
)

const storageKey = "order-storage"

// Store is the order history, most recent first. Orders are append-only.
type Store struct {
	state *storage.State[[]Order]
}

func NewStore(backend storage.Backend) *Store {
	return &Store{state: storage.NewState(backend, storageKey, []Order(nil))}
}

// Load restores the persisted history, if any.
func (s *Store) Load(ctx context.Context) error { return s.state.Load(ctx) }

// Add prepends o, keeping the list most-recent-first.
func (s *Store) Add(ctx context.Context, o Order) error {
	return s.state.Update(ctx, func(orders []Order) []Order {
		return append([]Order{o}, orders...)
	})
}

// List returns a copy of the history, most recent first.
func (s *Store) List() []Order {
	var out []Order
	s.state.View(func(orders []Order) {
		out = append(out, orders...)
	})
	return out
}

// GetByID scans the history; ok reports whether the order exists.
func (s *Store) GetByID(id string) (Order, bool) {
	var (
		out   Order
		found bool
	)
	s.state.View(func(orders []Order) {
		for _, o := range orders {
			if o.ID == id {
				out = o
				found = true
				return
			}
		}
	})
	return out, found
}

// Clear wipes the history. Debug use only.
func (s *Store) Clear(ctx context.Context) error {
	return s.state.Update(ctx, func([]Order) []Order { return nil })
}
