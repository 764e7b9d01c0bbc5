package cart

import (
	"context"

	"github.com/freshbasket/freshbasket-backend/internal/modules/catalog"
	"github.com/freshbasket/freshbasket-backend/internal/storage"
)

const storageKey = "cart-storage"

// Store owns the shopper's current cart. Mutations persist the full cart
// before returning; reads never fail.
type Store struct {
	state *storage.State[[]Item]
}

func NewStore(backend storage.Backend) *Store {
	return &Store{state: storage.NewState(backend, storageKey, []Item(nil))}
}

// Load restores the persisted cart, if any.
func (s *Store) Load(ctx context.Context) error { return s.state.Load(ctx) }

// AddItem increments the quantity of an existing line, or appends a new
// unselected line with quantity 1.
func (s *Store) AddItem(ctx context.Context, p catalog.Product) error {
	return s.state.Update(ctx, func(items []Item) []Item {
		for i := range items {
			if items[i].Product.ID == p.ID {
				items[i].Quantity++
				return items
			}
		}
		return append(items, Item{Product: p, Quantity: 1})
	})
}

// RemoveItem deletes the line for productID. Removing an absent product is
// a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	return s.state.Update(ctx, func(items []Item) []Item {
		return withoutProduct(items, productID)
	})
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line instead.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	return s.state.Update(ctx, func(items []Item) []Item {
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Quantity = quantity
			}
		}
		return items
	})
}

// ToggleItemSelection flips the checkout flag on one line. No-op if absent.
func (s *Store) ToggleItemSelection(ctx context.Context, productID string) error {
	return s.state.Update(ctx, func(items []Item) []Item {
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Selected = !items[i].Selected
			}
		}
		return items
	})
}

// SelectAll toggles the whole cart: only when every line is already selected
// does it deselect them all, otherwise it selects them all.
func (s *Store) SelectAll(ctx context.Context) error {
	return s.state.Update(ctx, func(items []Item) []Item {
		all := true
		for _, it := range items {
			if !it.Selected {
				all = false
				break
			}
		}
		for i := range items {
			items[i].Selected = !all
		}
		return items
	})
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.state.Update(ctx, func([]Item) []Item { return nil })
}

// ClearSelectedItems drops the selected lines, used after checkout so the
// unselected remainder stays in the cart.
func (s *Store) ClearSelectedItems(ctx context.Context) error {
	return s.state.Update(ctx, func(items []Item) []Item {
		var kept []Item
		for _, it := range items {
			if !it.Selected {
				kept = append(kept, it)
			}
		}
		return kept
	})
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	var out []Item
	s.state.View(func(items []Item) {
		out = append(out, items...)
	})
	return out
}

// SelectedItems returns a copy of the lines flagged for checkout.
func (s *Store) SelectedItems() []Item {
	var out []Item
	s.state.View(func(items []Item) {
		for _, it := range items {
			if it.Selected {
				out = append(out, it)
			}
		}
	})
	return out
}

// Total is the sum of price*quantity over every line.
func (s *Store) Total() float64 {
	var total float64
	s.state.View(func(items []Item) {
		for _, it := range items {
			total += it.Product.Price * float64(it.Quantity)
		}
	})
	return total
}

// SelectedTotal is the authoritative checkout subtotal: price*quantity over
// selected lines only.
func (s *Store) SelectedTotal() float64 {
	var total float64
	s.state.View(func(items []Item) {
		for _, it := range items {
			if it.Selected {
				total += it.Product.Price * float64(it.Quantity)
			}
		}
	})
	return total
}

func withoutProduct(items []Item, productID string) []Item {
	var kept []Item
	for _, it := range items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	return kept
}
