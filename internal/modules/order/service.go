package order

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/freshbasket/freshbasket-backend/internal/modules/cart"
	"github.com/freshbasket/freshbasket-backend/internal/simulate"
)

// Checkout fee schedule.
const (
	taxRate             = 0.10
	serviceFee          = 5.00
	priorityDeliveryFee = 15.00
)

// Service defines the order lifecycle operations.
type Service interface {
	// CreateOrder snapshots the given items into a new pending order.
	CreateOrder(ctx context.Context, items []cart.Item, total float64) (*Order, error)

	// Checkout builds an order from the cart's selected lines, applying
	// taxes and fees, and removes those lines from the cart on success.
	Checkout(ctx context.Context, shipping ShippingOption) (*Order, error)

	// GetOrders returns the history, most recent first.
	GetOrders(ctx context.Context) ([]Order, error)

	// GetOrderByID looks up one order; unknown ids are an error.
	GetOrderByID(ctx context.Context, id string) (*Order, error)
}

type service struct {
	store *Store
	cart  *cart.Store
	delay time.Duration
	seq   uint64
}

// NewService creates an order service. Order creation is the heaviest call
// and waits twice the base latency.
func NewService(store *Store, cartStore *cart.Store, delay time.Duration) Service {
	return &service{store: store, cart: cartStore, delay: delay}
}

func (s *service) CreateOrder(ctx context.Context, items []cart.Item, total float64) (*Order, error) {
	if err := simulate.Delay(ctx, 2*s.delay); err != nil {
		return nil, err
	}
	return s.create(ctx, items, total)
}

func (s *service) Checkout(ctx context.Context, shipping ShippingOption) (*Order, error) {
	if err := simulate.Delay(ctx, 2*s.delay); err != nil {
		return nil, err
	}
	selected := s.cart.SelectedItems()
	if len(selected) == 0 {
		return nil, fmt.Errorf("no items selected for checkout")
	}

	subtotal := s.cart.SelectedTotal()
	delivery := 0.0
	if shipping == ShippingPriority {
		delivery = priorityDeliveryFee
	}
	total := round2(subtotal + subtotal*taxRate + serviceFee + delivery)

	o, err := s.create(ctx, selected, total)
	if err != nil {
		return nil, err
	}
	if err := s.cart.ClearSelectedItems(ctx); err != nil {
		return nil, fmt.Errorf("order %s stored but cart not cleared: %w", o.ID, err)
	}
	return o, nil
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.store.List(), nil
}

func (s *service) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	o, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("order %s not found", id)
	}
	return &o, nil
}

func (s *service) create(ctx context.Context, items []cart.Item, total float64) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	o := Order{
		ID:        s.nextID(),
		Items:     snapshot(items),
		Total:     total,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Add(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return &o, nil
}

// nextID builds ORD-<epoch millis><seq>. The counter suffix keeps ids unique
// under rapid successive checkouts, where epoch millis alone would collide.
func (s *service) nextID() string {
	n := atomic.AddUint64(&s.seq, 1)
	return fmt.Sprintf("ORD-%d%03d", time.Now().UnixMilli(), n%1000)
}

func snapshot(items []cart.Item) []cart.Item {
	out := make([]cart.Item, len(items))
	copy(out, items)
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
