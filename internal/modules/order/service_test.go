package order

import (
	"context"
	"regexp"
	"testing"

	"github.com/freshbasket/freshbasket-backend/internal/modules/cart"
	"github.com/freshbasket/freshbasket-backend/internal/modules/catalog"
	"github.com/freshbasket/freshbasket-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d+$`)

func newTestService(t *testing.T) (Service, *cart.Store) {
	t.Helper()
	backend := storage.NewMemory()
	cartStore := cart.NewStore(backend)
	return NewService(NewStore(backend), cartStore, 0), cartStore
}

func testItems() []cart.Item {
	return []cart.Item{
		{Product: catalog.Product{ID: "A", Price: 10}, Quantity: 1, Selected: true},
		{Product: catalog.Product{ID: "B", Price: 5}, Quantity: 2, Selected: true},
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	o, err := svc.CreateOrder(ctx, testItems(), 20.00)
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.InDelta(t, 20.00, o.Total, 1e-9)
	assert.Len(t, o.Items, 2)
	assert.NotEmpty(t, o.CreatedAt)

	got, err := svc.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Items, got.Items)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateOrder(context.Background(), nil, 0)
	assert.ErrorContains(t, err, "at least one item")
}

func TestCreateOrderIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		o, err := svc.CreateOrder(ctx, testItems(), 20.00)
		require.NoError(t, err)
		require.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestOrderSnapshotDecoupledFromCart(t *testing.T) {
	ctx := context.Background()
	svc, cartStore := newTestService(t)

	p := catalog.Product{ID: "A", Price: 10}
	require.NoError(t, cartStore.AddItem(ctx, p))
	require.NoError(t, cartStore.ToggleItemSelection(ctx, "A"))

	o, err := svc.CreateOrder(ctx, cartStore.SelectedItems(), cartStore.SelectedTotal())
	require.NoError(t, err)

	// Later cart mutations must not leak into the stored order.
	require.NoError(t, cartStore.UpdateQuantity(ctx, "A", 99))

	got, err := svc.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetOrderByID(context.Background(), "ORD-0")
	assert.ErrorContains(t, err, "not found")
}

func TestGetOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.CreateOrder(ctx, testItems(), 20.00)
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, testItems(), 20.00)
	require.NoError(t, err)

	orders, err := svc.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestCheckoutStandardShipping(t *testing.T) {
	ctx := context.Background()
	svc, cartStore := newTestService(t)

	require.NoError(t, cartStore.AddItem(ctx, catalog.Product{ID: "A", Price: 10}))
	require.NoError(t, cartStore.AddItem(ctx, catalog.Product{ID: "B", Price: 5}))
	require.NoError(t, cartStore.ToggleItemSelection(ctx, "A"))

	o, err := svc.Checkout(ctx, ShippingStandard)
	require.NoError(t, err)

	// subtotal 10 + 10% tax + $5 service fee, no delivery fee
	assert.InDelta(t, 16.00, o.Total, 1e-9)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "A", o.Items[0].Product.ID)

	// selected lines are cleared, the unselected line stays
	items := cartStore.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Product.ID)
}

func TestCheckoutPriorityShipping(t *testing.T) {
	ctx := context.Background()
	svc, cartStore := newTestService(t)

	require.NoError(t, cartStore.AddItem(ctx, catalog.Product{ID: "A", Price: 10}))
	require.NoError(t, cartStore.ToggleItemSelection(ctx, "A"))

	o, err := svc.Checkout(ctx, ShippingPriority)
	require.NoError(t, err)

	// subtotal 10 + 1.00 tax + 5.00 service + 15.00 priority delivery
	assert.InDelta(t, 31.00, o.Total, 1e-9)
}

func TestCheckoutNothingSelected(t *testing.T) {
	ctx := context.Background()
	svc, cartStore := newTestService(t)
	require.NoError(t, cartStore.AddItem(ctx, catalog.Product{ID: "A", Price: 10}))

	_, err := svc.Checkout(ctx, ShippingStandard)
	assert.ErrorContains(t, err, "no items selected")
}
