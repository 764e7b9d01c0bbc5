package order

import "github.com/freshbasket/freshbasket-backend/internal/modules/cart"

// Status is the lifecycle state of an order. Orders are always created
// pending; the storefront never transitions them afterwards.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Order is an immutable record of a checkout. Items are copied from the cart
// at creation time and are unaffected by later cart mutations.
type Order struct {
	ID        string      `json:"id"`
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt string      `json:"created_at"` // RFC3339
}

// ShippingOption selects the delivery fee applied at checkout.
type ShippingOption string

const (
	ShippingStandard ShippingOption = "standard"
	ShippingPriority ShippingOption = "priority"
)
