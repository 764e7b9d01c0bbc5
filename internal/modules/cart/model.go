package cart

import "github.com/freshbasket/freshbasket-backend/internal/modules/catalog"

// Item is one cart line: a product, how many, and whether the line is
// included in the next checkout. The cart holds at most one Item per
// distinct product id.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Selected bool            `json:"selected"`
}
