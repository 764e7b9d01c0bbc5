package catalog

// Product is immutable reference data in the grocery catalog.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Discount      int     `json:"discount,omitempty"` // percent off
	Image         string  `json:"image,omitempty"`
	CategoryID    string  `json:"category_id"`
	Unit          string  `json:"unit"`
	Weight        string  `json:"weight"`
	Origin        string  `json:"origin,omitempty"`
	Condition     string  `json:"condition,omitempty"`
	FatContent    string  `json:"fat_content,omitempty"`
	InStock       bool    `json:"in_stock"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
}

// Category groups products for browsing. ProductCount is derived from the
// catalog at read time, never stored.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Image        string `json:"image,omitempty"`
	Color        string `json:"color"`
	ProductCount int    `json:"product_count"`
}

// Recipe is a featured recipe shown on the home screen.
type Recipe struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	PrepTime int    `json:"prep_time"` // minutes
	Category string `json:"category"`
}
