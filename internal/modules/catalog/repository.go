package catalog

import "context"

// Repository provides read access to the catalog reference data.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
}
