package catalog

import (
	"context"
	"fmt"
)

type memoryRepo struct {
	products   []Product
	categories []Category
	recipes    []Recipe
}

// NewMemoryRepository returns a repository over the seeded grocery catalog.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		products:   seedProducts,
		categories: seedCategories,
		recipes:    seedRecipes,
	}
}

func (r *memoryRepo) ListProducts(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (r *memoryRepo) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryRepo) ListRecipes(ctx context.Context) ([]Recipe, error) {
	out := make([]Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}
