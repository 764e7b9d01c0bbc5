package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/freshbasket/freshbasket-backend/internal/simulate"
)

// minSpecialRating is the cutoff for the "today's specials" rail.
const minSpecialRating = 4.5

// Service defines the catalog browsing operations. Every call waits the
// configured simulated latency before touching data.
type Service interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	GetCategories(ctx context.Context) ([]Category, error)
	GetRecipes(ctx context.Context) ([]Recipe, error)
	GetFlashSaleProducts(ctx context.Context) ([]Product, error)
	GetTodaySpecials(ctx context.Context) ([]Product, error)
}

type service struct {
	repo  Repository
	delay time.Duration
}

// NewService creates a catalog service with the given simulated latency.
func NewService(repo Repository, delay time.Duration) Service {
	return &service{repo: repo, delay: delay}
}

func (s *service) GetProducts(ctx context.Context) ([]Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx)
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) GetProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range categories {
		if c.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("category %s not found", categoryID)
	}
	return s.filterProducts(ctx, func(p Product) bool {
		return p.CategoryID == categoryID
	})
}

func (s *service) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return s.filterProducts(ctx, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// GetCategories derives each category's product count from the catalog.
func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.CategoryID]++
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
	}
	return categories, nil
}

func (s *service) GetRecipes(ctx context.Context) ([]Recipe, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.ListRecipes(ctx)
}

func (s *service) GetFlashSaleProducts(ctx context.Context) ([]Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.filterProducts(ctx, func(p Product) bool {
		return p.Discount > 0
	})
}

func (s *service) GetTodaySpecials(ctx context.Context) ([]Product, error) {
	if err := simulate.Delay(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.filterProducts(ctx, func(p Product) bool {
		return p.Rating >= minSpecialRating
	})
}

func (s *service) filterProducts(ctx context.Context, keep func(Product) bool) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := []Product{}
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
