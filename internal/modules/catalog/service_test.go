package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewMemoryRepository(), 0)
}

func TestGetProducts(t *testing.T) {
	products, err := newTestService().GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	p, err := svc.GetProductByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Australia beef tenderloin", p.Name)
	assert.Equal(t, "Import", p.Origin)

	_, err = svc.GetProductByID(ctx, "999")
	assert.ErrorContains(t, err, "not found")
}

func TestGetProductsByCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	beef, err := svc.GetProductsByCategory(ctx, "4")
	require.NoError(t, err)
	require.Len(t, beef, 2)
	for _, p := range beef {
		assert.Equal(t, "4", p.CategoryID)
	}

	vegetables, err := svc.GetProductsByCategory(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, vegetables)

	_, err = svc.GetProductsByCategory(ctx, "999")
	assert.ErrorContains(t, err, "not found")
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, q := range []string{"banana", "BANANA", "Banana"} {
		products, err := svc.SearchProducts(ctx, q)
		require.NoError(t, err)
		require.Len(t, products, 1, "query %q", q)
		assert.Equal(t, "6", products[0].ID)
	}

	// matches descriptions too
	products, err := svc.SearchProducts(ctx, "grilling")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)

	none, err := svc.SearchProducts(ctx, "durian")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCategoriesDerivesProductCounts(t *testing.T) {
	categories, err := newTestService().GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)

	counts := map[string]int{}
	for _, c := range categories {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, 0, counts["Vegetables"])
	assert.Equal(t, 1, counts["Fruits"])
	assert.Equal(t, 2, counts["Chicken"])
	assert.Equal(t, 2, counts["Beef"])
	assert.Equal(t, 1, counts["Protein"])
	assert.Equal(t, 0, counts["Seafood"])
}

func TestGetRecipes(t *testing.T) {
	recipes, err := newTestService().GetRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, 18, recipes[0].PrepTime)
}

func TestGetFlashSaleProducts(t *testing.T) {
	products, err := newTestService().GetFlashSaleProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)
	for _, p := range products {
		assert.Greater(t, p.Discount, 0)
	}
}

func TestGetTodaySpecials(t *testing.T) {
	products, err := newTestService().GetTodaySpecials(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Rating, 4.5)
	}
}

func TestCancelledContextShortCircuits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(NewMemoryRepository(), time.Second)
	_, err := svc.GetProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
