package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/freshbasket/freshbasket-backend/internal/modules/catalog"
	"github.com/freshbasket/freshbasket-backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Store) {
	t.Helper()
	store := NewStore(storage.NewMemory())
	router := chi.NewRouter()
	NewHandler(store, catalog.NewMemoryRepository()).RegisterRoutes(router)
	return router, store
}

func TestAddItemEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"6"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Cavendish baby banana", view.Items[0].Product.Name)
	assert.InDelta(t, 9.00, view.Total, 1e-9)
}

func TestAddItemEndpointUnknownProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"999"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCartEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"selected_total":0}`, rec.Body.String())
}
