package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)             // GET /api/v1/catalog/products?q=banana
		r.Get("/products/flash-sale", h.listFlashSale) // GET /api/v1/catalog/products/flash-sale
		r.Get("/products/specials", h.listSpecials)    // GET /api/v1/catalog/products/specials
		r.Get("/products/{id}", h.getProduct)          // GET /api/v1/catalog/products/{id}
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}/products", h.listByCategory)
		r.Get("/recipes", h.listRecipes)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		products, err := h.service.SearchProducts(r.Context(), q)
		if err != nil {
			respond(w, http.StatusInternalServerError, errBody(err))
			return
		}
		respond(w, http.StatusOK, products)
		return
	}
	products, err := h.service.GetProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), errBody(err))
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetProductsByCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), errBody(err))
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.GetRecipes(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, recipes)
}

func (h *Handler) listFlashSale(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetFlashSaleProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listSpecials(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetTodaySpecials(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, products)
}

func statusFor(err error) int {
	if strings.Contains(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
