package cart

import (
	"encoding/json"
	"net/http"

	"github.com/freshbasket/freshbasket-backend/internal/modules/catalog"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the cart HTTP endpoints. Products are resolved against the
// catalog so a client only ever sends product ids.
type Handler struct {
	store   *Store
	catalog catalog.Repository
}

func NewHandler(store *Store, catalogRepo catalog.Repository) *Handler {
	return &Handler{store: store, catalog: catalogRepo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)                              // GET    /api/v1/cart
		r.Delete("/", h.clearCart)                         // DELETE /api/v1/cart
		r.Post("/items", h.addItem)                        // POST   /api/v1/cart/items
		r.Delete("/items/{id}", h.removeItem)              // DELETE /api/v1/cart/items/{id}
		r.Patch("/items/{id}/quantity", h.updateQuantity)  // PATCH  /api/v1/cart/items/{id}/quantity
		r.Post("/items/{id}/toggle", h.toggleSelection)    // POST   /api/v1/cart/items/{id}/toggle
		r.Post("/select-all", h.selectAll)                 // POST   /api/v1/cart/select-all
		r.Delete("/items/selected", h.clearSelected)       // DELETE /api/v1/cart/items/selected
	})
}

// cartView is what GET /cart returns: the lines plus both running totals.
type cartView struct {
	Items         []Item  `json:"items"`
	Total         float64 `json:"total"`
	SelectedTotal float64 `json:"selected_total"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items := h.store.Items()
	if items == nil {
		items = []Item{}
	}
	respond(w, http.StatusOK, cartView{
		Items:         items,
		Total:         h.store.Total(),
		SelectedTotal: h.store.SelectedTotal(),
	})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if req.ProductID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}
	p, err := h.catalog.GetProductByID(r.Context(), req.ProductID)
	if err != nil {
		respond(w, http.StatusNotFound, errBody(err))
		return
	}
	if err := h.store.AddItem(r.Context(), *p); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if err := h.store.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) toggleSelection(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ToggleItemSelection(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) selectAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SelectAll(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearCart(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func (h *Handler) clearSelected(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSelectedItems(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.getCart(w, r)
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
