package order

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/freshbasket/freshbasket-backend/internal/modules/cart"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)       // POST /api/v1/orders
		r.Post("/checkout", h.checkout)  // POST /api/v1/orders/checkout
		r.Get("/", h.listOrders)         // GET  /api/v1/orders
		r.Get("/{id}", h.getOrder)       // GET  /api/v1/orders/{id}
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []cart.Item `json:"items"`
		Total float64     `json:"total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	o, err := h.service.CreateOrder(r.Context(), req.Items, req.Total)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "at least one") {
			code = http.StatusBadRequest
		}
		respond(w, code, errBody(err))
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Shipping ShippingOption `json:"shipping"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if req.Shipping == "" {
		req.Shipping = ShippingStandard
	}
	o, err := h.service.Checkout(r.Context(), req.Shipping)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "no items selected") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, errBody(err))
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, errBody(err))
		return
	}
	respond(w, http.StatusOK, o)
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
