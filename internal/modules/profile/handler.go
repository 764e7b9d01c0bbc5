package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the profile HTTP endpoints.
type Handler struct{ store *Store }

func NewHandler(store *Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Get("/", h.getProfile)   // GET   /api/v1/profile
		r.Patch("/", h.updateProfile)

		r.Get("/addresses", h.listAddresses)
		r.Post("/addresses", h.addAddress)
		r.Patch("/addresses/{id}", h.updateAddress)
		r.Delete("/addresses/{id}", h.deleteAddress)
		r.Post("/addresses/{id}/default", h.setDefaultAddress)

		r.Get("/payment-methods", h.listPaymentMethods)
		r.Post("/payment-methods", h.addPaymentMethod)
		r.Patch("/payment-methods/{id}", h.updatePaymentMethod)
		r.Delete("/payment-methods/{id}", h.deletePaymentMethod)
		r.Post("/payment-methods/{id}/default", h.setDefaultPaymentMethod)

		r.Get("/settings", h.getSettings)
		r.Patch("/settings", h.updateSettings)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.store.Snapshot())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if err := h.store.UpdateProfile(r.Context(), patch); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, h.store.Profile())
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	addresses := h.store.Addresses()
	if addresses == nil {
		addresses = []DeliveryAddress{}
	}
	respond(w, http.StatusOK, addresses)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var a DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	stored, err := h.store.AddAddress(r.Context(), a)
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusCreated, stored)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var patch AddressPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if err := h.store.UpdateAddress(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listAddresses(w, r)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAddress(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listAddresses(w, r)
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetDefaultAddress(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listAddresses(w, r)
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := h.store.PaymentMethods()
	if methods == nil {
		methods = []PaymentMethod{}
	}
	respond(w, http.StatusOK, methods)
}

func (h *Handler) addPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var m PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	stored, err := h.store.AddPaymentMethod(r.Context(), m)
	if err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusCreated, stored)
}

func (h *Handler) updatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var patch PaymentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if err := h.store.UpdatePaymentMethod(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listPaymentMethods(w, r)
}

func (h *Handler) deletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePaymentMethod(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listPaymentMethods(w, r)
}

func (h *Handler) setDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetDefaultPaymentMethod(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	h.listPaymentMethods(w, r)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.store.Settings())
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if err := h.store.UpdateSettings(r.Context(), patch); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, h.store.Settings())
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
