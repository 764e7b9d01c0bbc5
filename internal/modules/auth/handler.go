package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the auth HTTP endpoints.
type Handler struct {
	service Service
	store   *Store
}

func NewHandler(service Service, store *Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.login)     // POST /api/v1/auth/login
		r.Post("/logout", h.logout)   // POST /api/v1/auth/logout
		r.Get("/session", h.session)  // GET  /api/v1/auth/session
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respond(w, http.StatusBadRequest, errBody(err))
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}
	sess, err := h.service.Login(r.Context(), creds)
	if err != nil {
		respond(w, http.StatusUnauthorized, errBody(err))
		return
	}
	respond(w, http.StatusOK, sess)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, errBody(err))
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.store.Session())
}

func errBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
