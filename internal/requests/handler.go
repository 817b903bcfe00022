// internal/requests/handler.go
package requests

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the request routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/stats", h.handleStats)
		r.Get("/user/{userId}", h.handleByUser)
		r.Post("/{id}/status", h.handleTransition)
	})
}

// handleList returns all requests, newest first, the order the admin queue
// renders them in.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	all := h.service.All(r.Context())
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RequestDate.After(all[j].RequestDate)
	})
	writeJSON(w, http.StatusOK, all)
}

func (h *Handler) handleByUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ByUser(r.Context(), chi.URLParam(r, "userId")))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var fields NewRequest
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, h.service.Create(r.Context(), fields))
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status        Status `json:"status"`
		AdminComments string `json:"adminComments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.service.Transition(r.Context(), chi.URLParam(r, "id"), body.Status, body.AdminComments) {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Stats(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
