// internal/catalog/handler.go
package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the catalog routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Get("/available", h.handleAvailable)
		r.Get("/featured", h.handleFeatured)
		r.Get("/search", h.handleSearch)
		r.Get("/categories", h.handleCategories)
		r.Get("/{id}", h.handleGet)
		r.Patch("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleRemove)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.All(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	book, ok := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "book not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var fields NewBook
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, h.service.Add(r.Context(), fields))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.service.Update(r.Context(), chi.URLParam(r, "id"), patch) {
		http.Error(w, "book not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	if !h.service.Remove(r.Context(), chi.URLParam(r, "id")) {
		http.Error(w, "book not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.service.Search(r.Context(), query, category))
}

func (h *Handler) handleAvailable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Available(r.Context()))
}

func (h *Handler) handleFeatured(w http.ResponseWriter, r *http.Request) {
	n := 7
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid count", http.StatusBadRequest)
			return
		}
		n = parsed
	}
	writeJSON(w, http.StatusOK, h.service.Random(r.Context(), n))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
