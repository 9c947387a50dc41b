package handlers

import (
	"FileVault/internal/middleware"
	"FileVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LinkHandler — CRUD внешних ссылок.
type LinkHandler struct {
	Links  *service.LinkService
	Logger *zap.SugaredLogger
}

// NewLinkHandler создаёт хендлер links
func NewLinkHandler(links *service.LinkService, logger *zap.SugaredLogger) *LinkHandler {
	return &LinkHandler{Links: links, Logger: logger}
}

type linkRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	links, err := h.Links.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Links.List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.URL == "" {
		http.Error(w, "name and url required", http.StatusBadRequest)
		return
	}

	link, err := h.Links.Create(r.Context(), req.Name, req.URL)
	if err != nil {
		h.Logger.Errorw("Links.Create: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err = h.Links.Update(r.Context(), id, req.Name, req.URL)
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "link not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("Links.Update: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"result": "ok"})
	}
}

func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = h.Links.Delete(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "link not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("Links.Delete: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
