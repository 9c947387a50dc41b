package handlers

import (
	"FileVault/internal/config"
	"FileVault/internal/middleware"
	"FileVault/internal/model"
	"FileVault/internal/service"
	"FileVault/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler — загрузка, каталог и скачивание файлов.
type ItemHandler struct {
	Vault  *service.VaultService
	Logger *zap.SugaredLogger
	Config *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(vault *service.VaultService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{Vault: vault, Logger: logger, Config: cfg}
}

// Upload принимает multipart/form-data: file (обязателен), category
// (обязательна), name и notes (опциональны).
func (h *ItemHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.BlobMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file", "error", err)
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	category := model.Category(r.FormValue("category"))
	name := r.FormValue("name")
	notes := r.FormValue("notes")

	item, err := h.Vault.Upload(r.Context(), name, header.Filename, category, notes, file)
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		http.Error(w, "invalid category", http.StatusBadRequest)
	case err != nil:
		h.Logger.Errorw("Upload: service error", "filename", header.Filename, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, item)
	}
}

// List отдаёт каталог; query-параметр category сужает выборку до раздела.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var category *model.Category
	if v := r.URL.Query().Get("category"); v != "" {
		c := model.Category(v)
		category = &c
	}

	items, err := h.Vault.List(r.Context(), category)
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		http.Error(w, "invalid category", http.StatusBadRequest)
	case err != nil:
		h.Logger.Errorw("List: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, items)
	}
}

// Get отдаёт метаданные одной записи.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.Vault.Get(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, item)
	}
}

// Download отдаёт содержимое блоба под оригинальным именем файла.
func (h *ItemHandler) Download(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, originalName, err := h.Vault.Download(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrBlobNotFound):
		h.Logger.Warnw("Download: blob missing", "id", id, "error", err)
		http.Error(w, "blob not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("Download: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", originalName))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

type itemUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Update переименовывает запись и/или заменяет заметку.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req itemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == nil && req.Notes == nil {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	if req.Name != nil {
		if err := h.Vault.Rename(r.Context(), id, *req.Name); err != nil {
			h.writeUpdateError(w, "Rename", id, err)
			return
		}
	}
	if req.Notes != nil {
		if err := h.Vault.Annotate(r.Context(), id, *req.Notes); err != nil {
			h.writeUpdateError(w, "Annotate", id, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": "ok"})
}

// Delete удаляет запись каталога вместе с блобом (best-effort).
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := itemID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = h.Vault.Delete(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Dashboard — сводка: счётчики по разделам и последние десять загрузок.
func (h *ItemHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.Vault.Summary(r.Context(), 10)
	if err != nil {
		h.Logger.Errorw("Dashboard: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ItemHandler) writeUpdateError(w http.ResponseWriter, op string, id int64, err error) {
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	h.Logger.Errorw(op+": service error", "id", id, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
