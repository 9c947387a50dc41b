package handlers

import (
	"FileVault/internal/config"
	"FileVault/internal/middleware"
	"FileVault/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — вход/выход и администрирование учётных записей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер user
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login проверяет пару логин/пароль и ставит auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if !h.UserService.Verify(r.Context(), req.Username, req.Password) {
		h.Logger.Warnw("Login: invalid credentials", "username", req.Username)
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := middleware.SetLoginCookie(w, req.Username, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": "ok"})
}

// Logout сбрасывает auth-cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"result": "ok"})
}

// Register заводит нового пользователя. Операция административная,
// доступна только под действующей учётной записью.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	err := h.UserService.CreateUser(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		http.Error(w, "user already exists", http.StatusConflict)
	case err != nil:
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, map[string]any{"username": req.Username})
	}
}

// SetPassword меняет пароль существующего пользователя.
func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUsernameFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	err := h.UserService.SetPassword(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case err != nil:
		h.Logger.Errorw("SetPassword: service error", "username", req.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"result": "ok"})
	}
}

// Status сообщает, под кем выполнен вход.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	if username, ok := middleware.GetUsernameFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]any{"result": fmt.Sprintf("logged in as %s", username)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": "anonymous"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
