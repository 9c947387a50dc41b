package handlers

import (
	"FileVault/internal/config"
	"FileVault/internal/middleware"
	"FileVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	vaultService *service.VaultService,
	linkService *service.LinkService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(vaultService, logger, config)
	linkHandler := NewLinkHandler(linkService, logger)

	// User routes
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/password", userHandler.SetPassword)
	r.Get("/api/user/status", userHandler.Status)

	// Item routes
	r.Get("/api/dashboard", itemHandler.Dashboard)
	r.Post("/api/items", itemHandler.Upload)
	r.Get("/api/items", itemHandler.List)
	r.Get("/api/items/{id}", itemHandler.Get)
	r.Get("/api/items/{id}/download", itemHandler.Download)
	r.Patch("/api/items/{id}", itemHandler.Update)
	r.Delete("/api/items/{id}", itemHandler.Delete)

	// Link routes
	r.Get("/api/links", linkHandler.List)
	r.Post("/api/links", linkHandler.Create)
	r.Put("/api/links/{id}", linkHandler.Update)
	r.Delete("/api/links/{id}", linkHandler.Delete)

	return &Handler{Router: r}
}
