package main

import (
	"FileVault/internal/config"
	"FileVault/internal/handlers"
	"FileVault/internal/middleware"
	"FileVault/internal/repo"
	"FileVault/internal/service"
	"FileVault/internal/storage"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	blobStore := storage.NewFileStore(cfg.UploadDir)
	if err := blobStore.EnsureDir(); err != nil {
		sugar.Fatalw("failed to prepare upload dir", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	linkRepo := repo.NewLinkRepository(gormDB)

	userService := service.NewUserService(userRepo)
	vaultService := service.NewVaultService(itemRepo, blobStore, sugar)
	linkService := service.NewLinkService(linkRepo)

	// стартовая учётная запись на пустой базе
	created, err := userService.Bootstrap(ctx, cfg.DefaultUsername, cfg.DefaultPassword)
	if err != nil {
		sugar.Fatalw("failed to bootstrap default user", "error", err)
	}
	if created {
		sugar.Infow("Seeded default user", "username", cfg.DefaultUsername)
	}

	h := handlers.NewHandler(userService, vaultService, linkService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
