package handlers_test

import (
	"FileVault/internal/config"
	"FileVault/internal/handlers"
	"FileVault/internal/middleware"
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"FileVault/internal/service"
	"FileVault/internal/storage"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// testEnv — полный стек поверх in-memory SQLite и временного каталога блобов.
type testEnv struct {
	router http.Handler
	cfg    *config.Config
	users  *service.UserService
	vault  *service.VaultService
	store  *storage.FileStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Link{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	store := storage.NewFileStore(t.TempDir())
	if err := store.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	cfg := &config.Config{AuthSecret: "test-secret", BlobMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	vaultSvc := service.NewVaultService(repo.NewItemRepository(db), store, logger)
	linkSvc := service.NewLinkService(repo.NewLinkRepository(db))

	h := handlers.NewHandler(userSvc, vaultSvc, linkSvc, logger, cfg)
	return &testEnv{router: h.Router, cfg: cfg, users: userSvc, vault: vaultSvc, store: store}
}

func addAuthCookie(t *testing.T, req *http.Request, username, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, username, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// multipartBody собирает multipart-запрос загрузки файла.
func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}
