package service

import (
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"FileVault/internal/storage"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Сквозной сценарий: первый запуск с посевом учётной записи, логин,
// загрузка, листинг, удаление.
func TestVault_EndToEndScenario(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	store := storage.NewFileStore(t.TempDir())
	assert.NoError(t, store.EnsureDir())

	users := NewUserService(repo.NewUserRepository(db))
	vault := NewVaultService(repo.NewItemRepository(db), store, zap.NewNop().Sugar())

	// посев стартовой учётной записи из конфигурации
	created, err := users.Bootstrap(ctx, "shohjahon", "AD0352360s.")
	assert.NoError(t, err)
	assert.True(t, created)

	assert.True(t, users.Verify(ctx, "shohjahon", "AD0352360s."))
	assert.False(t, users.Verify(ctx, "shohjahon", "wrong"))

	// загрузка отчёта в раздел Files
	it, err := vault.Upload(ctx, "Report", "report.pdf", model.CategoryFiles, "", bytes.NewReader([]byte("%PDF-1.4")))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), it.ID)

	files, err := vault.List(ctx, categoryPtr(model.CategoryFiles))
	assert.NoError(t, err)
	if assert.Len(t, files, 1) {
		assert.Equal(t, int64(1), files[0].ID)
		assert.Equal(t, "Report", files[0].Name)
		assert.Equal(t, "report.pdf", files[0].OriginalName)
	}

	assert.NoError(t, vault.Delete(ctx, 1))

	files, err = vault.List(ctx, categoryPtr(model.CategoryFiles))
	assert.NoError(t, err)
	assert.Empty(t, files)
}
