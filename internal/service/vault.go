package service

import (
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"FileVault/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VaultService держит каталог и блоб-хранилище согласованными: блоб всегда
// записывается раньше строки метаданных, а при удалении строка уходит
// независимо от судьбы блоба.
type VaultService struct {
	items  repo.ItemRepository
	blobs  storage.Store
	logger *zap.SugaredLogger
}

func NewVaultService(items repo.ItemRepository, blobs storage.Store, logger *zap.SugaredLogger) *VaultService {
	return &VaultService{items: items, blobs: blobs, logger: logger}
}

// Upload сохраняет содержимое файла и заводит запись каталога.
// Если вставка строки не удалась, свежий блоб убирается с диска:
// зафиксированная строка никогда не ссылается на недописанный файл.
func (s *VaultService) Upload(ctx context.Context, name, originalName string, category model.Category, notes string, data io.Reader) (*model.Item, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	storedName, size, err := s.blobs.Save(data, originalName)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		name = originalName
	}

	it := &model.Item{
		Name:         name,
		StoredName:   storedName,
		OriginalName: originalName,
		Category:     category,
		Notes:        notes,
		Size:         size,
	}
	if err := s.items.Create(ctx, it); err != nil {
		if delErr := s.blobs.Delete(storedName); delErr != nil {
			s.logger.Warnw("Upload: orphan blob left after failed insert",
				"stored_name", storedName, "error", delErr)
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// Rename меняет только отображаемое имя.
func (s *VaultService) Rename(ctx context.Context, id int64, newName string) error {
	rows, err := s.items.UpdateFields(ctx, id, map[string]any{"name": newName})
	if err != nil {
		return fmt.Errorf("rename item: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Annotate меняет только заметку.
func (s *VaultService) Annotate(ctx context.Context, id int64, notes string) error {
	rows, err := s.items.UpdateFields(ctx, id, map[string]any{"notes": notes})
	if err != nil {
		return fmt.Errorf("annotate item: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет блоб (best-effort) и строку метаданных. Неудача удаления
// блоба понижается до предупреждения: целостность каталога важнее строгого
// паритета диска и БД.
func (s *VaultService) Delete(ctx context.Context, id int64) error {
	it, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(it.StoredName); err != nil {
		s.logger.Warnw("Delete: blob removal failed, deleting metadata anyway",
			"id", id, "stored_name", it.StoredName, "error", err)
	}

	rows, err := s.items.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Get возвращает запись каталога по id.
func (s *VaultService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List возвращает записи раздела (или всех разделов) свежими вперёд.
func (s *VaultService) List(ctx context.Context, category *model.Category) ([]model.Item, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *category)
	}
	return s.items.List(ctx, category)
}

// Download отдаёт содержимое блоба и оригинальное имя для скачивания.
func (s *VaultService) Download(ctx context.Context, id int64) ([]byte, string, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	b, err := s.blobs.Read(it.StoredName)
	if err != nil {
		return nil, "", err
	}
	return b, it.OriginalName, nil
}

// Dashboard — сводка: счётчики по разделам и последние загрузки.
type Dashboard struct {
	Total      int64                    `json:"total"`
	ByCategory map[model.Category]int64 `json:"by_category"`
	Recent     []model.Item             `json:"recent"`
}

// Summary собирает данные для дашборда; recentLimit ограничивает список
// последних загрузок.
func (s *VaultService) Summary(ctx context.Context, recentLimit int) (*Dashboard, error) {
	counts, err := s.items.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	recent, err := s.items.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if recentLimit > 0 && len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	return &Dashboard{Total: total, ByCategory: counts, Recent: recent}, nil
}
