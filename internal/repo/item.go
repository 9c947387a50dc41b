package repo

import (
	"FileVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к каталогу загруженных файлов.
type ItemRepository interface {
	// Create вставляет запись и заполняет ID/UploadedAt.
	Create(ctx context.Context, item *model.Item) error

	// GetByID возвращает запись или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// UpdateFields точечно обновляет перечисленные колонки.
	// Возвращает число затронутых строк (0 — записи нет).
	UpdateFields(ctx context.Context, id int64, updates map[string]any) (int64, error)

	// Delete удаляет строку метаданных; возвращает число затронутых строк.
	Delete(ctx context.Context, id int64) (int64, error)

	// List возвращает записи по убыванию uploaded_at (свежие первыми),
	// при равных метках — в порядке вставки. nil category — все разделы.
	List(ctx context.Context, category *model.Category) ([]model.Item, error)

	// CountByCategory — число записей в каждом разделе.
	CountByCategory(ctx context.Context) (map[model.Category]int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) UpdateFields(ctx context.Context, id int64, updates map[string]any) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Updates(updates)
	return tx.RowsAffected, tx.Error
}

func (r *itemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

func (r *itemRepo) List(ctx context.Context, category *model.Category) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Order("uploaded_at DESC, id ASC")
	if category != nil {
		q = q.Where("category = ?", *category)
	}
	var items []model.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) CountByCategory(ctx context.Context) (map[model.Category]int64, error) {
	var rows []struct {
		Category model.Category
		N        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Select("category, count(*) as n").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Category]int64, len(model.Categories))
	for _, c := range model.Categories {
		counts[c] = 0
	}
	for _, row := range rows {
		counts[row.Category] = row.N
	}
	return counts, nil
}
