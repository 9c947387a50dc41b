package repo

import (
	"FileVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// LinkRepository — контракт доступа к внешним ссылкам.
type LinkRepository interface {
	Create(ctx context.Context, link *model.Link) error

	// Update перезаписывает name и url вместе; возвращает число затронутых строк.
	Update(ctx context.Context, id int64, name, url string) (int64, error)

	Delete(ctx context.Context, id int64) (int64, error)

	// List — по убыванию created_at, при равных метках — в порядке вставки.
	List(ctx context.Context) ([]model.Link, error)
}

type linkRepo struct {
	db *gorm.DB
}

// NewLinkRepository создаёт реализацию репозитория для Link.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepo{db: db}
}

func (r *linkRepo) Create(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *linkRepo) Update(ctx context.Context, id int64, name, url string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Link{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "url": url})
	return tx.RowsAffected, tx.Error
}

func (r *linkRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Link{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

func (r *linkRepo) List(ctx context.Context) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
