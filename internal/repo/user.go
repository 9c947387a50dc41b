package repo

import (
	"FileVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — минимальный контракт доступа к учётным записям.
type UserRepository interface {
	// CreateUser вставляет новую запись. Повторное имя — ошибка БД
	// (username — первичный ключ), существующая запись не трогается.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByUsername возвращает запись или gorm.ErrRecordNotFound.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// UpdatePassword перезаписывает хеш; возвращает число затронутых строк.
	UpdatePassword(ctx context.Context, username, passwordHash string) (int64, error)

	// Count — общее число учётных записей (для бутстрапа первого запуска).
	Count(ctx context.Context) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, username, passwordHash string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	return tx.RowsAffected, tx.Error
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}
