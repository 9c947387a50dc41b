package service

import (
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — проверка логина и администрирование учётных записей.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Verify сравнивает пароль с сохранённым хешем. Для неизвестного имени —
// false без ошибки. Сравнение bcrypt устойчиво к таймингу.
func (s *UserService) Verify(ctx context.Context, username, password string) bool {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CreateUser регистрирует новую учётную запись.
func (s *UserService) CreateUser(ctx context.Context, username, password string) error {
	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.CreateUser(ctx, &model.User{Username: username, PasswordHash: string(hash)}); err != nil {
		// первичный ключ подстраховывает от гонки между lookup и insert
		return ErrDuplicateUser
	}
	return nil
}

// SetPassword перезаписывает хеш существующей учётной записи.
func (s *UserService) SetPassword(ctx context.Context, username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	rows, err := s.repo.UpdatePassword(ctx, username, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Bootstrap заводит стартовую учётную запись, если база пуста и пара
// логин/пароль задана конфигурацией. Возвращает true, если запись создана.
func (s *UserService) Bootstrap(ctx context.Context, username, password string) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 || username == "" || password == "" {
		return false, nil
	}
	if err := s.CreateUser(ctx, username, password); err != nil {
		return false, err
	}
	return true, nil
}
