package service

import (
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"context"
	"fmt"
)

// LinkService — CRUD именованных внешних ссылок.
type LinkService struct {
	repo repo.LinkRepository
}

func NewLinkService(r repo.LinkRepository) *LinkService {
	return &LinkService{repo: r}
}

func (s *LinkService) Create(ctx context.Context, name, url string) (*model.Link, error) {
	l := &model.Link{Name: name, URL: url}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("insert link: %w", err)
	}
	return l, nil
}

// Update перезаписывает имя и URL разом, как единый UPDATE.
func (s *LinkService) Update(ctx context.Context, id int64, name, url string) error {
	rows, err := s.repo.Update(ctx, id, name, url)
	if err != nil {
		return fmt.Errorf("update link: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LinkService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LinkService) List(ctx context.Context) ([]model.Link, error) {
	return s.repo.List(ctx)
}
