package service

import (
	"FileVault/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newLinkService(t *testing.T) *LinkService {
	t.Helper()
	return NewLinkService(repo.NewLinkRepository(newTestDB(t)))
}

func TestLinkService_CRUD(t *testing.T) {
	s := newLinkService(t)
	ctx := context.Background()

	l, err := s.Create(ctx, "docs", "https://example.com")
	assert.NoError(t, err)
	assert.NotZero(t, l.ID)

	assert.NoError(t, s.Update(ctx, l.ID, "wiki", "https://example.org"))

	list, err := s.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "wiki", list[0].Name)
		assert.Equal(t, "https://example.org", list[0].URL)
	}

	assert.NoError(t, s.Delete(ctx, l.ID))
	list, err = s.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestLinkService_NotFound(t *testing.T) {
	s := newLinkService(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Update(ctx, 42, "x", "y"), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 42), ErrNotFound)
}
