package session

import (
	"context"
	"fmt"

	"bookshelf/internal/domains/book/model"
	"bookshelf/pkg/cache"
)

const booksCacheKey = "books:list"

// CatalogAPI is the slice of the backend client the session needs.
type CatalogAPI interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, payload model.CreateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// Session pairs the backend client with the in-memory query cache for
// one client lifetime. Reads go through the cache; successful
// mutations invalidate it so the next read refetches. Mutations never
// patch the cached list directly (no optimistic updates).
type Session struct {
	api   CatalogAPI
	cache cache.Cache
}

func New(api CatalogAPI) *Session {
	return &Session{
		api:   api,
		cache: cache.NewMemoryCache(),
	}
}

// Books returns the catalog, served from cache until invalidated.
func (s *Session) Books(ctx context.Context) ([]model.Book, error) {
	var cached []model.Book
	if found, _ := s.cache.Get(ctx, booksCacheKey, &cached); found {
		return cached, nil
	}

	books, err := s.api.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch books: %w", err)
	}

	// No TTL: valid until a mutation invalidates it.
	_ = s.cache.Set(ctx, booksCacheKey, books, 0)
	return books, nil
}

// CreateBook submits a new entry and invalidates the cached list on
// success. On failure the cache is untouched and the error surfaces
// to the caller with the draft left intact upstream.
func (s *Session) CreateBook(ctx context.Context, payload model.CreateBookRequest) (model.Book, error) {
	book, err := s.api.CreateBook(ctx, payload)
	if err != nil {
		return model.Book{}, err
	}

	s.Invalidate(ctx)
	return book, nil
}

// DeleteBook removes an entry and invalidates the cached list on
// success; on failure the entry stays visible.
func (s *Session) DeleteBook(ctx context.Context, id int64) error {
	if err := s.api.DeleteBook(ctx, id); err != nil {
		return err
	}

	s.Invalidate(ctx)
	return nil
}

// Invalidate drops the cached book list so the next read refetches.
func (s *Session) Invalidate(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, booksCacheKey+"*")
}
