package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/domains/book/model"
	"bookshelf/internal/domains/book/repository"
	"bookshelf/pkg/cache"

	"github.com/rs/zerolog/log"
)

const (
	bookListCacheKey = "books:list"
	bookListCacheTTL = 5 * time.Minute
)

// BookService - implements ServiceInterface.
type BookService struct {
	repo  repository.Repository
	cache cache.Cache
}

// NewService - Constructor with DI
func NewService(repo repository.Repository, cache cache.Cache) ServiceInterface {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

// ListBooks - cache-aside read of the full catalog.
func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	var cached []model.Book
	found, err := s.cache.Get(ctx, bookListCacheKey, &cached)
	if err != nil {
		// Cache trouble is not a reason to fail the read.
		log.Warn().Err(err).Str("key", bookListCacheKey).Msg("book list cache read failed")
	}
	if found {
		return cached, nil
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	if err := s.cache.Set(ctx, bookListCacheKey, books, bookListCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", bookListCacheKey).Msg("book list cache write failed")
	}

	return books, nil
}

// CreateBook - passes the payload through to the store unvalidated.
// Presence checks on title/author belong to the client submission
// flow; the server contract deliberately accepts what it is given.
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.Create(ctx, req)
	if err != nil {
		return model.Book{}, fmt.Errorf("create book: %w", err)
	}

	// Invalidate only after the insert committed, so a concurrent
	// reader can never re-cache a list missing the new entry.
	s.invalidateList(ctx)

	return book, nil
}

// DeleteBook - Lookup -> {NotFound | Delete}. Both steps can fail with
// a store error, which the handler maps to a generic 500.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return model.ErrBookNotFound
		}
		return fmt.Errorf("lookup before delete: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			// Deleted out from under us between lookup and delete.
			return model.ErrBookNotFound
		}
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	s.invalidateList(ctx)
	return nil
}

func (s *BookService) invalidateList(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, bookListCacheKey+"*"); err != nil {
		log.Warn().Err(err).Msg("book list cache invalidation failed")
	}
}
