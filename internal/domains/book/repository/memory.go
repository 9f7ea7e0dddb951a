package repository

import (
	"context"
	"sync"

	"bookshelf/internal/domains/book/model"
)

// memoryRepository keeps entries in a map guarded by a mutex. The id
// counter only ever increments, so ids are never reused after a
// delete, matching the BIGSERIAL behavior of the postgres store.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]model.Book
}

// NewMemoryRepository - in-memory Repository, used by tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		nextID: 1,
		books:  make(map[int64]model.Book),
	}
}

func (r *memoryRepository) List(_ context.Context) ([]model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *memoryRepository) Create(_ context.Context, req model.CreateBookRequest) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book := model.Book{
		ID:               r.nextID,
		Title:            req.Title,
		Author:           req.Author,
		FirstPublishYear: req.FirstPublishYear,
		EditionCount:     req.EditionCount,
	}
	r.nextID++
	r.books[book.ID] = book

	return book, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return model.Book{}, model.ErrBookNotFound
	}
	return book, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}
