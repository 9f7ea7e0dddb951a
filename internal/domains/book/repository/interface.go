package repository

import (
	"context"

	"bookshelf/internal/domains/book/model"
)

// Repository is the entry store contract.
type Repository interface {
	// List returns all entries. Order is not meaningful.
	List(ctx context.Context) ([]model.Book, error)

	// Create persists a new entry, assigns a fresh unique id and
	// returns the stored record.
	Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error)

	// FindByID returns model.ErrBookNotFound when the id is absent.
	FindByID(ctx context.Context, id int64) (model.Book, error)

	// DeleteByID removes the entry, or returns model.ErrBookNotFound
	// if no entry with that id exists.
	DeleteByID(ctx context.Context, id int64) error
}
