package service

import (
	"context"

	"bookshelf/internal/domains/book/model"
)

// ServiceInterface - catalog business logic exposed to the handler.
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	// DeleteBook returns model.ErrBookNotFound when the id is absent;
	// any other error is a store failure.
	DeleteBook(ctx context.Context, id int64) error
}
