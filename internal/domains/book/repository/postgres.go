package repository

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/domains/book/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository - raw SQL with pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// EnsureSchema creates the books table if it does not exist yet.
// BIGSERIAL backs the id with a sequence, so ids are unique and never
// reused after deletion.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS books (
			id                 BIGSERIAL PRIMARY KEY,
			title              TEXT NOT NULL,
			author             TEXT NOT NULL,
			first_publish_year INT,
			edition_count      INT
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure books schema: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, author, first_publish_year, edition_count
		FROM books
	`)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.FirstPublishYear, &b.EditionCount); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book := model.Book{
		Title:            req.Title,
		Author:           req.Author,
		FirstPublishYear: req.FirstPublishYear,
		EditionCount:     req.EditionCount,
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO books (title, author, first_publish_year, edition_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Title, req.Author, req.FirstPublishYear, req.EditionCount).Scan(&book.ID)
	if err != nil {
		return model.Book{}, fmt.Errorf("insert book failed: %w", err)
	}

	return book, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (model.Book, error) {
	var b model.Book
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, author, first_publish_year, edition_count
		FROM books
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Title, &b.Author, &b.FirstPublishYear, &b.EditionCount)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Book{}, model.ErrBookNotFound
	}
	if err != nil {
		return model.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}

	return b, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}
