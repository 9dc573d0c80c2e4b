package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
		INSERT INTO books (title, author, price)
		VALUES ($1, $2, $3)
		RETURNING id, title, author, price, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, book.Title, book.Author, book.Price)
	created, err := scanBook(row)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	query := `
		SELECT id, title, author, price, created_at, updated_at
		FROM books
		ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	query := `
		SELECT id, title, author, price, created_at, updated_at
		FROM books
		WHERE id = $1`

	return scanBook(r.pool.QueryRow(ctx, query, id))
}

// Update rewrites all three mutable fields in one statement. A missing id
// affects zero rows and is not an error.
func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	query := `
		UPDATE books
		SET    title      = $1,
		       author     = $2,
		       price      = $3,
		       updated_at = NOW()
		WHERE  id = $4`

	_, err := r.pool.Exec(ctx, query, book.Title, book.Author, book.Price, book.ID)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("scan book: %w", err)
	}
	return &b, nil
}
