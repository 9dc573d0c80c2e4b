package repository

import (
	"context"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
)

// UseCase depends on interface, not concrete implementation.
// This way we get: 1) can swap DB later without touching usecase 2) We can pass a mock implementation of interface in tests
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Update and Delete are keyed by id and report nothing about whether
	// the row existed: a missing id is a silent no-op, zero rows affected.
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int64) error
}
