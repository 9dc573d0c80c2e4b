package usecase

import (
	"context"
	"fmt"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/repository"
)

type BookUsecase struct {
	repo repository.BookRepository
}

func NewBookUsecase(repo repository.BookRepository) *BookUsecase {
	return &BookUsecase{repo: repo}
}

type BookInput struct {
	Title  string
	Author string
	Price  float64
}

func (u *BookUsecase) Create(ctx context.Context, input BookInput) (*domain.Book, error) {
	book := &domain.Book{
		Title:  input.Title,
		Author: input.Author,
		Price:  input.Price,
	}

	created, err := u.repo.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

func (u *BookUsecase) List(ctx context.Context) ([]*domain.Book, error) {
	books, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (u *BookUsecase) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// Update rewrites title, author and price in one statement. Updating an id
// that does not exist is a silent no-op.
func (u *BookUsecase) Update(ctx context.Context, id int64, input BookInput) error {
	book := &domain.Book{
		ID:     id,
		Title:  input.Title,
		Author: input.Author,
		Price:  input.Price,
	}
	if err := u.repo.Update(ctx, book); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete removes the book. Deleting an id that does not exist is a silent no-op.
func (u *BookUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
