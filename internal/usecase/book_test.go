package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/usecase"
)

type fakeBookRepo struct {
	create  func(ctx context.Context, book *domain.Book) (*domain.Book, error)
	list    func(ctx context.Context) ([]*domain.Book, error)
	getByID func(ctx context.Context, id int64) (*domain.Book, error)
	update  func(ctx context.Context, book *domain.Book) error
	delete  func(ctx context.Context, id int64) error
}

func (r *fakeBookRepo) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	return r.create(ctx, book)
}

func (r *fakeBookRepo) List(ctx context.Context) ([]*domain.Book, error) {
	return r.list(ctx)
}

func (r *fakeBookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return r.getByID(ctx, id)
}

func (r *fakeBookRepo) Update(ctx context.Context, book *domain.Book) error {
	return r.update(ctx, book)
}

func (r *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func TestCreateBook_PassesAllFields(t *testing.T) {
	var got *domain.Book
	repo := &fakeBookRepo{
		create: func(_ context.Context, book *domain.Book) (*domain.Book, error) {
			got = book
			created := *book
			created.ID = 1
			return &created, nil
		},
	}

	created, err := usecase.NewBookUsecase(repo).Create(context.Background(), usecase.BookInput{
		Title:  "T",
		Author: "Au",
		Price:  9.99,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if got.Title != "T" || got.Author != "Au" || got.Price != 9.99 {
		t.Errorf("repo received %+v", got)
	}
}

func TestUpdateBook_RewritesAllThreeFields(t *testing.T) {
	var got *domain.Book
	repo := &fakeBookRepo{
		update: func(_ context.Context, book *domain.Book) error {
			got = book
			return nil
		},
	}

	err := usecase.NewBookUsecase(repo).Update(context.Background(), 5, usecase.BookInput{
		Title:  "T2",
		Author: "Au2",
		Price:  1.50,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 5 || got.Title != "T2" || got.Author != "Au2" || got.Price != 1.50 {
		t.Errorf("repo received %+v", got)
	}
}

func TestUpdateBook_MissingID_IsSilentNoOp(t *testing.T) {
	repo := &fakeBookRepo{
		update: func(_ context.Context, _ *domain.Book) error { return nil },
	}

	if err := usecase.NewBookUsecase(repo).Update(context.Background(), 999, usecase.BookInput{}); err != nil {
		t.Errorf("update of a missing id must succeed, got %v", err)
	}
}

func TestDeleteBook_MissingID_IsSilentNoOp(t *testing.T) {
	repo := &fakeBookRepo{
		delete: func(_ context.Context, _ int64) error { return nil },
	}

	if err := usecase.NewBookUsecase(repo).Delete(context.Background(), 999); err != nil {
		t.Errorf("delete of a missing id must succeed, got %v", err)
	}
}

func TestGetBookByID_NotFound_IsErrBookNotFound(t *testing.T) {
	repo := &fakeBookRepo{
		getByID: func(_ context.Context, _ int64) (*domain.Book, error) {
			return nil, domain.ErrBookNotFound
		},
	}

	_, err := usecase.NewBookUsecase(repo).GetByID(context.Background(), 3)
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Errorf("err = %v, want ErrBookNotFound", err)
	}
}

func TestListBooks_EmptyCatalog_ReturnsNoError(t *testing.T) {
	repo := &fakeBookRepo{
		list: func(_ context.Context) ([]*domain.Book, error) { return nil, nil },
	}

	books, err := usecase.NewBookUsecase(repo).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("books = %v, want empty", books)
	}
}
