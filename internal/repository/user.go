package repository

import (
	"context"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
