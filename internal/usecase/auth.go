package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"time"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/email"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTTTL = 1 * time.Hour

type AuthUsecase struct {
	users  repository.UserRepository
	email  email.Sender
	logger *slog.Logger
	jwtKey []byte
	jwtTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, jwtKey []byte, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
		jwtKey: jwtKey,
		jwtTTL: defaultJWTTTL,
	}
}

// Register hashes the password and inserts the user. The welcome email is
// best-effort: a failed send is logged, never surfaced.
func (u *AuthUsecase) Register(ctx context.Context, name string, emailAddr domain.Email, password domain.Password) (*domain.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, emailAddr.String(), string(hashed))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	subject := "Welcome to the bookstore"
	body := fmt.Sprintf("<p>Hi %s, your account is ready.</p>", html.EscapeString(user.Name))
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "send welcome email", "error", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed JWT. A missing user and
// a wrong password both come back as ErrInvalidCredentials so the response
// cannot be used to probe which emails are registered.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr domain.Email, password domain.Password) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr.String())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	// CompareHashAndPassword also fails on a malformed stored hash, which
	// must read as a credential mismatch, not a server error.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}
