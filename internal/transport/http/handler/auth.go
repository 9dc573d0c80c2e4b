package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, name string, email domain.Email, password domain.Password) (*domain.User, error)
	Login(ctx context.Context, email domain.Email, password domain.Password) (string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /register
// A duplicate email is reported with the same generic message as any other
// failure so responses cannot be used to enumerate accounts.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, password, ok := credentials(c, req.Email, req.Password)
	if !ok {
		return
	}

	_, err := h.authUsecase.Register(c.Request.Context(), req.Name, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": errRegistrationFailed})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": errRegistrationFailed})
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "User Registered Successfully"})
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /login
// Returns {"token": "<jwt>"} on success. An unknown email and a wrong
// password get the identical 400 response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, password, ok := credentials(c, req.Email, req.Password)
	if !ok {
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// credentials wraps the raw strings in their domain newtypes. Binding has
// already enforced presence, so a constructor failure still maps to 400.
func credentials(c *gin.Context, rawEmail, rawPassword string) (domain.Email, domain.Password, bool) {
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}
	password, err := domain.NewPassword(rawPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}
	return email, password, true
}
