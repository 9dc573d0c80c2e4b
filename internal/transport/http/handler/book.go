package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/metrics"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

type bookUsecaser interface {
	Create(ctx context.Context, input usecase.BookInput) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, id int64, input usecase.BookInput) error
	Delete(ctx context.Context, id int64) error
}

type BookHandler struct {
	bookUsecase bookUsecaser
	logger      *slog.Logger
}

func NewBookHandler(bookUsecase bookUsecaser, logger *slog.Logger) *BookHandler {
	return &BookHandler{bookUsecase: bookUsecase, logger: logger.With("component", "book_handler")}
}

type bookRequest struct {
	Title  string  `json:"title"  binding:"required"`
	Author string  `json:"author" binding:"required"`
	Price  float64 `json:"price"  binding:"required"`
}

type bookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// GET /books — public read path.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list books", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.bookUsecase.Create(c.Request.Context(), usecase.BookInput{
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create book", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.BookMutationsTotal.WithLabelValues("create").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Book Added"})
}

// PUT /books/:id
// An id with no matching row still succeeds: the statement affects zero rows.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.bookUsecase.Update(c.Request.Context(), id, usecase.BookInput{
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "update book", "book_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.BookMutationsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Book Updated"})
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	if err := h.bookUsecase.Delete(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "delete book", "book_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.BookMutationsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Book Deleted"})
}
