package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded admin pages. html/template escapes every
// interpolated field, so stored titles and authors cannot inject markup.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// UIHandler serves the server-rendered admin pages under /ui.
type UIHandler struct {
	bookUsecase bookUsecaser
	logger      *slog.Logger
}

func NewUIHandler(bookUsecase bookUsecaser, logger *slog.Logger) *UIHandler {
	return &UIHandler{bookUsecase: bookUsecase, logger: logger.With("component", "ui_handler")}
}

// GET /ui
func (h *UIHandler) ListPage(c *gin.Context) {
	books, err := h.bookUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "ui list books", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": errInternalServer})
		return
	}
	c.HTML(http.StatusOK, "list.html", gin.H{"Books": books})
}

// GET /ui/add
func (h *UIHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Heading": "Add Book",
		"Action":  "/ui/add",
	})
}

// POST /ui/add
func (h *UIHandler) AddSubmit(c *gin.Context) {
	input, ok := h.bindForm(c, "Add Book", "/ui/add")
	if !ok {
		return
	}

	if _, err := h.bookUsecase.Create(c.Request.Context(), input); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "ui create book", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": errInternalServer})
		return
	}
	c.Redirect(http.StatusSeeOther, "/ui")
}

// GET /ui/edit/:id
func (h *UIHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid book id"})
		return
	}

	book, err := h.bookUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": "Book not found"})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "ui get book", "book_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": errInternalServer})
		return
	}

	c.HTML(http.StatusOK, "form.html", gin.H{
		"Heading": "Edit Book",
		"Action":  "/ui/update/" + strconv.FormatInt(id, 10),
		"Book":    book,
	})
}

// POST /ui/update/:id
func (h *UIHandler) UpdateSubmit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid book id"})
		return
	}

	input, ok := h.bindForm(c, "Edit Book", "/ui/update/"+strconv.FormatInt(id, 10))
	if !ok {
		return
	}

	if err := h.bookUsecase.Update(c.Request.Context(), id, input); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "ui update book", "book_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": errInternalServer})
		return
	}
	c.Redirect(http.StatusSeeOther, "/ui")
}

// GET|POST /ui/delete/:id
func (h *UIHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid book id"})
		return
	}

	if err := h.bookUsecase.Delete(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "ui delete book", "book_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": errInternalServer})
		return
	}
	c.Redirect(http.StatusSeeOther, "/ui")
}

// bindForm reads the form-encoded book fields. A bad price re-renders the
// form with an inline error instead of failing the request.
func (h *UIHandler) bindForm(c *gin.Context, heading, action string) (usecase.BookInput, bool) {
	title := c.PostForm("title")
	author := c.PostForm("author")
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "form.html", gin.H{
			"Heading": heading,
			"Action":  action,
			"Error":   "Price must be a number",
			"Book": &domain.Book{
				Title:  title,
				Author: author,
			},
		})
		return usecase.BookInput{}, false
	}

	return usecase.BookInput{Title: title, Author: author, Price: price}, true
}
