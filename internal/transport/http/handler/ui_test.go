package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/domain"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/transport/http/handler"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

func newUIEngine(uc *fakeBookUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewUIHandler(uc, logger)

	r := gin.New()
	r.SetHTMLTemplate(handler.Templates())
	r.GET("/ui", h.ListPage)
	r.GET("/ui/add", h.AddForm)
	r.POST("/ui/add", h.AddSubmit)
	r.GET("/ui/edit/:id", h.EditForm)
	r.POST("/ui/update/:id", h.UpdateSubmit)
	r.GET("/ui/delete/:id", h.Delete)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestUIList_EscapesStoredFields(t *testing.T) {
	uc := &fakeBookUsecase{
		list: func(_ context.Context) ([]*domain.Book, error) {
			return []*domain.Book{
				{ID: 1, Title: `<script>alert("x")</script>`, Author: "Au", Price: 1},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui", nil)
	newUIEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, `<script>alert`) {
		t.Error("stored title rendered unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("escaped title missing from page:\n%s", body)
	}
}

func TestUIAdd_ValidForm_CreatesAndRedirects(t *testing.T) {
	var got usecase.BookInput
	uc := &fakeBookUsecase{
		create: func(_ context.Context, input usecase.BookInput) (*domain.Book, error) {
			got = input
			return &domain.Book{ID: 1}, nil
		},
	}

	w := postForm(newUIEngine(uc), "/ui/add", url.Values{
		"title":  {"T"},
		"author": {"Au"},
		"price":  {"9.99"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/ui" {
		t.Errorf("redirect = %q, want /ui", loc)
	}
	if got.Title != "T" || got.Author != "Au" || got.Price != 9.99 {
		t.Errorf("usecase received %+v", got)
	}
}

func TestUIAdd_BadPrice_RerendersFormWithError(t *testing.T) {
	uc := &fakeBookUsecase{}

	w := postForm(newUIEngine(uc), "/ui/add", url.Values{
		"title":  {"T"},
		"author": {"Au"},
		"price":  {"cheap"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Price must be a number") {
		t.Errorf("form error missing from page:\n%s", w.Body.String())
	}
}

func TestUIEdit_MissingBook_Returns404Page(t *testing.T) {
	uc := &fakeBookUsecase{
		getByID: func(_ context.Context, _ int64) (*domain.Book, error) {
			return nil, domain.ErrBookNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui/edit/99", nil)
	newUIEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUIEdit_PrefillsForm(t *testing.T) {
	uc := &fakeBookUsecase{
		getByID: func(_ context.Context, id int64) (*domain.Book, error) {
			return &domain.Book{ID: id, Title: "T", Author: "Au", Price: 9.99}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui/edit/5", nil)
	newUIEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `action="/ui/update/5"`) {
		t.Errorf("form action missing:\n%s", body)
	}
	if !strings.Contains(body, `value="T"`) || !strings.Contains(body, `value="Au"`) {
		t.Errorf("form not prefilled:\n%s", body)
	}
}

func TestUIDelete_RedirectsToList(t *testing.T) {
	var deleted int64
	uc := &fakeBookUsecase{
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ui/delete/3", nil)
	newUIEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if deleted != 3 {
		t.Errorf("deleted id = %d, want 3", deleted)
	}
}
