package httptransport

import (
	"log/slog"

	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/transport/http/handler"
	"github.com/Pooja-Basavaraj17/bookstore-backend/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, bookHandler *handler.BookHandler, uiHandler *handler.UIHandler, hmacKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.SetHTMLTemplate(handler.Templates())

	authMW := middleware.Auth(hmacKey)

	// Public auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Catalog: reads are public, writes require a bearer token
	r.GET("/books", bookHandler.List)
	r.POST("/books", authMW, bookHandler.Create)
	r.PUT("/books/:id", authMW, bookHandler.Update)
	r.DELETE("/books/:id", authMW, bookHandler.Delete)

	// Server-rendered admin pages
	ui := r.Group("/ui")
	ui.GET("", uiHandler.ListPage)
	ui.GET("/add", uiHandler.AddForm)
	ui.POST("/add", uiHandler.AddSubmit)
	ui.GET("/edit/:id", uiHandler.EditForm)
	ui.POST("/update/:id", uiHandler.UpdateSubmit)
	ui.GET("/delete/:id", uiHandler.Delete)
	ui.POST("/delete/:id", uiHandler.Delete)

	return r
}
