package main

import (
	"github.com/gin-gonic/gin"

	bookhandler "book-catalog/internal/domains/book/handler"
	reviewhandler "book-catalog/internal/domains/review/handler"
	"book-catalog/internal/shared/apperror"
	"book-catalog/internal/shared/middleware"
	"book-catalog/web"
)

// NewRouter wires the route table. The handlers are passed in rather than a
// whole container so tests can build a router over in-memory storage.
func NewRouter(books *bookhandler.Handler, reviews *reviewhandler.Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorResponder(),
	)

	router.SetHTMLTemplate(web.Templates())

	router.GET("/", books.Home)

	group := router.Group("/books")
	{
		group.GET("", books.List)
		group.GET("/new", books.NewForm)
		group.POST("", books.Create)
		group.GET("/:id", books.Detail)
		group.GET("/:id/edit", books.EditForm)
		group.PUT("/:id", books.Update)
		group.DELETE("/:id", books.Delete)

		group.POST("/:id/reviews", reviews.Add)
		group.DELETE("/:id/reviews/:reviewId", reviews.Remove)
	}

	// Anything else is a 404 through the central responder.
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Page Not Found"))
	})

	return router
}
