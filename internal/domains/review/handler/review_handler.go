package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "book-catalog/internal/domains/book/model"
	bookservice "book-catalog/internal/domains/book/service"
	"book-catalog/internal/domains/review/model"
	"book-catalog/internal/domains/review/service"
	"book-catalog/internal/shared/apperror"
	"book-catalog/pkg/cache"
)

// Handler serves the review operations nested under a book.
type Handler struct {
	service     service.Service
	bookService bookservice.Service
	cache       cache.Cache
}

func NewHandler(service service.Service, bookService bookservice.Service, cache cache.Cache) *Handler {
	return &Handler{
		service:     service,
		bookService: bookService,
		cache:       cache,
	}
}

// Add - POST /books/:id/reviews with a nested review[...] payload.
// Validates, confirms the parent book exists, then creates the review and
// appends its id to the book's collection.
func (h *Handler) Add(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	form := model.ReviewFormFromMap(c.PostFormMap("review"))
	if err := form.Validate(); err != nil {
		h.fail(c, apperror.Validation(err))
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), bookID)
	if err != nil {
		_ = c.Error(bookmodel.WrapError(err))
		c.Abort()
		return
	}

	if _, err := h.service.AddReview(c.Request.Context(), book.ID, form); err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(c, bookID)
	c.Redirect(http.StatusFound, "/books/"+bookID.String())
}

// Remove - DELETE /books/:id/reviews/:reviewId. Pulls the review id from the
// book's collection and deletes the review.
func (h *Handler) Remove(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.service.RemoveReview(c.Request.Context(), bookID, reviewID); err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(c, bookID)
	c.Redirect(http.StatusFound, "/books/"+bookID.String())
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(model.WrapError(err))
	c.Abort()
}

func (h *Handler) invalidate(c *gin.Context, bookID uuid.UUID) {
	if err := h.cache.Delete(c.Request.Context(), bookmodel.DetailCacheKey(bookID)); err != nil {
		log.Warn().Err(err).Str("book_id", bookID.String()).Msg("cache invalidation failed")
	}
}
