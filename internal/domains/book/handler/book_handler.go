package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"
	"book-catalog/internal/shared/apperror"
	"book-catalog/pkg/cache"
)

const detailCacheTTL = 10 * time.Minute

// Handler serves the book pages: list, forms, detail, and the CRUD
// orchestration behind them. Every failure goes through the central
// responder via c.Error.
type Handler struct {
	service service.Service
	cache   cache.Cache
}

func NewHandler(service service.Service, cache cache.Cache) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
	}
}

// Home - GET /
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", nil)
}

// List - GET /books
func (h *Handler) List(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "books/index", gin.H{"Books": books})
}

// NewForm - GET /books/new
func (h *Handler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "books/new", nil)
}

// Create - POST /books with a nested books[...] payload.
// Validation runs before any store call; 302 to the detail view on success.
func (h *Handler) Create(c *gin.Context) {
	form := model.BookFormFromMap(c.PostFormMap("books"))
	if err := form.Validate(); err != nil {
		h.fail(c, apperror.Validation(err))
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), form)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/books/"+book.ID.String())
}

// Detail - GET /books/:id, reviews resolved. Cached per book; every mutation
// of the book invalidates the key.
func (h *Handler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	cacheKey := model.DetailCacheKey(id)
	var cached model.BookDetail
	found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached)
	if found {
		c.HTML(http.StatusOK, "books/show", gin.H{"Detail": &cached})
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache read failed")
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, detail, detailCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
	}

	c.HTML(http.StatusOK, "books/show", gin.H{"Detail": detail})
}

// EditForm - GET /books/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "books/edit", gin.H{"Book": book})
}

// Update - PUT /books/:id with a nested books[...] payload.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	form := model.BookFormFromMap(c.PostFormMap("books"))
	if err := form.Validate(); err != nil {
		h.fail(c, apperror.Validation(err))
		return
	}

	if _, err := h.service.UpdateBook(c.Request.Context(), id, form); err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(c, id)
	c.Redirect(http.StatusFound, "/books/"+id.String())
}

// Delete - DELETE /books/:id. The cascade to the book's reviews happens
// inside the service call.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	h.invalidate(c, id)
	c.Redirect(http.StatusFound, "/books")
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(model.WrapError(err))
	c.Abort()
}

func (h *Handler) invalidate(c *gin.Context, id uuid.UUID) {
	if err := h.cache.Delete(c.Request.Context(), model.DetailCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("cache invalidation failed")
	}
}
