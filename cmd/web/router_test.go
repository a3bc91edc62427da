package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookhandler "book-catalog/internal/domains/book/handler"
	bookmodel "book-catalog/internal/domains/book/model"
	bookservice "book-catalog/internal/domains/book/service"
	reviewhandler "book-catalog/internal/domains/review/handler"
	reviewmodel "book-catalog/internal/domains/review/model"
	reviewservice "book-catalog/internal/domains/review/service"
	"book-catalog/internal/shared/middleware"
	"book-catalog/internal/storage/memory"
	"book-catalog/pkg/cache"
)

func buildRouter(t *testing.T, c cache.Cache) (http.Handler, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	bookSvc := bookservice.NewBookService(store.Books())
	reviewSvc := reviewservice.NewReviewService(store.Reviews())
	bh := bookhandler.NewHandler(bookSvc, c)
	rh := reviewhandler.NewHandler(reviewSvc, bookSvc, c)

	return middleware.MethodOverride(NewRouter(bh, rh)), store
}

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	return buildRouter(t, cache.NewNoop())
}

// mapCache is an in-process Cache with the same marshalling behavior as the
// Redis implementation, so the detail-cache hit and invalidation paths run
// for real in router tests.
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (m *mapCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *mapCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mapCache) Ping(_ context.Context) error { return nil }

func (m *mapCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func bookForm(title string) url.Values {
	return url.Values{
		"books[title]":       {title},
		"books[price]":       {"15"},
		"books[genre]":       {"SciFi"},
		"books[image]":       {"https://example.com/dune.jpg"},
		"books[description]": {"A desert planet and its spice."},
	}
}

// createBook drives the real create flow and returns the new book's id taken
// from the redirect location.
func createBook(t *testing.T, handler http.Handler, title string) uuid.UUID {
	t.Helper()
	rec := postForm(handler, "/books", bookForm(title))
	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/books/"))
	id, err := uuid.Parse(strings.TrimPrefix(location, "/books/"))
	require.NoError(t, err)
	return id
}

func addReview(t *testing.T, handler http.Handler, bookID uuid.UUID, rating, body string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{
		"review[rating]": {rating},
		"review[body]":   {body},
	}
	return postForm(handler, "/books/"+bookID.String()+"/reviews", form)
}

func TestCreateAndShowBook(t *testing.T) {
	handler, _ := newTestRouter(t)

	id := createBook(t, handler, "Dune")

	rec := get(handler, "/books/"+id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
	assert.Contains(t, rec.Body.String(), "A desert planet and its spice.")

	rec = get(handler, "/books")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
}

func TestCreateBookValidation(t *testing.T) {
	handler, _ := newTestRouter(t)

	form := bookForm("Dune")
	form.Set("books[price]", "-1")
	rec := postForm(handler, "/books", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price")

	form = bookForm("Dune")
	form.Del("books[title]")
	rec = postForm(handler, "/books", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestUpdateBookViaMethodOverride(t *testing.T) {
	handler, _ := newTestRouter(t)

	id := createBook(t, handler, "Dune")

	form := bookForm("Dune Messiah")
	rec := postForm(handler, "/books/"+id.String()+"?_method=PUT", form)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/"+id.String(), rec.Header().Get("Location"))

	rec = get(handler, "/books/"+id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune Messiah")
}

func TestDeleteBookCascades(t *testing.T) {
	handler, store := newTestRouter(t)

	id := createBook(t, handler, "Dune")
	rec := addReview(t, handler, id, "5", "a masterpiece")
	require.Equal(t, http.StatusFound, rec.Code)

	book, err := store.Books().GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Len(t, book.ReviewIDs, 1)
	reviewID := book.ReviewIDs[0]

	rec = postForm(handler, "/books/"+id.String()+"?_method=DELETE", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books", rec.Header().Get("Location"))

	rec = get(handler, "/books/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err = store.Reviews().GetByID(t.Context(), reviewID)
	assert.ErrorIs(t, err, reviewmodel.ErrReviewNotFound)
}

func TestAddAndRemoveReview(t *testing.T) {
	handler, store := newTestRouter(t)

	id := createBook(t, handler, "Dune")

	rec := addReview(t, handler, id, "5", "keep this one")
	require.Equal(t, http.StatusFound, rec.Code)
	rec = addReview(t, handler, id, "2", "remove this one")
	require.Equal(t, http.StatusFound, rec.Code)

	book, err := store.Books().GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Len(t, book.ReviewIDs, 2)
	removed := book.ReviewIDs[1]

	rec = postForm(handler, "/books/"+id.String()+"/reviews/"+removed.String()+"?_method=DELETE", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/"+id.String(), rec.Header().Get("Location"))

	body := get(handler, "/books/"+id.String()).Body.String()
	assert.Contains(t, body, "keep this one")
	assert.NotContains(t, body, "remove this one")
}

func TestAddReviewValidation(t *testing.T) {
	handler, _ := newTestRouter(t)

	id := createBook(t, handler, "Dune")

	rec := addReview(t, handler, id, "6", "too enthusiastic")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating")

	rec = addReview(t, handler, id, "3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "body")
}

func TestAddReviewMissingBook(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := addReview(t, handler, uuid.New(), "4", "no home for this")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book not found")
}

func TestMissingBookIs404(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := get(handler, "/books/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book not found")

	rec = get(handler, "/books/"+uuid.NewString()+"/edit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedIDFallsToDefault(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := get(handler, "/books/not-a-uuid")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oh No, something went wrong!")
}

func TestUnknownRouteIs404(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := get(handler, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestDetailServedFromCache(t *testing.T) {
	cached := newMapCache()
	handler, store := buildRouter(t, cached)

	id := createBook(t, handler, "Dune")

	rec := get(handler, "/books/"+id.String())
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, cached.has(bookmodel.DetailCacheKey(id)))

	// Change the store behind the cache's back; the cached entry wins.
	book, err := store.Books().GetByID(t.Context(), id)
	require.NoError(t, err)
	book.Title = "Changed In Store Only"
	require.NoError(t, store.Books().Update(t.Context(), book))

	rec = get(handler, "/books/"+id.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
	assert.NotContains(t, rec.Body.String(), "Changed In Store Only")
}

func TestUpdateInvalidatesDetailCache(t *testing.T) {
	cached := newMapCache()
	handler, _ := buildRouter(t, cached)

	id := createBook(t, handler, "Dune")
	require.Equal(t, http.StatusOK, get(handler, "/books/"+id.String()).Code)
	require.True(t, cached.has(bookmodel.DetailCacheKey(id)))

	rec := postForm(handler, "/books/"+id.String()+"?_method=PUT", bookForm("Dune Messiah"))
	require.Equal(t, http.StatusFound, rec.Code)

	body := get(handler, "/books/"+id.String()).Body.String()
	assert.Contains(t, body, "Dune Messiah")
	assert.NotContains(t, body, `>Dune<`)
}

func TestReviewMutationsInvalidateDetailCache(t *testing.T) {
	cached := newMapCache()
	handler, store := buildRouter(t, cached)

	id := createBook(t, handler, "Dune")
	require.Contains(t, get(handler, "/books/"+id.String()).Body.String(), "No reviews yet.")

	rec := addReview(t, handler, id, "5", "a masterpiece")
	require.Equal(t, http.StatusFound, rec.Code)

	body := get(handler, "/books/"+id.String()).Body.String()
	assert.Contains(t, body, "a masterpiece")

	book, err := store.Books().GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Len(t, book.ReviewIDs, 1)

	rec = postForm(handler, "/books/"+id.String()+"/reviews/"+book.ReviewIDs[0].String()+"?_method=DELETE", url.Values{})
	require.Equal(t, http.StatusFound, rec.Code)

	body = get(handler, "/books/"+id.String()).Body.String()
	assert.NotContains(t, body, "a masterpiece")
	assert.Contains(t, body, "No reviews yet.")
}

func TestDeleteInvalidatesDetailCache(t *testing.T) {
	cached := newMapCache()
	handler, _ := buildRouter(t, cached)

	id := createBook(t, handler, "Dune")
	require.Equal(t, http.StatusOK, get(handler, "/books/"+id.String()).Code)

	rec := postForm(handler, "/books/"+id.String()+"?_method=DELETE", url.Values{})
	require.Equal(t, http.StatusFound, rec.Code)

	assert.False(t, cached.has(bookmodel.DetailCacheKey(id)))
	// A stale entry would still render the deleted book here.
	assert.Equal(t, http.StatusNotFound, get(handler, "/books/"+id.String()).Code)
}

func TestHomeAndForms(t *testing.T) {
	handler, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, get(handler, "/").Code)
	assert.Equal(t, http.StatusOK, get(handler, "/books/new").Code)

	id := createBook(t, handler, "Dune")
	rec := get(handler, "/books/"+id.String()+"/edit")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dune")
}
