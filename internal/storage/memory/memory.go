// Package memory is a map-backed implementation of the book and review
// repositories over one shared store. It mirrors the Postgres semantics,
// including the cascade and pull rules, and backs the handler and service
// tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	bookmodel "book-catalog/internal/domains/book/model"
	reviewmodel "book-catalog/internal/domains/review/model"
)

type Store struct {
	mu      sync.RWMutex
	books   map[uuid.UUID]bookmodel.Book
	reviews map[uuid.UUID]reviewmodel.Review
}

func New() *Store {
	return &Store{
		books:   make(map[uuid.UUID]bookmodel.Book),
		reviews: make(map[uuid.UUID]reviewmodel.Review),
	}
}

// Books exposes the store as a book repository.
func (s *Store) Books() *BookStore { return &BookStore{s} }

// Reviews exposes the store as a review repository.
func (s *Store) Reviews() *ReviewStore { return &ReviewStore{s} }

type BookStore struct {
	store *Store
}

func (b *BookStore) Create(_ context.Context, book *bookmodel.Book) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	b.store.books[book.ID] = *book
	return nil
}

func (b *BookStore) List(_ context.Context) ([]bookmodel.Book, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	var books []bookmodel.Book
	for _, book := range b.store.books {
		books = append(books, book)
	}
	return books, nil
}

func (b *BookStore) GetByID(_ context.Context, id uuid.UUID) (*bookmodel.Book, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	book, ok := b.store.books[id]
	if !ok {
		return nil, bookmodel.ErrBookNotFound
	}
	return &book, nil
}

func (b *BookStore) GetDetail(_ context.Context, id uuid.UUID) (*bookmodel.BookDetail, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	book, ok := b.store.books[id]
	if !ok {
		return nil, bookmodel.ErrBookNotFound
	}
	detail := &bookmodel.BookDetail{Book: book}
	for _, rid := range book.ReviewIDs {
		if review, ok := b.store.reviews[rid]; ok {
			detail.Reviews = append(detail.Reviews, review)
		}
	}
	return detail, nil
}

func (b *BookStore) Update(_ context.Context, book *bookmodel.Book) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	current, ok := b.store.books[book.ID]
	if !ok {
		return bookmodel.ErrBookNotFound
	}
	// Full overwrite of the descriptive fields; the review collection
	// is untouched.
	current.Title = book.Title
	current.Image = book.Image
	current.Genre = book.Genre
	current.Price = book.Price
	current.Description = book.Description
	current.Location = book.Location
	b.store.books[book.ID] = current
	return nil
}

func (b *BookStore) DeleteCascade(_ context.Context, id uuid.UUID) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	book, ok := b.store.books[id]
	if !ok {
		return bookmodel.ErrBookNotFound
	}
	for _, rid := range book.ReviewIDs {
		delete(b.store.reviews, rid)
	}
	delete(b.store.books, id)
	return nil
}

type ReviewStore struct {
	store *Store
}

func (r *ReviewStore) AddToBook(_ context.Context, bookID uuid.UUID, review *reviewmodel.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	book, ok := r.store.books[bookID]
	if !ok {
		return reviewmodel.ErrBookNotFound
	}
	r.store.reviews[review.ID] = *review
	book.ReviewIDs = append(book.ReviewIDs, review.ID)
	r.store.books[bookID] = book
	return nil
}

func (r *ReviewStore) RemoveFromBook(_ context.Context, bookID, reviewID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if book, ok := r.store.books[bookID]; ok {
		kept := make([]uuid.UUID, 0, len(book.ReviewIDs))
		for _, rid := range book.ReviewIDs {
			if rid != reviewID {
				kept = append(kept, rid)
			}
		}
		book.ReviewIDs = kept
		r.store.books[bookID] = book
	}
	// The delete proceeds even when the book did not reference the review.
	delete(r.store.reviews, reviewID)
	return nil
}

func (r *ReviewStore) GetByID(_ context.Context, id uuid.UUID) (*reviewmodel.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	review, ok := r.store.reviews[id]
	if !ok {
		return nil, reviewmodel.ErrReviewNotFound
	}
	return &review, nil
}
