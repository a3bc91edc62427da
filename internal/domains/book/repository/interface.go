package repository

import (
	"context"

	"github.com/google/uuid"

	"book-catalog/internal/domains/book/model"
)

// BookRepository is the persistence surface for books.
type BookRepository interface {
	// Create persists a new book.
	Create(ctx context.Context, book *model.Book) error

	// List returns every book, unfiltered.
	List(ctx context.Context) ([]model.Book, error)

	// GetByID returns one book without resolving its reviews.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetDetail returns one book with its review references resolved to
	// full review records.
	GetDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error)

	// Update overwrites the book's descriptive fields. The review
	// collection is untouched.
	Update(ctx context.Context, book *model.Book) error

	// DeleteCascade removes the book and every review it references in a
	// single transaction: read the review ids, delete those reviews,
	// delete the book. No orphan review survives.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
