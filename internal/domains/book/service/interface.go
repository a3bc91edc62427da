package service

import (
	"context"

	"github.com/google/uuid"

	"book-catalog/internal/domains/book/model"
)

// Service is the book business logic consumed by the HTTP handlers.
type Service interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, form model.BookForm) (*model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetBookDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error)
	UpdateBook(ctx context.Context, id uuid.UUID, form model.BookForm) (*model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
