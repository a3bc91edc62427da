package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/repository"
)

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) Service {
	return &bookService{repo: repo}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

// CreateBook constructs a book from a validated form and persists it.
func (s *bookService) CreateBook(ctx context.Context, form model.BookForm) (*model.Book, error) {
	now := time.Now().UTC()
	book := &model.Book{
		ID:          uuid.New(),
		Title:       form.Title,
		Image:       form.Image,
		Genre:       form.Genre,
		Price:       form.PriceDecimal(),
		Description: form.Description,
		Location:    form.OptionalLocation(),
		ReviewIDs:   []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", book.ID.String()).Str("title", book.Title).Msg("book created")
	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetBookDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// UpdateBook overwrites every descriptive field from the validated form.
func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, form model.BookForm) (*model.Book, error) {
	book := &model.Book{
		ID:          id,
		Title:       form.Title,
		Image:       form.Image,
		Genre:       form.Genre,
		Price:       form.PriceDecimal(),
		Description: form.Description,
		Location:    form.OptionalLocation(),
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook removes the book and cascades to its reviews.
func (s *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	log.Info().Str("book_id", id.String()).Msg("book deleted with reviews")
	return nil
}
