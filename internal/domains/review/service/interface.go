package service

import (
	"context"

	"github.com/google/uuid"

	"book-catalog/internal/domains/review/model"
)

// Service is the review business logic consumed by the HTTP handlers.
type Service interface {
	// AddReview creates a review under the given book.
	AddReview(ctx context.Context, bookID uuid.UUID, form model.ReviewForm) (*model.Review, error)

	// RemoveReview detaches the review from the book and deletes it.
	RemoveReview(ctx context.Context, bookID, reviewID uuid.UUID) error
}
