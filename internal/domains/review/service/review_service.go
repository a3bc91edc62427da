package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/domains/review/model"
	"book-catalog/internal/domains/review/repository"
)

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) Service {
	return &reviewService{repo: repo}
}

func (s *reviewService) AddReview(ctx context.Context, bookID uuid.UUID, form model.ReviewForm) (*model.Review, error) {
	review := &model.Review{
		ID:        uuid.New(),
		Rating:    form.RatingInt(),
		Body:      form.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddToBook(ctx, bookID, review); err != nil {
		return nil, err
	}

	log.Info().
		Str("review_id", review.ID.String()).
		Str("book_id", bookID.String()).
		Int("rating", review.Rating).
		Msg("review added")

	return review, nil
}

func (s *reviewService) RemoveReview(ctx context.Context, bookID, reviewID uuid.UUID) error {
	if err := s.repo.RemoveFromBook(ctx, bookID, reviewID); err != nil {
		return err
	}

	log.Info().
		Str("review_id", reviewID.String()).
		Str("book_id", bookID.String()).
		Msg("review removed")

	return nil
}
