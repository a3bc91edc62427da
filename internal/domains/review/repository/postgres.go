package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog/internal/domains/review/model"
	"book-catalog/pkg/database"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) AddToBook(ctx context.Context, bookID uuid.UUID, review *model.Review) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO reviews (id, rating, body, created_at)
			VALUES ($1, $2, $3, $4)
		`,
			review.ID,
			review.Rating,
			review.Body,
			review.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		result, err := tx.Exec(ctx, `
			UPDATE books
			SET reviews = array_append(reviews, $2), updated_at = NOW()
			WHERE id = $1
		`, bookID, review.ID)
		if err != nil {
			return fmt.Errorf("failed to attach review to book: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}

		return nil
	})
}

func (r *postgresReviewRepository) RemoveFromBook(ctx context.Context, bookID, reviewID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Pull is a no-op when the book does not reference the review.
		_, err := tx.Exec(ctx, `
			UPDATE books
			SET reviews = array_remove(reviews, $2), updated_at = NOW()
			WHERE id = $1
		`, bookID, reviewID)
		if err != nil {
			return fmt.Errorf("failed to detach review from book: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}

		return nil
	})
}
