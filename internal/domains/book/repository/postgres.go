package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"book-catalog/internal/domains/book/model"
	reviewmodel "book-catalog/internal/domains/review/model"
	"book-catalog/pkg/database"
)

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresBookRepository{pool: pool}
}

const bookColumns = `id, title, image, genre, price, description, location, reviews, created_at, updated_at`

func (r *postgresBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (` + bookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Image,
		book.Genre,
		book.Price,
		book.Description,
		book.Location,
		pq.Array(book.ReviewIDs),
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *book)
	}

	return books, rows.Err()
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *postgresBookRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.BookDetail, error) {
	book, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.BookDetail{Book: *book}
	if len(book.ReviewIDs) == 0 {
		return detail, nil
	}

	query := `
		SELECT id, rating, body, created_at
		FROM reviews
		WHERE id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, pq.Array(book.ReviewIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var review reviewmodel.Review
		if err := rows.Scan(&review.ID, &review.Rating, &review.Body, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		detail.Reviews = append(detail.Reviews, review)
	}

	return detail, rows.Err()
}

func (r *postgresBookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET
			title = $2,
			image = $3,
			genre = $4,
			price = $5,
			description = $6,
			location = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Image,
		book.Genre,
		book.Price,
		book.Description,
		book.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresBookRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var reviewIDs []uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT reviews FROM books WHERE id = $1 FOR UPDATE`, id,
		).Scan(pq.Array(&reviewIDs))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrBookNotFound
			}
			return fmt.Errorf("failed to read review ids: %w", err)
		}

		if len(reviewIDs) > 0 {
			if _, err := tx.Exec(ctx,
				`DELETE FROM reviews WHERE id = ANY($1)`, pq.Array(reviewIDs),
			); err != nil {
				return fmt.Errorf("failed to cascade delete reviews: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}

		return nil
	})
}

// scanBook works for both QueryRow and Query rows.
func scanBook(row pgx.Row) (*model.Book, error) {
	book := &model.Book{}
	var reviewIDs []uuid.UUID

	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Image,
		&book.Genre,
		&book.Price,
		&book.Description,
		&book.Location,
		pq.Array(&reviewIDs),
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.ReviewIDs = reviewIDs
	return book, nil
}
