package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	reviewmodel "book-catalog/internal/domains/review/model"
)

// Book is the primary catalog entity. It owns its reviews: the ids of every
// review created under it live in ReviewIDs, and nowhere else.
type Book struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Image       string          `json:"image" db:"image"`
	Genre       string          `json:"genre" db:"genre"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Location    *string         `json:"location" db:"location"`
	ReviewIDs   []uuid.UUID     `json:"review_ids" db:"reviews"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BookDetail is a book with its review references resolved to full records.
type BookDetail struct {
	Book
	Reviews []reviewmodel.Review `json:"reviews"`
}

// DetailCacheKey is the cache key for a book's resolved detail view.
func DetailCacheKey(id uuid.UUID) string {
	return "book:detail:" + id.String()
}
