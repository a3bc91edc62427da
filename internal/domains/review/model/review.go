package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating + text record. It carries no back-reference: ownership
// is recorded on the parent book's review collection only.
type Review struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Rating int       `json:"rating" db:"rating"`
	Body   string    `json:"body" db:"body"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
