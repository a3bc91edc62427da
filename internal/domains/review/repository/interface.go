package repository

import (
	"context"

	"github.com/google/uuid"

	"book-catalog/internal/domains/review/model"
)

// ReviewRepository is the persistence surface for reviews. Both mutations are
// multi-entity (they touch the parent book's review collection as well as the
// review row) and run inside one transaction each.
type ReviewRepository interface {
	// AddToBook persists the review and appends its id to the parent
	// book's review collection. Fails with ErrBookNotFound when the
	// parent does not exist.
	AddToBook(ctx context.Context, bookID uuid.UUID, review *model.Review) error

	// RemoveFromBook pulls the review id out of the parent's collection
	// and deletes the review row. When the id is not referenced by that
	// book the pull is a no-op but the delete still proceeds.
	RemoveFromBook(ctx context.Context, bookID, reviewID uuid.UUID) error
}
