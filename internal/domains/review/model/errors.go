package model

import (
	"errors"
	"net/http"

	"book-catalog/internal/shared/apperror"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrBookNotFound is raised when the parent book of a review operation
	// does not exist in the store.
	ErrBookNotFound = errors.New("book not found")
)

var reviewErrorMap = map[error]*apperror.Error{
	ErrReviewNotFound: apperror.New(http.StatusNotFound, "Review not found"),
	ErrBookNotFound:   apperror.New(http.StatusNotFound, "Book not found"),
}

// WrapError maps domain sentinels onto responder errors.
func WrapError(err error) error {
	for sentinel, appErr := range reviewErrorMap {
		if errors.Is(err, sentinel) {
			return appErr
		}
	}
	return err
}
