package model

import (
	"errors"
	"net/http"

	"book-catalog/internal/shared/apperror"
)

var ErrBookNotFound = errors.New("book not found")

var bookErrorMap = map[error]*apperror.Error{
	ErrBookNotFound: apperror.New(http.StatusNotFound, "Book not found"),
}

// WrapError maps domain sentinels onto responder errors. Anything unknown
// passes through and renders as the generic failure page.
func WrapError(err error) error {
	for sentinel, appErr := range bookErrorMap {
		if errors.Is(err, sentinel) {
			return appErr
		}
	}
	return err
}
