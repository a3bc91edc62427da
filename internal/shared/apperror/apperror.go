package apperror

import (
	"errors"
	"net/http"
)

// Defaults used by the central responder when a failure carries no
// status or message of its own.
const (
	DefaultStatus  = http.StatusInternalServerError
	DefaultMessage = "Oh No, something went wrong!"
)

// Error is a failure with an HTTP status attached. Handlers push these onto
// the gin context; the ErrorResponder middleware renders them. Anything that
// is not an *Error falls back to 500 / DefaultMessage.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	if status == 0 {
		status = DefaultStatus
	}
	if message == "" {
		message = DefaultMessage
	}
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// From maps any error to the (status, message) pair the error view renders.
func From(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return DefaultStatus, DefaultMessage
}
