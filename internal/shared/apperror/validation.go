package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation converts a schema-validation failure into the 400 the responder
// renders. The message lists every violated field, comma-joined, so a payload
// missing three fields reports all three at once.
func Validation(err error) *Error {
	return BadRequest(ValidationMessage(err))
}

// ValidationMessage flattens ozzo's per-field errors into one message.
func ValidationMessage(err error) string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, verrs[field].Error()))
	}
	return strings.Join(parts, ", ")
}
