package model

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ReviewForm is the nested "review" object of an add-review payload.
type ReviewForm struct {
	Rating string `json:"rating"`
	Body   string `json:"body"`
}

// ReviewFormFromMap builds a form from the parsed "review[...]" fields.
func ReviewFormFromMap(m map[string]string) ReviewForm {
	return ReviewForm{
		Rating: m["rating"],
		Body:   m["body"],
	}
}

func (f ReviewForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Rating,
			validation.Required.Error("is required"),
			validation.By(ratingInRange),
		),
		validation.Field(&f.Body, validation.Required.Error("is required")),
	)
}

// RatingInt converts the validated rating field. Call only after Validate.
func (f ReviewForm) RatingInt() int {
	n, _ := strconv.Atoi(f.Rating)
	return n
}

func ratingInRange(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required reports the blank case
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if n < MinRating || n > MaxRating {
		return errors.New("must be between 1 and 5")
	}
	return nil
}
