package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// BookForm is the nested "books" object of a create/update payload. Fields
// arrive as strings from the HTML form and are checked before anything
// touches the store.
type BookForm struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// BookFormFromMap builds a form from the parsed "books[...]" fields.
func BookFormFromMap(m map[string]string) BookForm {
	return BookForm{
		Title:       m["title"],
		Price:       m["price"],
		Genre:       m["genre"],
		Image:       m["image"],
		Description: m["description"],
		Location:    m["location"],
	}
}

func (f BookForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("is required")),
		validation.Field(&f.Price,
			validation.Required.Error("is required"),
			validation.By(nonNegativeNumber),
		),
		validation.Field(&f.Genre, validation.Required.Error("is required")),
		validation.Field(&f.Image, validation.Required.Error("is required")),
		validation.Field(&f.Description, validation.Required.Error("is required")),
	)
}

// PriceDecimal converts the validated price field. Call only after Validate.
func (f BookForm) PriceDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(f.Price)
	return d
}

// OptionalLocation maps the empty form field to a NULL column.
func (f BookForm) OptionalLocation() *string {
	if f.Location == "" {
		return nil
	}
	loc := f.Location
	return &loc
}

func nonNegativeNumber(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required reports the blank case
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if d.IsNegative() {
		return errors.New("must be greater than or equal to 0")
	}
	return nil
}
