package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() BookForm {
	return BookForm{
		Title:       "Dune",
		Price:       "15",
		Genre:       "SciFi",
		Image:       "x.jpg",
		Description: "desert planet",
	}
}

func TestBookFormValidate(t *testing.T) {
	t.Run("valid payload accepted", func(t *testing.T) {
		assert.NoError(t, validForm().Validate())
	})

	t.Run("valid with optional location", func(t *testing.T) {
		form := validForm()
		form.Location = "Arrakis"
		assert.NoError(t, form.Validate())
	})

	t.Run("decimal price accepted", func(t *testing.T) {
		form := validForm()
		form.Price = "19.99"
		assert.NoError(t, form.Validate())
	})

	t.Run("zero price accepted", func(t *testing.T) {
		form := validForm()
		form.Price = "0"
		assert.NoError(t, form.Validate())
	})

	missing := map[string]func(*BookForm){
		"title":       func(f *BookForm) { f.Title = "" },
		"price":       func(f *BookForm) { f.Price = "" },
		"genre":       func(f *BookForm) { f.Genre = "" },
		"image":       func(f *BookForm) { f.Image = "" },
		"description": func(f *BookForm) { f.Description = "" },
	}
	for field, clear := range missing {
		t.Run("missing "+field+" rejected", func(t *testing.T) {
			form := validForm()
			clear(&form)
			err := form.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), field)
		})
	}

	t.Run("negative price rejected", func(t *testing.T) {
		form := validForm()
		form.Price = "-1"
		err := form.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("non-numeric price rejected", func(t *testing.T) {
		form := validForm()
		form.Price = "free"
		err := form.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("empty payload reports every field", func(t *testing.T) {
		err := BookForm{}.Validate()
		require.Error(t, err)
		for field := range missing {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestBookFormFromMap(t *testing.T) {
	form := BookFormFromMap(map[string]string{
		"title":       "Dune",
		"price":       "15",
		"genre":       "SciFi",
		"image":       "x.jpg",
		"description": "desert planet",
		"location":    "Arrakis",
	})

	assert.Equal(t, "Dune", form.Title)
	assert.Equal(t, "15", form.Price)
	assert.Equal(t, "Arrakis", form.Location)
}

func TestBookFormConversions(t *testing.T) {
	form := validForm()
	assert.True(t, form.PriceDecimal().Equal(form.PriceDecimal()))
	assert.Equal(t, "15", form.PriceDecimal().String())

	assert.Nil(t, form.OptionalLocation())
	form.Location = "Arrakis"
	require.NotNil(t, form.OptionalLocation())
	assert.Equal(t, "Arrakis", *form.OptionalLocation())
}
