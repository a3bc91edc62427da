package model

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewFormValidate(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		t.Run("rating "+strconv.Itoa(rating)+" accepted", func(t *testing.T) {
			form := ReviewForm{Rating: strconv.Itoa(rating), Body: "great read"}
			assert.NoError(t, form.Validate())
		})
	}

	t.Run("rating below range rejected", func(t *testing.T) {
		err := ReviewForm{Rating: "0", Body: "meh"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rating")
	})

	t.Run("rating above range rejected", func(t *testing.T) {
		err := ReviewForm{Rating: "6", Body: "too good"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rating")
	})

	t.Run("non-numeric rating rejected", func(t *testing.T) {
		err := ReviewForm{Rating: "five", Body: "words"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rating")
	})

	t.Run("missing body rejected", func(t *testing.T) {
		err := ReviewForm{Rating: "3"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body")
	})

	t.Run("missing rating rejected", func(t *testing.T) {
		err := ReviewForm{Body: "no stars"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rating")
	})
}

func TestReviewFormFromMap(t *testing.T) {
	form := ReviewFormFromMap(map[string]string{"rating": "4", "body": "solid"})
	assert.Equal(t, "4", form.Rating)
	assert.Equal(t, "solid", form.Body)
	assert.Equal(t, 4, form.RatingInt())
}
