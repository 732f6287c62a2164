package services

import (
	"testing"

	"github.com/foodgram/foodgram/pkg/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	testutil.NewDatabase(t)

	tag, err := NewTag("Breakfast", "#e26c2d", "breakfast")
	require.NoError(t, err)
	require.Equal(t, "#E26C2D", tag.Color)

	_, err = NewTag("Lunch", "orange", "lunch")
	require.ErrorIs(t, err, ErrValidation)
	_, err = NewTag("Lunch", "#49B64E", "lunch time")
	require.ErrorIs(t, err, ErrValidation)
	_, err = NewTag("Breakfast", "#49B64E", "other")
	require.ErrorIs(t, err, ErrValidation)

	tags, err := ListTag()
	require.NoError(t, err)
	require.Len(t, tags, 1)

	_, err = GetTag(tag.ID + 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListIngredient(t *testing.T) {
	testutil.NewDatabase(t)
	for _, name := range []string{"sugar", "salt", "butter", "Sour cream"} {
		_, err := NewIngredient(name, "g")
		require.NoError(t, err)
	}

	items, err := ListIngredient("s")
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "Sour cream", items[0].Name)

	items, err = ListIngredient("")
	require.NoError(t, err)
	require.Len(t, items, 4)

	_, err = GetIngredient(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListIngredientMatchesWildcardsLiterally(t *testing.T) {
	testutil.NewDatabase(t)
	for _, name := range []string{"50%_cream", "50 cream", "5_spice", `a\b salt`} {
		_, err := NewIngredient(name, "g")
		require.NoError(t, err)
	}

	items, err := ListIngredient("%")
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = ListIngredient("_")
	require.NoError(t, err)
	require.Empty(t, items)

	items, err = ListIngredient("50%")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "50%_cream", items[0].Name)

	items, err = ListIngredient("5_")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "5_spice", items[0].Name)

	items, err = ListIngredient(`a\`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, `a\b salt`, items[0].Name)
}
