package services

import (
	"bytes"
	"testing"

	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestAggregateShoppingList(t *testing.T) {
	items := AggregateShoppingList([]ShoppingListRow{
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "flour", MeasurementUnit: "g", Amount: 100},
		{Name: "flour", MeasurementUnit: "kg", Amount: 1},
		{Name: "Flour", MeasurementUnit: "g", Amount: 5},
	})

	require.Equal(t, []models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "flour", MeasurementUnit: "kg", Amount: 1},
		{Name: "Flour", MeasurementUnit: "g", Amount: 5},
	}, items)
}

func TestAggregateShoppingListEmpty(t *testing.T) {
	require.Empty(t, AggregateShoppingList(nil))
}

func TestGetShoppingList(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	user := testutil.NewUser(t, "alice")

	flour := testutil.NewIngredient(t, "flour", "g")
	sugar := testutil.NewIngredient(t, "sugar", "g")
	egg := testutil.NewIngredient(t, "egg", "pcs")

	cake := testutil.NewRecipe(t, author, "Cake",
		testutil.Amount{Ingredient: flour, Amount: 200},
		testutil.Amount{Ingredient: sugar, Amount: 50},
	)
	bread := testutil.NewRecipe(t, author, "Bread",
		testutil.Amount{Ingredient: flour, Amount: 100},
		testutil.Amount{Ingredient: egg, Amount: 2},
	)
	water := testutil.NewRecipe(t, author, "Water")
	other := testutil.NewRecipe(t, author, "Other",
		testutil.Amount{Ingredient: egg, Amount: 12},
	)

	testutil.AddToCart(t, user, cake)
	testutil.AddToCart(t, user, bread)
	testutil.AddToCart(t, user, water)
	testutil.AddToCart(t, author, other)

	items, err := GetShoppingList(user)
	require.NoError(t, err)
	require.Equal(t, []models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "egg", MeasurementUnit: "pcs", Amount: 2},
	}, items)

	out, err := RenderShoppingList(user)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGetShoppingListEmptyCart(t *testing.T) {
	testutil.NewDatabase(t)
	user := testutil.NewUser(t, "alice")

	items, err := GetShoppingList(user)
	require.NoError(t, err)
	require.Empty(t, items)

	out, err := RenderShoppingList(user)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
