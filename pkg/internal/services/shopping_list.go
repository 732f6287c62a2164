package services

import (
	"fmt"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/pdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ShoppingListRow is one ingredient line of one recipe in the cart.
type ShoppingListRow struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

// ListShoppingListRows walks the cart of the user in insertion order and
// returns every ingredient row of the recipes in it.
func ListShoppingListRows(user models.User) ([]ShoppingListRow, error) {
	var rows []ShoppingListRow
	if err := database.C.Model(&models.IngredientInRecipe{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, ingredient_in_recipes.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = ingredient_in_recipes.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = ingredient_in_recipes.recipe_id").
		Where("shopping_carts.user_id = ?", user.ID).
		Order("shopping_carts.id ASC, ingredient_in_recipes.id ASC").
		Scan(&rows).Error; err != nil {
		return rows, fmt.Errorf("unable to load shopping cart: %v", err)
	}
	return rows, nil
}

// AggregateShoppingList sums rows sharing the same name and measurement unit.
// Keys compare verbatim and groups keep the order they were first seen in.
func AggregateShoppingList(rows []ShoppingListRow) []models.ShoppingListItem {
	type key struct {
		name string
		unit string
	}

	out := make([]models.ShoppingListItem, 0, len(rows))
	index := make(map[key]int, len(rows))
	for _, row := range rows {
		k := key{row.Name, row.MeasurementUnit}
		if at, ok := index[k]; ok {
			out[at].Amount += row.Amount
			continue
		}
		index[k] = len(out)
		out = append(out, models.ShoppingListItem{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	return out
}

func GetShoppingList(user models.User) ([]models.ShoppingListItem, error) {
	rows, err := ListShoppingListRows(user)
	if err != nil {
		return nil, err
	}
	return AggregateShoppingList(rows), nil
}

// RenderShoppingList builds the printable shopping list of the user.
func RenderShoppingList(user models.User) ([]byte, error) {
	items, err := GetShoppingList(user)
	if err != nil {
		return nil, err
	}

	out, err := pdf.RenderShoppingList(items, pdf.Options{
		FontPath:   viper.GetString("pdf.font_path"),
		FontFamily: viper.GetString("pdf.font_family"),
		FontSize:   viper.GetFloat64("pdf.font_size"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to render shopping list: %v", err)
	}

	log.Debug().Uint("user", user.ID).Int("items", len(items)).Int("size", len(out)).Msg("Shopping list rendered.")
	return out, nil
}
