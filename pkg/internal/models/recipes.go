package models

import jsoniter "github.com/json-iterator/go"

type Recipe struct {
	BaseModel

	Name        string `json:"name" gorm:"size:200"`
	Image       string `json:"image"`
	Text        string `json:"text"`
	CookingTime int    `json:"cooking_time"`
	Language    string `json:"language"`

	AuthorID uint `json:"-" gorm:"index"`
	Author   User `json:"author"`

	Tags        []Tag                `json:"tags" gorm:"many2many:recipe_tags"`
	Ingredients []IngredientInRecipe `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`

	IsFavorited      bool `json:"is_favorited" gorm:"-"`
	IsInShoppingCart bool `json:"is_in_shopping_cart" gorm:"-"`
}

func (v Recipe) Minify() RecipeMinified {
	return RecipeMinified{
		ID:          v.ID,
		Name:        v.Name,
		Image:       v.Image,
		CookingTime: v.CookingTime,
	}
}

type RecipeMinified struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// IngredientInRecipe holds the amount of one ingredient in one recipe.
// A recipe references each ingredient at most once.
type IngredientInRecipe struct {
	ID           uint       `gorm:"primaryKey"`
	RecipeID     uint       `gorm:"uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `gorm:"uniqueIndex:idx_recipe_ingredient"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE"`
	Amount       int
}

func (v IngredientInRecipe) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}{
		ID:              v.IngredientID,
		Name:            v.Ingredient.Name,
		MeasurementUnit: v.Ingredient.MeasurementUnit,
		Amount:          v.Amount,
	})
}

type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}
