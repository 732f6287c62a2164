package services

import (
	"errors"
	"fmt"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRelation selects which user to recipe junction a toggle works on.
type RecipeRelation int

const (
	RecipeRelationFavorite RecipeRelation = iota
	RecipeRelationShoppingCart
)

func (v RecipeRelation) String() string {
	switch v {
	case RecipeRelationFavorite:
		return "favorites"
	case RecipeRelationShoppingCart:
		return "shopping cart"
	default:
		return fmt.Sprintf("relation#%d", int(v))
	}
}

// model and newRecord panic on a relation without a table, writing to the
// wrong junction is worse than failing the request.
func (v RecipeRelation) model() any {
	switch v {
	case RecipeRelationFavorite:
		return &models.Favorite{}
	case RecipeRelationShoppingCart:
		return &models.ShoppingCart{}
	default:
		panic(fmt.Sprintf("unknown recipe relation: %s", v))
	}
}

func (v RecipeRelation) newRecord(user, recipe uint) any {
	switch v {
	case RecipeRelationFavorite:
		return &models.Favorite{UserID: user, RecipeID: recipe}
	case RecipeRelationShoppingCart:
		return &models.ShoppingCart{UserID: user, RecipeID: recipe}
	default:
		panic(fmt.Sprintf("unknown recipe relation: %s", v))
	}
}

// AddRecipeRelation links the recipe to the user. The insert is atomic, a
// second add of the same pair reports ErrConflict and leaves a single row.
func AddRecipeRelation(user models.User, recipeID uint, relation RecipeRelation) (models.RecipeMinified, error) {
	recipe, err := getRecipeMinimal(recipeID)
	if err != nil {
		return models.RecipeMinified{}, err
	}

	tx := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(relation.newRecord(user.ID, recipe.ID))
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return recipe.Minify(), newError(ErrConflict, "recipe is already added to %s", relation)
		}
		return recipe.Minify(), fmt.Errorf("unable to add recipe to %s: %v", relation, tx.Error)
	} else if tx.RowsAffected == 0 {
		return recipe.Minify(), newError(ErrConflict, "recipe is already added to %s", relation)
	}

	log.Debug().Uint("user", user.ID).Uint("recipe", recipe.ID).Stringer("relation", relation).Msg("Recipe relation added.")
	return recipe.Minify(), nil
}

// RemoveRecipeRelation unlinks the recipe from the user. Removing a pair that
// does not exist reports ErrConflict.
func RemoveRecipeRelation(user models.User, recipeID uint, relation RecipeRelation) error {
	recipe, err := getRecipeMinimal(recipeID)
	if err != nil {
		return err
	}

	tx := database.C.
		Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).
		Delete(relation.model())
	if tx.Error != nil {
		return fmt.Errorf("unable to remove recipe from %s: %v", relation, tx.Error)
	} else if tx.RowsAffected == 0 {
		return newError(ErrConflict, "recipe is not in %s", relation)
	}

	log.Debug().Uint("user", user.ID).Uint("recipe", recipe.ID).Stringer("relation", relation).Msg("Recipe relation removed.")
	return nil
}

func CountRecipeRelation(user models.User, relation RecipeRelation) (int64, error) {
	var count int64
	if err := database.C.Model(relation.model()).
		Where("user_id = ?", user.ID).
		Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

// ListRecipeRelationMembers returns which of the given recipes the user has in
// the relation.
func ListRecipeRelationMembers(user models.User, relation RecipeRelation, recipes []uint) ([]uint, error) {
	var idx []uint
	if len(recipes) == 0 {
		return idx, nil
	}
	if err := database.C.Model(relation.model()).
		Where("user_id = ? AND recipe_id IN ?", user.ID, recipes).
		Pluck("recipe_id", &idx).Error; err != nil {
		return idx, fmt.Errorf("unable to load %s: %v", relation, err)
	}
	return idx, nil
}

// FilterRecipeWithRelation narrows a recipe query to the recipes the user has
// in the relation. Anonymous users match nothing.
func FilterRecipeWithRelation(tx *gorm.DB, user *models.User, relation RecipeRelation) *gorm.DB {
	if user == nil {
		return tx.Where("1 = 0")
	}

	sub := database.C.Model(relation.model()).
		Select("recipe_id").
		Where("user_id = ?", user.ID)
	return tx.Where("id IN (?)", sub)
}
