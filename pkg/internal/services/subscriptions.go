package services

import (
	"errors"
	"fmt"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscribeToUser makes user follow the author and returns the author card
// with up to recipesLimit recipes, a non positive limit means no cap.
func SubscribeToUser(user models.User, authorID uint, recipesLimit int) (models.UserWithRecipes, error) {
	author, err := GetUser(authorID)
	if err != nil {
		return models.UserWithRecipes{}, err
	}
	if author.ID == user.ID {
		return models.UserWithRecipes{}, newError(ErrConflict, "you cannot subscribe to yourself")
	}

	tx := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Subscription{UserID: user.ID, AuthorID: author.ID})
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return models.UserWithRecipes{}, newError(ErrConflict, "you are already subscribed to this author")
		}
		return models.UserWithRecipes{}, fmt.Errorf("unable to subscribe: %v", tx.Error)
	} else if tx.RowsAffected == 0 {
		return models.UserWithRecipes{}, newError(ErrConflict, "you are already subscribed to this author")
	}

	log.Debug().Uint("user", user.ID).Uint("author", author.ID).Msg("Subscribed to author.")

	out, err := CompleteUserWithRecipes(&user, recipesLimit, author)
	if err != nil || len(out) == 0 {
		return models.UserWithRecipes{User: author}, err
	}
	return out[0], nil
}

func UnsubscribeFromUser(user models.User, authorID uint) error {
	author, err := GetUser(authorID)
	if err != nil {
		return err
	}

	tx := database.C.
		Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Subscription{})
	if tx.Error != nil {
		return fmt.Errorf("unable to unsubscribe: %v", tx.Error)
	} else if tx.RowsAffected == 0 {
		return newError(ErrConflict, "you are not subscribed to this author")
	}

	log.Debug().Uint("user", user.ID).Uint("author", author.ID).Msg("Unsubscribed from author.")
	return nil
}

func FilterUserWithSubscriber(tx *gorm.DB, user models.User) *gorm.DB {
	sub := database.C.Model(&models.Subscription{}).
		Select("author_id").
		Where("user_id = ?", user.ID)
	return tx.Where("id IN (?)", sub)
}

type recipeCount struct {
	AuthorID uint
	Count    int64
}

// CompleteUserWithRecipes attaches recipe counts and the newest recipes of
// every user, capped by recipesLimit when it is positive.
func CompleteUserWithRecipes(viewer *models.User, recipesLimit int, users ...models.User) ([]models.UserWithRecipes, error) {
	if len(users) == 0 {
		return []models.UserWithRecipes{}, nil
	}

	idx := lo.Map(users, func(item models.User, _ int) uint {
		return item.ID
	})

	var counts []recipeCount
	if err := database.C.Model(&models.Recipe{}).
		Select("author_id, COUNT(id) AS count").
		Where("author_id IN ?", idx).
		Group("author_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("unable to count recipes: %v", err)
	}
	countMap := lo.SliceToMap(counts, func(item recipeCount) (uint, int64) {
		return item.AuthorID, item.Count
	})

	var recipes []models.Recipe
	if err := database.C.
		Where("author_id IN ?", idx).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("unable to load recipes: %v", err)
	}
	recipeMap := lo.GroupBy(recipes, func(item models.Recipe) uint {
		return item.AuthorID
	})

	pointers := lo.Map(users, func(_ models.User, index int) *models.User {
		return &users[index]
	})
	if err := CompleteUserSubscribed(viewer, pointers...); err != nil {
		return nil, err
	}

	out := lo.Map(users, func(item models.User, _ int) models.UserWithRecipes {
		owned := recipeMap[item.ID]
		if recipesLimit > 0 && len(owned) > recipesLimit {
			owned = owned[:recipesLimit]
		}
		return models.UserWithRecipes{
			User: item,
			Recipes: lo.Map(owned, func(recipe models.Recipe, _ int) models.RecipeMinified {
				return recipe.Minify()
			}),
			RecipesCount: countMap[item.ID],
		}
	})

	return out, nil
}
