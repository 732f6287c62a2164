package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeIngredientInput struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount" validate:"min=1"`
}

// RecipeInput describes a recipe write. Nil fields are left untouched on edit,
// and a nil Tags or Ingredients list keeps the current set.
type RecipeInput struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	Tags        []uint
	Ingredients []RecipeIngredientInput
}

func FilterRecipeWithTags(tx *gorm.DB, slugs []string) *gorm.DB {
	if len(slugs) == 0 {
		return tx
	}

	sub := database.C.Table("recipe_tags").
		Select("recipe_tags.recipe_id").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("tags.slug IN ?", slugs)
	return tx.Where("id IN (?)", sub)
}

func FilterRecipeWithAuthor(tx *gorm.DB, author uint) *gorm.DB {
	return tx.Where("author_id = ?", author)
}

func PreloadRecipeGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func GetRecipe(id uint) (models.Recipe, error) {
	var item models.Recipe
	if err := PreloadRecipeGeneral(database.C).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, wrapQueryError(err, "recipe")
	}
	return item, nil
}

// getRecipeMinimal only loads the recipe columns, enough for existence checks
// and the short representation.
func getRecipeMinimal(id uint) (models.Recipe, error) {
	var item models.Recipe
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return item, wrapQueryError(err, "recipe")
	}
	return item, nil
}

func CountRecipe(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

func ListRecipe(tx *gorm.DB, take int, offset int) ([]models.Recipe, error) {
	var items []models.Recipe
	if err := PreloadRecipeGeneral(tx).
		Limit(take).Offset(offset).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

// CompleteRecipeMeta fills the viewer dependent flags of the recipes and
// their authors.
func CompleteRecipeMeta(viewer *models.User, items ...*models.Recipe) error {
	if viewer == nil || len(items) == 0 {
		return nil
	}

	idx := lo.Map(items, func(item *models.Recipe, _ int) uint {
		return item.ID
	})

	favorites, err := ListRecipeRelationMembers(*viewer, RecipeRelationFavorite, idx)
	if err != nil {
		return err
	}
	carts, err := ListRecipeRelationMembers(*viewer, RecipeRelationShoppingCart, idx)
	if err != nil {
		return err
	}

	for _, item := range items {
		item.IsFavorited = lo.Contains(favorites, item.ID)
		item.IsInShoppingCart = lo.Contains(carts, item.ID)
	}

	authors := lo.Map(items, func(item *models.Recipe, _ int) *models.User {
		return &item.Author
	})
	return CompleteUserSubscribed(viewer, authors...)
}

func validateRecipeInput(data RecipeInput, partial bool) error {
	if !partial {
		if data.Name == nil || data.Text == nil || data.Image == nil || data.CookingTime == nil {
			return newError(ErrValidation, "name, text, image and cooking_time are required")
		}
		if data.Tags == nil || data.Ingredients == nil {
			return newError(ErrValidation, "tags and ingredients are required")
		}
	}

	if data.Name != nil {
		if len(strings.TrimSpace(*data.Name)) == 0 || utf8.RuneCountInString(*data.Name) > 200 {
			return newError(ErrValidation, "name must be between 1 and 200 characters")
		}
	}
	if data.Text != nil && len(strings.TrimSpace(*data.Text)) == 0 {
		return newError(ErrValidation, "text cannot be empty")
	}
	if data.CookingTime != nil && *data.CookingTime < 1 {
		return newError(ErrValidation, "cooking time must be at least 1 minute")
	}

	if data.Tags != nil {
		if len(data.Tags) == 0 {
			return newError(ErrValidation, "choose at least one tag")
		}
		if len(lo.FindDuplicates(data.Tags)) > 0 {
			return newError(ErrValidation, "tags must be unique")
		}

		var count int64
		if err := database.C.Model(&models.Tag{}).Where("id IN ?", data.Tags).Count(&count).Error; err != nil {
			return err
		} else if count != int64(len(data.Tags)) {
			return newError(ErrValidation, "some of the tags do not exist")
		}
	}

	if data.Ingredients != nil {
		if len(data.Ingredients) == 0 {
			return newError(ErrValidation, "add at least one ingredient")
		}
		for _, ingredient := range data.Ingredients {
			if ingredient.Amount < 1 {
				return newError(ErrValidation, "amount of an ingredient must be at least 1")
			}
		}

		idx := lo.Map(data.Ingredients, func(item RecipeIngredientInput, _ int) uint {
			return item.ID
		})
		if len(lo.FindDuplicates(idx)) > 0 {
			return newError(ErrValidation, "ingredients must be unique")
		}

		var count int64
		if err := database.C.Model(&models.Ingredient{}).Where("id IN ?", idx).Count(&count).Error; err != nil {
			return err
		} else if count != int64(len(idx)) {
			return newError(ErrValidation, "some of the ingredients do not exist")
		}
	}

	return nil
}

func replaceRecipeRelations(tx *gorm.DB, item *models.Recipe, data RecipeInput) error {
	if data.Tags != nil {
		var tags []models.Tag
		if err := tx.Where("id IN ?", data.Tags).Find(&tags).Error; err != nil {
			return err
		}
		if err := tx.Model(item).Association("Tags").Replace(tags); err != nil {
			return fmt.Errorf("unable to update tags: %v", err)
		}
	}

	if data.Ingredients != nil {
		if err := tx.Where("recipe_id = ?", item.ID).Delete(&models.IngredientInRecipe{}).Error; err != nil {
			return err
		}
		rows := lo.Map(data.Ingredients, func(in RecipeIngredientInput, _ int) models.IngredientInRecipe {
			return models.IngredientInRecipe{
				RecipeID:     item.ID,
				IngredientID: in.ID,
				Amount:       in.Amount,
			}
		})
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return fmt.Errorf("unable to update ingredients: %v", err)
		}
	}

	return nil
}

func NewRecipe(author models.User, data RecipeInput) (models.Recipe, error) {
	if err := validateRecipeInput(data, false); err != nil {
		return models.Recipe{}, err
	}

	image, err := SaveRecipeImage(*data.Image)
	if err != nil {
		return models.Recipe{}, err
	}

	item := models.Recipe{
		Name:        *data.Name,
		Text:        *data.Text,
		Image:       image,
		CookingTime: *data.CookingTime,
		Language:    DetectLanguage(*data.Text),
		AuthorID:    author.ID,
	}

	log.Debug().Uint("author", author.ID).Str("name", item.Name).Msg("Creating a recipe...")
	start := time.Now()

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			return err
		}
		return replaceRecipeRelations(tx, &item, data)
	}); err != nil {
		DeleteMediaFile(image)
		return item, err
	}

	log.Debug().Uint("id", item.ID).Dur("elapsed", time.Since(start)).Msg("The recipe is created.")
	return GetRecipe(item.ID)
}

func EnsureRecipeEditable(user models.User, item models.Recipe) error {
	if item.AuthorID != user.ID && !user.IsAdmin() {
		return newError(ErrForbidden, "only the author can modify this recipe")
	}
	return nil
}

func EditRecipe(user models.User, item models.Recipe, data RecipeInput) (models.Recipe, error) {
	if err := EnsureRecipeEditable(user, item); err != nil {
		return item, err
	}
	if err := validateRecipeInput(data, true); err != nil {
		return item, err
	}

	oldImage := item.Image
	var newImage string
	if data.Image != nil {
		var err error
		if newImage, err = SaveRecipeImage(*data.Image); err != nil {
			return item, err
		}
		item.Image = newImage
	}
	if data.Name != nil {
		item.Name = *data.Name
	}
	if data.Text != nil {
		item.Text = *data.Text
		item.Language = DetectLanguage(item.Text)
	}
	if data.CookingTime != nil {
		item.CookingTime = *data.CookingTime
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}
		return replaceRecipeRelations(tx, &item, data)
	}); err != nil {
		if len(newImage) > 0 {
			DeleteMediaFile(newImage)
		}
		return item, err
	}

	if len(newImage) > 0 {
		DeleteMediaFile(oldImage)
	}

	return GetRecipe(item.ID)
}

func DeleteRecipe(user models.User, item models.Recipe) error {
	if err := EnsureRecipeEditable(user, item); err != nil {
		return err
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Favorite{},
			&models.ShoppingCart{},
			&models.IngredientInRecipe{},
		} {
			if err := tx.Where("recipe_id = ?", item.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&item).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, item.ID).Error
	}); err != nil {
		return err
	}

	DeleteMediaFile(item.Image)
	return nil
}
