package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"gorm.io/gorm"
)

var (
	tagColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	tagSlugPattern  = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func ListTag() ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Order("id ASC").Find(&tags).Error

	return tags, err
}

func GetTag(id uint) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where("id = ?", id).First(&tag).Error; err != nil {
		return tag, wrapQueryError(err, "tag")
	}
	return tag, nil
}

func NewTag(name, color, slug string) (models.Tag, error) {
	if !tagColorPattern.MatchString(color) {
		return models.Tag{}, newError(ErrValidation, "color must be a hex value like #49B64E")
	}
	if !tagSlugPattern.MatchString(slug) {
		return models.Tag{}, newError(ErrValidation, "slug may only contain letters, digits, hyphens and underscores")
	}

	tag := models.Tag{
		Name:  name,
		Color: strings.ToUpper(color),
		Slug:  slug,
	}

	if err := database.C.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return tag, newError(ErrValidation, "tag with this name, color or slug already exists")
		}
		return tag, err
	}
	return tag, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ListIngredient returns the catalog, narrowed to names starting with prefix
// when one is given. Wildcards in prefix match literally.
func ListIngredient(prefix string) ([]models.Ingredient, error) {
	tx := database.C
	if len(prefix) > 0 {
		pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	var ingredients []models.Ingredient
	err := tx.Order("name ASC").Find(&ingredients).Error

	return ingredients, err
}

func GetIngredient(id uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := database.C.Where("id = ?", id).First(&ingredient).Error; err != nil {
		return ingredient, wrapQueryError(err, "ingredient")
	}
	return ingredient, nil
}

func NewIngredient(name, measurementUnit string) (models.Ingredient, error) {
	ingredient := models.Ingredient{
		Name:            name,
		MeasurementUnit: measurementUnit,
	}

	err := database.C.Save(&ingredient).Error

	return ingredient, err
}
