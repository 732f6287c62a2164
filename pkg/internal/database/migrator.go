package database

import (
	"github.com/foodgram/foodgram/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.User{},
	&models.AuthToken{},
	&models.Tag{},
	&models.Ingredient{},
	&models.Recipe{},
	&models.IngredientInRecipe{},
	&models.Favorite{},
	&models.ShoppingCart{},
	&models.Subscription{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
