// Package testutil prepares an isolated database, cache and settings for
// package tests.
package testutil

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	pkg "github.com/foodgram/foodgram/pkg/internal"
	"github.com/foodgram/foodgram/pkg/internal/cache"
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const Password = "s3cret-pass"

// PNGDataURI is a payload that sniffs as image/png.
var PNGDataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(
	append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...),
)

// NewSettings installs the default settings with media stored in a
// temporary directory.
func NewSettings(t testing.TB) {
	t.Helper()

	pkg.SetSettingsDefaults()
	viper.Set("media.path", t.TempDir())
	viper.Set("security.token_ttl", time.Hour)
}

// NewDatabase opens a private in-memory SQLite database, migrates it and
// installs it as database.C together with a fresh cache store.
func NewDatabase(t testing.TB) *gorm.DB {
	t.Helper()

	NewSettings(t)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	source, err := db.DB()
	require.NoError(t, err)
	source.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = source.Close() })

	require.NoError(t, database.RunMigration(db))
	database.C = db

	require.NoError(t, cache.NewStore())

	return db
}

func NewUser(t testing.TB, username string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:     fmt.Sprintf("%s@example.com", username),
		Username:  username,
		FirstName: "Test",
		LastName:  username,
		Password:  string(hash),
		Role:      models.UserRoleUser,
	}
	require.NoError(t, database.C.Create(&user).Error)
	return user
}

func NewAdmin(t testing.TB, username string) models.User {
	t.Helper()

	user := NewUser(t, username)
	require.NoError(t, database.C.Model(&user).Update("role", models.UserRoleAdmin).Error)
	user.Role = models.UserRoleAdmin
	return user
}

// NewToken issues a token for the user and returns the Authorization header.
func NewToken(t testing.TB, user models.User) string {
	t.Helper()

	token := models.AuthToken{
		Key:       fmt.Sprintf("token%d%d", user.ID, time.Now().UnixNano()),
		UserID:    user.ID,
		ExpiredAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, database.C.Create(&token).Error)
	return "Token " + token.Key
}

func NewTag(t testing.TB, slug string) models.Tag {
	t.Helper()

	var count int64
	require.NoError(t, database.C.Model(&models.Tag{}).Count(&count).Error)

	tag := models.Tag{
		Name:  slug,
		Color: fmt.Sprintf("#%06X", count+1),
		Slug:  slug,
	}
	require.NoError(t, database.C.Create(&tag).Error)
	return tag
}

func NewIngredient(t testing.TB, name, unit string) models.Ingredient {
	t.Helper()

	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, database.C.Create(&ingredient).Error)
	return ingredient
}

type Amount struct {
	Ingredient models.Ingredient
	Amount     int
}

// NewRecipe stores a recipe with the ingredient rows in the given order.
func NewRecipe(t testing.TB, author models.User, name string, amounts ...Amount) models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Name:        name,
		Image:       "/media/recipes/placeholder.png",
		Text:        "Mix everything and bake.",
		CookingTime: 10,
		Language:    "en",
		AuthorID:    author.ID,
	}
	require.NoError(t, database.C.Omit(clause.Associations).Create(&recipe).Error)

	for _, item := range amounts {
		row := models.IngredientInRecipe{
			RecipeID:     recipe.ID,
			IngredientID: item.Ingredient.ID,
			Amount:       item.Amount,
		}
		require.NoError(t, database.C.Omit(clause.Associations).Create(&row).Error)
	}

	return recipe
}

func AddToCart(t testing.TB, user models.User, recipe models.Recipe) {
	t.Helper()

	require.NoError(t, database.C.Create(&models.ShoppingCart{UserID: user.ID, RecipeID: recipe.ID}).Error)
}
