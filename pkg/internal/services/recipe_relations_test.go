package services

import (
	"testing"

	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddRecipeRelation(t *testing.T) {
	testutil.NewDatabase(t)

	for _, relation := range []RecipeRelation{RecipeRelationFavorite, RecipeRelationShoppingCart} {
		t.Run(relation.String(), func(t *testing.T) {
			author := testutil.NewUser(t, "author_"+relation.String()[:3])
			user := testutil.NewUser(t, "user_"+relation.String()[:3])
			recipe := testutil.NewRecipe(t, author, "Pancakes")

			out, err := AddRecipeRelation(user, recipe.ID, relation)
			require.NoError(t, err)
			require.Equal(t, recipe.Minify(), out)

			_, err = AddRecipeRelation(user, recipe.ID, relation)
			require.ErrorIs(t, err, ErrConflict)

			count, err := CountRecipeRelation(user, relation)
			require.NoError(t, err)
			require.EqualValues(t, 1, count)
		})
	}
}

func TestAddRecipeRelationMissingRecipe(t *testing.T) {
	testutil.NewDatabase(t)
	user := testutil.NewUser(t, "alice")

	_, err := AddRecipeRelation(user, 42, RecipeRelationFavorite)
	require.ErrorIs(t, err, ErrNotFound)

	count, err := CountRecipeRelation(user, RecipeRelationFavorite)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRemoveRecipeRelation(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	user := testutil.NewUser(t, "alice")
	recipe := testutil.NewRecipe(t, author, "Pancakes")

	err := RemoveRecipeRelation(user, recipe.ID, RecipeRelationShoppingCart)
	require.ErrorIs(t, err, ErrConflict)

	_, err = AddRecipeRelation(user, recipe.ID, RecipeRelationShoppingCart)
	require.NoError(t, err)
	require.NoError(t, RemoveRecipeRelation(user, recipe.ID, RecipeRelationShoppingCart))

	count, err := CountRecipeRelation(user, RecipeRelationShoppingCart)
	require.NoError(t, err)
	require.Zero(t, count)

	err = RemoveRecipeRelation(user, 4242, RecipeRelationShoppingCart)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeRelationsAreIndependent(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	alice := testutil.NewUser(t, "alice")
	bob := testutil.NewUser(t, "bob")
	recipe := testutil.NewRecipe(t, author, "Pancakes")

	_, err := AddRecipeRelation(alice, recipe.ID, RecipeRelationFavorite)
	require.NoError(t, err)
	_, err = AddRecipeRelation(bob, recipe.ID, RecipeRelationFavorite)
	require.NoError(t, err)
	_, err = AddRecipeRelation(alice, recipe.ID, RecipeRelationShoppingCart)
	require.NoError(t, err)

	require.NoError(t, RemoveRecipeRelation(alice, recipe.ID, RecipeRelationFavorite))

	members, err := ListRecipeRelationMembers(bob, RecipeRelationFavorite, []uint{recipe.ID})
	require.NoError(t, err)
	require.Equal(t, []uint{recipe.ID}, members)

	members, err = ListRecipeRelationMembers(alice, RecipeRelationShoppingCart, []uint{recipe.ID})
	require.NoError(t, err)
	require.Equal(t, []uint{recipe.ID}, members)
}

func TestFilterRecipeWithRelation(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	user := testutil.NewUser(t, "alice")
	liked := testutil.NewRecipe(t, author, "Liked")
	testutil.NewRecipe(t, author, "Other")

	_, err := AddRecipeRelation(user, liked.ID, RecipeRelationFavorite)
	require.NoError(t, err)

	items, err := ListRecipe(FilterRecipeWithRelation(database.C, &user, RecipeRelationFavorite), 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, liked.ID, items[0].ID)

	items, err = ListRecipe(FilterRecipeWithRelation(database.C, nil, RecipeRelationFavorite), 10, 0)
	require.NoError(t, err)
	require.Empty(t, items)

	require.NoError(t, CompleteRecipeMeta(&user, &liked))
	require.True(t, liked.IsFavorited)
	require.False(t, liked.IsInShoppingCart)

	other := models.Recipe{}
	require.NoError(t, database.C.Where("name = ?", "Other").First(&other).Error)
	require.NoError(t, CompleteRecipeMeta(&user, &other))
	require.False(t, other.IsFavorited)
}

func TestUnknownRecipeRelationPanics(t *testing.T) {
	relation := RecipeRelation(99)
	require.Equal(t, "relation#99", relation.String())

	require.Panics(t, func() { relation.model() })
	require.Panics(t, func() { relation.newRecord(1, 1) })

	require.IsType(t, &models.Favorite{}, RecipeRelationFavorite.model())
	require.IsType(t, &models.ShoppingCart{}, RecipeRelationShoppingCart.model())
}

func TestRecipeRelationUniqueIndex(t *testing.T) {
	testutil.NewDatabase(t)
	author := testutil.NewUser(t, "author")
	user := testutil.NewUser(t, "alice")
	recipe := testutil.NewRecipe(t, author, "Pancakes")

	require.NoError(t, database.C.Create(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error)
	err := database.C.Create(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, database.C.Create(&models.ShoppingCart{UserID: user.ID, RecipeID: recipe.ID}).Error)
	err = database.C.Create(&models.ShoppingCart{UserID: user.ID, RecipeID: recipe.ID}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	for _, relation := range []RecipeRelation{RecipeRelationFavorite, RecipeRelationShoppingCart} {
		count, err := CountRecipeRelation(user, relation)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	}
}
