package api

import (
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type recipeRequest struct {
	Name        *string                          `json:"name" validate:"omitempty,max=200"`
	Text        *string                          `json:"text"`
	Image       *string                          `json:"image"`
	CookingTime *int                             `json:"cooking_time" validate:"omitempty,min=1"`
	Tags        []uint                           `json:"tags"`
	Ingredients []services.RecipeIngredientInput `json:"ingredients" validate:"omitempty,dive"`
}

func (v recipeRequest) toInput() services.RecipeInput {
	return services.RecipeInput{
		Name:        v.Name,
		Text:        v.Text,
		Image:       v.Image,
		CookingTime: v.CookingTime,
		Tags:        v.Tags,
		Ingredients: v.Ingredients,
	}
}

func universalRecipeFilter(c *fiber.Ctx, tx *gorm.DB) *gorm.DB {
	user := exts.GetCurrentUser(c)

	var slugs []string
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		slugs = append(slugs, string(slug))
	}
	tx = services.FilterRecipeWithTags(tx, lo.Uniq(slugs))

	if author := c.QueryInt("author", 0); author > 0 {
		tx = services.FilterRecipeWithAuthor(tx, uint(author))
	}
	if c.QueryBool("is_favorited", false) {
		tx = services.FilterRecipeWithRelation(tx, user, services.RecipeRelationFavorite)
	}
	if c.QueryBool("is_in_shopping_cart", false) {
		tx = services.FilterRecipeWithRelation(tx, user, services.RecipeRelationShoppingCart)
	}

	return tx
}

func listRecipe(c *fiber.Ctx) error {
	pagination, err := exts.GetPagination(c)
	if err != nil {
		return err
	}

	count, err := services.CountRecipe(universalRecipeFilter(c, database.C))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListRecipe(universalRecipeFilter(c, database.C), pagination.Limit, pagination.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pointers := lo.Map(items, func(_ models.Recipe, index int) *models.Recipe {
		return &items[index]
	})
	if err := services.CompleteRecipeMeta(exts.GetCurrentUser(c), pointers...); err != nil {
		return exts.ToFiberError(err)
	}

	return exts.PaginatedResponse(c, pagination, count, items)
}

func getRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "recipeId")
	if err != nil {
		return err
	}

	item, err := services.GetRecipe(id)
	if err != nil {
		return exts.ToFiberError(err)
	}
	if err := services.CompleteRecipeMeta(exts.GetCurrentUser(c), &item); err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(item)
}

func createRecipe(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	var data recipeRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewRecipe(user, data.toInput())
	if err != nil {
		return exts.ToFiberError(err)
	}
	if err := services.CompleteRecipeMeta(&user, &item); err != nil {
		return exts.ToFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editRecipe(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	id, err := paramID(c, "recipeId")
	if err != nil {
		return err
	}

	var data recipeRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetRecipe(id)
	if err != nil {
		return exts.ToFiberError(err)
	}

	if item, err = services.EditRecipe(user, item, data.toInput()); err != nil {
		return exts.ToFiberError(err)
	}
	if err := services.CompleteRecipeMeta(&user, &item); err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(item)
}

func deleteRecipe(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	id, err := paramID(c, "recipeId")
	if err != nil {
		return err
	}

	item, err := services.GetRecipe(id)
	if err != nil {
		return exts.ToFiberError(err)
	}

	if err := services.DeleteRecipe(user, item); err != nil {
		return exts.ToFiberError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
