package api

import (
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func addRecipeRelation(relation services.RecipeRelation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := exts.EnsureAuthenticated(c); err != nil {
			return err
		}
		user := c.Locals("user").(models.User)

		id, err := paramID(c, "recipeId")
		if err != nil {
			return err
		}

		recipe, err := services.AddRecipeRelation(user, id, relation)
		if err != nil {
			return exts.ToFiberError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(recipe)
	}
}

func removeRecipeRelation(relation services.RecipeRelation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := exts.EnsureAuthenticated(c); err != nil {
			return err
		}
		user := c.Locals("user").(models.User)

		id, err := paramID(c, "recipeId")
		if err != nil {
			return err
		}

		if err := services.RemoveRecipeRelation(user, id, relation); err != nil {
			return exts.ToFiberError(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

var (
	addFavorite        = addRecipeRelation(services.RecipeRelationFavorite)
	removeFavorite     = removeRecipeRelation(services.RecipeRelationFavorite)
	addShoppingCart    = addRecipeRelation(services.RecipeRelationShoppingCart)
	removeShoppingCart = removeRecipeRelation(services.RecipeRelationShoppingCart)
)

func downloadShoppingCart(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	out, err := services.RenderShoppingList(user)
	if err != nil {
		return exts.ToFiberError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="list_in_shop.pdf"`)
	return c.Send(out)
}
