package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth/token").Name("Auth API")
		{
			auth.Post("/login", login)
			auth.Post("/logout", logout)
		}

		users := api.Group("/users").Name("Users API")
		{
			users.Get("/", listUser)
			users.Post("/", createUser)
			users.Get("/me", getCurrentUser)
			users.Post("/set_password", setPassword)
			users.Get("/subscriptions", listSubscriptions)
			users.Get("/:userId", getUser)
			users.Post("/:userId/subscribe", subscribeUser)
			users.Delete("/:userId/subscribe", unsubscribeUser)
		}

		tags := api.Group("/tags").Name("Tags API")
		{
			tags.Get("/", listTag)
			tags.Get("/:tagId", getTag)
		}

		ingredients := api.Group("/ingredients").Name("Ingredients API")
		{
			ingredients.Get("/", listIngredient)
			ingredients.Get("/:ingredientId", getIngredient)
		}

		recipes := api.Group("/recipes").Name("Recipes API")
		{
			recipes.Get("/", listRecipe)
			recipes.Post("/", createRecipe)
			recipes.Get("/download_shopping_cart", downloadShoppingCart)
			recipes.Get("/:recipeId", getRecipe)
			recipes.Patch("/:recipeId", editRecipe)
			recipes.Delete("/:recipeId", deleteRecipe)

			recipes.Post("/:recipeId/favorite", addFavorite)
			recipes.Delete("/:recipeId/favorite", removeFavorite)
			recipes.Post("/:recipeId/shopping_cart", addShoppingCart)
			recipes.Delete("/:recipeId/shopping_cart", removeShoppingCart)
		}
	}
}

// paramID reads a positive numeric path parameter. Anything else cannot name
// a record and is reported as not found.
func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key, 0)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return uint(id), nil
}
