package api

import (
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listTag(c *fiber.Ctx) error {
	tags, err := services.ListTag()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(tags)
}

func getTag(c *fiber.Ctx) error {
	id, err := paramID(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(id)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(tag)
}

func listIngredient(c *fiber.Ctx) error {
	ingredients, err := services.ListIngredient(c.Query("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(ingredients)
}

func getIngredient(c *fiber.Ctx) error {
	id, err := paramID(c, "ingredientId")
	if err != nil {
		return err
	}

	ingredient, err := services.GetIngredient(id)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(ingredient)
}
