package admin

import (
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createTag(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Name  string `json:"name" validate:"required,max=200"`
		Color string `json:"color" validate:"required"`
		Slug  string `json:"slug" validate:"required,max=200"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err := services.NewTag(data.Name, data.Color, data.Slug)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

func createIngredient(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Name            string `json:"name" validate:"required,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	ingredient, err := services.NewIngredient(data.Name, data.MeasurementUnit)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(ingredient)
}
