package api

import (
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// recipesLimit reads ?recipes_limit=, absent or malformed values mean no cap.
func recipesLimit(c *fiber.Ctx) int {
	return c.QueryInt("recipes_limit", 0)
}

func listSubscriptions(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	pagination, err := exts.GetPagination(c)
	if err != nil {
		return err
	}

	count, err := services.CountUser(services.FilterUserWithSubscriber(database.C, user))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	authors, err := services.ListUser(
		services.FilterUserWithSubscriber(database.C, user),
		pagination.Limit,
		pagination.Offset(),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.CompleteUserWithRecipes(&user, recipesLimit(c), authors...)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return exts.PaginatedResponse(c, pagination, count, items)
}

func subscribeUser(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	author, err := services.SubscribeToUser(user, id, recipesLimit(c))
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(author)
}

func unsubscribeUser(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	if err := services.UnsubscribeFromUser(user, id); err != nil {
		return exts.ToFiberError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
