package api

import (
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func listUser(c *fiber.Ctx) error {
	pagination, err := exts.GetPagination(c)
	if err != nil {
		return err
	}

	count, err := services.CountUser(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListUser(database.C, pagination.Limit, pagination.Offset())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pointers := lo.Map(items, func(_ models.User, index int) *models.User {
		return &items[index]
	})
	if err := services.CompleteUserSubscribed(exts.GetCurrentUser(c), pointers...); err != nil {
		return exts.ToFiberError(err)
	}

	return exts.PaginatedResponse(c, pagination, count, items)
}

func createUser(c *fiber.Ctx) error {
	var data struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,max=150"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.NewUser(models.User{
		Email:     data.Email,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}, data.Password)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func getCurrentUser(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	return c.JSON(user)
}

func getUser(c *fiber.Ctx) error {
	id, err := paramID(c, "userId")
	if err != nil {
		return err
	}

	user, err := services.GetUser(id)
	if err != nil {
		return exts.ToFiberError(err)
	}
	if err := services.CompleteUserSubscribed(exts.GetCurrentUser(c), &user); err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(user)
}

func setPassword(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.User)

	var data struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,max=150"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	// Locals may hold the cached user, reload it with the password hash.
	user, err := services.GetUser(user.ID)
	if err != nil {
		return exts.ToFiberError(err)
	}
	if err := services.SetUserPassword(user, data.CurrentPassword, data.NewPassword); err != nil {
		return exts.ToFiberError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
