package api

import (
	"github.com/foodgram/foodgram/pkg/internal/http/exts"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func login(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	token, err := services.Authenticate(data.Email, data.Password)
	if err != nil {
		return exts.ToFiberError(err)
	}

	return c.JSON(token)
}

func logout(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	key, _ := c.Locals("token").(string)

	if err := services.RevokeAuthToken(c.UserContext(), key); err != nil {
		return exts.ToFiberError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
