package exts

import (
	"errors"

	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorStatus picks the response status for an error returned by services.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func ToFiberError(err error) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	return fiber.NewError(ErrorStatus(err), err.Error())
}

// ErrorHandler renders every error as {"errors": "<message>"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	err = ToFiberError(err)

	var fe *fiber.Error
	errors.As(err, &fe)
	if fe.Code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
	}

	return c.Status(fe.Code).JSON(fiber.Map{
		"errors": fe.Message,
	})
}
