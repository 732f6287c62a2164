package exts

import (
	"strings"

	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware resolves the Authorization header into the current user.
// Requests without credentials pass through anonymously.
func AuthMiddleware(c *fiber.Ctx) error {
	key, ok := parseAuthorization(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return c.Next()
	}

	user, err := services.GetUserByToken(c.UserContext(), key)
	if err != nil {
		log.Debug().Err(err).Msg("Rejected an authorization header.")
		return ToFiberError(err)
	}

	c.Locals("user", user)
	c.Locals("token", key)

	return c.Next()
}

func parseAuthorization(header string) (string, bool) {
	scheme, key, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	switch strings.ToLower(scheme) {
	case "token", "bearer":
		key = strings.TrimSpace(key)
		return key, len(key) > 0
	default:
		return "", false
	}
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.User); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication credentials were not provided")
	}
	return nil
}

func EnsureAdmin(c *fiber.Ctx) error {
	if err := EnsureAuthenticated(c); err != nil {
		return err
	}
	if user := c.Locals("user").(models.User); !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "you do not have permission to perform this action")
	}
	return nil
}

// GetCurrentUser returns the caller or nil when the request is anonymous.
func GetCurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(models.User); ok {
		return &user
	}
	return nil
}
