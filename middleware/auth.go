package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"truleadai/config"
	"truleadai/store"
	"truleadai/utils"
)

// Protected loads the demo session user named by the X-User-ID header into
// the request context. There is no real authentication on this platform;
// the header stands in for a session token.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "X-User-ID header required",
			})
		}

		user, err := store.LoadUser(config.KV, userID)
		if err != nil {
			if errors.Is(err, store.ErrCorrupt) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Stored user record is corrupt", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load user", err)
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found, log in first",
			})
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}
