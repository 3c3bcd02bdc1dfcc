package middleware

import (
	"fmt"
	apimodels "jobboard-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit rejects requests whose declared body is larger than limit, limit <= 0 disables the check
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit > 0 && int64(c.Request().Header.ContentLength()) > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
