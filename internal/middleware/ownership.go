package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ziffy_backend/dto"
)

// RequireSelf is the ownership stage for "my data" routes: the ?email=
// query parameter must match the authenticated identity. The query
// parameter is the canonical comparison source; handlers behind this
// stage read the same parameter. Must run after RequireAuth.
func RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}
		if c.Query("email") != email {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Forbidden access"})
		}
		return c.Next()
	}
}
