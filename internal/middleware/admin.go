package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"ziffy_backend/dto"
	"ziffy_backend/model"
)

// RoleLookup resolves the stored role for an email. The production lookup
// is repository.UserRole; tests stub it.
type RoleLookup func(ctx context.Context, email string) (string, error)

// RequireAdmin is the role stage: a missing user record or a non-admin
// role is 403. Must run after RequireAuth.
func RequireAdmin(lookup RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}
		role, err := lookup(c.Context(), email)
		if err != nil || role != model.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Access denied"})
		}
		return c.Next()
	}
}
