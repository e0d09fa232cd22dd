package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ziffy_backend/dto"
	"ziffy_backend/internal/token"
)

// CookieName is where the session token lives on the client.
const CookieName = "token"

const localsEmailKey = "email"

// RequireAuth is the identity stage: no cookie or a failed verification is
// 401, otherwise the verified email lands in Locals for later stages and
// the handler.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies(CookieName)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}
		claims, err := tokens.Verify(tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
		}
		c.Locals(localsEmailKey, claims.Email)
		return c.Next()
	}
}

// EmailFromLocals reads the identity RequireAuth stored. Handlers behind
// the auth chain use this instead of re-parsing the cookie.
func EmailFromLocals(c *fiber.Ctx) (string, error) {
	email, _ := c.Locals(localsEmailKey).(string)
	if email == "" {
		return "", fiber.ErrUnauthorized
	}
	return email, nil
}
