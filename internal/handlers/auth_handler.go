package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ziffy_backend/dto"
	"ziffy_backend/internal/middleware"
	"ziffy_backend/internal/token"
)

// IssueTokenHandler signs a session token for the given email and sets it
// as the session cookie. The cookie crosses sites (SameSite=None), so it
// must be Secure and is kept away from scripts with HTTPOnly.
func IssueTokenHandler(tokens *token.Service, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.JWTRequest
		if err := c.BodyParser(&body); err != nil || body.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email is required"})
		}

		tok, err := tokens.Issue(body.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.CookieName,
			Value:    tok,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			Secure:   true,
			SameSite: fiber.CookieSameSiteNoneMode,
		})
		return c.JSON(dto.SuccessResponse{Success: true})
	}
}

// LogoutHandler clears the cookie client-side only; the token itself
// stays valid until expiry since there is no revocation list.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   true,
			SameSite: fiber.CookieSameSiteNoneMode,
		})
		return c.JSON(dto.MessageResponse{Message: "logged out successfully"})
	}
}
