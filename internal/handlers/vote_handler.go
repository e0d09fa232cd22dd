package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/services"
)

// VoteHandler parses PATCH /vote/:id and hands off to the vote engine.
func VoteHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.VoteRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		status, payload := services.ApplyVote(c.Context(), db, c.Params("id"), body)
		return c.Status(status).JSON(payload)
	}
}
