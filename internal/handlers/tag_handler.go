package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
)

// TagsHandler lists the curated tag collection (distinct from /all-tags,
// which derives tags from the posts themselves).
func TagsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := repository.FetchTags(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(tags)
	}
}

func AddTagHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tag model.Tag
		if err := c.BodyParser(&tag); err != nil || tag.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Tag is required"})
		}
		if err := repository.InsertTag(c.Context(), db, tag); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Tag added"})
	}
}
