package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
)

// PostCommentsHandler lists the comments of one post (?id=<post hex id>).
func PostCommentsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Query("id")
		if postID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "id is required"})
		}
		comments, err := repository.FetchCommentsByPost(c.Context(), db, postID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(comments)
	}
}

func CreateCommentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var comment model.Comment
		if err := c.BodyParser(&comment); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if comment.PostID == "" || comment.Text == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "postId and text are required"})
		}
		comment.CreatedAt = time.Now().UTC()

		if err := repository.InsertComment(c.Context(), db, comment); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Comment created"})
	}
}

// DeleteCommentHandler is the moderation delete, admin-gated in routing.
func DeleteCommentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Comment not found"})
		}
		deleted, err := repository.DeleteComment(c.Context(), db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if deleted == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Comment not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "Comment deleted"})
	}
}
