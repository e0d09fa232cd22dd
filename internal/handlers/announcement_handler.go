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

func AnnouncementsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		announcements, err := repository.FetchAnnouncements(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(announcements)
	}
}

func CreateAnnouncementHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.Announcement
		if err := c.BodyParser(&a); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if a.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "title is required"})
		}
		a.CreatedAt = time.Now().UTC()

		if err := repository.InsertAnnouncement(c.Context(), db, a); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Announcement created"})
	}
}

func DeleteAnnouncementHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Announcement not found"})
		}
		deleted, err := repository.DeleteAnnouncement(c.Context(), db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if deleted == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Announcement not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "Announcement deleted"})
	}
}
