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

func CreateReportHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var report model.Report
		if err := c.BodyParser(&report); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if report.CommentID == "" && report.PostID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "commentId or postId is required"})
		}
		report.CreatedAt = time.Now().UTC()

		if err := repository.InsertReport(c.Context(), db, report); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Report filed"})
	}
}

func ReportedCommentsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reports, err := repository.FetchReports(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(reports)
	}
}

func DismissReportHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Report not found"})
		}
		deleted, err := repository.DeleteReport(c.Context(), db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if deleted == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Report not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "Report dismissed"})
	}
}
