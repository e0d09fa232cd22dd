package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
	"ziffy_backend/services"
)

// RecordPaymentHandler stores a completed payment.
func RecordPaymentHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payment model.Payment
		if err := c.BodyParser(&payment); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if payment.Email == "" || payment.TransactionID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "email and transactionId are required"})
		}
		payment.CreatedAt = time.Now().UTC()

		if err := repository.InsertPayment(c.Context(), db, payment); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Payment recorded"})
	}
}

func CreatePaymentIntentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PaymentIntentRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		status, payload := services.CreatePaymentIntent(body)
		return c.Status(status).JSON(payload)
	}
}
