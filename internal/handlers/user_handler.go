package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
	"ziffy_backend/services"
)

func RegisterUserHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user model.User
		if err := c.BodyParser(&user); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		status, payload := services.RegisterUser(c.Context(), db, user)
		return c.Status(status).JSON(payload)
	}
}

func AllUsersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := repository.FetchAllUsers(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(users)
	}
}

// GetUserHandler serves the caller's own record; the ownership stage has
// already pinned ?email= to the authenticated identity.
func GetUserHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := repository.FindUserByEmail(c.Context(), db, c.Query("email"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(user)
	}
}

// SearchUsersHandler is admin-only: case-insensitive partial match on name.
func SearchUsersHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := repository.SearchUsersByName(c.Context(), db, c.Query("name"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(users)
	}
}

func MakeAdminHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		matched, err := repository.PromoteToAdmin(c.Context(), db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if matched == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "User promoted to admin"})
	}
}

func SetBadgeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SetBadgeRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		matched, err := repository.SetBadge(c.Context(), db, c.Query("email"), body.Plan)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if matched == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "Badge updated"})
	}
}

// UserProfileHandler returns the user record plus their three most recent
// posts for the profile page.
func UserProfileHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")

		user, err := repository.FindUserByEmail(c.Context(), db, email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}

		posts, err := repository.FetchRecentPostsByAuthor(c.Context(), db, email, 3)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(dto.UserProfileResponse{User: *user, Posts: posts})
	}
}

func SiteStatsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := repository.CountPosts(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		comments, err := repository.CountComments(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		users, err := repository.CountUsers(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(dto.SiteStatsResponse{PostCount: posts, CommentCount: comments, UserCount: users})
	}
}
