package services

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
)

// userFinder and userInserter are the registration flow's two store
// touches; tests stub them the way middleware.RequireAdmin's RoleLookup
// is stubbed.
type userFinder func(ctx context.Context, email string) (*model.User, error)
type userInserter func(ctx context.Context, user model.User) error

// RegisterUser creates the user record on first registration. Registering
// an email that already exists is a notice, not an error, and never
// writes a second record; the unique email index backstops the
// find-then-insert race (duplicate key 11000).
func RegisterUser(ctx context.Context, db *mongo.Database, user model.User) (int, any) {
	return registerUser(ctx, user,
		func(ctx context.Context, email string) (*model.User, error) {
			return repository.FindUserByEmail(ctx, db, email)
		},
		func(ctx context.Context, user model.User) error {
			return repository.InsertUser(ctx, db, user)
		},
	)
}

func registerUser(ctx context.Context, user model.User, find userFinder, insert userInserter) (int, any) {
	if user.Email == "" {
		return fiber.StatusBadRequest, dto.ErrorResponse{Message: "email is required"}
	}

	_, err := find(ctx, user.Email)
	if err == nil {
		return fiber.StatusOK, dto.MessageResponse{Message: "User Already Exist"}
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}

	user.Role = model.RoleUser
	user.CreatedAt = time.Now().UTC()

	if err := insert(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return fiber.StatusOK, dto.MessageResponse{Message: "User Already Exist"}
		}
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}
	return fiber.StatusCreated, dto.MessageResponse{Message: "User created"}
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}
