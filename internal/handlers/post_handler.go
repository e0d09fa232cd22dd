package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/pagination"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
)

func pageParams(c *fiber.Ctx) pagination.Params {
	return pagination.Normalize(c.QueryInt("page", 1), c.QueryInt("limit", 10))
}

// AllPostsHandler lists newest first with an exact total-page count.
func AllPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := repository.FetchPostsPage(c.Context(), db, pageParams(c), true)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(page)
	}
}

// PaginationPostsHandler is the fast variant: same listing, estimated
// document count, so totalPages can lag behind recent writes.
func PaginationPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := repository.FetchPostsPage(c.Context(), db, pageParams(c), false)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(page)
	}
}

func PopularPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := repository.FetchPopularPostsPage(c.Context(), db, pageParams(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(page)
	}
}

// PopularHandler returns every post with totalVote >= 2, unpaginated.
func PopularHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := repository.FetchPopularAbove(c.Context(), db, 2)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(posts)
	}
}

func SearchPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := repository.SearchPostsByTag(c.Context(), db, c.Query("tag"), pageParams(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(page)
	}
}

func AllTagsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := repository.DistinctPostTags(c.Context(), db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(tags)
	}
}

func PostDetailsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
		}
		post, err := repository.FindPostByID(c.Context(), db, c.Params("id"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(post)
	}
}

func PostSummaryHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := repository.FetchPostSummary(c.Context(), db, c.Params("id"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(summary)
	}
}

func MyPostsHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := repository.FetchPostsByAuthor(c.Context(), db, c.Query("email"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(posts)
	}
}

func MyPostCountHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := repository.CountPostsByAuthor(c.Context(), db, c.Query("email"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.JSON(count)
	}
}

// CreatePostHandler inserts the post with zeroed vote state; counters and
// the voter list only ever move through the vote engine afterwards.
func CreatePostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var post model.Post
		if err := c.BodyParser(&post); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if post.AuthorEmail == "" || post.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "authorEmail and title are required"})
		}

		post.CreatedAt = time.Now().UTC()
		post.UpVote = 0
		post.DownVote = 0
		post.TotalVote = 0
		post.Voters = []model.Voter{}

		insertedID, err := repository.InsertPost(c.Context(), db, post)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": insertedID})
	}
}

func DeleteMyPostHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := bson.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
		}
		deleted, err := repository.DeletePost(c.Context(), db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
		}
		if deleted == 0 {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
		}
		return c.JSON(dto.MessageResponse{Message: "Post deleted"})
	}
}
