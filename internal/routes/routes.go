package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/internal/handlers"
	"ziffy_backend/internal/middleware"
	"ziffy_backend/internal/repository"
	"ziffy_backend/internal/token"
)

type Deps struct {
	DB       *mongo.Database
	Tokens   *token.Service
	TokenTTL time.Duration
}

// Register wires every route with its auth chain. Stages compose by
// short-circuiting: identity, then ownership or role where the route
// needs it, then the handler.
func Register(app *fiber.App, deps Deps) {
	db := deps.DB

	auth := middleware.RequireAuth(deps.Tokens)
	self := middleware.RequireSelf()
	admin := middleware.RequireAdmin(func(ctx context.Context, email string) (string, error) {
		return repository.UserRole(ctx, db, email)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("This is Ziffy")
	})

	// session
	app.Post("/jwt", handlers.IssueTokenHandler(deps.Tokens, deps.TokenTTL))
	app.Post("/logout", handlers.LogoutHandler())

	// users
	app.Post("/user", handlers.RegisterUserHandler(db))
	app.Get("/all-user", handlers.AllUsersHandler(db))
	app.Get("/user", auth, self, handlers.GetUserHandler(db))
	app.Get("/user-profile", auth, self, handlers.UserProfileHandler(db))
	app.Get("/users", auth, admin, handlers.SearchUsersHandler(db))
	app.Patch("/make-admin/:id", auth, admin, handlers.MakeAdminHandler(db))
	app.Patch("/set-badge", auth, self, handlers.SetBadgeHandler(db))

	// posts
	app.Get("/all-post", handlers.AllPostsHandler(db))
	app.Get("/pagination-post", handlers.PaginationPostsHandler(db))
	app.Get("/popular-post", handlers.PopularPostsHandler(db))
	app.Get("/popular", handlers.PopularHandler(db))
	app.Get("/search-post", handlers.SearchPostsHandler(db))
	app.Get("/all-tags", handlers.AllTagsHandler(db))
	app.Get("/post-details/:id", auth, handlers.PostDetailsHandler(db))
	app.Get("/post-summary/:id", handlers.PostSummaryHandler(db))
	app.Get("/my-post", auth, self, handlers.MyPostsHandler(db))
	app.Get("/myPost-count", auth, self, handlers.MyPostCountHandler(db))
	app.Post("/post", auth, handlers.CreatePostHandler(db))
	app.Delete("/delete-my-post/:id", auth, handlers.DeleteMyPostHandler(db))
	app.Patch("/vote/:id", auth, handlers.VoteHandler(db))

	// comments
	app.Get("/post-comment", auth, handlers.PostCommentsHandler(db))
	app.Post("/comment", auth, handlers.CreateCommentHandler(db))
	app.Delete("/comments/:id", auth, admin, handlers.DeleteCommentHandler(db))

	// reports
	app.Post("/report", auth, handlers.CreateReportHandler(db))
	app.Get("/reported-comments", auth, admin, handlers.ReportedCommentsHandler(db))
	app.Delete("/dismiss-report/:id", auth, admin, handlers.DismissReportHandler(db))

	// tags collection
	app.Get("/tags", auth, handlers.TagsHandler(db))
	app.Post("/add-tag", auth, handlers.AddTagHandler(db))

	// announcements
	app.Get("/announcments", handlers.AnnouncementsHandler(db))
	app.Post("/announcements", auth, admin, handlers.CreateAnnouncementHandler(db))
	app.Delete("/delete-announcement/:id", auth, handlers.DeleteAnnouncementHandler(db))

	// payments
	app.Post("/payments", auth, handlers.RecordPaymentHandler(db))
	app.Post("/create-payment-intent", handlers.CreatePaymentIntentHandler())

	// stats
	app.Get("/site-stats", auth, handlers.SiteStatsHandler(db))
}
