package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v82"

	"ziffy_backend/bootstrap"
	"ziffy_backend/config"
	"ziffy_backend/database"
	"ziffy_backend/internal/routes"
	"ziffy_backend/internal/token"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	stripe.Key = cfg.StripeSecretKey

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowCredentials: true,
	}))

	routes.Register(app, routes.Deps{
		DB:       db,
		Tokens:   token.NewService(cfg.JWTSecret, cfg.TokenTTL),
		TokenTTL: cfg.TokenTTL,
	})

	log.Printf("Ziffy is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
