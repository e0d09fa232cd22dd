package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	TokenTTL        time.Duration
	StripeSecretKey string
	CORSOrigins     []string
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "ziffyData"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", 365*24*time.Hour),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,https://ziffy-00.web.app"), ","),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
