package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	// MockMode routes every API call through the in-process mock backend
	// instead of the network.
	MockMode bool
	APIBaseURL string

	// StorePath is the local persistence file. Empty means in-memory.
	// A ".db" suffix selects the SQLite backend, anything else the JSON file
	// backend.
	StorePath string

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL       string
	RateLimitWrite time.Duration

	CloudinaryUploadFolder string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		MockMode:   getEnvBool("MOCK_API", true),
		APIBaseURL: getEnv("API_BASE_URL", "http://127.0.0.1:5000/api/v1"),

		StorePath: os.Getenv("STORE_PATH"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		RedisURL: os.Getenv("REDIS_URL"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "kampussosyal"),
	}

	var err error
	cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.RateLimitWrite, err = time.ParseDuration(getEnv("RATE_LIMIT_WRITE", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WRITE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
