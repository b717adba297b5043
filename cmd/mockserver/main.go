// mockserver exposes the in-process mock backend over HTTP, so browser
// frontends and external tools can talk to the same API the embedded
// transport serves.
package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kampusgo.dev/kampussosyal/internal/config"
	"kampusgo.dev/kampussosyal/internal/mockapi"
	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	backend, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("failed to open store %q: %v", cfg.StorePath, err)
	}
	defer backend.Close()

	session := store.NewSession(backend)

	var media storage.MediaStorage
	if !cfg.MockMode {
		media, err = storage.NewCloudinaryStorage(cfg.CloudinaryUploadFolder)
		if err != nil {
			log.Fatalf("failed to initialize cloudinary storage: %v", err)
		}
	}

	middleware := []gin.HandlerFunc{corsMiddleware(cfg.AllowedOrigins)}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(opts)
		middleware = append(middleware, mockapi.RateLimitWrites(session, rdb, cfg.RateLimitWrite))
	}

	router := mockapi.New(mockapi.Options{
		Store:      store.New(backend),
		Session:    session,
		Media:      media,
		JWTSecret:  cfg.JWTSecret,
		JWTTTL:     cfg.JWTTTL,
		Seed:       true,
		Middleware: middleware,
	})

	log.Printf("mock backend listening on :%s (store=%q)", cfg.Port, cfg.StorePath)
	if err := router.Engine().Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
