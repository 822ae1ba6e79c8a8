package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshcut-app/freshcut-api/internal/config"
	dbpkg "github.com/freshcut-app/freshcut-api/internal/db"
	"github.com/freshcut-app/freshcut-api/internal/routes"
	"github.com/freshcut-app/freshcut-api/internal/seed"
	"github.com/freshcut-app/freshcut-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.SeedDev {
		if err := seed.Run(context.Background(), db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	avatars := newAvatarStore(cfg)

	r := gin.Default()

	// Registered before the auth middleware so probes never need a token.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, avatars)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newAvatarStore(cfg *config.Config) storage.AvatarStore {
	if cfg.UseS3() {
		store, err := storage.NewS3Store(context.Background(),
			cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.AWSS3Bucket)
		if err != nil {
			log.Fatalf("failed to init S3 avatar store: %v", err)
		}
		return store
	}

	store, err := storage.NewDiskStore(cfg.AvatarDir)
	if err != nil {
		log.Fatalf("failed to init avatar dir: %v", err)
	}
	return store
}
