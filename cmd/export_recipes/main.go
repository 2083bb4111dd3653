package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bytebites/backend/config"
	"github.com/bytebites/backend/internal/database"
	"github.com/bytebites/backend/internal/export"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logr, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s3Cfg, err := config.NewS3Config(ctx, cfg.Export)
	if err != nil {
		logr.Fatalw("failed to configure S3", "error", err)
	}

	db, err := database.Open(cfg.Database, logr)
	if err != nil {
		logr.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	recipes, err := service.NewRecipeStore(db, logr).ListAll(ctx)
	if err != nil {
		logr.Fatalw("failed to list recipes", "error", err)
	}

	key, err := export.NewS3Exporter(s3Cfg.Client, s3Cfg.BucketName, s3Cfg.Prefix).Export(ctx, recipes)
	if err != nil {
		logr.Fatalw("export failed", "error", err)
	}
	logr.Infow("exported recipes", "count", len(recipes), "bucket", s3Cfg.BucketName, "key", key)
}
