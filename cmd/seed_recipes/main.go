package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bytebites/backend/config"
	"github.com/bytebites/backend/internal/database"
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

	db, err := database.Open(cfg.Database, logr)
	if err != nil {
		logr.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		logr.Fatalw("failed to migrate database", "error", err)
	}

	added, err := database.SeedRecipes(context.Background(), service.NewRecipeStore(db, logr))
	if err != nil {
		logr.Fatalw("failed to seed recipes", "error", err, "added", added)
	}
	if added == 0 {
		logr.Info("recipes already present, nothing seeded")
		return
	}
	logr.Infow("seeded recipes", "count", added)
}
