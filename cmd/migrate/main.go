package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/bytebites/backend/config"
	"github.com/bytebites/backend/internal/database"
	"github.com/bytebites/backend/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory containing the SQL migrations")
	flag.Parse()

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

	if cfg.Database.Driver != "postgres" {
		logr.Fatalw("SQL migrations require the postgres driver", "driver", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		logr.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	migrations, err := database.LoadMigrations(*dir)
	if err != nil {
		logr.Fatalw("failed to load migrations", "error", err)
	}

	ctx := context.Background()
	migrator := database.NewMigrator(db, logr)

	if *rollback {
		name, err := migrator.Down(ctx, migrations)
		if err != nil {
			logr.Fatalw("rollback failed", "error", err)
		}
		logr.Infow("rolled back migration", "name", name)
		return
	}

	applied, err := migrator.Up(ctx, migrations)
	if err != nil {
		logr.Fatalw("migration failed", "error", err, "applied", applied)
	}
	logr.Infow("migrations complete", "applied", applied, "total", len(migrations))
}
