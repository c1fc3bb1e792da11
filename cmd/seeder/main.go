package main

import (
	"github.com/charmbracelet/log"
	"github.com/statchomper/statchomper/internal/config"
	"github.com/statchomper/statchomper/internal/database"
	"github.com/statchomper/statchomper/internal/games"
	"github.com/statchomper/statchomper/internal/seed"
)

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := games.New(db)
	inserted, err := store.SeedIfEmpty(seed.Games)
	if err != nil {
		log.Fatalf("Seeding failed: %s", err)
	}
	log.Info("Seeder finished", "inserted", inserted, "total", len(seed.Games))
}
