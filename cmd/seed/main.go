package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/config"
	"github.com/ichidan-dokusho/place-api/internal/pkg/logger"
	"github.com/ichidan-dokusho/place-api/internal/repository/postgres"
)

// Standalone seeder: creates the schema and loads the region/prefecture/
// station lookup data against the configured database. Safe to re-run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}
	if err := db.SeedLookupData(ctx); err != nil {
		log.Fatal("Failed to seed lookup data", zap.Error(err))
	}

	statsRepo := postgres.NewStatsRepository(db)
	counts, err := statsRepo.Counts(ctx)
	if err != nil {
		log.Fatal("Failed to read row counts", zap.Error(err))
	}

	log.Info("Seeding complete",
		zap.Int("regions", counts["regions"]),
		zap.Int("prefectures", counts["prefectures"]),
		zap.Int("stations", counts["stations"]),
	)
}
