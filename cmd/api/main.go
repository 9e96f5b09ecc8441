package main

// @title ichidan-dokusho-place API
// @version 1.0.0
// @description 読書に集中できる場所（喫茶店・本屋・バー）を駅単位で探せるディレクトリAPI。
// @description 八地方区分 → 都道府県 → 駅の階層で絞り込み、管理用のCRUDを提供します。

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/ichidan-dokusho/place-api/docs"
	"github.com/ichidan-dokusho/place-api/internal/config"
	httpDelivery "github.com/ichidan-dokusho/place-api/internal/delivery/http"
	"github.com/ichidan-dokusho/place-api/internal/delivery/http/handler"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/logger"
	"github.com/ichidan-dokusho/place-api/internal/repository/cache"
	"github.com/ichidan-dokusho/place-api/internal/repository/postgres"
	"github.com/ichidan-dokusho/place-api/internal/usecase"
)

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

	log.Info("Starting place directory API",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// Redis is optional: without it the lookup endpoints simply skip the
	// cache tier.
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	// Schema and lookup data are in place before the first request is
	// accepted; both steps are idempotent.
	if cfg.Seed.OnStart {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer seedCancel()

		if err := db.EnsureSchema(seedCtx); err != nil {
			log.Fatal("Failed to ensure database schema", zap.Error(err))
		}
		if err := db.SeedLookupData(seedCtx); err != nil {
			log.Fatal("Failed to seed lookup data", zap.Error(err))
		}
	}

	regionRepo := postgres.NewRegionRepository(db)
	stationRepo := postgres.NewStationRepository(db)
	placeRepo := postgres.NewPlaceRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	regionUC := usecase.NewRegionUseCase(regionRepo, cacheRepo, log, cfg.Cache.LookupTTL)
	stationUC := usecase.NewStationUseCase(stationRepo, placeRepo, cacheRepo, log, cfg.Cache.LookupTTL)
	placeUC := usecase.NewPlaceUseCase(placeRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(statsUC),
		handler.NewRegionHandler(regionUC, log),
		handler.NewStationHandler(stationUC, log),
		handler.NewPlaceHandler(placeUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
