package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
)

// RegionUseCase serves the regional hierarchy drill-down. Reads go cache →
// database → static mirror: the lookup endpoints are guaranteed available
// even when the relational store is down, at the cost of staleness.
type RegionUseCase struct {
	regionRepo repository.RegionRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewRegionUseCase(
	regionRepo repository.RegionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RegionUseCase {
	return &RegionUseCase{
		regionRepo: regionRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

func (uc *RegionUseCase) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetRegions(ctx)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to read regions from cache", zap.Error(err))
		}
	}

	regions, err := uc.regionRepo.ListRegions(ctx)
	if err != nil {
		uc.logger.Warn("Falling back to static regions", zap.Error(err))
		return domain.StaticRegions(), nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetRegions(ctx, regions, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache regions", zap.Error(err))
		}
	}

	return regions, nil
}

func (uc *RegionUseCase) ListPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPrefectures(ctx, regionID)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to read prefectures from cache", zap.Error(err))
		}
	}

	prefectures, err := uc.regionRepo.ListPrefectures(ctx, regionID)
	if err != nil {
		uc.logger.Warn("Falling back to static prefectures", zap.Error(err))
		return domain.StaticPrefectures(regionID), nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPrefectures(ctx, regionID, prefectures, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache prefectures", zap.Error(err))
		}
	}

	return prefectures, nil
}
