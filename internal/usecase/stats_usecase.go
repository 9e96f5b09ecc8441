package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

// StatsUseCase backs the health endpoint. The endpoint is a liveness probe
// first and a row-count report second: a failing store degrades the status
// but never turns the probe into an error.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

func NewStatsUseCase(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *StatsUseCase) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	}

	counts, err := uc.statsRepo.Counts(ctx)
	if err != nil {
		uc.logger.Warn("Health check could not read row counts", zap.Error(err))
		resp.Status = "degraded"
		return resp
	}

	resp.Counts = counts
	return resp
}
