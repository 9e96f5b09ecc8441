package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/pkg/validator"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

type StationUseCase struct {
	stationRepo repository.StationRepository
	placeRepo   repository.PlaceRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		placeRepo:   placeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// ListNames feeds the public station dropdown. Cache → database → static
// seed names, same availability contract as the region lookups.
func (uc *StationUseCase) ListNames(ctx context.Context, prefectureID *int) ([]string, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStationNames(ctx, prefectureID)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to read station names from cache", zap.Error(err))
		}
	}

	names, err := uc.stationRepo.ListNames(ctx, prefectureID)
	if err != nil {
		uc.logger.Warn("Falling back to seed station names", zap.Error(err))
		return domain.SeedStationNames(prefectureID), nil
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStationNames(ctx, prefectureID, names, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache station names", zap.Error(err))
		}
	}

	return names, nil
}

// ListDetailed is the admin view; no fallback, admin tooling needs the truth.
func (uc *StationUseCase) ListDetailed(ctx context.Context) ([]domain.StationDetail, error) {
	return uc.stationRepo.ListDetailed(ctx)
}

func (uc *StationUseCase) Create(ctx context.Context, req dto.StationRequest) (*domain.Station, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrStationFieldsRequired
	}

	// Explicit duplicate pre-check. The name column also carries a UNIQUE
	// constraint; the repository translates a violation to the same error so
	// the two paths never disagree.
	existing, err := uc.stationRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrDuplicateStationName
	}

	station := &domain.Station{
		Name:         req.Name,
		Location:     req.Location,
		PrefectureID: uc.resolvePrefectureID(req),
	}

	created, err := uc.stationRepo.Create(ctx, station)
	if err != nil {
		return nil, err
	}

	uc.invalidateNameCache(ctx)
	uc.logger.Info("Station created",
		zap.Int("id", created.ID),
		zap.String("name", created.Name))

	return created, nil
}

func (uc *StationUseCase) Update(ctx context.Context, id int, req dto.StationRequest) (*domain.Station, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrStationFieldsRequired
	}

	current, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming onto another station's name is the same duplicate violation
	// as on create.
	if req.Name != current.Name {
		existing, err := uc.stationRepo.GetByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrDuplicateStationName
		}
	}

	station := &domain.Station{
		ID:           id,
		Name:         req.Name,
		Location:     req.Location,
		PrefectureID: uc.resolvePrefectureID(req),
	}

	updated, err := uc.stationRepo.Update(ctx, station)
	if err != nil {
		return nil, err
	}

	uc.invalidateNameCache(ctx)
	return updated, nil
}

// Delete enforces the usage invariant across all three place tables: a
// station referenced by any place cannot be removed. Check-then-act, not
// atomic; acceptable for the admin-only write rate (see design notes).
func (uc *StationUseCase) Delete(ctx context.Context, id int) (*domain.Station, error) {
	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	usage, err := uc.usageFor(ctx, station.Name)
	if err != nil {
		return nil, err
	}
	if usage.Total() > 0 {
		uc.logger.Info("Station delete blocked by usage",
			zap.Int("id", id),
			zap.String("name", station.Name),
			zap.Int("total", usage.Total()))
		return nil, errors.ErrStationInUse.WithDetails(map[string]interface{}{
			"cafes":      usage.Cafes,
			"bookstores": usage.Bookstores,
			"bars":       usage.Bars,
		})
	}

	if err := uc.stationRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.invalidateNameCache(ctx)
	uc.logger.Info("Station deleted",
		zap.Int("id", id),
		zap.String("name", station.Name))

	return station, nil
}

func (uc *StationUseCase) usageFor(ctx context.Context, name string) (*domain.StationUsage, error) {
	var usage domain.StationUsage
	targets := []struct {
		kind  domain.PlaceKind
		count *int
	}{
		{domain.KindCafe, &usage.Cafes},
		{domain.KindBookstore, &usage.Bookstores},
		{domain.KindBar, &usage.Bars},
	}

	for _, t := range targets {
		n, err := uc.placeRepo.CountByStation(ctx, t.kind, name)
		if err != nil {
			return nil, err
		}
		*t.count = n
	}

	return &usage, nil
}

// resolvePrefectureID prefers an explicitly supplied id and otherwise derives
// one from the location string; unrecognized municipalities leave the station
// unlinked rather than failing the write.
func (uc *StationUseCase) resolvePrefectureID(req dto.StationRequest) *int {
	if req.PrefectureID != nil {
		return req.PrefectureID
	}
	if id, ok := domain.PrefectureIDByLocation(req.Location); ok {
		return &id
	}
	return nil
}

func (uc *StationUseCase) invalidateNameCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateStationNames(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate station name cache", zap.Error(err))
	}
}
