package usecase

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/pkg/validator"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

// PlaceUseCase implements the shared contract of the three place kinds.
// Handlers pass the kind from the route; one instance serves all tables.
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// List returns places newest first; station, when non-empty, is an exact
// match filter.
func (uc *PlaceUseCase) List(ctx context.Context, kind domain.PlaceKind, station string) ([]domain.Place, error) {
	return uc.placeRepo.List(ctx, kind, station)
}

func (uc *PlaceUseCase) Create(ctx context.Context, kind domain.PlaceKind, req dto.PlaceRequest) (*domain.Place, error) {
	place, err := uc.buildPlace(req)
	if err != nil {
		return nil, err
	}

	created, err := uc.placeRepo.Create(ctx, kind, place)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Place created",
		zap.String("kind", string(kind)),
		zap.Int("id", created.ID),
		zap.String("name", created.Name),
		zap.String("station", created.Station))

	return created, nil
}

func (uc *PlaceUseCase) Update(ctx context.Context, kind domain.PlaceKind, id int, req dto.PlaceRequest) (*domain.Place, error) {
	place, err := uc.buildPlace(req)
	if err != nil {
		return nil, err
	}
	place.ID = id

	return uc.placeRepo.Update(ctx, kind, place)
}

func (uc *PlaceUseCase) Delete(ctx context.Context, kind domain.PlaceKind, id int) error {
	if err := uc.placeRepo.Delete(ctx, kind, id); err != nil {
		return err
	}

	uc.logger.Info("Place deleted",
		zap.String("kind", string(kind)),
		zap.Int("id", id))

	return nil
}

// buildPlace validates the request and assembles the row to persist. The
// stored location always comes from the station mapping, never from the
// caller.
func (uc *PlaceUseCase) buildPlace(req dto.PlaceRequest) (*domain.Place, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrPlaceFieldsRequired
	}

	walkingTime, err := normalizeWalkingTime(req.WalkingTime)
	if err != nil {
		return nil, err
	}

	return &domain.Place{
		Name:          req.Name,
		Location:      domain.DeriveLocation(req.Station),
		Station:       req.Station,
		GoogleMapsURL: req.GoogleMapsURL,
		WalkingTime:   walkingTime,
	}, nil
}

// normalizeWalkingTime enforces the 1-60 minute rule. The value is stored as
// the original string (trimmed), not re-rendered from the parsed integer.
func normalizeWalkingTime(s string) (*string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}

	minutes, err := strconv.Atoi(trimmed)
	if err != nil || minutes < 1 || minutes > 60 {
		return nil, errors.ErrInvalidWalkingTime
	}

	return &trimmed, nil
}
