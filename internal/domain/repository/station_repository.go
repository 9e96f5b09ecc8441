package repository

import (
	"context"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

type StationRepository interface {
	// ListNames returns station names ordered alphabetically, optionally
	// filtered to one prefecture.
	ListNames(ctx context.Context, prefectureID *int) ([]string, error)

	// ListDetailed returns full rows joined with prefecture and region names,
	// newest first.
	ListDetailed(ctx context.Context) ([]domain.StationDetail, error)

	// GetByID returns errors.ErrStationNotFound when the id does not exist.
	GetByID(ctx context.Context, id int) (*domain.Station, error)

	// GetByName returns (nil, nil) when no station has the name; used by the
	// duplicate pre-check.
	GetByName(ctx context.Context, name string) (*domain.Station, error)

	// Create persists a new station and returns the row with generated id and
	// created_at. A unique-constraint violation on the name surfaces as
	// errors.ErrDuplicateStationName.
	Create(ctx context.Context, station *domain.Station) (*domain.Station, error)

	Update(ctx context.Context, station *domain.Station) (*domain.Station, error)

	Delete(ctx context.Context, id int) error
}
