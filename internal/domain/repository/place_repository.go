package repository

import (
	"context"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

// PlaceRepository serves all three place tables; the kind argument selects
// the table. Implementations must only accept whitelisted kinds.
type PlaceRepository interface {
	// List returns places newest first. An empty station applies no filter;
	// otherwise rows are matched by exact station name.
	List(ctx context.Context, kind domain.PlaceKind, station string) ([]domain.Place, error)

	// GetByID returns errors.ErrPlaceNotFound when the id does not exist.
	GetByID(ctx context.Context, kind domain.PlaceKind, id int) (*domain.Place, error)

	Create(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error)

	Update(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error)

	Delete(ctx context.Context, kind domain.PlaceKind, id int) error

	// CountByStation counts rows whose station equals the given name; the
	// station delete guard sums this across all kinds.
	CountByStation(ctx context.Context, kind domain.PlaceKind, station string) (int, error)
}
