package repository

import (
	"context"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

// RegionRepository reads the seeded regional hierarchy. Pure reads; the
// static mirror in the domain package covers the store-unreachable case.
type RegionRepository interface {
	// ListRegions returns all regions ordered by id.
	ListRegions(ctx context.Context) ([]domain.Region, error)

	// ListPrefectures returns prefectures ordered by id, optionally filtered
	// to one region.
	ListPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error)
}
