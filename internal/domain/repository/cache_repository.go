package repository

import (
	"context"
	"time"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

// CacheRepository caches the read-mostly lookup lists. All methods are best
// effort: a cache failure must never fail the request, callers fall through
// to the database.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetRegions(ctx context.Context) ([]domain.Region, error)
	SetRegions(ctx context.Context, regions []domain.Region, ttl time.Duration) error

	GetPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error)
	SetPrefectures(ctx context.Context, regionID *int, prefectures []domain.Prefecture, ttl time.Duration) error

	GetStationNames(ctx context.Context, prefectureID *int) ([]string, error)
	SetStationNames(ctx context.Context, prefectureID *int, names []string, ttl time.Duration) error

	// InvalidateStationNames drops every cached station-name list after a
	// station write.
	InvalidateStationNames(ctx context.Context) error
}
