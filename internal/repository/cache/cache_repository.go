package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/domain/repository"
)

const (
	keyRegions          = "lookup:regions"
	keyPrefecturesAll   = "lookup:prefectures:all"
	keyStationNamesAll  = "lookup:stations:all"
	stationNamesPattern = "lookup:stations:*"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func prefecturesKey(regionID *int) string {
	if regionID == nil {
		return keyPrefecturesAll
	}
	return fmt.Sprintf("lookup:prefectures:region:%d", *regionID)
}

func stationNamesKey(prefectureID *int) string {
	if prefectureID == nil {
		return keyStationNamesAll
	}
	return fmt.Sprintf("lookup:stations:prefecture:%d", *prefectureID)
}

func (r *cacheRepository) GetRegions(ctx context.Context) ([]domain.Region, error) {
	return getJSON[[]domain.Region](r, ctx, keyRegions)
}

func (r *cacheRepository) SetRegions(ctx context.Context, regions []domain.Region, ttl time.Duration) error {
	return r.setJSON(ctx, keyRegions, regions, ttl)
}

func (r *cacheRepository) GetPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error) {
	return getJSON[[]domain.Prefecture](r, ctx, prefecturesKey(regionID))
}

func (r *cacheRepository) SetPrefectures(ctx context.Context, regionID *int, prefectures []domain.Prefecture, ttl time.Duration) error {
	return r.setJSON(ctx, prefecturesKey(regionID), prefectures, ttl)
}

func (r *cacheRepository) GetStationNames(ctx context.Context, prefectureID *int) ([]string, error) {
	return getJSON[[]string](r, ctx, stationNamesKey(prefectureID))
}

func (r *cacheRepository) SetStationNames(ctx context.Context, prefectureID *int, names []string, ttl time.Duration) error {
	return r.setJSON(ctx, stationNamesKey(prefectureID), names, ttl)
}

// InvalidateStationNames scans out every cached station-name list. Station
// writes are rare (admin only), so SCAN cost is irrelevant here.
func (r *cacheRepository) InvalidateStationNames(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, stationNamesPattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error("Failed to invalidate station cache",
				zap.String("key", iter.Val()), zap.Error(err))
			return fmt.Errorf("cache invalidate error: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan station cache keys", zap.Error(err))
		return fmt.Errorf("cache scan error: %w", err)
	}

	return nil
}

func getJSON[T any](r *cacheRepository, ctx context.Context, key string) (T, error) {
	var zero T
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return zero, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return out, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal value for cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}
