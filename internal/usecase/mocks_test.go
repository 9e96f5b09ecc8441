package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if regions, ok := args.Get(0).([]domain.Region); ok {
		return regions, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegionRepository) ListPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error) {
	args := m.Called(ctx, regionID)
	if prefectures, ok := args.Get(0).([]domain.Prefecture); ok {
		return prefectures, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) ListNames(ctx context.Context, prefectureID *int) ([]string, error) {
	args := m.Called(ctx, prefectureID)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) ListDetailed(ctx context.Context) ([]domain.StationDetail, error) {
	args := m.Called(ctx)
	if stations, ok := args.Get(0).([]domain.StationDetail); ok {
		return stations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id int) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if station, ok := args.Get(0).(*domain.Station); ok {
		return station, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) GetByName(ctx context.Context, name string) (*domain.Station, error) {
	args := m.Called(ctx, name)
	if station, ok := args.Get(0).(*domain.Station); ok {
		return station, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	args := m.Called(ctx, station)
	if created, ok := args.Get(0).(*domain.Station); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) Update(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	args := m.Called(ctx, station)
	if updated, ok := args.Get(0).(*domain.Station); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStationRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) List(ctx context.Context, kind domain.PlaceKind, station string) ([]domain.Place, error) {
	args := m.Called(ctx, kind, station)
	if places, ok := args.Get(0).([]domain.Place); ok {
		return places, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, kind domain.PlaceKind, id int) (*domain.Place, error) {
	args := m.Called(ctx, kind, id)
	if place, ok := args.Get(0).(*domain.Place); ok {
		return place, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) Create(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error) {
	args := m.Called(ctx, kind, place)
	if created, ok := args.Get(0).(*domain.Place); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) Update(ctx context.Context, kind domain.PlaceKind, place *domain.Place) (*domain.Place, error) {
	args := m.Called(ctx, kind, place)
	if updated, ok := args.Get(0).(*domain.Place); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaceRepository) Delete(ctx context.Context, kind domain.PlaceKind, id int) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockPlaceRepository) CountByStation(ctx context.Context, kind domain.PlaceKind, station string) (int, error) {
	args := m.Called(ctx, kind, station)
	return args.Int(0), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if regions, ok := args.Get(0).([]domain.Region); ok {
		return regions, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetRegions(ctx context.Context, regions []domain.Region, ttl time.Duration) error {
	args := m.Called(ctx, regions, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPrefectures(ctx context.Context, regionID *int) ([]domain.Prefecture, error) {
	args := m.Called(ctx, regionID)
	if prefectures, ok := args.Get(0).([]domain.Prefecture); ok {
		return prefectures, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetPrefectures(ctx context.Context, regionID *int, prefectures []domain.Prefecture, ttl time.Duration) error {
	args := m.Called(ctx, regionID, prefectures, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStationNames(ctx context.Context, prefectureID *int) ([]string, error) {
	args := m.Called(ctx, prefectureID)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetStationNames(ctx context.Context, prefectureID *int, names []string, ttl time.Duration) error {
	args := m.Called(ctx, prefectureID, names, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateStationNames(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Counts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).(map[string]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}
