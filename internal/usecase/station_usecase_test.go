package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/usecase"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

func newStationUC(stationRepo *MockStationRepository, placeRepo *MockPlaceRepository) *usecase.StationUseCase {
	return usecase.NewStationUseCase(stationRepo, placeRepo, nil, zap.NewNop(), time.Minute)
}

func TestStationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves prefecture from location", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByName", ctx, "新宿駅").Return(nil, nil)
		stationRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.Name == "新宿駅" &&
				s.Location == "新宿区" &&
				s.PrefectureID != nil && *s.PrefectureID == 13
		})).Return(&domain.Station{ID: 1, Name: "新宿駅", Location: "新宿区"}, nil)

		created, err := uc.Create(ctx, dto.StationRequest{Name: "新宿駅", Location: "新宿区"})

		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		stationRepo.AssertExpectations(t)
	})

	t.Run("keeps explicit prefecture id", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		hokkaido := 1
		stationRepo.On("GetByName", ctx, "札幌駅").Return(nil, nil)
		stationRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.PrefectureID != nil && *s.PrefectureID == hokkaido
		})).Return(&domain.Station{ID: 2, Name: "札幌駅"}, nil)

		_, err := uc.Create(ctx, dto.StationRequest{
			Name:         "札幌駅",
			Location:     "札幌市",
			PrefectureID: &hokkaido,
		})

		assert.NoError(t, err)
		stationRepo.AssertExpectations(t)
	})

	t.Run("unresolvable location leaves prefecture unset", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByName", ctx, "謎の駅").Return(nil, nil)
		stationRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.PrefectureID == nil
		})).Return(&domain.Station{ID: 3, Name: "謎の駅"}, nil)

		_, err := uc.Create(ctx, dto.StationRequest{Name: "謎の駅", Location: "謎の街"})

		assert.NoError(t, err)
		stationRepo.AssertExpectations(t)
	})

	t.Run("duplicate name rejected before insert", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByName", ctx, "新宿駅").
			Return(&domain.Station{ID: 1, Name: "新宿駅"}, nil)

		created, err := uc.Create(ctx, dto.StationRequest{Name: "新宿駅", Location: "新宿区"})

		assert.Nil(t, created)
		assert.Equal(t, errors.ErrDuplicateStationName, err)
		stationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		_, err := uc.Create(ctx, dto.StationRequest{Name: "新宿駅"})

		assert.Equal(t, errors.ErrStationFieldsRequired, err)
		stationRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	})
}

func TestStationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByID", ctx, 99).Return(nil, errors.ErrStationNotFound)

		_, err := uc.Update(ctx, 99, dto.StationRequest{Name: "新宿駅", Location: "新宿区"})

		assert.Equal(t, errors.ErrStationNotFound, err)
	})

	t.Run("rename onto an existing name rejected", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByID", ctx, 1).
			Return(&domain.Station{ID: 1, Name: "原宿駅", Location: "渋谷区"}, nil)
		stationRepo.On("GetByName", ctx, "渋谷駅").
			Return(&domain.Station{ID: 2, Name: "渋谷駅"}, nil)

		_, err := uc.Update(ctx, 1, dto.StationRequest{Name: "渋谷駅", Location: "渋谷区"})

		assert.Equal(t, errors.ErrDuplicateStationName, err)
		stationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("re-resolves prefecture from new location", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByID", ctx, 1).
			Return(&domain.Station{ID: 1, Name: "新宿駅", Location: "新宿区"}, nil)
		stationRepo.On("Update", ctx, mock.MatchedBy(func(s *domain.Station) bool {
			return s.ID == 1 && s.Location == "渋谷区" &&
				s.PrefectureID != nil && *s.PrefectureID == 13
		})).Return(&domain.Station{ID: 1, Name: "新宿駅", Location: "渋谷区"}, nil)

		_, err := uc.Update(ctx, 1, dto.StationRequest{Name: "新宿駅", Location: "渋谷区"})

		assert.NoError(t, err)
		stationRepo.AssertExpectations(t)
	})
}

func TestStationUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	station := &domain.Station{ID: 1, Name: "新宿駅", Location: "新宿区"}

	t.Run("blocked while referenced by any place kind", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		placeRepo := &MockPlaceRepository{}
		uc := newStationUC(stationRepo, placeRepo)

		stationRepo.On("GetByID", ctx, 1).Return(station, nil)
		placeRepo.On("CountByStation", ctx, domain.KindCafe, "新宿駅").Return(2, nil)
		placeRepo.On("CountByStation", ctx, domain.KindBookstore, "新宿駅").Return(0, nil)
		placeRepo.On("CountByStation", ctx, domain.KindBar, "新宿駅").Return(1, nil)

		deleted, err := uc.Delete(ctx, 1)

		assert.Nil(t, deleted)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.CodeConflict, appErr.Code)
		assert.Equal(t, 2, appErr.Details["cafes"])
		assert.Equal(t, 0, appErr.Details["bookstores"])
		assert.Equal(t, 1, appErr.Details["bars"])
		stationRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unreferenced station deleted", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		placeRepo := &MockPlaceRepository{}
		uc := newStationUC(stationRepo, placeRepo)

		stationRepo.On("GetByID", ctx, 1).Return(station, nil)
		for _, kind := range domain.PlaceKinds() {
			placeRepo.On("CountByStation", ctx, kind, "新宿駅").Return(0, nil)
		}
		stationRepo.On("Delete", ctx, 1).Return(nil)

		deleted, err := uc.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "新宿駅", deleted.Name)
		stationRepo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("GetByID", ctx, 42).Return(nil, errors.ErrStationNotFound)

		_, err := uc.Delete(ctx, 42)

		assert.Equal(t, errors.ErrStationNotFound, err)
	})
}

func TestStationUseCase_ListNames(t *testing.T) {
	ctx := context.Background()

	t.Run("database order preserved", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("ListNames", ctx, (*int)(nil)).
			Return([]string{"原宿駅", "新宿駅"}, nil)

		names, err := uc.ListNames(ctx, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"原宿駅", "新宿駅"}, names)
	})

	t.Run("store failure falls back to seed names", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		uc := newStationUC(stationRepo, &MockPlaceRepository{})

		stationRepo.On("ListNames", ctx, (*int)(nil)).
			Return(nil, errors.ErrDatabaseError)

		names, err := uc.ListNames(ctx, nil)

		assert.NoError(t, err)
		assert.NotEmpty(t, names)
		assert.Contains(t, names, "新宿駅")
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		stationRepo := &MockStationRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewStationUseCase(stationRepo, &MockPlaceRepository{}, cacheRepo, zap.NewNop(), time.Minute)

		cacheRepo.On("GetStationNames", ctx, (*int)(nil)).
			Return([]string{"渋谷駅"}, nil)

		names, err := uc.ListNames(ctx, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"渋谷駅"}, names)
		stationRepo.AssertNotCalled(t, "ListNames", mock.Anything, mock.Anything)
	})
}
