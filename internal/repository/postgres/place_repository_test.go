package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/repository/postgres"
)

func TestPlaceRepository_CRUD(t *testing.T) {
	db, ctx := setupDB(t)
	repo := postgres.NewPlaceRepository(db)

	walkingTime := "5"
	created, err := repo.Create(ctx, domain.KindCafe, &domain.Place{
		Name:          "茶房 木漏れ日",
		Location:      "新宿区",
		Station:       "新宿駅",
		GoogleMapsURL: "https://maps.google.com/?q=komorebi",
		WalkingTime:   &walkingTime,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.WalkingTime)
	assert.Equal(t, "5", *created.WalkingTime)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, domain.KindCafe, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "茶房 木漏れ日", got.Name)
	})

	t.Run("rows never leak across kinds", func(t *testing.T) {
		_, err := repo.GetByID(ctx, domain.KindBookstore, created.ID)
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("update clears an optional walking time", func(t *testing.T) {
		updated, err := repo.Update(ctx, domain.KindCafe, &domain.Place{
			ID:            created.ID,
			Name:          "茶房 木漏れ日 本店",
			Location:      "新宿区",
			Station:       "新宿駅",
			GoogleMapsURL: "https://maps.google.com/?q=komorebi",
			WalkingTime:   nil,
		})
		require.NoError(t, err)
		assert.Equal(t, "茶房 木漏れ日 本店", updated.Name)
		assert.Nil(t, updated.WalkingTime)
	})

	t.Run("update missing id", func(t *testing.T) {
		_, err := repo.Update(ctx, domain.KindCafe, &domain.Place{
			ID:            99999,
			Name:          "幻の店",
			Location:      "どこか",
			Station:       "幻駅",
			GoogleMapsURL: "https://maps.google.com/?q=ghost",
		})
		assert.Equal(t, errors.ErrPlaceNotFound, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, domain.KindCafe, created.ID))
		assert.Equal(t, errors.ErrPlaceNotFound, repo.Delete(ctx, domain.KindCafe, created.ID))
	})
}

func TestPlaceRepository_List(t *testing.T) {
	db, ctx := setupDB(t)
	repo := postgres.NewPlaceRepository(db)

	rows := []domain.Place{
		{Name: "森の本屋", Location: "渋谷区", Station: "渋谷駅", GoogleMapsURL: "https://maps.google.com/?q=a"},
		{Name: "駅前書店", Location: "新宿区", Station: "新宿駅", GoogleMapsURL: "https://maps.google.com/?q=b"},
		{Name: "二号店", Location: "渋谷区", Station: "渋谷駅", GoogleMapsURL: "https://maps.google.com/?q=c"},
	}
	for i := range rows {
		_, err := repo.Create(ctx, domain.KindBookstore, &rows[i])
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		places, err := repo.List(ctx, domain.KindBookstore, "")
		require.NoError(t, err)
		require.Len(t, places, 3)
		assert.Equal(t, "二号店", places[0].Name)
	})

	t.Run("station filter is an exact match", func(t *testing.T) {
		places, err := repo.List(ctx, domain.KindBookstore, "渋谷駅")
		require.NoError(t, err)
		require.Len(t, places, 2)
		for _, p := range places {
			assert.Equal(t, "渋谷駅", p.Station)
		}
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		places, err := repo.List(ctx, domain.KindBar, "")
		require.NoError(t, err)
		assert.NotNil(t, places)
		assert.Empty(t, places)
	})
}

func TestPlaceRepository_CountByStation(t *testing.T) {
	db, ctx := setupDB(t)
	repo := postgres.NewPlaceRepository(db)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, domain.KindBar, &domain.Place{
			Name:          "夜想曲",
			Location:      "豊島区",
			Station:       "池袋駅",
			GoogleMapsURL: "https://maps.google.com/?q=nocturne",
		})
		require.NoError(t, err)
	}

	count, err := repo.CountByStation(ctx, domain.KindBar, "池袋駅")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByStation(ctx, domain.KindBar, "新宿駅")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
