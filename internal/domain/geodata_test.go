package domain_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ichidan-dokusho/place-api/internal/domain"
)

func TestStaticHierarchy(t *testing.T) {
	t.Run("eight regions ordered by id", func(t *testing.T) {
		regions := domain.StaticRegions()
		assert.Len(t, regions, 8)
		assert.Equal(t, "北海道地方", regions[0].Name)
		assert.Equal(t, "kyushu_okinawa", regions[7].Code)
	})

	t.Run("forty seven prefectures, each in a known region", func(t *testing.T) {
		prefectures := domain.StaticPrefectures(nil)
		assert.Len(t, prefectures, 47)
		for _, p := range prefectures {
			assert.GreaterOrEqual(t, p.RegionID, 1, p.Name)
			assert.LessOrEqual(t, p.RegionID, 8, p.Name)
		}
	})

	t.Run("region filter", func(t *testing.T) {
		kanto := 3
		prefectures := domain.StaticPrefectures(&kanto)
		assert.Len(t, prefectures, 7)
		for _, p := range prefectures {
			assert.Equal(t, kanto, p.RegionID)
		}
	})
}

func TestPrefectureIDByLocation(t *testing.T) {
	tests := []struct {
		location string
		wantID   int
		wantOK   bool
	}{
		{"新宿区", 13, true},
		{"渋谷区", 13, true},
		{"池袋区", 13, true}, // legacy pseudo-ward kept in the mapping
		{"存在しない市", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			id, ok := domain.PrefectureIDByLocation(tt.location)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestDeriveLocation(t *testing.T) {
	t.Run("known station", func(t *testing.T) {
		assert.Equal(t, "新宿区", domain.DeriveLocation("新宿駅"))
		assert.Equal(t, "豊島区", domain.DeriveLocation("池袋駅"))
	})

	t.Run("unknown station falls back to the marker", func(t *testing.T) {
		assert.Equal(t, domain.UnknownLocation, domain.DeriveLocation("架空駅"))
	})
}

func TestSeedStations(t *testing.T) {
	t.Run("every seed prefecture resolves", func(t *testing.T) {
		for _, s := range domain.SeedStations() {
			_, ok := domain.PrefectureIDByName(s.PrefectureName)
			assert.True(t, ok, s.Name)
		}
	})

	t.Run("names are sorted and filterable by prefecture", func(t *testing.T) {
		all := domain.SeedStationNames(nil)
		assert.True(t, sort.StringsAreSorted(all))
		assert.Contains(t, all, "新宿駅")

		tokyo := 13
		filtered := domain.SeedStationNames(&tokyo)
		assert.NotEmpty(t, filtered)
		assert.Contains(t, filtered, "東京駅")
		assert.NotContains(t, filtered, "横浜駅")
	})
}

func TestPlaceKind(t *testing.T) {
	assert.True(t, domain.KindCafe.Valid())
	assert.False(t, domain.PlaceKind("users").Valid())
	assert.Equal(t, "bookstores", domain.KindBookstore.Table())
	assert.Equal(t, "喫茶店", domain.KindCafe.Label())

	assert.Panics(t, func() {
		domain.PlaceKind("users; DROP TABLE cafes").Table()
	})
}
