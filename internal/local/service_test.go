package local_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/local"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestService_Cities(t *testing.T) {
	svc := local.NewService()

	cities := svc.ListCities()
	require.Len(t, cities, 8)
	assert.Equal(t, "valsad", cities[0].Slug, "cities keep their configured order")

	city, err := svc.CityBySlug("mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", city.Name)
	assert.Equal(t, "Maharashtra", city.State)

	_, err = svc.CityBySlug("atlantis")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestService_ShopsByCity(t *testing.T) {
	svc := local.NewService()

	shops, err := svc.ShopsByCity("valsad")
	require.NoError(t, err)
	require.Len(t, shops, 3)
	for _, shop := range shops {
		assert.Equal(t, "valsad", shop.CitySlug)
	}

	shops, err = svc.ShopsByCity("rajkot")
	require.NoError(t, err)
	assert.Empty(t, shops, "a known city without shops returns an empty list, not an error")

	_, err = svc.ShopsByCity("atlantis")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestService_ShopByID(t *testing.T) {
	svc := local.NewService()

	shop, err := svc.ShopByID("spice-garden-mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", shop.Name)

	_, err = svc.ShopByID("nope")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestService_ActiveDeals(t *testing.T) {
	svc := local.NewService(local.WithClock(fixedClock("2026-08-29")))

	deals, err := svc.ActiveDeals("valsad")
	require.NoError(t, err)
	require.Len(t, deals, 3)

	assert.True(t, deals[0].Featured, "featured deals come first")
	assert.True(t, deals[1].Featured)
	assert.False(t, deals[2].Featured)
}

func TestService_ActiveDeals_WindowAndFlag(t *testing.T) {
	// The surat deal ended in February; the pune deal is inside its
	// window but flagged inactive.
	svc := local.NewService(local.WithClock(fixedClock("2026-08-29")))

	deals, err := svc.ActiveDeals("surat")
	require.NoError(t, err)
	assert.Empty(t, deals, "deals past their end date do not show")

	deals, err = svc.ActiveDeals("pune")
	require.NoError(t, err)
	assert.Empty(t, deals, "inactive deals do not show even inside their window")
}

func TestWheel_Spin(t *testing.T) {
	tests := []struct {
		name            string
		roll            float64
		expectedPercent int
	}{
		{name: "low roll lands 5", roll: 0.0, expectedPercent: 5},
		{name: "just under first cut", roll: 0.39, expectedPercent: 5},
		{name: "first cut lands 10", roll: 0.40, expectedPercent: 10},
		{name: "second cut lands 15", roll: 0.70, expectedPercent: 15},
		{name: "third cut lands 20", roll: 0.85, expectedPercent: 20},
		{name: "top of range lands 25", roll: 0.95, expectedPercent: 25},
		{name: "max roll lands 25", roll: 0.999, expectedPercent: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wheel := local.NewWheel(local.WithRand(func() float64 { return tt.roll }))

			percent, code := wheel.Spin()
			assert.Equal(t, tt.expectedPercent, percent)
			assert.Equal(t, fmt.Sprintf("WELCOME%d", tt.expectedPercent), code)
		})
	}
}
