package shipping_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/shipping"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFlatRateProvider_Rate_StandardThreshold(t *testing.T) {
	tests := []struct {
		name          string
		subtotal      string
		expectedCost  string
		expectedSaved string
		explanation   string
	}{
		{
			name:          "below threshold pays full rate",
			subtotal:      "49.99",
			expectedCost:  "9.99",
			expectedSaved: "0",
		},
		{
			name:          "exactly at threshold still pays",
			subtotal:      "50.00",
			expectedCost:  "9.99",
			expectedSaved: "0",
			explanation:   "free shipping requires the subtotal to exceed 50, not equal it",
		},
		{
			name:          "above threshold ships free",
			subtotal:      "50.01",
			expectedCost:  "0",
			expectedSaved: "9.99",
			explanation:   "the waived cost is surfaced as the amount saved",
		},
	}

	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := provider.Rate(context.Background(), shipping.MethodStandard, d(tt.subtotal))
			require.NoError(t, err)

			assert.Equal(t, tt.expectedCost, rate.Cost.String(), tt.explanation)
			assert.Equal(t, tt.expectedSaved, rate.Saved.String())
		})
	}
}

func TestFlatRateProvider_Rate_PaidMethods(t *testing.T) {
	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())
	bigCart := d("500.00")

	express, err := provider.Rate(context.Background(), shipping.MethodExpress, bigCart)
	require.NoError(t, err)
	assert.Equal(t, "19.99", express.Cost.String(), "express has no free threshold")
	assert.Equal(t, 2, express.DaysMin)
	assert.Equal(t, 3, express.DaysMax)

	overnight, err := provider.Rate(context.Background(), shipping.MethodOvernight, bigCart)
	require.NoError(t, err)
	assert.Equal(t, "39.99", overnight.Cost.String(), "overnight has no free threshold")
	assert.Equal(t, 1, overnight.DaysMax)
}

func TestFlatRateProvider_Rate_UnknownMethod(t *testing.T) {
	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())

	_, err := provider.Rate(context.Background(), shipping.Method("drone"), d("10.00"))
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestFlatRateProvider_Rates(t *testing.T) {
	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())

	rates, err := provider.Rates(context.Background(), d("60.00"))
	require.NoError(t, err)
	require.Len(t, rates, 3)

	assert.Equal(t, shipping.MethodStandard, rates[0].Method)
	assert.Equal(t, "0", rates[0].Cost.String(), "standard is free at 60.00")
	assert.Equal(t, "19.99", rates[1].Cost.String())
	assert.Equal(t, "39.99", rates[2].Cost.String())
}

func TestFlatRateProvider_FreeShippingRemaining(t *testing.T) {
	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())

	assert.Equal(t, "12.50", provider.FreeShippingRemaining(d("37.50")).String(), "50 - 37.50 = 12.50")
	assert.Equal(t, "0", provider.FreeShippingRemaining(d("50.00")).String())
	assert.Equal(t, "0", provider.FreeShippingRemaining(d("120.00")).String(), "never negative")
}
