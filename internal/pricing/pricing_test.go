package pricing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/pricing"
	"github.com/citymart/storefront/internal/shipping"
)

func newCalculator() *pricing.Calculator {
	provider := shipping.NewFlatRateProvider(shipping.DefaultRates())
	return pricing.NewCalculator(provider, pricing.DefaultTaxRate)
}

func items(lines ...domain.CartItem) []domain.CartItem { return lines }

func line(price string, qty int) domain.CartItem {
	return domain.CartItem{Price: decimal.RequireFromString(price), Quantity: qty}
}

func Test_Calculator_SmallOrderStandardShipping(t *testing.T) {
	calc := newCalculator()

	// Subtotal 40.00: below the free-shipping threshold.
	breakdown, err := calc.Quote(context.Background(), items(line("20.00", 2)), shipping.MethodStandard, "")
	require.NoError(t, err)

	assert.Equal(t, "40.00", breakdown.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", breakdown.Shipping.StringFixed(2))
	assert.Equal(t, "3.20", breakdown.Tax.StringFixed(2), "40.00 * 0.08 = 3.20, shipping is not taxed")
	assert.Equal(t, "0.00", breakdown.Discount.StringFixed(2))
	assert.Equal(t, "53.19", breakdown.Total.StringFixed(2), "40.00 + 9.99 + 3.20 = 53.19")
	assert.Equal(t, "10.00", breakdown.FreeShippingRemaining.StringFixed(2), "50 - 40 = 10 to free shipping")
	assert.True(t, breakdown.ShippingSaved.IsZero())
}

func Test_Calculator_FreeStandardShipping(t *testing.T) {
	calc := newCalculator()

	breakdown, err := calc.Quote(context.Background(), items(line("30.00", 2)), shipping.MethodStandard, "")
	require.NoError(t, err)

	assert.Equal(t, "60.00", breakdown.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", breakdown.Shipping.StringFixed(2), "subtotal over 50 ships free")
	assert.Equal(t, "9.99", breakdown.ShippingSaved.StringFixed(2), "the waived rate is reported as savings")
	assert.Equal(t, "4.80", breakdown.Tax.StringFixed(2), "60.00 * 0.08 = 4.80")
	assert.Equal(t, "64.80", breakdown.Total.StringFixed(2), "60.00 + 0 + 4.80 = 64.80")
	assert.True(t, breakdown.FreeShippingRemaining.IsZero())
}

func Test_Calculator_ExpressAndOvernight(t *testing.T) {
	tests := []struct {
		name          string
		method        shipping.Method
		expectedShip  string
		expectedTotal string
	}{
		{
			name:          "express is a flat 19.99 regardless of subtotal",
			method:        shipping.MethodExpress,
			expectedShip:  "19.99",
			expectedTotal: "127.99", // 100.00 + 19.99 + 8.00
		},
		{
			name:          "overnight is a flat 39.99 regardless of subtotal",
			method:        shipping.MethodOvernight,
			expectedShip:  "39.99",
			expectedTotal: "147.99", // 100.00 + 39.99 + 8.00
		},
	}

	calc := newCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := calc.Quote(context.Background(), items(line("100.00", 1)), tt.method, "")
			require.NoError(t, err)

			assert.Equal(t, tt.expectedShip, breakdown.Shipping.StringFixed(2))
			assert.Equal(t, tt.expectedTotal, breakdown.Total.StringFixed(2))
		})
	}
}

func Test_Calculator_CouponDiscount(t *testing.T) {
	calc := newCalculator()

	breakdown, err := calc.Quote(context.Background(), items(line("100.00", 1)), shipping.MethodStandard, "save20")
	require.NoError(t, err)

	assert.Equal(t, "SAVE20", breakdown.CouponCode, "codes are normalized to upper case")
	assert.Equal(t, "20.00", breakdown.Discount.StringFixed(2), "100.00 * 20% = 20.00")
	assert.Equal(t, "0.00", breakdown.Shipping.StringFixed(2))
	assert.Equal(t, "8.00", breakdown.Tax.StringFixed(2), "tax applies to the undiscounted subtotal")
	assert.Equal(t, "88.00", breakdown.Total.StringFixed(2), "100.00 + 0 + 8.00 - 20.00 = 88.00")
}

func Test_Calculator_InvalidCouponFailsQuote(t *testing.T) {
	calc := newCalculator()

	_, err := calc.Quote(context.Background(), items(line("10.00", 1)), shipping.MethodStandard, "HALFOFF")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err),
		"callers keep the previously applied coupon when a new code is rejected")
}

func Test_Calculator_UnknownShippingMethod(t *testing.T) {
	calc := newCalculator()

	_, err := calc.Quote(context.Background(), items(line("10.00", 1)), shipping.Method("teleport"), "")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_Calculator_EmptyCart(t *testing.T) {
	calc := newCalculator()

	breakdown, err := calc.Quote(context.Background(), nil, shipping.MethodStandard, "")
	require.NoError(t, err)

	assert.Equal(t, "0.00", breakdown.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", breakdown.Shipping.StringFixed(2), "an empty cart is below the free threshold")
	assert.Equal(t, "9.99", breakdown.Total.StringFixed(2))
	assert.Equal(t, "50.00", breakdown.FreeShippingRemaining.StringFixed(2))
}

func TestLookupCoupon(t *testing.T) {
	tests := []struct {
		name            string
		code            string
		expectedPercent int
		expectErr       bool
		explanation     string
	}{
		{name: "SAVE10", code: "SAVE10", expectedPercent: 10},
		{name: "WELCOME15", code: "WELCOME15", expectedPercent: 15},
		{name: "SAVE20", code: "SAVE20", expectedPercent: 20},
		{name: "FIRSTORDER", code: "FIRSTORDER", expectedPercent: 25},
		{
			name: "lower case is accepted", code: "firstorder", expectedPercent: 25,
			explanation: "matching is case-insensitive",
		},
		{
			name: "surrounding whitespace is trimmed", code: "  SAVE10 ", expectedPercent: 10,
		},
		{
			name: "wheel-minted code", code: "WELCOME5", expectedPercent: 5,
			explanation: "the discount wheel mints WELCOME{n} codes",
		},
		{name: "wheel-minted 25", code: "welcome25", expectedPercent: 25},
		{
			name: "welcome code outside wheel percentages", code: "WELCOME99", expectErr: true,
		},
		{name: "unknown code", code: "HALFOFF", expectErr: true},
		{name: "empty code", code: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon, err := pricing.LookupCoupon(tt.code)
			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
				return
			}
			require.NoError(t, err, tt.explanation)
			assert.Equal(t, tt.expectedPercent, coupon.Percent)
		})
	}
}
