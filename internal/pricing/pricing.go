// Package pricing computes order totals: subtotal, shipping, tax,
// coupon discounts, and free-shipping progress.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/shipping"
)

// DefaultTaxRate is the flat sales tax applied to the goods subtotal.
// Shipping is not taxed.
var DefaultTaxRate = decimal.RequireFromString("0.08")

// Calculator quotes order totals for a cart.
type Calculator struct {
	shipping shipping.Provider
	taxRate  decimal.Decimal
}

// NewCalculator creates a pricing calculator. A zero tax rate is
// honored as configured, not replaced with the default.
func NewCalculator(provider shipping.Provider, taxRate decimal.Decimal) *Calculator {
	return &Calculator{
		shipping: provider,
		taxRate:  taxRate,
	}
}

// Quote computes the full price breakdown for a cart. couponCode may be
// empty; an invalid code fails the quote so callers can keep a prior
// coupon applied.
//
// Total = Subtotal + Shipping + Tax - Discount. The discount percentage
// applies to the goods subtotal only.
func (c *Calculator) Quote(ctx context.Context, items []domain.CartItem, method shipping.Method, couponCode string) (*domain.PriceBreakdown, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	rate, err := c.shipping.Rate(ctx, method, subtotal)
	if err != nil {
		return nil, err
	}

	tax := subtotal.Mul(c.taxRate).Round(2)

	discount := decimal.Zero
	appliedCode := ""
	if couponCode != "" {
		coupon, err := LookupCoupon(couponCode)
		if err != nil {
			return nil, err
		}
		discount = subtotal.Mul(decimal.NewFromInt(int64(coupon.Percent))).
			Div(decimal.NewFromInt(100)).Round(2)
		appliedCode = coupon.Code
	}

	total := subtotal.Add(rate.Cost).Add(tax).Sub(discount)

	return &domain.PriceBreakdown{
		Subtotal:              subtotal,
		Shipping:              rate.Cost,
		Tax:                   tax,
		Discount:              discount,
		Total:                 total,
		CouponCode:            appliedCode,
		ShippingMethod:        string(method),
		FreeShippingRemaining: c.shipping.FreeShippingRemaining(subtotal),
		ShippingSaved:         rate.Saved,
	}, nil
}
