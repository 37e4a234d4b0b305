package shipping

import (
	"context"

	"github.com/shopspring/decimal"
)

// FlatRate defines a single flat-rate shipping option.
type FlatRate struct {
	Method      Method
	ServiceName string
	Cost        decimal.Decimal
	DaysMin     int
	DaysMax     int

	// FreeOver waives the cost when the subtotal strictly exceeds it.
	// Zero means the method is never free.
	FreeOver decimal.Decimal
}

// FlatRateProvider returns predefined flat-rate shipping options.
type FlatRateProvider struct {
	rates []FlatRate
}

// NewFlatRateProvider creates a new flat-rate shipping provider.
func NewFlatRateProvider(rates []FlatRate) Provider {
	return &FlatRateProvider{rates: rates}
}

// DefaultRates returns the storefront's standard rate card:
// standard is free over $50, otherwise $9.99; express $19.99;
// overnight $39.99.
func DefaultRates() []FlatRate {
	return []FlatRate{
		{
			Method:      MethodStandard,
			ServiceName: "Standard Shipping",
			Cost:        decimal.RequireFromString("9.99"),
			DaysMin:     5,
			DaysMax:     7,
			FreeOver:    decimal.NewFromInt(50),
		},
		{
			Method:      MethodExpress,
			ServiceName: "Express Shipping",
			Cost:        decimal.RequireFromString("19.99"),
			DaysMin:     2,
			DaysMax:     3,
		},
		{
			Method:      MethodOvernight,
			ServiceName: "Overnight Shipping",
			Cost:        decimal.RequireFromString("39.99"),
			DaysMin:     1,
			DaysMax:     1,
		},
	}
}

// Rate prices a single method for the given subtotal.
func (p *FlatRateProvider) Rate(ctx context.Context, method Method, subtotal decimal.Decimal) (*Rate, error) {
	for _, fr := range p.rates {
		if fr.Method == method {
			r := fr.toRate(subtotal)
			return &r, nil
		}
	}
	return nil, ErrUnknownMethod
}

// Rates prices every configured method for the given subtotal.
func (p *FlatRateProvider) Rates(ctx context.Context, subtotal decimal.Decimal) ([]Rate, error) {
	result := make([]Rate, len(p.rates))
	for i, fr := range p.rates {
		result[i] = fr.toRate(subtotal)
	}
	return result, nil
}

// FreeShippingRemaining reports the gap to the cheapest free-over
// threshold. Zero when no threshold is configured or already met.
func (p *FlatRateProvider) FreeShippingRemaining(subtotal decimal.Decimal) decimal.Decimal {
	for _, fr := range p.rates {
		if fr.FreeOver.IsZero() {
			continue
		}
		remaining := fr.FreeOver.Sub(subtotal)
		if remaining.IsNegative() {
			return decimal.Zero
		}
		return remaining
	}
	return decimal.Zero
}

func (fr FlatRate) toRate(subtotal decimal.Decimal) Rate {
	r := Rate{
		Method:      fr.Method,
		ServiceName: fr.ServiceName,
		Cost:        fr.Cost,
		Saved:       decimal.Zero,
		DaysMin:     fr.DaysMin,
		DaysMax:     fr.DaysMax,
	}
	if !fr.FreeOver.IsZero() && subtotal.GreaterThan(fr.FreeOver) {
		r.Saved = fr.Cost
		r.Cost = decimal.Zero
	}
	return r
}
