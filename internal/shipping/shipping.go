package shipping

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

// Method identifies a shipping method.
type Method string

const (
	MethodStandard  Method = "standard"
	MethodExpress   Method = "express"
	MethodOvernight Method = "overnight"
)

// Rate is a priced shipping option for a given cart subtotal.
type Rate struct {
	Method      Method          `json:"method"`
	ServiceName string          `json:"serviceName"`
	Cost        decimal.Decimal `json:"cost"`

	// Saved is non-zero when a free-shipping threshold waived the cost.
	Saved decimal.Decimal `json:"saved"`

	DaysMin int `json:"daysMin"`
	DaysMax int `json:"daysMax"`
}

// Provider calculates shipping rates from a cart subtotal.
type Provider interface {
	// Rate prices a single method for the given subtotal.
	Rate(ctx context.Context, method Method, subtotal decimal.Decimal) (*Rate, error)

	// Rates prices every available method for the given subtotal.
	Rates(ctx context.Context, subtotal decimal.Decimal) ([]Rate, error)

	// FreeShippingRemaining returns how much more the subtotal needs to
	// grow before standard shipping becomes free. Zero once reached.
	FreeShippingRemaining(subtotal decimal.Decimal) decimal.Decimal
}

// ErrUnknownMethod is returned for a method the provider does not offer.
var ErrUnknownMethod = &domain.Error{Code: domain.EINVALID, Message: "Unknown shipping method"}
