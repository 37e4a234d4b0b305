package routes

import (
	"github.com/citymart/storefront/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for the storefront API routes
type StorefrontDeps struct {
	// Product browsing (list, detail, categories)
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout wizard and coupons
	CheckoutHandler *storefront.CheckoutHandler

	// Order math (quotes, shipping rates)
	PricingHandler *storefront.PricingHandler

	// Cities, shops, deals, discount wheel
	LocalHandler *storefront.LocalHandler
}
