package routes

import (
	"github.com/citymart/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing API routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/{id}", deps.ProductHandler.Get)
	r.Get("/api/categories", deps.ProductHandler.Categories)

	// Shopping cart
	r.Get("/api/cart", deps.CartHandler.View)
	r.Post("/api/cart/items", deps.CartHandler.Add)
	r.Put("/api/cart/items/{productID}", deps.CartHandler.UpdateQuantity)
	r.Delete("/api/cart/items/{productID}", deps.CartHandler.Remove)
	r.Delete("/api/cart", deps.CartHandler.Clear)

	// Order math
	r.Get("/api/pricing/quote", deps.PricingHandler.Quote)
	r.Get("/api/pricing/shipping", deps.PricingHandler.ShippingRates)
	r.Post("/api/coupons/apply", deps.CheckoutHandler.ApplyCoupon)

	// Checkout wizard
	r.Get("/api/checkout", deps.CheckoutHandler.State)
	r.Post("/api/checkout/address", deps.CheckoutHandler.SubmitAddress)
	r.Post("/api/checkout/payment", deps.CheckoutHandler.SubmitPayment)
	r.Post("/api/checkout/back", deps.CheckoutHandler.Back)
	r.Put("/api/checkout/shipping", deps.CheckoutHandler.SetShippingMethod)
	r.Post("/api/checkout/order", deps.CheckoutHandler.PlaceOrder)

	// Local shopping
	r.Get("/api/cities", deps.LocalHandler.Cities)
	r.Post("/api/cities/select", deps.LocalHandler.SelectCity)
	r.Get("/api/shops", deps.LocalHandler.Shops)
	r.Get("/api/shops/{id}", deps.LocalHandler.Shop)
	r.Get("/api/deals", deps.LocalHandler.Deals)
	r.Post("/api/discount/spin", deps.LocalHandler.Spin)
}
