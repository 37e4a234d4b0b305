package storefront

import (
	"net/http"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/handler"
	"github.com/citymart/storefront/internal/pricing"
	"github.com/citymart/storefront/internal/shipping"
)

// PricingHandler serves order math for the current cart.
type PricingHandler struct {
	carts    domain.CartService
	calc     *pricing.Calculator
	provider shipping.Provider
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(cartService domain.CartService, calc *pricing.Calculator, provider shipping.Provider) *PricingHandler {
	return &PricingHandler{
		carts:    cartService,
		calc:     calc,
		provider: provider,
	}
}

// Quote handles GET /api/pricing/quote
//
// Query parameters: method (default standard) and coupon. The quote is
// computed against the session cart as it stands.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, _, err := h.carts.GetOrCreateCart(r.Context(), sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	method := shipping.Method(r.URL.Query().Get("method"))
	if method == "" {
		method = shipping.MethodStandard
	}

	breakdown, err := h.calc.Quote(r.Context(), cart.Items, method, r.URL.Query().Get("coupon"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, breakdown)
}

// ShippingRates handles GET /api/pricing/shipping
//
// Returns every available shipping rate for the session cart's subtotal,
// so clients can render the method picker with live costs.
func (h *PricingHandler) ShippingRates(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, _, err := h.carts.GetOrCreateCart(r.Context(), sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	subtotal := cart.TotalPrice()
	rates, err := h.provider.Rates(r.Context(), subtotal)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"rates":                 rates,
		"freeShippingRemaining": h.provider.FreeShippingRemaining(subtotal),
	})
}
