package storefront

import (
	"net/http"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/handler"
	"github.com/citymart/storefront/internal/telemetry"
)

// CheckoutHandler serves the checkout wizard API. All endpoints operate
// on the wizard session keyed by the cart session cookie.
type CheckoutHandler struct {
	checkout domain.CheckoutService
	metrics  *telemetry.BusinessMetrics
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService domain.CheckoutService, metrics *telemetry.BusinessMetrics) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		metrics:  metrics,
	}
}

// stateResponse adds the step name to the wizard state payload.
type stateResponse struct {
	Step string `json:"step"`
	*domain.CheckoutState
}

func toStateResponse(s *domain.CheckoutState) stateResponse {
	return stateResponse{
		Step:          s.Step.String(),
		CheckoutState: s,
	}
}

// requireSession extracts the cart session cookie. Checkout never
// creates a session of its own; a missing cookie means no cart exists.
func requireSession(r *http.Request) (string, error) {
	sessionID := GetSessionID(r)
	if sessionID == "" {
		return "", domain.ErrCartNotFound
	}
	return sessionID, nil
}

// State handles GET /api/checkout
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.GetState(r.Context(), sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// SubmitAddress handles POST /api/checkout/address
func (h *CheckoutHandler) SubmitAddress(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var addr domain.Address
	if err := handler.DecodeJSON(r, &addr); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.SubmitAddress(r.Context(), sessionID, addr)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CheckoutStep.WithLabelValues("address").Inc()
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// SubmitPayment handles POST /api/checkout/payment
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var pay domain.Payment
	if err := handler.DecodeJSON(r, &pay); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.SubmitPayment(r.Context(), sessionID, pay)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CheckoutStep.WithLabelValues("payment").Inc()
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// Back handles POST /api/checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.Back(r.Context(), sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// SetShippingMethod handles PUT /api/checkout/shipping
func (h *CheckoutHandler) SetShippingMethod(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.SetShippingMethod(r.Context(), sessionID, req.Method)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// ApplyCoupon handles POST /api/coupons/apply
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.checkout.ApplyCoupon(r.Context(), sessionID, req.Code)
	if err != nil {
		if h.metrics != nil && domain.IsCode(err, domain.EINVALID) {
			h.metrics.CouponRejected.Inc()
		}
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CouponsApplied.WithLabelValues(state.CouponCode).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, toStateResponse(state))
}

// PlaceOrder handles POST /api/checkout/order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requireSession(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CheckoutCompleted.Inc()
		total, _ := order.Breakdown.Total.Float64()
		h.metrics.OrderValue.Observe(total)

		units := 0
		for _, item := range order.Items {
			units += item.Quantity
		}
		h.metrics.OrderItemCount.Observe(float64(units))
	}

	handler.RespondJSON(w, http.StatusCreated, order)
}
