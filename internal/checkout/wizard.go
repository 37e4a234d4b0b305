// Package checkout implements the three-step checkout flow:
// address, payment, review. Forward movement requires the current step
// to validate; backward movement is always allowed.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/pricing"
	"github.com/citymart/storefront/internal/shipping"
)

// Config holds checkout wizard configuration.
type Config struct {
	// ProcessingDelay simulates payment processing time on PlaceOrder.
	// Zero in tests.
	ProcessingDelay time.Duration
}

// wizardSession is the per-session wizard state. Payment details are
// validated and discarded; only the validity flag is retained.
type wizardSession struct {
	mu sync.Mutex

	step           domain.CheckoutStep
	address        domain.Address
	addressValid   bool
	paymentValid   bool
	shippingMethod shipping.Method
	couponCode     string
	processing     bool
}

// Wizard implements domain.CheckoutService. Wizard state is held in
// memory per session; carts live in the cart store.
type Wizard struct {
	config    Config
	carts     domain.CartService
	pricing   *pricing.Calculator
	validator *FormValidator

	mu       sync.Mutex
	sessions map[string]*wizardSession
}

// NewWizard creates the checkout service.
func NewWizard(carts domain.CartService, calc *pricing.Calculator, fv *FormValidator, config Config) *Wizard {
	return &Wizard{
		config:    config,
		carts:     carts,
		pricing:   calc,
		validator: fv,
		sessions:  make(map[string]*wizardSession),
	}
}

var _ domain.CheckoutService = (*Wizard)(nil)

func (w *Wizard) session(sessionID string) *wizardSession {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.sessions[sessionID]
	if !ok {
		s = &wizardSession{
			step:           domain.StepAddress,
			shippingMethod: shipping.MethodStandard,
		}
		w.sessions[sessionID] = s
	}
	return s
}

// GetState returns the current wizard state for a session.
func (w *Wizard) GetState(ctx context.Context, sessionID string) (*domain.CheckoutState, error) {
	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(), nil
}

// SubmitAddress validates the address form and advances to payment.
func (w *Wizard) SubmitAddress(ctx context.Context, sessionID string, addr domain.Address) (*domain.CheckoutState, error) {
	if err := w.validator.ValidateAddress(addr); err != nil {
		return nil, err
	}

	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.address = addr
	s.addressValid = true
	if s.step == domain.StepAddress {
		s.step = domain.StepPayment
	}
	return s.state(), nil
}

// SubmitPayment validates the payment form and advances to review.
// Card details are not retained past validation.
func (w *Wizard) SubmitPayment(ctx context.Context, sessionID string, pay domain.Payment) (*domain.CheckoutState, error) {
	if err := w.validator.ValidatePayment(pay); err != nil {
		return nil, err
	}

	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.addressValid {
		return nil, domain.ErrStepNotValid
	}

	s.paymentValid = true
	if s.step == domain.StepPayment {
		s.step = domain.StepReview
	}
	return s.state(), nil
}

// Back moves one step backward. Already at the first step is a no-op.
func (w *Wizard) Back(ctx context.Context, sessionID string) (*domain.CheckoutState, error) {
	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step > domain.StepAddress {
		s.step--
	}
	return s.state(), nil
}

// SetShippingMethod selects the shipping method for quoting and the
// final order.
func (w *Wizard) SetShippingMethod(ctx context.Context, sessionID, method string) (*domain.CheckoutState, error) {
	switch shipping.Method(method) {
	case shipping.MethodStandard, shipping.MethodExpress, shipping.MethodOvernight:
	default:
		return nil, shipping.ErrUnknownMethod
	}

	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shippingMethod = shipping.Method(method)
	return s.state(), nil
}

// ApplyCoupon applies a coupon code. A rejected code leaves the
// previously applied coupon in place.
func (w *Wizard) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CheckoutState, error) {
	coupon, err := pricing.LookupCoupon(code)
	if err != nil {
		return nil, err
	}

	s := w.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.couponCode = coupon.Code
	return s.state(), nil
}

// PlaceOrder finalizes the order from the review step. The processing
// flag rejects a second submission while the first is in flight.
func (w *Wizard) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	s := w.session(sessionID)

	s.mu.Lock()
	if s.processing {
		s.mu.Unlock()
		return nil, domain.ErrOrderInFlight
	}
	if s.step != domain.StepReview {
		s.mu.Unlock()
		return nil, domain.ErrNotOnReviewStep
	}
	if !s.addressValid || !s.paymentValid {
		s.mu.Unlock()
		return nil, domain.ErrStepNotValid
	}
	s.processing = true
	address := s.address
	method := s.shippingMethod
	coupon := s.couponCode
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.processing = false
		s.mu.Unlock()
	}()

	cart, _, err := w.carts.GetOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	breakdown, err := w.pricing.Quote(ctx, cart.Items, method, coupon)
	if err != nil {
		return nil, err
	}

	if w.config.ProcessingDelay > 0 {
		select {
		case <-time.After(w.config.ProcessingDelay):
		case <-ctx.Done():
			return nil, &domain.Error{Code: domain.ETIMEOUT, Op: "checkout.place_order", Message: "order processing cancelled", Err: ctx.Err()}
		}
	}

	order := &domain.Order{
		ID:        uuid.New().String(),
		Items:     cart.Items,
		Address:   address,
		Breakdown: *breakdown,
		PlacedAt:  time.Now().UTC(),
	}

	if err := w.carts.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}

	w.reset(sessionID)
	return order, nil
}

// reset clears the wizard state after a successful order.
func (w *Wizard) reset(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, sessionID)
}

func (s *wizardSession) state() *domain.CheckoutState {
	return &domain.CheckoutState{
		Step:           s.step,
		AddressValid:   s.addressValid,
		PaymentValid:   s.paymentValid,
		Processing:     s.processing,
		Address:        s.address,
		ShippingMethod: string(s.shippingMethod),
		CouponCode:     s.couponCode,
	}
}
