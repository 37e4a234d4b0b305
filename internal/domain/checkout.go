package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CHECKOUT DOMAIN ERRORS
// =============================================================================

var (
	ErrCheckoutNotFound   = &Error{Code: ENOTFOUND, Message: "Checkout session not found"}
	ErrEmptyCart          = &Error{Code: EINVALID, Message: "Cannot place an order with an empty cart"}
	ErrOrderInFlight      = &Error{Code: ECONFLICT, Message: "An order is already being processed"}
	ErrStepNotValid       = &Error{Code: EINVALID, Message: "Current step has not been completed"}
	ErrNotOnReviewStep    = &Error{Code: EINVALID, Message: "Orders can only be placed from the review step"}
)

// CheckoutStep identifies a step in the checkout flow. Steps are strictly
// ordered; forward movement requires the current step to validate.
type CheckoutStep int

const (
	StepAddress CheckoutStep = iota
	StepPayment
	StepReview
)

// String returns the step name used in API payloads.
func (s CheckoutStep) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Address is the shipping address collected on the first checkout step.
type Address struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Address   string `json:"address" validate:"required,min=5"`
	City      string `json:"city" validate:"required,min=2"`
	State     string `json:"state" validate:"required,min=2"`
	Zip       string `json:"zip" validate:"required,min=5"`
	Country   string `json:"country" validate:"required,min=2"`
}

// Payment is the card form collected on the second checkout step.
// Card details are validated for shape only and never stored.
type Payment struct {
	CardNumber string `json:"cardNumber" validate:"required,min=16"`
	Expiry     string `json:"expiry" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,min=3"`
	CardName   string `json:"cardName" validate:"required,min=2"`
}

// PriceBreakdown is the full order math. Total is
// Subtotal + Shipping + Tax - Discount.
type PriceBreakdown struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	Shipping              decimal.Decimal `json:"shipping"`
	Tax                   decimal.Decimal `json:"tax"`
	Discount              decimal.Decimal `json:"discount"`
	Total                 decimal.Decimal `json:"total"`
	CouponCode            string          `json:"couponCode,omitempty"`
	ShippingMethod        string          `json:"shippingMethod"`
	FreeShippingRemaining decimal.Decimal `json:"freeShippingRemaining"`
	ShippingSaved         decimal.Decimal `json:"shippingSaved"`
}

// Order is the result of a successfully placed order.
type Order struct {
	ID        string         `json:"id"`
	Items     []CartItem     `json:"items"`
	Address   Address        `json:"address"`
	Breakdown PriceBreakdown `json:"breakdown"`
	PlacedAt  time.Time      `json:"placedAt"`
}

// CheckoutState is the wizard's externally visible state.
type CheckoutState struct {
	Step           CheckoutStep `json:"-"`
	AddressValid   bool         `json:"addressValid"`
	PaymentValid   bool         `json:"paymentValid"`
	Processing     bool         `json:"processing"`
	Address        Address      `json:"address"`
	ShippingMethod string       `json:"shippingMethod"`
	CouponCode     string       `json:"couponCode,omitempty"`
}

// CheckoutService drives the checkout wizard.
type CheckoutService interface {
	// GetState returns the current wizard state for a session.
	GetState(ctx context.Context, sessionID string) (*CheckoutState, error)

	// SubmitAddress validates the address form and, on success, advances
	// to the payment step.
	SubmitAddress(ctx context.Context, sessionID string, addr Address) (*CheckoutState, error)

	// SubmitPayment validates the payment form and, on success, advances
	// to the review step.
	SubmitPayment(ctx context.Context, sessionID string, pay Payment) (*CheckoutState, error)

	// Back moves one step backward. Backward movement is always allowed
	// and never clears entered data.
	Back(ctx context.Context, sessionID string) (*CheckoutState, error)

	// SetShippingMethod selects the shipping method used for quoting
	// and for the final order.
	SetShippingMethod(ctx context.Context, sessionID, method string) (*CheckoutState, error)

	// ApplyCoupon applies a coupon code. Coupons are exclusive: a valid
	// code replaces the previous one, an invalid code keeps it.
	ApplyCoupon(ctx context.Context, sessionID, code string) (*CheckoutState, error)

	// PlaceOrder finalizes the order. Only valid from the review step with
	// both forms validated; concurrent submissions are rejected.
	PlaceOrder(ctx context.Context, sessionID string) (*Order, error)
}
