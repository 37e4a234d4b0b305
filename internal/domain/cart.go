package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartItem is one line in a cart. Price is the unit price captured when
// the product was added.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns Price * Quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a session-scoped shopping cart.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of line totals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CartService provides business logic for shopping cart operations.
type CartService interface {
	// GetOrCreateCart retrieves an existing cart or creates a new one.
	// Returns the cart, the session ID (new or existing), and any error.
	GetOrCreateCart(ctx context.Context, sessionID string) (*Cart, string, error)

	// AddItem adds a product to the cart. If the product is already in the
	// cart, its quantity is incremented instead of adding a second line.
	AddItem(ctx context.Context, cartID string, product Product, quantity int) (*Cart, error)

	// UpdateQuantity sets the quantity of a cart line. Quantities below 1
	// leave the cart unchanged; removal is an explicit RemoveItem call.
	UpdateQuantity(ctx context.Context, cartID string, productID string, quantity int) (*Cart, error)

	// RemoveItem deletes a cart line. Removing an absent product is a no-op.
	RemoveItem(ctx context.Context, cartID string, productID string) (*Cart, error)

	// ClearCart removes all items from a cart.
	ClearCart(ctx context.Context, cartID string) error
}
