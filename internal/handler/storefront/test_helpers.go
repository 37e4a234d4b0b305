package storefront

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

// mockCatalogService implements domain.CatalogService for testing
type mockCatalogService struct {
	listProductsFunc func(ctx context.Context, filter domain.ProductFilter, page, perPage int) (*domain.ProductPage, error)
	getProductFunc   func(ctx context.Context, id string) (*domain.Product, error)
	categoriesFunc   func(ctx context.Context) ([]domain.Category, error)
}

func (m *mockCatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter, page, perPage int) (*domain.ProductPage, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx, filter, page, perPage)
	}
	return &domain.ProductPage{Products: []domain.Product{}}, nil
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockCatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	getOrCreateCartFunc func(ctx context.Context, sessionID string) (*domain.Cart, string, error)
	addItemFunc         func(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.Cart, error)
	updateQuantityFunc  func(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	removeItemFunc      func(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	clearCartFunc       func(ctx context.Context, cartID string) error
}

func (m *mockCartService) GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, string, error) {
	if m.getOrCreateCartFunc != nil {
		return m.getOrCreateCartFunc(ctx, sessionID)
	}
	if sessionID == "" {
		sessionID = "test-session"
	}
	return &domain.Cart{ID: sessionID, Items: []domain.CartItem{}}, sessionID, nil
}

func (m *mockCartService) AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.Cart, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, cartID, product, quantity)
	}
	return &domain.Cart{ID: cartID, Items: []domain.CartItem{{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}}}, nil
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	if m.updateQuantityFunc != nil {
		return m.updateQuantityFunc(ctx, cartID, productID, quantity)
	}
	return &domain.Cart{ID: cartID, Items: []domain.CartItem{}}, nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, cartID, productID)
	}
	return &domain.Cart{ID: cartID, Items: []domain.CartItem{}}, nil
}

func (m *mockCartService) ClearCart(ctx context.Context, cartID string) error {
	if m.clearCartFunc != nil {
		return m.clearCartFunc(ctx, cartID)
	}
	return nil
}

// mockCheckoutService implements domain.CheckoutService for testing
type mockCheckoutService struct {
	getStateFunc          func(ctx context.Context, sessionID string) (*domain.CheckoutState, error)
	submitAddressFunc     func(ctx context.Context, sessionID string, addr domain.Address) (*domain.CheckoutState, error)
	submitPaymentFunc     func(ctx context.Context, sessionID string, pay domain.Payment) (*domain.CheckoutState, error)
	backFunc              func(ctx context.Context, sessionID string) (*domain.CheckoutState, error)
	setShippingMethodFunc func(ctx context.Context, sessionID, method string) (*domain.CheckoutState, error)
	applyCouponFunc       func(ctx context.Context, sessionID, code string) (*domain.CheckoutState, error)
	placeOrderFunc        func(ctx context.Context, sessionID string) (*domain.Order, error)
}

func (m *mockCheckoutService) GetState(ctx context.Context, sessionID string) (*domain.CheckoutState, error) {
	if m.getStateFunc != nil {
		return m.getStateFunc(ctx, sessionID)
	}
	return &domain.CheckoutState{Step: domain.StepAddress, ShippingMethod: "standard"}, nil
}

func (m *mockCheckoutService) SubmitAddress(ctx context.Context, sessionID string, addr domain.Address) (*domain.CheckoutState, error) {
	if m.submitAddressFunc != nil {
		return m.submitAddressFunc(ctx, sessionID, addr)
	}
	return &domain.CheckoutState{Step: domain.StepPayment, AddressValid: true, Address: addr}, nil
}

func (m *mockCheckoutService) SubmitPayment(ctx context.Context, sessionID string, pay domain.Payment) (*domain.CheckoutState, error) {
	if m.submitPaymentFunc != nil {
		return m.submitPaymentFunc(ctx, sessionID, pay)
	}
	return &domain.CheckoutState{Step: domain.StepReview, AddressValid: true, PaymentValid: true}, nil
}

func (m *mockCheckoutService) Back(ctx context.Context, sessionID string) (*domain.CheckoutState, error) {
	if m.backFunc != nil {
		return m.backFunc(ctx, sessionID)
	}
	return &domain.CheckoutState{Step: domain.StepAddress}, nil
}

func (m *mockCheckoutService) SetShippingMethod(ctx context.Context, sessionID, method string) (*domain.CheckoutState, error) {
	if m.setShippingMethodFunc != nil {
		return m.setShippingMethodFunc(ctx, sessionID, method)
	}
	return &domain.CheckoutState{Step: domain.StepAddress, ShippingMethod: method}, nil
}

func (m *mockCheckoutService) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CheckoutState, error) {
	if m.applyCouponFunc != nil {
		return m.applyCouponFunc(ctx, sessionID, code)
	}
	return &domain.CheckoutState{Step: domain.StepAddress, CouponCode: code}, nil
}

func (m *mockCheckoutService) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	if m.placeOrderFunc != nil {
		return m.placeOrderFunc(ctx, sessionID)
	}
	return &domain.Order{ID: "order-1"}, nil
}

// testProduct builds a product fixture with the given price.
func testProduct(id, name, priceStr string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(priceStr),
		Category: domain.Category{
			ID:   "cat-1",
			Name: "Electronics",
		},
	}
}
