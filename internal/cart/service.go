package cart

import (
	"context"
	"errors"

	"github.com/citymart/storefront/internal/domain"
)

type cartService struct {
	store Store
}

// NewService creates a CartService backed by the given store.
func NewService(store Store) domain.CartService {
	return &cartService{store: store}
}

// GetOrCreateCart retrieves the cart for a session, creating an empty
// one (and a fresh session ID) when none exists.
func (s *cartService) GetOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, string, error) {
	if sessionID != "" {
		cart, err := s.store.Get(ctx, sessionID)
		if err == nil {
			return cart, sessionID, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, "", domain.Internal(err, "cart.get_or_create", "failed to load cart")
		}
	}

	if sessionID == "" {
		newID, err := GenerateSessionID()
		if err != nil {
			return nil, "", domain.Internal(err, "cart.get_or_create", "failed to generate session ID")
		}
		sessionID = newID
	}

	cart := &domain.Cart{ID: sessionID, Items: []domain.CartItem{}}
	if err := s.store.Set(ctx, cart); err != nil {
		return nil, "", domain.Internal(err, "cart.get_or_create", "failed to persist cart")
	}

	return cart, sessionID, nil
}

// AddItem adds a product to the cart, merging quantity into an existing
// line for the same product.
func (s *cartService) AddItem(ctx context.Context, cartID string, product domain.Product, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.load(ctx, cartID, "cart.add_item")
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	if err := s.store.Set(ctx, cart); err != nil {
		return nil, domain.Internal(err, "cart.add_item", "failed to persist cart")
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 leave the
// cart unchanged; removal stays an explicit operation so that a stray
// decrement in the UI cannot silently drop a line.
func (s *cartService) UpdateQuantity(ctx context.Context, cartID string, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.load(ctx, cartID, "cart.update_quantity")
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.store.Set(ctx, cart); err != nil {
				return nil, domain.Internal(err, "cart.update_quantity", "failed to persist cart")
			}
			break
		}
	}

	return cart, nil
}

// RemoveItem deletes a line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID string) (*domain.Cart, error) {
	cart, err := s.load(ctx, cartID, "cart.remove_item")
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.store.Set(ctx, cart); err != nil {
		return nil, domain.Internal(err, "cart.remove_item", "failed to persist cart")
	}
	return cart, nil
}

// ClearCart removes all items from a cart.
func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	cart, err := s.load(ctx, cartID, "cart.clear")
	if err != nil {
		return err
	}

	cart.Items = []domain.CartItem{}
	if err := s.store.Set(ctx, cart); err != nil {
		return domain.Internal(err, "cart.clear", "failed to persist cart")
	}
	return nil
}

func (s *cartService) load(ctx context.Context, cartID, op string) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, cartID)
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart")
	}
	return cart, nil
}
