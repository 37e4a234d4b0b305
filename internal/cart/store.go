package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/citymart/storefront/internal/domain"
)

// ErrNotFound is returned by stores when no cart exists for an ID.
// Services translate it into a domain error.
var ErrNotFound = errors.New("cart not found")

// Store persists carts keyed by cart ID.
type Store interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Set(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore is an in-process Store. Used in tests and when Redis is
// not configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]domain.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy items so callers cannot mutate the stored cart.
	out := domain.Cart{ID: cart.ID, Items: make([]domain.CartItem, len(cart.Items))}
	copy(out.Items, cart.Items)
	return &out, nil
}

func (s *MemoryStore) Set(ctx context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := domain.Cart{ID: cart.ID, Items: make([]domain.CartItem, len(cart.Items))}
	copy(stored.Items, cart.Items)
	s.carts[cart.ID] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
	return nil
}
