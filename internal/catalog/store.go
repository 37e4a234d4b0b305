package catalog

import (
	"sync"

	"github.com/citymart/storefront/internal/domain"
)

// Store holds the product catalog in memory. Reads vastly outnumber
// writes; writes happen only on startup seeding and upstream refresh.
type Store struct {
	mu         sync.RWMutex
	products   []domain.Product
	byID       map[string]domain.Product
	categories []domain.Category
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]domain.Product),
	}
}

// List returns a snapshot of all products in catalog order.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns a product by ID.
func (s *Store) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Replace swaps the entire catalog atomically. Used by the refresh
// worker so readers never observe a partially loaded catalog.
func (s *Store) Replace(products []domain.Product) {
	byID := make(map[string]domain.Product, len(products))
	seen := make(map[string]bool)
	var categories []domain.Category
	for _, p := range products {
		byID[p.ID] = p
		key := p.Category.ID + "\x00" + p.Category.Name
		if !seen[key] {
			seen[key] = true
			categories = append(categories, p.Category)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.byID = byID
	s.categories = categories
}
