package catalog

import (
	"context"

	"github.com/citymart/storefront/internal/domain"
)

type service struct {
	store *Store
}

// NewService creates a CatalogService backed by the given store.
func NewService(store *Store) domain.CatalogService {
	return &service{store: store}
}

// ListProducts filters, sorts, and paginates the catalog.
func (s *service) ListProducts(ctx context.Context, filter domain.ProductFilter, page, perPage int) (*domain.ProductPage, error) {
	products := Apply(s.store.List(), filter)
	Sort(products, filter.SortBy)
	return Paginate(products, page, perPage), nil
}

// GetProduct retrieves a single product by ID.
func (s *service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, domain.NotFound("catalog.get", "product", id)
	}
	return &p, nil
}

// Categories returns the distinct categories in catalog order.
func (s *service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.store.Categories(), nil
}
