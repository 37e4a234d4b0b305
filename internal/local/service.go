// Package local serves the city-scoped shopping experience: cities,
// neighborhood shops, and time-bounded deals.
package local

import (
	"time"

	"github.com/citymart/storefront/internal/domain"
)

// Service answers city, shop, and deal lookups over a fixed data set.
type Service struct {
	cities []domain.City
	shops  []domain.Shop
	deals  []domain.Deal
	now    func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the deal clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a local shopping service over the built-in data.
func NewService(opts ...Option) *Service {
	s := &Service{
		cities: Cities,
		shops:  Shops,
		deals:  Deals,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCities returns all serviceable cities.
func (s *Service) ListCities() []domain.City {
	out := make([]domain.City, len(s.cities))
	copy(out, s.cities)
	return out
}

// CityBySlug looks up a city by its slug.
func (s *Service) CityBySlug(slug string) (*domain.City, error) {
	for _, c := range s.cities {
		if c.Slug == slug {
			city := c
			return &city, nil
		}
	}
	return nil, domain.NotFound("local.city", "city", slug)
}

// ShopsByCity returns the shops in a city. The city must exist; an
// existing city with no shops returns an empty slice.
func (s *Service) ShopsByCity(slug string) ([]domain.Shop, error) {
	if _, err := s.CityBySlug(slug); err != nil {
		return nil, err
	}

	out := []domain.Shop{}
	for _, shop := range s.shops {
		if shop.CitySlug == slug {
			out = append(out, shop)
		}
	}
	return out, nil
}

// ShopByID looks up a single shop.
func (s *Service) ShopByID(id string) (*domain.Shop, error) {
	for _, shop := range s.shops {
		if shop.ID == id {
			found := shop
			return &found, nil
		}
	}
	return nil, domain.NotFound("local.shop", "shop", id)
}

// ActiveDeals returns the deals currently live in a city, featured
// deals first.
func (s *Service) ActiveDeals(citySlug string) ([]domain.Deal, error) {
	if _, err := s.CityBySlug(citySlug); err != nil {
		return nil, err
	}

	now := s.now()
	featured := []domain.Deal{}
	rest := []domain.Deal{}
	for _, deal := range s.deals {
		if deal.CitySlug != citySlug || !deal.Live(now) {
			continue
		}
		if deal.Featured {
			featured = append(featured, deal)
		} else {
			rest = append(rest, deal)
		}
	}
	return append(featured, rest...), nil
}
