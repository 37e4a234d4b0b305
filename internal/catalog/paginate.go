package catalog

import "github.com/citymart/storefront/internal/domain"

// Page sizes used by the storefront views.
const (
	// DefaultPerPage is the product grid page size.
	DefaultPerPage = 18

	// CompactPerPage is the page size for compact listings.
	CompactPerPage = 8
)

// Paginate slices one page out of the filtered results. Pages are
// 1-based; a page past the end returns an empty (non-nil) slice so
// callers can render "no results" without a nil check.
func Paginate(products []domain.Product, page, perPage int) *domain.ProductPage {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(products)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	items := make([]domain.Product, end-start)
	copy(items, products[start:end])

	return &domain.ProductPage{
		Products:   items,
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
