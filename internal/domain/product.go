package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PRODUCT DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound  = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCategoryNotFound = &Error{Code: ENOTFOUND, Message: "Category not found"}
)

// Category identifies a product category. Matching by ID is preferred;
// matching by name is supported for category landing pages.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry. Price is the unit price in dollars.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	TotalStar   int             `json:"totalStar"`
	ReviewCount int             `json:"reviewCount"`
	Featured    bool            `json:"featured"`
	InStock     bool            `json:"inStock"`
}

// AverageRating returns the mean star rating. A product with no reviews
// rates zero, so it fails any positive rating filter and sorts last.
func (p Product) AverageRating() decimal.Decimal {
	if p.ReviewCount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.TotalStar)).Div(decimal.NewFromInt(int64(p.ReviewCount)))
}

// SortKey selects a product ordering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// ProductFilter holds the browse criteria. An empty search matches all
// names, an empty category matches all categories, MinRating 0 admits
// unrated products. The price range is always enforced, so filters
// should be built with NewProductFilter, which starts the range at
// [0, DefaultPriceMax].
type ProductFilter struct {
	SearchQuery  string
	CategoryID   string
	CategoryName string
	PriceMin     decimal.Decimal
	PriceMax     decimal.Decimal
	MinRating    int
	SortBy       SortKey
}

// DefaultPriceMax is the upper bound of the default price range.
var DefaultPriceMax = decimal.NewFromInt(100000)

// NewProductFilter returns a filter that admits every product,
// sorted featured-first.
func NewProductFilter() ProductFilter {
	return ProductFilter{
		PriceMin: decimal.Zero,
		PriceMax: DefaultPriceMax,
		SortBy:   SortFeatured,
	}
}

// ProductPage is one page of filtered results.
type ProductPage struct {
	Products   []Product `json:"products"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// CatalogService provides product browsing.
type CatalogService interface {
	// ListProducts applies the filter, sorts, and returns the requested page.
	ListProducts(ctx context.Context, filter ProductFilter, page, perPage int) (*ProductPage, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// Categories returns the distinct categories in catalog order.
	Categories(ctx context.Context) ([]Category, error)
}
