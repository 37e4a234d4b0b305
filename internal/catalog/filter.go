package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/citymart/storefront/internal/domain"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Apply returns the products that pass every predicate in the filter,
// preserving input order. Text and rating predicates with zero values
// pass everything; the price range is enforced as given.
func Apply(products []domain.Product, f domain.ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, f domain.ProductFilter) bool {
	if f.SearchQuery != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchQuery)) {
		return false
	}

	if f.CategoryID != "" {
		if p.Category.ID != f.CategoryID {
			return false
		}
	} else if f.CategoryName != "" {
		if !strings.EqualFold(p.Category.Name, f.CategoryName) {
			return false
		}
	}

	// The price range is always enforced, so an explicit PriceMax of 0
	// keeps only zero-priced products. NewProductFilter starts the range
	// at [0, DefaultPriceMax].
	if p.Price.LessThan(f.PriceMin) || p.Price.GreaterThan(f.PriceMax) {
		return false
	}

	if f.MinRating > 0 {
		threshold := decimalFromInt(f.MinRating)
		if p.AverageRating().LessThan(threshold) {
			return false
		}
	}

	return true
}

// Sort orders products by the given key. All sorts are stable so that
// equal elements keep their catalog order. Unknown keys fall back to
// the featured ordering.
func Sort(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case domain.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].AverageRating().GreaterThan(products[j].AverageRating())
		})
	case domain.SortName:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		// Featured ordering: featured products float to the front,
		// everything else keeps its place.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
