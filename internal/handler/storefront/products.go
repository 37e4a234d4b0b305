package storefront

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/catalog"
	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/handler"
	"github.com/citymart/storefront/internal/telemetry"
)

// ProductHandler serves the product browsing API.
type ProductHandler struct {
	catalog domain.CatalogService
	metrics *telemetry.BusinessMetrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService domain.CatalogService, metrics *telemetry.BusinessMetrics) *ProductHandler {
	return &ProductHandler{
		catalog: catalogService,
		metrics: metrics,
	}
}

// List handles GET /api/products
//
// Query parameters: search, category, categoryName, minPrice, maxPrice,
// minRating, sort, page, perPage. Absent parameters fall back to the
// pass-everything filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.NewProductFilter()
	filter.SearchQuery = q.Get("search")
	filter.CategoryID = q.Get("category")
	filter.CategoryName = q.Get("categoryName")

	if v := q.Get("minPrice"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil || min.IsNegative() {
			handler.RespondError(w, r, domain.Invalid("product.list", "minPrice must be a non-negative number"))
			return
		}
		filter.PriceMin = min
	}
	if v := q.Get("maxPrice"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil || max.IsNegative() {
			handler.RespondError(w, r, domain.Invalid("product.list", "maxPrice must be a non-negative number"))
			return
		}
		filter.PriceMax = max
	}
	if v := q.Get("minRating"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil || rating < 0 || rating > 5 {
			handler.RespondError(w, r, domain.Invalid("product.list", "minRating must be between 0 and 5"))
			return
		}
		filter.MinRating = rating
	}
	if v := q.Get("sort"); v != "" {
		filter.SortBy = domain.SortKey(v)
	}

	page := intParam(q.Get("page"), 1)
	perPage := intParam(q.Get("perPage"), catalog.DefaultPerPage)

	result, err := h.catalog.ListProducts(r.Context(), filter, page, perPage)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProductSearches.WithLabelValues(filterType(filter)).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, result)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProductViews.WithLabelValues(product.ID).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// filterType labels the list request for metrics by its narrowest criterion.
func filterType(f domain.ProductFilter) string {
	switch {
	case f.SearchQuery != "":
		return "search"
	case f.CategoryID != "" || f.CategoryName != "":
		return "category"
	case f.MinRating > 0:
		return "rating"
	case !f.PriceMin.IsZero() || !f.PriceMax.Equal(domain.DefaultPriceMax):
		return "price"
	default:
		return "none"
	}
}

// intParam parses a positive integer query parameter, falling back on
// absent or malformed values.
func intParam(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
