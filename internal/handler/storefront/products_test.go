package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

func TestProductHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockPage       *domain.ProductPage
		mockError      error
		expectedStatus int
		checkFilter    func(t *testing.T, filter domain.ProductFilter, page, perPage int)
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "success with defaults",
			url:  "/api/products",
			mockPage: &domain.ProductPage{
				Products:   []domain.Product{testProduct("p-1", "Wireless Headphones", "79.99")},
				Page:       1,
				PerPage:    18,
				TotalItems: 1,
				TotalPages: 1,
			},
			expectedStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.ProductFilter, page, perPage int) {
				if page != 1 || perPage != 18 {
					t.Errorf("page/perPage = %d/%d, want 1/18", page, perPage)
				}
				if filter.SortBy != domain.SortFeatured {
					t.Errorf("sort = %q, want featured", filter.SortBy)
				}
			},
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, "Wireless Headphones") {
					t.Error("body should contain product name")
				}
			},
		},
		{
			name:           "search and sort parameters forwarded",
			url:            "/api/products?search=lamp&sort=price-low&minRating=4&page=2&perPage=8",
			mockPage:       &domain.ProductPage{Products: []domain.Product{}, Page: 2, PerPage: 8},
			expectedStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.ProductFilter, page, perPage int) {
				if filter.SearchQuery != "lamp" {
					t.Errorf("search = %q, want lamp", filter.SearchQuery)
				}
				if filter.SortBy != domain.SortPriceLow {
					t.Errorf("sort = %q, want price-low", filter.SortBy)
				}
				if filter.MinRating != 4 {
					t.Errorf("minRating = %d, want 4", filter.MinRating)
				}
				if page != 2 || perPage != 8 {
					t.Errorf("page/perPage = %d/%d, want 2/8", page, perPage)
				}
			},
		},
		{
			name:           "price range forwarded",
			url:            "/api/products?minPrice=10&maxPrice=59.99",
			mockPage:       &domain.ProductPage{Products: []domain.Product{}},
			expectedStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.ProductFilter, page, perPage int) {
				if filter.PriceMin.String() != "10" {
					t.Errorf("priceMin = %s, want 10", filter.PriceMin)
				}
				if filter.PriceMax.String() != "59.99" {
					t.Errorf("priceMax = %s, want 59.99", filter.PriceMax)
				}
			},
		},
		{
			name:           "invalid minPrice rejected",
			url:            "/api/products?minPrice=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid minRating rejected",
			url:            "/api/products?minRating=9",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed page falls back to 1",
			url:            "/api/products?page=zero",
			mockPage:       &domain.ProductPage{Products: []domain.Product{}},
			expectedStatus: http.StatusOK,
			checkFilter: func(t *testing.T, filter domain.ProductFilter, page, perPage int) {
				if page != 1 {
					t.Errorf("page = %d, want 1", page)
				}
			},
		},
		{
			name:           "service error surfaces as 500",
			url:            "/api/products",
			mockError:      domain.Internal(nil, "catalog.list", "store unavailable"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCatalogService{
				listProductsFunc: func(ctx context.Context, filter domain.ProductFilter, page, perPage int) (*domain.ProductPage, error) {
					if tt.checkFilter != nil {
						tt.checkFilter(t, filter, page, perPage)
					}
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockPage, nil
				},
			}

			h := NewProductHandler(mock, nil)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	product := testProduct("p-1", "Wireless Headphones", "79.99")

	mock := &mockCatalogService{
		getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			if id == "p-1" {
				return &product, nil
			}
			return nil, domain.ErrProductNotFound
		},
	}

	h := NewProductHandler(mock, nil)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/p-1", nil)
		req.SetPathValue("id", "p-1")
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var got domain.Product
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.ID != "p-1" || got.Name != "Wireless Headphones" {
			t.Errorf("product = %s/%s, want p-1/Wireless Headphones", got.ID, got.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestProductHandler_Categories(t *testing.T) {
	mock := &mockCatalogService{
		categoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "cat-1", Name: "Electronics"},
				{ID: "cat-2", Name: "Clothing"},
			}, nil
		},
	}

	h := NewProductHandler(mock, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Categories) != 2 {
		t.Errorf("categories count = %d, want 2", len(response.Categories))
	}
}

func TestFilterType(t *testing.T) {
	tests := []struct {
		name     string
		filter   func() domain.ProductFilter
		expected string
	}{
		{
			name:     "no criteria",
			filter:   domain.NewProductFilter,
			expected: "none",
		},
		{
			name: "search wins over category",
			filter: func() domain.ProductFilter {
				f := domain.NewProductFilter()
				f.SearchQuery = "lamp"
				f.CategoryID = "cat-1"
				return f
			},
			expected: "search",
		},
		{
			name: "category",
			filter: func() domain.ProductFilter {
				f := domain.NewProductFilter()
				f.CategoryName = "Electronics"
				return f
			},
			expected: "category",
		},
		{
			name: "rating",
			filter: func() domain.ProductFilter {
				f := domain.NewProductFilter()
				f.MinRating = 4
				return f
			},
			expected: "rating",
		},
		{
			name: "price range",
			filter: func() domain.ProductFilter {
				f := domain.NewProductFilter()
				f.PriceMax = decimal.RequireFromString("59.99")
				return f
			},
			expected: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filterType(tt.filter()); got != tt.expected {
				t.Errorf("filterType() = %q, want %q", got, tt.expected)
			}
		})
	}
}
