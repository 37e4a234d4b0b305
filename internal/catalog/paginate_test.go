package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/citymart/storefront/internal/catalog"
	"github.com/citymart/storefront/internal/domain"
)

func makeProducts(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{ID: fmt.Sprintf("p-%02d", i+1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		page          int
		perPage       int
		expectedIDs   []string
		expectedPages int
		explanation   string
	}{
		{
			name:          "first page of a grid",
			total:         40,
			page:          1,
			perPage:       18,
			expectedIDs:   idsRange(1, 18),
			expectedPages: 3,
			explanation:   "40 items at 18 per page gives pages of 18, 18, 4",
		},
		{
			name:          "last partial page",
			total:         40,
			page:          3,
			perPage:       18,
			expectedIDs:   idsRange(37, 40),
			expectedPages: 3,
		},
		{
			name:          "page past the end is empty, not an error",
			total:         10,
			page:          5,
			perPage:       18,
			expectedIDs:   []string{},
			expectedPages: 1,
		},
		{
			name:          "page below 1 is clamped to the first page",
			total:         10,
			page:          0,
			perPage:       8,
			expectedIDs:   idsRange(1, 8),
			expectedPages: 2,
		},
		{
			name:          "compact page size",
			total:         10,
			page:          2,
			perPage:       8,
			expectedIDs:   idsRange(9, 10),
			expectedPages: 2,
		},
		{
			name:          "empty input",
			total:         0,
			page:          1,
			perPage:       18,
			expectedIDs:   []string{},
			expectedPages: 0,
		},
		{
			name:          "invalid per-page falls back to the grid size",
			total:         20,
			page:          1,
			perPage:       0,
			expectedIDs:   idsRange(1, 18),
			expectedPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := catalog.Paginate(makeProducts(tt.total), tt.page, tt.perPage)

			assert.Equal(t, tt.expectedIDs, ids(page.Products), tt.explanation)
			assert.Equal(t, tt.total, page.TotalItems)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.NotNil(t, page.Products, "empty pages are non-nil slices")
		})
	}
}

func idsRange(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("p-%02d", i))
	}
	return out
}
