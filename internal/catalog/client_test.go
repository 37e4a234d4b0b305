package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymart/storefront/internal/catalog"
	"github.com/citymart/storefront/internal/domain"
)

func TestClient_FetchProducts(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/filter", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"records":[
			{"id":"p-1","name":"Desk Lamp","price":22.00,"category":{"id":"c3","name":"Home"},"totalStar":10,"reviewCount":2,"featured":true,"inStock":true},
			{"id":"p-2","name":"Mug","price":7.50,"category":{"id":"c3","name":"Home"},"inStock":true}
		]}`))
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "test-token")
	products, err := client.FetchProducts(context.Background(), catalog.Query{
		Category: "c3",
		Search:   "lamp",
		Sort:     "featured",
		Limit:    50,
	})

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, map[string]string{
		"category": "c3",
		"search":   "lamp",
		"sort":     "featured",
		"limit":    "50",
	}, gotQuery, "zero-valued query fields are omitted")

	assert.Equal(t, "p-1", products[0].ID)
	assert.Equal(t, "Desk Lamp", products[0].Name)
	assert.Equal(t, "22", products[0].Price.String())
	assert.Equal(t, domain.Category{ID: "c3", Name: "Home"}, products[0].Category)
	assert.True(t, products[0].Featured)
	assert.Equal(t, 0, products[1].ReviewCount, "missing fields decode to zero values")
}

func TestClient_FetchProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "")
	_, err := client.FetchProduct(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestClient_FetchProducts_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := catalog.NewClient(srv.URL, "")
	_, err := client.FetchProducts(context.Background(), catalog.Query{})

	require.Error(t, err)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
	assert.Contains(t, err.Error(), "502")
}

func TestService_ListProducts(t *testing.T) {
	store := catalog.NewStore()
	store.Replace(catalog.SeedProducts())
	svc := catalog.NewService(store)

	filter := domain.NewProductFilter()
	filter.CategoryName = "Electronics"
	filter.SortBy = domain.SortPriceLow

	page, err := svc.ListProducts(context.Background(), filter, 1, 18)
	require.NoError(t, err)

	require.Equal(t, 3, page.TotalItems)
	assert.Equal(t, "p-usb-cable", page.Products[0].ID, "cheapest electronics item first")
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_GetProduct(t *testing.T) {
	store := catalog.NewStore()
	store.Replace(catalog.SeedProducts())
	svc := catalog.NewService(store)

	p, err := svc.GetProduct(context.Background(), "p-headphones")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", p.Name)

	_, err = svc.GetProduct(context.Background(), "nope")
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestStore_Categories(t *testing.T) {
	store := catalog.NewStore()
	store.Replace(catalog.SeedProducts())

	cats, err := catalog.NewService(store).Categories(context.Background())
	require.NoError(t, err)

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Electronics", "Clothing", "Home & Kitchen", "Grocery", "Sports"}, names,
		"categories appear in first-seen catalog order")
}
