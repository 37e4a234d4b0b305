package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

// Client fetches products from the upstream catalog API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, e.g. to add a
// tracing transport or shorten timeouts in tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates an upstream catalog client. The token is sent as a
// bearer token on every request.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query narrows an upstream product fetch. Zero values are omitted
// from the request.
type Query struct {
	Category  string
	Search    string
	Sort      string
	PriceLow  string
	PriceHigh string
	Limit     int
}

// record is the upstream wire format for a product.
type record struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
	TotalStar   int  `json:"totalStar"`
	ReviewCount int  `json:"reviewCount"`
	Featured    bool `json:"featured"`
	InStock     bool `json:"inStock"`
}

type recordsEnvelope struct {
	Records []record `json:"records"`
}

// FetchProducts pulls a product listing from the upstream API.
func (c *Client) FetchProducts(ctx context.Context, q Query) ([]domain.Product, error) {
	u, err := url.Parse(c.baseURL + "/products/filter")
	if err != nil {
		return nil, domain.Internal(err, "catalog.fetch", "invalid upstream URL")
	}

	params := u.Query()
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.PriceLow != "" {
		params.Set("priceLow", q.PriceLow)
	}
	if q.PriceHigh != "" {
		params.Set("priceHigh", q.PriceHigh)
	}
	if q.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.Limit))
	}
	u.RawQuery = params.Encode()

	var envelope recordsEnvelope
	if err := c.getJSON(ctx, u.String(), &envelope); err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(envelope.Records))
	for i, r := range envelope.Records {
		products[i] = r.toProduct()
	}
	return products, nil
}

// FetchProduct pulls a single product by ID.
func (c *Client) FetchProduct(ctx context.Context, id string) (*domain.Product, error) {
	var r record
	if err := c.getJSON(ctx, c.baseURL+"/products/"+url.PathEscape(id), &r); err != nil {
		return nil, err
	}
	p := r.toProduct()
	return &p, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.Internal(err, "catalog.fetch", "failed to build upstream request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &domain.Error{Code: domain.ETIMEOUT, Op: "catalog.fetch", Message: "upstream request timed out", Err: err}
		}
		return domain.Internal(err, "catalog.fetch", "upstream request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NotFound("catalog.fetch", "product", rawURL)
	case resp.StatusCode != http.StatusOK:
		return domain.Errorf(domain.EINTERNAL, "catalog.fetch", "upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return domain.Internal(err, "catalog.fetch", "failed to decode upstream response")
	}
	return nil
}

func (r record) toProduct() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    domain.Category{ID: r.Category.ID, Name: r.Category.Name},
		Price:       r.Price,
		Image:       r.Image,
		TotalStar:   r.TotalStar,
		ReviewCount: r.ReviewCount,
		Featured:    r.Featured,
		InStock:     r.InStock,
	}
}
