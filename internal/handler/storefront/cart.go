package storefront

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/cookie"
	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/handler"
	"github.com/citymart/storefront/internal/telemetry"
)

// CartHandler serves the shopping cart API.
type CartHandler struct {
	carts   domain.CartService
	catalog domain.CatalogService
	cookies *cookie.Config
	metrics *telemetry.BusinessMetrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService domain.CartService, catalogService domain.CatalogService, cookies *cookie.Config, metrics *telemetry.BusinessMetrics) *CartHandler {
	return &CartHandler{
		carts:   cartService,
		catalog: catalogService,
		cookies: cookies,
		metrics: metrics,
	}
}

// cartResponse augments the cart with its computed totals.
type cartResponse struct {
	*domain.Cart
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func toCartResponse(c *domain.Cart) cartResponse {
	return cartResponse{
		Cart:       c,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// getCart loads or creates the session cart, refreshing the session
// cookie when a new session is issued.
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) (*domain.Cart, error) {
	sessionID := GetSessionID(r)

	cart, newSessionID, err := h.carts.GetOrCreateCart(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}

	if newSessionID != sessionID {
		h.cookies.SetSession(w, newSessionID)
	}

	return cart, nil
}

// View handles GET /api/cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	cart, err := h.getCart(w, r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(cart))
}

// Add handles POST /api/cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err := h.getCart(w, r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err = h.carts.AddItem(r.Context(), cart.ID, *product, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CartItemsAdded.WithLabelValues(product.ID).Inc()
		value, _ := cart.TotalPrice().Float64()
		h.metrics.CartValue.Observe(value)
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(cart))
}

// UpdateQuantity handles PUT /api/cart/items/{productID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err := h.getCart(w, r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err = h.carts.UpdateQuantity(r.Context(), cart.ID, productID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(cart))
}

// Remove handles DELETE /api/cart/items/{productID}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productID")

	cart, err := h.getCart(w, r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err = h.carts.RemoveItem(r.Context(), cart.ID, productID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CartItemRemoved.Inc()
	}

	handler.RespondJSON(w, http.StatusOK, toCartResponse(cart))
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.getCart(w, r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.carts.ClearCart(r.Context(), cart.ID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CartCleared.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}
