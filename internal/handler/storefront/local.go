package storefront

import (
	"net/http"
	"strconv"

	"github.com/citymart/storefront/internal/cookie"
	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/handler"
	"github.com/citymart/storefront/internal/local"
	"github.com/citymart/storefront/internal/telemetry"
)

// LocalHandler serves city selection, local shops, deals, and the
// discount wheel.
type LocalHandler struct {
	local   *local.Service
	wheel   *local.Wheel
	cookies *cookie.Config
	metrics *telemetry.BusinessMetrics
}

// NewLocalHandler creates a new local shopping handler
func NewLocalHandler(localService *local.Service, wheel *local.Wheel, cookies *cookie.Config, metrics *telemetry.BusinessMetrics) *LocalHandler {
	return &LocalHandler{
		local:   localService,
		wheel:   wheel,
		cookies: cookies,
		metrics: metrics,
	}
}

// Cities handles GET /api/cities
func (h *LocalHandler) Cities(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"cities":   h.local.ListCities(),
		"selected": GetCity(r),
	})
}

// SelectCity handles POST /api/cities/select
//
// Persists the choice in a 7 day cookie so the selection survives
// browser restarts.
func (h *LocalHandler) SelectCity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City string `json:"city"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	city, err := h.local.CityBySlug(req.City)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.cookies.SetCity(w, city.Slug)

	if h.metrics != nil {
		h.metrics.CitySelected.WithLabelValues(city.Slug).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, city)
}

// cityParam resolves the city for shop and deal lookups: explicit query
// parameter first, then the city cookie.
func cityParam(r *http.Request) string {
	if city := r.URL.Query().Get("city"); city != "" {
		return city
	}
	return GetCity(r)
}

// Shops handles GET /api/shops
func (h *LocalHandler) Shops(w http.ResponseWriter, r *http.Request) {
	city := cityParam(r)
	if city == "" {
		handler.RespondError(w, r, domain.Invalid("local.shops", "city is required: pass ?city= or select a city first"))
		return
	}

	shops, err := h.local.ShopsByCity(city)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"city":  city,
		"shops": shops,
	})
}

// Shop handles GET /api/shops/{id}
func (h *LocalHandler) Shop(w http.ResponseWriter, r *http.Request) {
	shop, err := h.local.ShopByID(r.PathValue("id"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, shop)
}

// Deals handles GET /api/deals
func (h *LocalHandler) Deals(w http.ResponseWriter, r *http.Request) {
	city := cityParam(r)
	if city == "" {
		handler.RespondError(w, r, domain.Invalid("local.deals", "city is required: pass ?city= or select a city first"))
		return
	}

	deals, err := h.local.ActiveDeals(city)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"city":  city,
		"deals": deals,
	})
}

// Spin handles POST /api/discount/spin
//
// One spin per browser: the claim is tracked with a cookie, and a second
// spin is rejected until the claim expires.
func (h *LocalHandler) Spin(w http.ResponseWriter, r *http.Request) {
	if cookie.DiscountClaimed(r) {
		handler.RespondError(w, r, domain.ErrDiscountClaimed)
		return
	}

	percent, code := h.wheel.Spin()
	h.cookies.SetDiscountClaim(w, code)

	if h.metrics != nil {
		h.metrics.WheelSpins.WithLabelValues(strconv.Itoa(percent)).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"percent": percent,
		"code":    code,
	})
}
