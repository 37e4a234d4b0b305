package storefront

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/citymart/storefront/internal/cookie"
	"github.com/citymart/storefront/internal/local"
)

func newLocalHandler(rand func() float64) *LocalHandler {
	opts := []local.WheelOption{}
	if rand != nil {
		opts = append(opts, local.WithRand(rand))
	}
	clock := func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}
	return NewLocalHandler(
		local.NewService(local.WithClock(clock)),
		local.NewWheel(opts...),
		cookie.NewConfig("", false),
		nil,
	)
}

func TestLocalHandler_Cities(t *testing.T) {
	h := newLocalHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	req.AddCookie(&http.Cookie{Name: cookie.CityCookieName, Value: "valsad"})
	rec := httptest.NewRecorder()

	h.Cities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response struct {
		Cities   []struct{ Slug string } `json:"cities"`
		Selected string                  `json:"selected"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Cities) == 0 {
		t.Error("cities should not be empty")
	}
	if response.Selected != "valsad" {
		t.Errorf("selected = %q, want valsad", response.Selected)
	}
}

func TestLocalHandler_SelectCity(t *testing.T) {
	t.Run("known city sets cookie", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cities/select",
			strings.NewReader(`{"city":"mumbai"}`))
		rec := httptest.NewRecorder()

		h.SelectCity(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		found := false
		for _, c := range rec.Result().Cookies() {
			if c.Name == cookie.CityCookieName {
				found = true
				if c.Value != "mumbai" {
					t.Errorf("cookie value = %q, want mumbai", c.Value)
				}
				// 7 days
				if c.MaxAge != 604800 {
					t.Errorf("cookie MaxAge = %d, want 604800", c.MaxAge)
				}
			}
		}
		if !found {
			t.Error("city cookie should be set")
		}
	})

	t.Run("unknown city is 404", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/cities/select",
			strings.NewReader(`{"city":"atlantis"}`))
		rec := httptest.NewRecorder()

		h.SelectCity(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestLocalHandler_Shops(t *testing.T) {
	t.Run("query parameter wins over cookie", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/shops?city=valsad", nil)
		req.AddCookie(&http.Cookie{Name: cookie.CityCookieName, Value: "mumbai"})
		rec := httptest.NewRecorder()

		h.Shops(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var response struct {
			City  string            `json:"city"`
			Shops []json.RawMessage `json:"shops"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.City != "valsad" {
			t.Errorf("city = %q, want valsad", response.City)
		}
		if len(response.Shops) == 0 {
			t.Error("valsad shops should not be empty")
		}
	})

	t.Run("falls back to city cookie", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
		req.AddCookie(&http.Cookie{Name: cookie.CityCookieName, Value: "mumbai"})
		rec := httptest.NewRecorder()

		h.Shops(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("no city is 400", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
		rec := httptest.NewRecorder()

		h.Shops(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown city is 404", func(t *testing.T) {
		h := newLocalHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/shops?city=atlantis", nil)
		rec := httptest.NewRecorder()

		h.Shops(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestLocalHandler_Deals(t *testing.T) {
	h := newLocalHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/deals?city=valsad", nil)
	rec := httptest.NewRecorder()

	h.Deals(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response struct {
		Deals []struct {
			Featured bool `json:"featured"`
		} `json:"deals"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Deals) == 0 {
		t.Fatal("valsad deals should not be empty")
	}
	if !response.Deals[0].Featured {
		t.Error("featured deals should sort first")
	}
}

func TestLocalHandler_Spin(t *testing.T) {
	t.Run("first spin awards and sets claim cookies", func(t *testing.T) {
		h := newLocalHandler(func() float64 { return 0.5 })

		req := httptest.NewRequest(http.MethodPost, "/api/discount/spin", nil)
		rec := httptest.NewRecorder()

		h.Spin(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var response struct {
			Percent int    `json:"percent"`
			Code    string `json:"code"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		// 0.5 falls in the [0.4, 0.7) band
		if response.Percent != 10 {
			t.Errorf("percent = %d, want 10", response.Percent)
		}
		if response.Code != "WELCOME10" {
			t.Errorf("code = %q, want WELCOME10", response.Code)
		}

		names := map[string]bool{}
		for _, c := range rec.Result().Cookies() {
			names[c.Name] = true
		}
		if !names[cookie.DiscountClaimedCookieName] || !names[cookie.DiscountCodeCookieName] {
			t.Error("both discount claim cookies should be set")
		}
	})

	t.Run("second spin is 409", func(t *testing.T) {
		h := newLocalHandler(func() float64 { return 0.5 })

		req := httptest.NewRequest(http.MethodPost, "/api/discount/spin", nil)
		req.AddCookie(&http.Cookie{Name: cookie.DiscountClaimedCookieName, Value: "true"})
		rec := httptest.NewRecorder()

		h.Spin(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})
}
