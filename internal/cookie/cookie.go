// Package cookie centralizes the storefront's cookie handling: the
// cart session, the selected city, and the welcome-discount claim.
package cookie

import (
	"net/http"
)

// Common cookie names used throughout the application.
// Using constants ensures consistency and makes refactoring easier.
const (
	// SessionCookieName carries the cart session ID.
	SessionCookieName = "cart_session"

	// CityCookieName stores the visitor's selected city slug.
	CityCookieName = "city"

	// DiscountClaimedCookieName marks that the welcome discount was
	// already claimed, gating the wheel to one spin per visitor.
	DiscountClaimedCookieName = "discount_claimed"

	// DiscountCodeCookieName stores the coupon code the wheel awarded.
	DiscountCodeCookieName = "discount_code"
)

// WeekMaxAge is the shared lifetime of the storefront cookies, 7 days
// in seconds.
const WeekMaxAge = 7 * 24 * 60 * 60

// Config holds cookie configuration.
type Config struct {
	// Domain scopes cookies to a domain. Empty means host-only cookies.
	Domain string

	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(domain string, secure bool) *Config {
	return &Config{
		Domain: domain,
		Secure: secure,
	}
}

// SetSession sets the cart session cookie. HttpOnly keeps it away from
// scripts; SameSite=Lax still sends it on top-level navigations.
func (c *Config) SetSession(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   WeekMaxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetCity remembers the visitor's city for a week. The city slug is
// read client-side, so the cookie is not HttpOnly.
func (c *Config) SetCity(w http.ResponseWriter, slug string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CityCookieName,
		Value:    slug,
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   WeekMaxAge,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetDiscountClaim records a claimed welcome discount and its code.
func (c *Config) SetDiscountClaim(w http.ResponseWriter, code string) {
	base := http.Cookie{
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   WeekMaxAge,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	claimed := base
	claimed.Name = DiscountClaimedCookieName
	claimed.Value = "true"
	http.SetCookie(w, &claimed)

	coupon := base
	coupon.Name = DiscountCodeCookieName
	coupon.Value = code
	http.SetCookie(w, &coupon)
}

// Clear removes a cookie by setting MaxAge to -1. The domain must
// match the original cookie's domain.
func (c *Config) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Domain:   c.Domain,
		Path:     "/",
		MaxAge:   -1,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get retrieves a cookie value from the request.
// Returns empty string if cookie not found.
//
// This is a convenience wrapper around r.Cookie() that handles errors.
func Get(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// DiscountClaimed reports whether the visitor already claimed the
// welcome discount.
func DiscountClaimed(r *http.Request) bool {
	return Get(r, DiscountClaimedCookieName) == "true"
}
