package storefront

import (
	"net/http"

	"github.com/citymart/storefront/internal/cookie"
)

// GetSessionID returns the cart session ID from the request cookie,
// or "" when the browser has no session yet.
func GetSessionID(r *http.Request) string {
	return cookie.Get(r, cookie.SessionCookieName)
}

// GetCity returns the selected city slug from the request cookie.
func GetCity(r *http.Request) string {
	return cookie.Get(r, cookie.CityCookieName)
}
