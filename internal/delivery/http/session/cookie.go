// Package session manages the auth cookies shared by the login handlers and
// the auth middleware.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Cookie names per role. The storefront client reads neither; both are
// HTTP-only and round-trip automatically.
const (
	CookieNameUser   = "token"
	CookieNameSeller = "sellerToken"
)

// Set writes an auth cookie. In production the cookie is Secure and
// SameSite=None so the separately hosted frontend can send it cross-site; in
// development it is SameSite=Strict over plain HTTP.
func Set(c echo.Context, name, token string, maxAge time.Duration, production bool) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}

	c.SetCookie(cookie)
}

// Clear expires an auth cookie with matching attributes. Idempotent.
func Clear(c echo.Context, name string, production bool) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}

	c.SetCookie(cookie)
}

// Token reads the named auth cookie, returning an empty string when absent.
func Token(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
