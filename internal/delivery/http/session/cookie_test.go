package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func setCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestSet_Development(t *testing.T) {
	c, rec := newTestContext(t)

	Set(c, CookieNameUser, "session-token", 7*24*time.Hour, false)

	cookie := setCookie(t, rec, CookieNameUser)
	assert.Equal(t, "session-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestSet_Production(t *testing.T) {
	c, rec := newTestContext(t)

	Set(c, CookieNameSeller, "seller-token", time.Hour, true)

	// Cross-site frontends need Secure plus SameSite=None.
	cookie := setCookie(t, rec, CookieNameSeller)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestClear(t *testing.T) {
	c, rec := newTestContext(t)

	Clear(c, CookieNameUser, false)

	cookie := setCookie(t, rec, CookieNameUser)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

func TestToken(t *testing.T) {
	c, _ := newTestContext(t, &http.Cookie{Name: CookieNameUser, Value: "session-token"})

	require.Equal(t, "session-token", Token(c, CookieNameUser))
	assert.Empty(t, Token(c, CookieNameSeller), "absent cookie reads as empty")
}
