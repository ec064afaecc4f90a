package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/session"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(cookies ...*http.Cookie) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, &config.Config{
		Seller: &config.SellerConfig{Email: "seller@example.com"},
	})

	return m, tokenSvc
}

func noopHandler(c echo.Context) error { return nil }

func TestAuthenticateUser_MissingCookie(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)
	c := newAuthTestContext()

	err := m.AuthenticateUser(noopHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthenticateUser_InvalidToken(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	c := newAuthTestContext(&http.Cookie{Name: session.CookieNameUser, Value: "bad-token"})

	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, assert.AnError)

	err := m.AuthenticateUser(noopHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticateUser_RejectsSellerToken(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	c := newAuthTestContext(&http.Cookie{Name: session.CookieNameUser, Value: "seller-token"})

	tokenSvc.EXPECT().
		ValidateToken("seller-token").
		Return(&service.Claims{Role: service.RoleSeller, Email: "seller@example.com"}, nil)

	err := m.AuthenticateUser(noopHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticateUser_Success(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	c := newAuthTestContext(&http.Cookie{Name: session.CookieNameUser, Value: "good-token"})

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{Role: service.RoleUser, UserID: userID}, nil)

	var seen uuid.UUID
	err := m.AuthenticateUser(func(c echo.Context) error {
		id, err := UserID(c)
		require.NoError(t, err)
		seen = id

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, seen)
}

func TestAuthenticateSeller_MissingCookie(t *testing.T) {
	m, _ := createTestAuthMiddleware(t)
	c := newAuthTestContext()

	err := m.AuthenticateSeller(noopHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthenticateSeller_RejectsForeignEmail(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	c := newAuthTestContext(&http.Cookie{Name: session.CookieNameSeller, Value: "forged-token"})

	// Validly signed, seller role, but not the configured identity.
	tokenSvc.EXPECT().
		ValidateToken("forged-token").
		Return(&service.Claims{Role: service.RoleSeller, Email: "other@example.com"}, nil)

	err := m.AuthenticateSeller(noopHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticateSeller_Success(t *testing.T) {
	m, tokenSvc := createTestAuthMiddleware(t)
	c := newAuthTestContext(&http.Cookie{Name: session.CookieNameSeller, Value: "seller-token"})

	tokenSvc.EXPECT().
		ValidateToken("seller-token").
		Return(&service.Claims{Role: service.RoleSeller, Email: "seller@example.com"}, nil)

	err := m.AuthenticateSeller(noopHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", c.Get(ContextKeySellerEmail))
}

func TestUserID_WithoutAuthentication(t *testing.T) {
	c := newAuthTestContext()

	_, err := UserID(c)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
