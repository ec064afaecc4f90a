package middleware

import (
	"storefront/config"
	"storefront/internal/delivery/http/session"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to read.
const (
	ContextKeyUserID      = "userID"
	ContextKeySellerEmail = "sellerEmail"
)

// AuthMiddleware validates the role-scoped session cookies and injects the
// resolved identity into the request context.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sellerEmail string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	sellerEmail := ""
	if cfg.Seller != nil {
		sellerEmail = cfg.Seller.Email
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, sellerEmail: sellerEmail}
}

// AuthenticateUser validates the buyer session cookie and stores the user ID
// on the context.
func (m *AuthMiddleware) AuthenticateUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := session.Token(c, session.CookieNameUser)
		if tokenString == "" {
			return domainerrors.ErrNotAuthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}
		if claims.Role != service.RoleUser || claims.UserID == uuid.Nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// AuthenticateSeller validates the seller session cookie. Beyond the
// signature check, the embedded email must match the configured seller email;
// a validly signed token for any other identity is rejected.
func (m *AuthMiddleware) AuthenticateSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := session.Token(c, session.CookieNameSeller)
		if tokenString == "" {
			return domainerrors.ErrNotAuthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}
		if claims.Role != service.RoleSeller || claims.Email == "" || claims.Email != m.sellerEmail {
			return domainerrors.ErrInvalidToken
		}

		c.Set(ContextKeySellerEmail, claims.Email)

		return next(c)
	}
}

// UserID returns the authenticated user's ID from the context. It is only
// valid after AuthenticateUser has run.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, domainerrors.ErrNotAuthenticated
	}

	return id, nil
}
