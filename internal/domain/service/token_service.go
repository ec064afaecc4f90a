package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session roles carried inside the token. A user token identifies a shopper
// by ID; the seller token identifies the store operator by credential email.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
)

// Claims defines the custom claims for the session JWTs.
type Claims struct {
	UserID uuid.UUID `json:"uid,omitempty"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateUserToken creates a session token for a shopper.
	GenerateUserToken(userID uuid.UUID) (string, error)

	// GenerateSellerToken creates a session token for the store operator.
	GenerateSellerToken(email string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetSessionDuration returns the configured lifetime of session tokens,
	// which is also used as the auth cookie max age.
	GetSessionDuration() time.Duration
}
