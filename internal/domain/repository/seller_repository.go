package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSellerProfileNotFound is returned when the seller profile row does not exist yet.
var ErrSellerProfileNotFound = errors.New("seller profile not found")

// SellerProfileRepository defines the interface for the seller profile
// singleton. The store has exactly one seller, identified by the configured
// credential email; the profile row is created lazily on first read.
type SellerProfileRepository interface {
	// FindByEmail retrieves the seller profile for the given email.
	// Returns ErrSellerProfileNotFound when no row exists yet.
	FindByEmail(ctx context.Context, email string) (*entity.SellerProfile, error)

	// Create persists a new seller profile.
	Create(ctx context.Context, profile *entity.SellerProfile) error

	// Update modifies the existing seller profile.
	Update(ctx context.Context, profile *entity.SellerProfile) error
}
