package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateSellerProfileInput carries the store metadata fields the seller may
// change. Nil pointers leave the stored value untouched.
type UpdateSellerProfileInput struct {
	Name        *string
	Phone       *string
	StoreName   *string
	Address     *string
	Description *string
}

// SellerLoginOutput returns the seller session token.
type SellerLoginOutput struct {
	Token string
	Email string
}

// SellerUsecase defines the interface for seller-side operations. The seller
// is a single configured credential pair, not a stored account; the profile
// row only carries store metadata.
type SellerUsecase interface {
	// Login compares the credentials against configuration and issues a
	// seller-scoped session token on an exact match.
	Login(ctx context.Context, input LoginInput) (*SellerLoginOutput, error)

	// GetProfile returns the seller profile, creating the default row if
	// none exists yet.
	GetProfile(ctx context.Context) (*entity.SellerProfile, error)

	// UpdateProfile applies the provided changes and returns the updated profile.
	UpdateProfile(ctx context.Context, input UpdateSellerProfileInput) (*entity.SellerProfile, error)
}
