package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput defines the data required to store a shipping address.
type AddAddressInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Street    string
	City      string
	State     string
	Zipcode   string
	Country   string
	Phone     string
}

// AddressUsecase defines the interface for shipping address management.
type AddressUsecase interface {
	// AddAddress stores a new shipping address for the user.
	AddAddress(ctx context.Context, input AddAddressInput) (*entity.Address, error)

	// ListAddresses returns the user's addresses, newest first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// DeleteAddress removes an address owned by the user. Deleting another
	// user's address is a not-found, not a forbidden, to avoid exposing
	// address existence.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
