package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartSummary is the derived view of a cart: total item count and the
// monetary total over current offer prices.
type CartSummary struct {
	Items  entity.Cart
	Count  int
	Amount float64
}

// CartUsecase defines the interface for cart reconciliation. The client owns
// the working copy; every mutation pushes the whole mapping back and the
// server overwrites what it had. Last writer wins.
type CartUsecase interface {
	// GetCart returns the persisted cart of the user.
	GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error)

	// ReplaceCart overwrites the persisted cart with the supplied mapping
	// after normalizing away invalid keys and non-positive quantities.
	ReplaceCart(ctx context.Context, userID uuid.UUID, items entity.Cart) (entity.Cart, error)

	// AddItem increments the line for the product/size by one and persists
	// the updated cart.
	AddItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, size string) (entity.Cart, error)

	// RemoveItem decrements the line by one, deleting it at zero, and
	// persists the updated cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, key string) (entity.Cart, error)

	// Summarize returns the cart with its derived count and amount.
	Summarize(ctx context.Context, userID uuid.UUID) (*CartSummary, error)
}
