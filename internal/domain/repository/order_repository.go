package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindVisibleByUser retrieves the orders of a user that are either
	// cash-on-delivery or already paid, newest first.
	FindVisibleByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAllVisible retrieves every order that is either cash-on-delivery
	// or already paid, newest first. Used by the seller panel.
	FindAllVisible(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus overwrites the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// HasDeliveredProduct reports whether the user has at least one order in
	// the Delivered status that contains the given product.
	HasDeliveredProduct(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
