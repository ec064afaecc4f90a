package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one checkout line: a product, a quantity, and the chosen
// size for clothing products.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
}

// PlaceOrderInput defines a cash-on-delivery checkout.
type PlaceOrderInput struct {
	UserID    uuid.UUID
	AddressID uuid.UUID
	Items     []OrderItemInput
}

// UpdateOrderStatusInput defines a seller-side status change.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
}

// OrderUsecase defines the interface for the order pipeline.
type OrderUsecase interface {
	// PlaceCODOrder prices the items at their current offer prices, adds the
	// flat tax, floors the total, and persists the order atomically. The
	// user's cart is cleared as part of the same transaction.
	PlaceCODOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// ListUserOrders returns the user's COD-or-paid orders with product and
	// address details expanded, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns every COD-or-paid order across users. Seller only.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus overwrites the status of an order. Any recognized status
	// is reachable from any other; there is no transition table.
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) error
}
