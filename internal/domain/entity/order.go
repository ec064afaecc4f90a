package entity

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order placed"
	StatusProcessing     OrderStatus = "Processing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// orderStatuses lists every recognized status, in lifecycle order.
var orderStatuses = []OrderStatus{
	StatusOrderPlaced,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the six recognized statuses.
func (s OrderStatus) Valid() bool {
	return slices.Contains(orderStatuses, s)
}

// Terminal reports whether s ends the order lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentType identifies how an order is paid.
type PaymentType string

// PaymentCOD is the only payment type currently supported.
const PaymentCOD PaymentType = "cod"

// TaxRate is the flat tax applied on top of the order subtotal.
const TaxRate = 0.02

// OrderItem is a single line of an order. Size is empty for non-clothing
// products.
type OrderItem struct {
	ProductID uuid.UUID `json:"product"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`

	// Product is populated when orders are read with product details expanded.
	Product *Product `json:"productDetails,omitempty"`
}

// Order is a persisted checkout. It is created atomically from a cart
// snapshot and immutable afterwards except for the seller-driven status.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	Items       []OrderItem `json:"items"`
	Amount      float64     `json:"amount"`
	AddressID   uuid.UUID   `json:"address"`
	Status      OrderStatus `json:"status"`
	PaymentType PaymentType `json:"paymentType"`
	IsPaid      bool        `json:"isPaid"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	// Address is populated when orders are read with address details expanded.
	Address *Address `json:"addressDetails,omitempty"`
}

// OrderAmount computes the charged total for a subtotal: the flat tax is
// added and the result floored to an integer amount.
func OrderAmount(subtotal float64) float64 {
	return math.Floor(subtotal * (1 + TaxRate))
}

// ContainsProduct reports whether any line of the order references productID.
func (o *Order) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}
