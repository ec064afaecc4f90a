package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{name: "round subtotal", subtotal: 500, want: 510},
		{name: "fraction floored", subtotal: 99.99, want: 101},
		{name: "small order", subtotal: 1, want: 1},
		{name: "zero", subtotal: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderAmount(tt.subtotal))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range []OrderStatus{
		StatusOrderPlaced,
		StatusProcessing,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, OrderStatus("Refunded").Valid())
	assert.False(t, OrderStatus("delivered").Valid(), "status comparison is case sensitive")
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusOrderPlaced.Terminal())
	assert.False(t, StatusOutForDelivery.Terminal())
}

func TestOrder_ContainsProduct(t *testing.T) {
	productID := uuid.New()
	order := &Order{
		Items: []OrderItem{
			{ProductID: uuid.New(), Quantity: 1},
			{ProductID: productID, Quantity: 2, Size: "M"},
		},
	}

	assert.True(t, order.ContainsProduct(productID))
	assert.False(t, order.ContainsProduct(uuid.New()))
}
