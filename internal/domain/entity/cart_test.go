package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartKey_StringAndParse(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name string
		size string
	}{
		{name: "no size", size: ""},
		{name: "simple size", size: "M"},
		{name: "hyphenated size", size: "X-Large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewCartKey(productID, tt.size)

			parsed, err := ParseCartKey(key.String())
			require.NoError(t, err)
			assert.Equal(t, productID, parsed.ProductID)
			assert.Equal(t, tt.size, parsed.Size)
		})
	}
}

func TestParseCartKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "too short", key: "not-a-uuid"},
		{name: "bad uuid", key: "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"},
		{name: "dangling separator", key: uuid.New().String() + "-"},
		{name: "missing separator", key: uuid.New().String() + "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCartKey(tt.key)
			assert.ErrorIs(t, err, ErrInvalidCartKey)
		})
	}
}

func TestCart_AddAndRemove(t *testing.T) {
	productID := uuid.New()
	cart := Cart{}

	cart.Add(productID, "M")
	cart.Add(productID, "M")
	cart.Add(productID, "L")

	key := NewCartKey(productID, "M").String()
	assert.Equal(t, 2, cart[key])
	assert.Equal(t, 3, cart.Count())

	cart.Remove(key)
	assert.Equal(t, 1, cart[key])

	cart.Remove(key)
	_, ok := cart[key]
	assert.False(t, ok, "line should be deleted at zero")

	// Removing an absent key is a no-op.
	cart.Remove(key)
	assert.Equal(t, 1, cart.Count())
}

func TestCart_Set(t *testing.T) {
	key := NewCartKey(uuid.New(), "").String()
	cart := Cart{}

	cart.Set(key, 4)
	assert.Equal(t, 4, cart[key])

	cart.Set(key, 0)
	_, ok := cart[key]
	assert.False(t, ok)

	cart.Set(key, -3)
	assert.Empty(t, cart)
}

func TestCart_Amount(t *testing.T) {
	knownID := uuid.New()
	unknownID := uuid.New()

	cart := Cart{
		NewCartKey(knownID, "M").String():  2,
		NewCartKey(knownID, "L").String():  1,
		NewCartKey(unknownID, "").String(): 5,
		"garbage-key":                      3,
	}

	amount := cart.Amount(func(productID uuid.UUID) (float64, bool) {
		if productID == knownID {
			return 19.99, true
		}

		return 0, false
	})

	// 3 * 19.99 = 59.97; unknown products and bad keys contribute nothing.
	assert.InDelta(t, 59.97, amount, 0.0001)
}

func TestCart_AmountFloorsToCents(t *testing.T) {
	productID := uuid.New()
	cart := Cart{NewCartKey(productID, "").String(): 3}

	amount := cart.Amount(func(uuid.UUID) (float64, bool) {
		return 0.111, true
	})

	assert.Equal(t, 0.33, amount)
}

func TestCart_Normalize(t *testing.T) {
	valid := NewCartKey(uuid.New(), "M").String()
	zeroed := NewCartKey(uuid.New(), "").String()

	cart := Cart{
		valid:     2,
		zeroed:    0,
		"garbage": 7,
	}

	normalized := cart.Normalize()

	assert.Equal(t, Cart{valid: 2}, normalized)
	// The original is untouched.
	assert.Len(t, cart, 3)
}
