package entity

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// uuidStringLen is the length of a canonical textual UUID.
const uuidStringLen = 36

// ErrInvalidCartKey is returned when a cart key cannot be parsed back into
// a product id and optional size.
var ErrInvalidCartKey = errors.New("invalid cart key")

// CartKey addresses a single cart line: a product plus, for clothing, the
// chosen size. The string form is "<productID>" or "<productID>-<size>"; the
// product id is always a canonical 36-character UUID, so the split point is
// unambiguous even though sizes may themselves contain hyphens.
type CartKey struct {
	ProductID uuid.UUID
	Size      string
}

// NewCartKey builds a key for a product and an optional size.
func NewCartKey(productID uuid.UUID, size string) CartKey {
	return CartKey{ProductID: productID, Size: size}
}

// String returns the canonical serialization used as the cart map key and in
// order line items.
func (k CartKey) String() string {
	if k.Size == "" {
		return k.ProductID.String()
	}

	return k.ProductID.String() + "-" + k.Size
}

// ParseCartKey parses the canonical serialization produced by String.
func ParseCartKey(s string) (CartKey, error) {
	if len(s) < uuidStringLen {
		return CartKey{}, errors.Wrapf(ErrInvalidCartKey, "key too short: %q", s)
	}

	id, err := uuid.Parse(s[:uuidStringLen])
	if err != nil {
		return CartKey{}, errors.Wrapf(ErrInvalidCartKey, "bad product id in key %q", s)
	}

	rest := s[uuidStringLen:]
	if rest == "" {
		return CartKey{ProductID: id}, nil
	}
	if !strings.HasPrefix(rest, "-") || len(rest) == 1 {
		return CartKey{}, errors.Wrapf(ErrInvalidCartKey, "malformed size suffix in key %q", s)
	}

	return CartKey{ProductID: id, Size: rest[1:]}, nil
}

// Cart maps serialized cart keys to quantities. Quantities are always
// positive while a key is present; reaching zero removes the key.
type Cart map[string]int

// Add increments the line for the given product/size by one, creating it at 1.
func (c Cart) Add(productID uuid.UUID, size string) {
	c[NewCartKey(productID, size).String()]++
}

// Set overwrites the quantity for a key. Zero or negative removes the line.
func (c Cart) Set(key string, quantity int) {
	if quantity <= 0 {
		delete(c, key)

		return
	}
	c[key] = quantity
}

// Remove decrements the line by one and deletes it when it reaches zero.
func (c Cart) Remove(key string) {
	if _, ok := c[key]; !ok {
		return
	}
	c[key]--
	if c[key] <= 0 {
		delete(c, key)
	}
}

// Count returns the total quantity across all lines.
func (c Cart) Count() int {
	var total int
	for _, qty := range c {
		total += qty
	}

	return total
}

// Amount computes the cart total using the offer price returned by lookup.
// The size suffix is stripped before the catalog lookup; unknown products and
// non-positive quantities contribute nothing. The result is floored to two
// decimal places.
func (c Cart) Amount(lookup func(productID uuid.UUID) (offerPrice float64, ok bool)) float64 {
	var total float64
	for key, qty := range c {
		if qty <= 0 {
			continue
		}
		parsed, err := ParseCartKey(key)
		if err != nil {
			continue
		}
		if price, ok := lookup(parsed.ProductID); ok {
			total += price * float64(qty)
		}
	}

	return math.Floor(total*100) / 100
}

// Normalize returns a copy with invalid keys and non-positive quantities
// dropped. Used when accepting a whole-cart replacement from the client.
func (c Cart) Normalize() Cart {
	normalized := make(Cart, len(c))
	for key, qty := range c {
		if qty <= 0 {
			continue
		}
		if _, err := ParseCartKey(key); err != nil {
			continue
		}
		normalized[key] = qty
	}

	return normalized
}
