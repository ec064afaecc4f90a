package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product share QR codes.
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code that deep-links to a product page.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductQR parses QR code data and returns the product ID.
	ParseProductQR(qrData string) (uuid.UUID, error)
}
