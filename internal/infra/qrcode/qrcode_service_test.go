package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://shop.example.com")

	png, err := svc.GenerateProductQR(uuid.New())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output must be a PNG image")
}

func TestQRCodeService_PayloadRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://shop.example.com")
	productID := uuid.New()

	// The QR payload is JSON; round-trip it through ParseProductQR without
	// decoding the image itself.
	payload, err := json.Marshal(QRCodeData{
		ProductID: productID.String(),
		Type:      "product",
		URL:       "https://shop.example.com/product/" + productID.String(),
	})
	require.NoError(t, err)

	parsed, err := svc.ParseProductQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, productID, parsed)
}

func TestQRCodeService_ParseProductQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not-json"},
		{name: "wrong type", data: `{"product_id":"` + uuid.New().String() + `","type":"coupon"}`},
		{name: "bad product id", data: `{"product_id":"nope","type":"product"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseProductQR(tt.data)

			assert.Error(t, err)
		})
	}
}

func TestNewQRCodeService_UnknownRecoveryLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X", "")

	png, err := svc.GenerateProductQR(uuid.New())

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
