package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Seller: &config.SellerConfig{
			Email:    "seller@example.com",
			Password: "super-secret",
		},
	}
}
