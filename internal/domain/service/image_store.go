package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for persisting uploaded images (product
// photos, profile pictures) on a blob host and returning a public URL.
type ImageStore interface {
	// Upload stores the image under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes a previously uploaded image. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
