package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddProductInput defines the data required to create a catalog entry.
// Images are uploaded to the configured image host before the product row is
// written; their resulting URLs are stored on the product.
type AddProductInput struct {
	Name                string
	Description         []string
	DetailedDescription string
	Price               float64
	OfferPrice          float64
	Category            string
	Sizes               []string
	Images              []ImageUpload
}

// UpdateProductInput carries the mutable product fields. Nil pointers leave
// the stored value untouched; a non-nil Images slice appends newly uploaded
// images to the existing list.
type UpdateProductInput struct {
	ProductID           uuid.UUID
	Name                *string
	Description         []string
	DetailedDescription *string
	Price               *float64
	OfferPrice          *float64
	Category            *string
	Sizes               []string
	Images              []ImageUpload
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// AddProduct uploads the product images and creates the catalog entry.
	AddProduct(ctx context.Context, input AddProductInput) (*entity.Product, error)

	// ListProducts returns the whole catalog, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product with its ratings expanded.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// UpdateProduct applies the provided changes and returns the updated product.
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its ratings from the catalog.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// ChangeStock toggles the manually managed stock flag.
	ChangeStock(ctx context.Context, productID uuid.UUID, inStock bool) error

	// ProductQR returns a PNG QR code deep-linking to the product page.
	ProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
