package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the catalog.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrRatingNotFound is returned when a user has no rating on a product.
	ErrRatingNotFound = errors.New("rating not found")
)

// ProductRepository defines the interface for catalog persistence. Rating
// rows hang off products and are always loaded alongside them, so their
// operations live here rather than in a repository of their own.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product together with its ratings.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product with its row locked for the
	// duration of the enclosing transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products with the given IDs. Missing IDs are
	// skipped, not reported as errors.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindAll retrieves every product in the catalog, ratings included.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateRatingStats persists the denormalized rating aggregates of a
	// product without rewriting its other columns.
	UpdateRatingStats(ctx context.Context, productID uuid.UUID, average float64, total int) error

	// Delete removes a product and its ratings.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertRating inserts the rating, or replaces the existing one by the
	// same user on the same product.
	UpsertRating(ctx context.Context, rating *entity.Rating) error

	// FindRatingsByProduct retrieves all ratings of a product, newest first.
	FindRatingsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Rating, error)
}
