package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// RateProductInput defines a rating submission.
type RateProductInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Review    string
}

// CanRateOutput reports rating eligibility, and whether the user already has
// a rating on the product (to drive submit-vs-update UI). Existing carries
// that rating when HasRated is true.
type CanRateOutput struct {
	CanRate  bool
	HasRated bool
	Existing *entity.Rating
}

// RatingUsecase defines the interface for the product rating gate. Only
// users with a Delivered order containing the product may rate it; a second
// submission by the same user replaces the first.
type RatingUsecase interface {
	// CanRate reports whether the user is eligible to rate the product.
	CanRate(ctx context.Context, userID, productID uuid.UUID) (*CanRateOutput, error)

	// RateProduct upserts the user's rating and recomputes the product's
	// aggregates; the updated product is returned.
	RateProduct(ctx context.Context, input RateProductInput) (*entity.Product, error)

	// ListRatings returns all ratings of a product with rater details, newest first.
	ListRatings(ctx context.Context, productID uuid.UUID) ([]*entity.Rating, error)
}
