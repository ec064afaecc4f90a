package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsClothingCategory(t *testing.T) {
	// Clients compare these literals verbatim; MEN is uppercase while the
	// other two are title-case.
	assert.Equal(t, "MEN", CategoryMen)
	assert.Equal(t, "Women", CategoryWomen)
	assert.Equal(t, "Kids", CategoryKids)

	assert.True(t, IsClothingCategory("MEN"))
	assert.True(t, IsClothingCategory("Women"))
	assert.True(t, IsClothingCategory("Kids"))
	assert.False(t, IsClothingCategory("Men"))
	assert.False(t, IsClothingCategory("Electronics"))
	assert.False(t, IsClothingCategory(""))
}

func TestProduct_RecomputeRatingStats(t *testing.T) {
	product := &Product{
		Ratings: []Rating{
			{Rating: 5},
			{Rating: 4},
			{Rating: 2},
		},
	}

	product.RecomputeRatingStats()

	assert.Equal(t, 3, product.TotalRatings)
	assert.InDelta(t, 11.0/3.0, product.AverageRating, 0.0001)
}

func TestProduct_RecomputeRatingStats_Empty(t *testing.T) {
	product := &Product{AverageRating: 4.5, TotalRatings: 9}

	product.RecomputeRatingStats()

	assert.Zero(t, product.TotalRatings)
	assert.Zero(t, product.AverageRating)
}

func TestProduct_RatingByUser(t *testing.T) {
	userID := uuid.New()
	product := &Product{
		Ratings: []Rating{
			{UserID: uuid.New(), Rating: 3},
			{UserID: userID, Rating: 5, Review: "great"},
		},
	}

	rating, ok := product.RatingByUser(userID)
	assert.True(t, ok)
	assert.Equal(t, 5, rating.Rating)

	_, ok = product.RatingByUser(uuid.New())
	assert.False(t, ok)
}

func TestUser_Sanitized(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Name:         "Jamie",
		Email:        "jamie@example.com",
		PasswordHash: "$2a$12$secret",
	}

	clean := user.Sanitized()

	assert.Empty(t, clean.PasswordHash)
	assert.NotNil(t, clean.CartItems)
	assert.Equal(t, user.Email, clean.Email)
	// The original keeps its hash.
	assert.NotEmpty(t, user.PasswordHash)
}
