package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Reserved clothing categories. Products in these categories are addressed in
// the cart by product id plus size; everything else by bare product id.
// CategoryMen is uppercase while the other two are title-case; clients match
// these literals verbatim, so the casing is part of the contract.
const (
	CategoryMen   = "MEN"
	CategoryWomen = "Women"
	CategoryKids  = "Kids"
)

// clothingCategories lists the categories whose products carry a size.
var clothingCategories = []string{CategoryMen, CategoryWomen, CategoryKids}

// IsClothingCategory reports whether category is one of the reserved
// clothing categories.
func IsClothingCategory(category string) bool {
	return slices.Contains(clothingCategories, category)
}

// Rating is a single review embedded in a product. A user has at most one
// rating per product; resubmitting replaces score, review and timestamp.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`

	// UserName and UserProfilePicture are populated when ratings are read
	// with rater details expanded.
	UserName           string `json:"userName,omitempty"`
	UserProfilePicture string `json:"userProfilePicture,omitempty"`
}

// Product is a catalog entry. AverageRating and TotalRatings are derived from
// the embedded ratings and recomputed on every rating write.
type Product struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         []string  `json:"description"`
	DetailedDescription string    `json:"detailedDescription"`
	Price               float64   `json:"price"`
	OfferPrice          float64   `json:"offerPrice"`
	Images              []string  `json:"image"`
	Category            string    `json:"category"`
	Sizes               []string  `json:"sizes"`
	InStock             bool      `json:"inStock"`
	Ratings             []Rating  `json:"ratings"`
	AverageRating       float64   `json:"averageRating"`
	TotalRatings        int       `json:"totalRatings"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// IsClothing reports whether the product belongs to a sized category.
func (p *Product) IsClothing() bool {
	return IsClothingCategory(p.Category)
}

// RecomputeRatingStats rederives AverageRating and TotalRatings from the
// embedded ratings. Must be called after every rating mutation.
func (p *Product) RecomputeRatingStats() {
	p.TotalRatings = len(p.Ratings)
	if p.TotalRatings == 0 {
		p.AverageRating = 0

		return
	}

	var sum int
	for _, r := range p.Ratings {
		sum += r.Rating
	}
	p.AverageRating = float64(sum) / float64(p.TotalRatings)
}

// RatingByUser returns the user's rating on this product, if any.
func (p *Product) RatingByUser(userID uuid.UUID) (Rating, bool) {
	for _, r := range p.Ratings {
		if r.UserID == userID {
			return r, true
		}
	}

	return Rating{}, false
}
