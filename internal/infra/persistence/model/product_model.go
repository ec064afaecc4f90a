package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Description paragraphs, image
// URLs, and the size list are JSONB documents; the rating aggregates are
// denormalized columns maintained by the rating use case.
type ProductModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Description         []string `gorm:"type:jsonb;serializer:json"`
	DetailedDescription string   `gorm:"type:text"`
	Images              []string `gorm:"type:jsonb;serializer:json"`
	Category            string   `gorm:"type:varchar(32);not null;index"`
	Price               float64  `gorm:"type:numeric(12,2);not null"`
	OfferPrice          float64  `gorm:"type:numeric(12,2);not null"`
	Sizes               []string `gorm:"type:jsonb;serializer:json"`
	InStock             bool     `gorm:"not null;default:true"`
	AverageRating       float64  `gorm:"type:numeric(3,2);not null;default:0"`
	TotalRatings        int      `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Ratings []RatingModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RatingModel mirrors the 'ratings' table. One row per (product, user) pair.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_product_user"`
	Rating    int       `gorm:"not null"`
	Review    string    `gorm:"type:text"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
