package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerProfileModel mirrors the 'seller_profiles' table. The store runs with
// a single operator, so in practice this table holds one row, created lazily
// the first time the profile is read.
type SellerProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(32)"`
	StoreName   string    `gorm:"type:varchar(100);not null"`
	Address     string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	AccountType string    `gorm:"type:varchar(16);not null"`
	IsVerified  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}
