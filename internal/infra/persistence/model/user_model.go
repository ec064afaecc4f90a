package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The profile address and the cart are stored as JSONB documents; neither is
// queried relationally.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	ProfilePicture string    `gorm:"type:text"`
	Phone          string    `gorm:"type:varchar(32)"`
	DateOfBirth    *time.Time
	Gender         string               `gorm:"type:varchar(16)"`
	Address        entity.PostalAddress `gorm:"type:jsonb;serializer:json"`
	CartItems      entity.Cart          `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
