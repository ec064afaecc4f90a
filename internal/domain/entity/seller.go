package entity

import (
	"time"

	"github.com/google/uuid"
)

// SellerAccountType enumerates the seller subscription tiers.
type SellerAccountType string

const (
	SellerAccountBasic   SellerAccountType = "Basic"
	SellerAccountPremium SellerAccountType = "Premium"
)

// SellerProfile is the singleton-per-deployment seller record, keyed by the
// configured seller email. The seller authenticates against configuration,
// not against this record; the profile only carries store metadata and is
// lazily created on first read.
type SellerProfile struct {
	ID          uuid.UUID         `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	StoreName   string            `json:"storeName"`
	Address     string            `json:"address"`
	Description string            `json:"description"`
	IsVerified  bool              `json:"isVerified"`
	AccountType SellerAccountType `json:"accountType"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewDefaultSellerProfile builds the profile created lazily when none exists yet.
func NewDefaultSellerProfile(email string) *SellerProfile {
	return &SellerProfile{
		Email:       email,
		Name:        "Seller",
		StoreName:   "My Store",
		IsVerified:  true,
		AccountType: SellerAccountPremium,
	}
}
