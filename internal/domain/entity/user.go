// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender enumerates the accepted values for the optional gender profile field.
// An empty string means the user has not set it.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
	GenderUnset  Gender = ""
)

// Valid reports whether g is one of the accepted gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnset:
		return true
	}

	return false
}

// PostalAddress is the free-form postal address embedded in a user profile.
// It is distinct from entity.Address, which is a shipping address used for orders.
type PostalAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// User is the core shopper account. The password hash never leaves the
// persistence boundary through Sanitized views.
type User struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	PasswordHash   string        `json:"-"`
	ProfilePicture string        `json:"profilePicture"`
	Phone          string        `json:"phone"`
	DateOfBirth    *time.Time    `json:"dateOfBirth"`
	Gender         Gender        `json:"gender"`
	Address        PostalAddress `json:"address"`
	CartItems      Cart          `json:"cartItems"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// Sanitized returns a copy of the user safe to serialize in API responses.
// The password hash is dropped and a nil cart becomes an empty map so the
// client always receives an object for cartItems.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""
	if clone.CartItems == nil {
		clone.CartItems = Cart{}
	}

	return &clone
}
