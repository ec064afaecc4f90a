// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the optional profile fields a user may change.
// Nil pointers leave the stored value untouched.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        *string
	Phone       *string
	DateOfBirth *time.Time
	Gender      *entity.Gender
	Address     *entity.PostalAddress
}

// ImageUpload is one uploaded image file.
type ImageUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// --- Output DTOs ---

// AuthOutput returns the session token and the sanitized user after a
// successful register or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and issues a session token.
	Register(ctx context.Context, input RegisterUserInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GetProfile returns the sanitized user for an authenticated session.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the provided profile changes and returns the
	// updated sanitized user.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// UploadProfilePicture stores the image and records its URL on the user.
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, image ImageUpload) (*entity.User, error)
}
