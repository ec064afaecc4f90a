// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateOfBirthLayouts are the accepted formats for the dateOfBirth field.
var dateOfBirthLayouts = []string{"2006-01-02", time.RFC3339}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc         usecase.UserUsecase
	tokenSvc   service.TokenService
	production bool
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		uc:         uc,
		tokenSvc:   tokenSvc,
		production: cfg.IsProduction(),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request and starts a session.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Set(c, session.CookieNameUser, output.Token, h.tokenSvc.GetSessionDuration(), h.production)

	return response.Success(c, http.StatusCreated, "Account created", response.Payload{"user": output.User})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the user login request and starts a session.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Set(c, session.CookieNameUser, output.Token, h.tokenSvc.GetSessionDuration(), h.production)

	return response.Success(c, http.StatusOK, "Logged in", response.Payload{"user": output.User})
}

// IsAuth confirms the session cookie is valid and returns the current user.
func (h *UserHandler) IsAuth(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"user": user})
}

// Logout clears the session cookie. Always succeeds.
func (h *UserHandler) Logout(c echo.Context) error {
	session.Clear(c, session.CookieNameUser, h.production)

	return response.Success(c, http.StatusOK, "Logged out", nil)
}

type updateProfileRequest struct {
	Name        *string               `json:"name"`
	Phone       *string               `json:"phone"`
	DateOfBirth *string               `json:"dateOfBirth"`
	Gender      *string               `json:"gender"`
	Address     *entity.PostalAddress `json:"address"`
}

// UpdateProfile applies partial profile changes for the current user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	input := usecase.UpdateProfileInput{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		input.Gender = &gender
	}
	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("dateOfBirth must be YYYY-MM-DD or RFC 3339")
		}
		input.DateOfBirth = &dob
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile updated", response.Payload{"user": user})
}

// UploadProfilePicture stores the uploaded image and records its URL.
func (h *UserHandler) UploadProfilePicture(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		// Older clients posted the part under "image".
		fileHeader, err = c.FormFile("image")
	}
	if err != nil {
		return domainerrors.ErrMissingFields.WithDetails("profilePicture file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	user, err := h.uc.UploadProfilePicture(c.Request().Context(), userID, usecase.ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile picture updated", response.Payload{"user": user})
}

func parseDateOfBirth(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateOfBirthLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy", nil)
}
