package handler

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/session"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller-side handlers.
type SellerHandler struct {
	uc         usecase.SellerUsecase
	tokenSvc   service.TokenService
	production bool
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, tokenSvc service.TokenService, cfg *config.Config) *SellerHandler {
	return &SellerHandler{
		uc:         uc,
		tokenSvc:   tokenSvc,
		production: cfg.IsProduction(),
	}
}

// Login checks the credentials against configuration and starts a seller session.
func (h *SellerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Set(c, session.CookieNameSeller, output.Token, h.tokenSvc.GetSessionDuration(), h.production)

	return response.Success(c, http.StatusOK, "Logged in", response.Payload{"email": output.Email})
}

// IsAuth confirms the seller session cookie is valid.
func (h *SellerHandler) IsAuth(c echo.Context) error {
	return response.Success(c, http.StatusOK, "", nil)
}

// Logout clears the seller session cookie. Always succeeds.
func (h *SellerHandler) Logout(c echo.Context) error {
	session.Clear(c, session.CookieNameSeller, h.production)

	return response.Success(c, http.StatusOK, "Logged out", nil)
}

// GetProfile returns the store profile, creating the default row on first read.
func (h *SellerHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"profile": profile})
}

type updateSellerProfileRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	StoreName   *string `json:"storeName"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

// UpdateProfile applies partial store profile changes.
func (h *SellerHandler) UpdateProfile(c echo.Context) error {
	var req updateSellerProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateSellerProfileInput{
		Name:        req.Name,
		Phone:       req.Phone,
		StoreName:   req.StoreName,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile updated", response.Payload{"profile": profile})
}
