package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get returns the persisted cart of the current user.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"cartItems": cart})
}

type updateCartRequest struct {
	CartItems entity.Cart `json:"cartItems"`
}

// Update overwrites the persisted cart with the client's mapping. The client
// owns the working copy; the last writer wins.
func (h *CartHandler) Update(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	cart, err := h.uc.ReplaceCart(c.Request().Context(), userID, req.CartItems)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Cart updated", response.Payload{"cartItems": cart})
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Size      string    `json:"size"`
}

// AddItem increments one cart line server-side and returns the updated cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	cart, err := h.uc.AddItem(c.Request().Context(), userID, req.ProductID, req.Size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Added to cart", response.Payload{"cartItems": cart})
}

type removeCartItemRequest struct {
	Key string `json:"key"`
}

// RemoveItem decrements one cart line and returns the updated cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req removeCartItemRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, req.Key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Removed from cart", response.Payload{"cartItems": cart})
}

// Summary returns the cart with its derived count and amount.
func (h *CartHandler) Summary(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.Summarize(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{
		"cartItems": summary.Items,
		"count":     summary.Count,
		"amount":    summary.Amount,
	})
}
