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

// OrderHandler holds dependencies for order pipeline handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// orderItemRequest accepts the product id under either key; the storefront
// client posts "product" while newer callers use "productId".
type orderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Product   uuid.UUID `json:"product"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	Size      string    `json:"size"`
}

func (r orderItemRequest) productID() uuid.UUID {
	if r.ProductID != uuid.Nil {
		return r.ProductID
	}

	return r.Product
}

type placeOrderRequest struct {
	AddressID uuid.UUID          `json:"addressId"`
	Address   uuid.UUID          `json:"address"`
	Items     []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r placeOrderRequest) addressID() uuid.UUID {
	if r.AddressID != uuid.Nil {
		return r.AddressID
	}

	return r.Address
}

// PlaceCOD prices the checkout and creates a cash-on-delivery order.
func (h *OrderHandler) PlaceCOD(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.productID(),
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	order, err := h.uc.PlaceCODOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:    userID,
		AddressID: req.addressID(),
		Items:     items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Order placed", response.Payload{"order": order})
}

// ListUser returns the current user's orders, newest first.
func (h *OrderHandler) ListUser(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"orders": orders})
}

// ListAll returns every order across users for the seller dashboard.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "", response.Payload{"orders": orders})
}

type updateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateStatus overwrites an order's status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  req.Status,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Status updated", nil)
}
