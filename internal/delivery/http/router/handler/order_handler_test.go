package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	httpvalidator "storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrders captures the input handlers hand to the order usecase.
type stubOrders struct {
	usecase.OrderUsecase
	placeInput usecase.PlaceOrderInput
}

func (s *stubOrders) PlaceCODOrder(_ context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	s.placeInput = input

	return &entity.Order{ID: uuid.New()}, nil
}

func newOrderContext(userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/order/cod", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestOrderHandler_PlaceCOD_AcceptsClientFieldNames(t *testing.T) {
	orders := &stubOrders{}
	handler := NewOrderHandler(orders)
	productID := uuid.New()
	addressID := uuid.New()

	// The storefront client posts "product" per item and a bare "address".
	body := `{
		"items": [{"product": "` + productID.String() + `", "quantity": 2, "size": "M"}],
		"address": "` + addressID.String() + `"
	}`
	c, rec := newOrderContext(uuid.New(), body)

	require.NoError(t, handler.PlaceCOD(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, addressID, orders.placeInput.AddressID)
	require.Len(t, orders.placeInput.Items, 1)
	assert.Equal(t, productID, orders.placeInput.Items[0].ProductID)
	assert.Equal(t, 2, orders.placeInput.Items[0].Quantity)
	assert.Equal(t, "M", orders.placeInput.Items[0].Size)
}

func TestOrderHandler_PlaceCOD_PrefersExplicitProductID(t *testing.T) {
	orders := &stubOrders{}
	handler := NewOrderHandler(orders)
	productID := uuid.New()

	body := `{
		"items": [{"productId": "` + productID.String() + `", "quantity": 1}],
		"addressId": "` + uuid.New().String() + `"
	}`
	c, _ := newOrderContext(uuid.New(), body)

	require.NoError(t, handler.PlaceCOD(c))
	require.Len(t, orders.placeInput.Items, 1)
	assert.Equal(t, productID, orders.placeInput.Items[0].ProductID)
}

func TestOrderHandler_PlaceCOD_RejectsEmptyItems(t *testing.T) {
	handler := NewOrderHandler(&stubOrders{})

	c, _ := newOrderContext(uuid.New(), `{"items": [], "address": "`+uuid.New().String()+`"}`)

	err := handler.PlaceCOD(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderHandler_PlaceCOD_RejectsZeroQuantity(t *testing.T) {
	handler := NewOrderHandler(&stubOrders{})

	body := `{
		"items": [{"product": "` + uuid.New().String() + `", "quantity": 0}],
		"address": "` + uuid.New().String() + `"
	}`
	c, _ := newOrderContext(uuid.New(), body)

	err := handler.PlaceCOD(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
