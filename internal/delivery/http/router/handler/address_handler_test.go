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

// stubAddresses captures the input handlers hand to the address usecase.
type stubAddresses struct {
	usecase.AddressUsecase
	addInput usecase.AddAddressInput
}

func (s *stubAddresses) AddAddress(_ context.Context, input usecase.AddAddressInput) (*entity.Address, error) {
	s.addInput = input

	return &entity.Address{ID: uuid.New()}, nil
}

func newAddressContext(userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/address/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestAddressHandler_Add_Success(t *testing.T) {
	addresses := &stubAddresses{}
	handler := NewAddressHandler(addresses)
	userID := uuid.New()

	body := `{
		"firstName": "Jamie", "lastName": "Lee", "email": "jamie@example.com",
		"street": "1 Main St", "city": "Springfield", "state": "IL",
		"zipcode": "62701", "country": "USA", "phone": "5551234"
	}`
	c, rec := newAddressContext(userID, body)

	require.NoError(t, handler.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, addresses.addInput.UserID)
	assert.Equal(t, "1 Main St", addresses.addInput.Street)
}

func TestAddressHandler_Add_MissingField(t *testing.T) {
	handler := NewAddressHandler(&stubAddresses{})

	// street omitted
	body := `{
		"firstName": "Jamie", "lastName": "Lee", "email": "jamie@example.com",
		"city": "Springfield", "state": "IL",
		"zipcode": "62701", "country": "USA", "phone": "5551234"
	}`
	c, _ := newAddressContext(uuid.New(), body)

	err := handler.Add(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}
