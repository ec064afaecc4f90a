package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)

	service := NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		addressRepo: addressRepo,
	}
}

func validAddressInput(userID uuid.UUID) usecase.AddAddressInput {
	return usecase.AddAddressInput{
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Street:    "1 Main St",
		City:      "Springfield",
		State:     "IL",
		Zipcode:   "62701",
		Country:   "USA",
		Phone:     "555-0100",
	}
}

func TestAddressService_AddAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(ctx context.Context, address *entity.Address) {
			address.ID = uuid.New()
		}).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, validAddressInput(userID))

	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.NotEqual(t, uuid.Nil, address.ID)
}

func TestAddressService_AddAddress_AllFieldsRequired(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	mutations := map[string]func(*usecase.AddAddressInput){
		"first name": func(in *usecase.AddAddressInput) { in.FirstName = "" },
		"last name":  func(in *usecase.AddAddressInput) { in.LastName = "" },
		"email":      func(in *usecase.AddAddressInput) { in.Email = "" },
		"street":     func(in *usecase.AddAddressInput) { in.Street = "" },
		"city":       func(in *usecase.AddAddressInput) { in.City = "" },
		"state":      func(in *usecase.AddAddressInput) { in.State = "" },
		"zipcode":    func(in *usecase.AddAddressInput) { in.Zipcode = "" },
		"country":    func(in *usecase.AddAddressInput) { in.Country = "" },
		"phone":      func(in *usecase.AddAddressInput) { in.Phone = "" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			input := validAddressInput(uuid.New())
			mutate(&input)

			_, err := fx.service.AddAddress(ctx, input)

			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
		})
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.addressRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Address{{ID: uuid.New(), UserID: userID}}, nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: userID}, nil)
	fx.addressRepo.EXPECT().Delete(ctx, addressID).Return(nil)

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	require.NoError(t, err)
}

func TestAddressService_DeleteAddress_ForeignAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	addressID := uuid.New()
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	// An id belonging to another user reads as not found.
	err := fx.service.DeleteAddress(ctx, uuid.New(), addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
