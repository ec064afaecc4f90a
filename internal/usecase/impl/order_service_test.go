package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_PlaceCODOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)

			addressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)
			productRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}).
				Return([]*entity.Product{{ID: productID, Price: 300, OfferPrice: 250}}, nil)
			orderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)
			userRepo.EXPECT().UpdateCart(ctx, userID, entity.Cart{}).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPlaced, event.Type)
			assert.Equal(t, string(entity.StatusOrderPlaced), event.Status)
		}).
		Return(nil)

	order, err := fx.service.PlaceCODOrder(ctx, usecase.PlaceOrderInput{
		UserID:    userID,
		AddressID: addressID,
		Items: []usecase.OrderItemInput{
			{ProductID: productID, Quantity: 2, Size: "M"},
		},
	})

	require.NoError(t, err)
	// Items priced at the offer price, 2% tax, floored to whole currency.
	assert.Equal(t, float64(510), order.Amount)
	assert.Equal(t, entity.StatusOrderPlaced, order.Status)
	assert.Equal(t, entity.PaymentCOD, order.PaymentType)
	assert.False(t, order.IsPaid)
}

func TestOrderService_PlaceCODOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceCODOrder(context.Background(), usecase.PlaceOrderInput{
		UserID:    uuid.New(),
		AddressID: uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestOrderService_PlaceCODOrder_MissingAddress(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceCODOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: uuid.New(),
		Items:  []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestOrderService_PlaceCODOrder_ForeignAddress(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)

			// Resolvable address id, but it belongs to someone else.
			addressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

			return fn(factory)
		})

	_, err := fx.service.PlaceCODOrder(ctx, usecase.PlaceOrderInput{
		UserID:    userID,
		AddressID: addressID,
		Items:     []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestOrderService_PlaceCODOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)

			addressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)
			productRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}).
				Return(nil, nil)

			return fn(factory)
		})

	_, err := fx.service.PlaceCODOrder(ctx, usecase.PlaceOrderInput{
		UserID:    userID,
		AddressID: addressID,
		Items:     []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_PlaceCODOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	addressID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewUserRepository().Return(userRepo)

			addressRepo.EXPECT().
				FindByID(ctx, addressID).
				Return(&entity.Address{ID: addressID, UserID: userID}, nil)
			productRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productID}).
				Return([]*entity.Product{{ID: productID, OfferPrice: 10}}, nil)
			orderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			userRepo.EXPECT().UpdateCart(ctx, userID, entity.Cart{}).Return(nil)

			return fn(factory)
		})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(assert.AnError)

	_, err := fx.service.PlaceCODOrder(ctx, usecase.PlaceOrderInput{
		UserID:    userID,
		AddressID: addressID,
		Items:     []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	require.NoError(t, err, "a dropped event must not fail the checkout")
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.UpdateStatus(context.Background(), usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  entity.OrderStatus("Refunded"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_OverwritesTerminalStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.StatusDelivered}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.StatusProcessing).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventStatusChanged, event.Type)
			assert.Equal(t, string(entity.StatusProcessing), event.Status)
		}).
		Return(nil)

	// There is no transition table; Delivered back to Processing is allowed.
	err := fx.service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  entity.StatusProcessing,
	})

	require.NoError(t, err)
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := fx.service.UpdateStatus(ctx, usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  entity.StatusShipped,
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.orderRepo.EXPECT().
		FindVisibleByUser(ctx, userID).
		Return([]*entity.Order{{ID: uuid.New(), UserID: userID}}, nil)

	orders, err := fx.service.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
