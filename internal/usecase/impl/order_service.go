package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceCODOrder prices the items at their current offer prices, adds the
// flat tax, floors the total, and persists the order atomically. The cart is
// cleared in the same transaction. Stock is a display flag, not a counter;
// nothing is decremented here.
func (srv *orderService) PlaceCODOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrMissingFields.WithDetails("order has no items")
	}
	if input.AddressID == uuid.Nil {
		return nil, domainerrors.ErrMissingFields.WithDetails("shipping address is required")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantities must be positive")
		}
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		addressRepo := repoFactory.NewAddressRepository()
		orderRepo := repoFactory.NewOrderRepository()
		userRepo := repoFactory.NewUserRepository()

		address, txErr := addressRepo.FindByID(ctx, input.AddressID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(txErr, "failed to load shipping address")
		}
		if address.UserID != input.UserID {
			// Another user's address id resolves but must stay invisible.
			return domainerrors.ErrAddressNotFound
		}

		ids := make([]uuid.UUID, 0, len(input.Items))
		for _, item := range input.Items {
			ids = append(ids, item.ProductID)
		}

		products, txErr := productRepo.FindByIDs(ctx, ids)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to price order items")
		}
		prices := make(map[uuid.UUID]float64, len(products))
		for _, product := range products {
			prices[product.ID] = product.OfferPrice
		}

		var subtotal float64
		items := make([]entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			price, ok := prices[item.ProductID]
			if !ok {
				return domainerrors.ErrProductNotFound.WithDetails("order references a product that no longer exists")
			}
			subtotal += price * float64(item.Quantity)
			items = append(items, entity.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Size:      item.Size,
			})
		}

		order := &entity.Order{
			UserID:      input.UserID,
			Items:       items,
			Amount:      entity.OrderAmount(subtotal),
			AddressID:   input.AddressID,
			Status:      entity.StatusOrderPlaced,
			PaymentType: entity.PaymentCOD,
			IsPaid:      false,
		}

		if txErr := orderRepo.Create(ctx, order); txErr != nil {
			return errors.Wrap(txErr, "failed to persist order")
		}

		if txErr := userRepo.UpdateCart(ctx, input.UserID, entity.Cart{}); txErr != nil {
			return errors.Wrap(txErr, "failed to clear cart after checkout")
		}

		placed = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", placed.ID), slog.Any("userID", input.UserID), slog.Float64("amount", placed.Amount))

	srv.publish(ctx, &service.OrderEvent{
		Type:    service.OrderEventPlaced,
		OrderID: placed.ID.String(),
		UserID:  placed.UserID.String(),
		Status:  string(placed.Status),
		Amount:  placed.Amount,
	})

	return placed, nil
}

// ListUserOrders returns the user's COD-or-paid orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindVisibleByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAllOrders returns every COD-or-paid order across users.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAllVisible(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateStatus overwrites the status of an order. Any recognized status is
// reachable from any other.
func (srv *orderService) UpdateStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) error {
	if !input.Status.Valid() {
		return domainerrors.ErrInvalidStatus
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order for status update")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, input.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", input.OrderID), slog.String("status", string(input.Status)))

	srv.publish(ctx, &service.OrderEvent{
		Type:    service.OrderEventStatusChanged,
		OrderID: input.OrderID.String(),
		UserID:  order.UserID.String(),
		Status:  string(input.Status),
	})

	return nil
}

// publish sends an order event; publishing failures are logged and never
// fail the request.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type), slog.String("orderID", event.OrderID), slog.Any("error", err))
	}
}
